package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/infra/backend"
	"waste-dashboard/internal/infra/pushchannel"
	"waste-dashboard/internal/kiosk"
	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/session"
	"waste-dashboard/internal/usecase/telemetry"
)

var errLoginRequired = errors.New("login required")

type flags struct {
	email     string
	password  string
	branch    string
	fromAdmin bool
	noPrompt  bool
	logFile   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "kiosk",
		Short: "Live bin weight display for a branch",
		Long: `kiosk signs in to the waste backend and shows the live weight of every bin
at the session's branch. Administrators also see the polled waste summary.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVar(&f.email, "email", "", "account email")
	cmd.Flags().StringVar(&f.password, "password", "", "account password")
	cmd.Flags().StringVar(&f.branch, "branch", "", "branch id (defaults to the session's branch)")
	cmd.Flags().BoolVar(&f.fromAdmin, "from-admin", false, "show the front-line display even for administrators")
	cmd.Flags().BoolVar(&f.noPrompt, "no-prompt", false, "do not prompt for missing credentials; reuse the upstream session only")
	cmd.Flags().StringVar(&f.logFile, "log-file", "kiosk.log", "log destination (empty disables logging)")
	return cmd
}

func run(ctx context.Context, f flags) error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.LoadKioskConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(f.logFile, cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if !f.noPrompt && (f.email == "" || f.password == "") {
		if err := promptCredentials(ctx, &f); err != nil {
			return err
		}
	}

	client, err := backend.NewClient(cfg.Upstream, logger, backend.WithSessionCookies())
	if err != nil {
		return err
	}
	push := pushchannel.New(cfg.Upstream, cfg.Telemetry, logger, pushchannel.WithCookieJar(client.CookieJar()))

	authority := session.NewAuthority(client, logger)
	loader := telemetry.NewLoader(client, telemetry.OptionsFrom(cfg.Telemetry), logger, nil)
	reconciler := telemetry.NewReconciler(loader, push, logger, nil)

	model := kiosk.NewModel(ctx, authority, reconciler,
		queries.NewDashboardQueries(),
		queries.NewSummaryQueries(client, clock.NewRealClock()),
		kiosk.Options{
			Branch:          f.branch,
			FromAdmin:       f.fromAdmin,
			SummaryInterval: cfg.Telemetry.SummaryInterval,
		})

	loginErr := make(chan error, 1)
	go func() {
		if f.email == "" || f.password == "" {
			authority.Resolve(ctx)
			return
		}
		if _, err := authority.Login(ctx, f.email, f.password); err != nil {
			logger.Warn("kiosk login failed", slog.Any("error", err))
			loginErr <- err
			authority.Resolve(ctx)
		}
	}()

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if m, ok := final.(kiosk.Model); ok && m.Denied() {
		select {
		case err := <-loginErr:
			return fmt.Errorf("%w: %v", errLoginRequired, err)
		default:
			return errLoginRequired
		}
	}
	return nil
}

func promptCredentials(ctx context.Context, f *flags) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&f.email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password),
		),
	)
	return form.RunWithContext(ctx)
}

func openLogger(path string, cfg config.LogConfig) (*slog.Logger, func(), error) {
	if path == "" {
		return middleware.NewLoggerTo(io.Discard, cfg).GetSlogLogger(), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return middleware.NewLoggerTo(file, cfg).GetSlogLogger(), func() { _ = file.Close() }, nil
}
