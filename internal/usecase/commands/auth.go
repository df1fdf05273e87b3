package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"waste-dashboard/internal/domain/user"
	reqdto "waste-dashboard/internal/handler/dto/request"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/jwt"
	"waste-dashboard/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Session   *user.Session
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	gateway    shared.AuthGateway
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(gateway shared.AuthGateway, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		gateway:    gateway,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the credentials upstream and seals the returned user into
// a dashboard session token.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	sess, err := a.gateway.Login(ctx, credentials)
	if err != nil {
		if errs.Is(err, shared.ErrUpstreamUnauthorized) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		a.logger.Error("upstream login failed", slog.Any("error", err))
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(sess)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Session:   sess,
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
	}, nil
}
