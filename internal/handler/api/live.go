package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"waste-dashboard/internal/domain/access"
	reqdto "waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/handler/httperr"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxClientFrame = 512
)

type LiveHandler struct {
	reconciler      *telemetry.Reconciler
	dashboard       queries.DashboardQueries
	summary         queries.SummaryQueries
	upgrader        websocket.Upgrader
	pingInterval    time.Duration
	summaryInterval time.Duration
	logger          *slog.Logger
}

func NewLiveHandler(reconciler *telemetry.Reconciler, dashboard queries.DashboardQueries, summary queries.SummaryQueries, cfg config.Config, logger *slog.Logger) *LiveHandler {
	allowed := cfg.CORS.AllowOrigins
	pingInterval := cfg.Telemetry.PingInterval
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	summaryInterval := cfg.Telemetry.SummaryInterval
	if summaryInterval <= 0 {
		summaryInterval = 30 * time.Second
	}
	return &LiveHandler{
		reconciler: reconciler,
		dashboard:  dashboard,
		summary:    summary,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowed, origin)
			},
		},
		pingInterval:    pingInterval,
		summaryInterval: summaryInterval,
		logger:          logger,
	}
}

// liveConn serialises writes; gorilla allows one concurrent writer.
type liveConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (l *liveConn) writeJSON(v any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return l.conn.WriteJSON(v)
}

func (l *liveConn) ping() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (l *liveConn) closeNormal() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// @Summary Live bin weights
// @Description Websocket stream of reconciled bin snapshots for a branch
// @Tags dashboard
// @Security BearerAuth
// @Param branchId query string false "defaults to the session org unit"
// @Success 101 "Switching Protocols"
// @Router /live/bins [get]
func (h *LiveHandler) LiveBins(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "User not authenticated", nil)
		return
	}
	var q reqdto.BranchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	branchID := h.dashboard.ResolveBranch(sess, q.BranchID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	lc := &liveConn{conn: conn}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	feed := h.reconciler.Open(ctx, branchID)
	defer feed.Close()

	go h.readLoop(conn, cancel)

	if branchID != "" && access.CanAccess(sess.Role(), access.RouteWasteSummary) {
		poller := telemetry.NewPoller("waste-summary", h.summaryInterval,
			func(ctx context.Context) (*readmodel.WasteSummaryRM, error) {
				return h.summary.WasteSummary(ctx, branchID)
			}, h.logger)
		go poller.Run(ctx, func(s *readmodel.WasteSummaryRM) {
			if err := lc.writeJSON(resdto.LiveFrame{Type: resdto.LiveFrameSummary, BranchID: branchID, Summary: s}); err != nil {
				cancel()
			}
		})
	}

	if err := lc.writeJSON(snapshotFrame(feed.Snapshot())); err != nil {
		return
	}

	pingTicker := time.NewTicker(h.pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			lc.closeNormal()
			return
		case <-feed.Changes():
			if err := lc.writeJSON(snapshotFrame(feed.Snapshot())); err != nil {
				h.logger.Debug("live write failed", slog.Any("error", err))
				return
			}
		case <-pingTicker.C:
			if err := lc.ping(); err != nil {
				h.logger.Debug("live ping failed", slog.Any("error", err))
				return
			}
		}
	}
}

// readLoop drains client frames so control messages are processed; a read
// error ends the session.
func (h *LiveHandler) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxClientFrame)
	deadline := 2*h.pingInterval + writeWait
	_ = conn.SetReadDeadline(time.Now().Add(deadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(deadline))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live client closed unexpectedly", slog.Any("error", err))
			}
			return
		}
	}
}

func snapshotFrame(s telemetry.Snapshot) resdto.LiveFrame {
	frame := resdto.LiveFrame{
		Type:     resdto.LiveFrameSnapshot,
		BranchID: s.BranchID,
		Loading:  s.Loading,
		Bins:     queries.NewBinViews(s.Bins),
	}
	if s.Err != nil {
		frame.Error = "Failed to load bins"
	}
	return frame
}
