//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/handler/api"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/shared"
	"waste-dashboard/internal/usecase/telemetry"
	"waste-dashboard/tests/common/authtest"
	"waste-dashboard/tests/common/builder"
	queriesmock "waste-dashboard/tests/mock/queries"
	sharedmock "waste-dashboard/tests/mock/shared"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type liveSubscription struct {
	updates chan bin.WeightUpdate
}

func (s *liveSubscription) Updates() <-chan bin.WeightUpdate { return s.updates }
func (s *liveSubscription) Close() error                    { return nil }

type LiveHandlerTestSuite struct {
	suite.Suite
	server      *nethttptest.Server
	mockCtrl    *gomock.Controller
	mockSource  *sharedmock.MockBinSource
	mockPush    *sharedmock.MockPushChannel
	mockSummary *queriesmock.MockSummaryQueries
	sub         *liveSubscription
	jwtHelper   *authtest.JWTHelper
}

func (s *LiveHandlerTestSuite) SetupTest() {
	cfg := config.NewTestConfig()
	router, authMw, helper := newSessionRouter(s.T(), cfg)
	s.jwtHelper = helper

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = sharedmock.NewMockBinSource(s.mockCtrl)
	s.mockPush = sharedmock.NewMockPushChannel(s.mockCtrl)
	s.mockSummary = queriesmock.NewMockSummaryQueries(s.mockCtrl)
	s.sub = &liveSubscription{updates: make(chan bin.WeightUpdate)}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := telemetry.NewLoader(s.mockSource, telemetry.Options{}, logger, nil)
	reconciler := telemetry.NewReconciler(loader, s.mockPush, logger, nil)
	handler := api.NewLiveHandler(reconciler, queries.NewDashboardQueries(), s.mockSummary, cfg, logger)

	router.GET("/live/bins", authMw.RequireAccess(access.RouteLiveBins), handler.LiveBins)
	s.server = nethttptest.NewServer(router)
}

func (s *LiveHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestLiveHandlerSuite(t *testing.T) {
	suite.Run(t, new(LiveHandlerTestSuite))
}

func (s *LiveHandlerTestSuite) dial(sess *user.Session, query string) (*websocket.Conn, *http.Response, error) {
	header := http.Header{}
	if sess != nil {
		header.Set("Authorization", "Bearer "+s.jwtHelper.GenerateToken(s.T(), sess))
	}
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/live/bins" + query
	return websocket.DefaultDialer.Dial(url, header)
}

// readUntil returns the first frame that satisfies match.
func (s *LiveHandlerTestSuite) readUntil(conn *websocket.Conn, match func(resdto.LiveFrame) bool) resdto.LiveFrame {
	t := s.T()
	deadline := time.Now().Add(3 * time.Second)
	for {
		require.NoError(t, conn.SetReadDeadline(deadline))
		var frame resdto.LiveFrame
		require.NoError(t, conn.ReadJSON(&frame))
		if match(frame) {
			return frame
		}
	}
}

func loaded(f resdto.LiveFrame) bool {
	return f.Type == resdto.LiveFrameSnapshot && !f.Loading
}

func (s *LiveHandlerTestSuite) TestLiveBins() {
	s.Run("success: baseline then pushed update", func() {
		s.mockSource.EXPECT().ListBinsByBranch(gomock.Any(), "branch-1").
			Return(builder.NewBinBuilder().BuildCollection(3), nil)
		s.mockPush.EXPECT().Subscribe(gomock.Any(), "branch-1").
			Return(shared.Subscription(s.sub), nil)

		conn, _, err := s.dial(builder.NewSessionBuilder().BuildDomain(), "")
		s.Require().NoError(err)
		defer conn.Close()

		first := s.readUntil(conn, loaded)
		s.Equal("branch-1", first.BranchID)
		s.Require().Len(first.Bins, 3)

		select {
		case s.sub.updates <- bin.WeightUpdate{BinID: "bin-2", Weight: 99}:
		case <-time.After(2 * time.Second):
			s.FailNow("feed did not take the update")
		}

		next := s.readUntil(conn, func(f resdto.LiveFrame) bool {
			return loaded(f) && len(f.Bins) == 3 && f.Bins[1].CurrentWeight == 99
		})
		s.InDelta(10, next.Bins[0].CurrentWeight, 0.001)
	})

	s.Run("success: administrators also receive the summary", func() {
		s.mockSource.EXPECT().ListBinsByBranch(gomock.Any(), "branch-7").
			Return(bin.Collection{}, nil)
		s.mockPush.EXPECT().Subscribe(gomock.Any(), "branch-7").
			Return(shared.Subscription(&liveSubscription{updates: make(chan bin.WeightUpdate)}), nil)
		s.mockSummary.EXPECT().WasteSummary(gomock.Any(), "branch-7").
			Return(&readmodel.WasteSummaryRM{BranchID: "branch-7", TotalWeight: 12}, nil).MinTimes(1)

		sess := builder.NewSessionBuilder().WithRole(user.RoleOfficeAdmin).BuildDomain()
		conn, _, err := s.dial(sess, "?branchId=branch-7")
		s.Require().NoError(err)
		defer conn.Close()

		frame := s.readUntil(conn, func(f resdto.LiveFrame) bool { return f.Type == resdto.LiveFrameSummary })
		s.Require().NotNil(frame.Summary)
		s.InDelta(12, frame.Summary.TotalWeight, 0.001)
	})

	s.Run("error: baseline failure is reported in the frame", func() {
		s.mockSource.EXPECT().ListBinsByBranch(gomock.Any(), "branch-1").
			Return(nil, assert.AnError)
		s.mockPush.EXPECT().Subscribe(gomock.Any(), "branch-1").
			Return(nil, assert.AnError)

		conn, _, err := s.dial(builder.NewSessionBuilder().BuildDomain(), "")
		s.Require().NoError(err)
		defer conn.Close()

		frame := s.readUntil(conn, loaded)
		s.Equal("Failed to load bins", frame.Error)
		s.Empty(frame.Bins)
	})

	s.Run("error: no session refuses the upgrade", func() {
		_, resp, err := s.dial(nil, "")
		s.Require().ErrorIs(err, websocket.ErrBadHandshake)
		s.Require().NotNil(resp)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}
