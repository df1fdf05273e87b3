//go:build unit || e2e

package upstreamtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const SessionCookieName = "upstream_session"

type Account struct {
	ID         string
	Email      string
	Password   string
	Role       string
	CompanyID  string
	BranchID   string
	BranchName string
}

// Server fakes the waste backend: REST under /api/v1 and the push socket
// under /ws.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	accounts   map[string]Account
	sessions   map[string]string
	bins       map[string][]map[string]any
	latest     map[string]any
	summaries  map[string]map[string]any
	companies  []map[string]any
	failures   map[string]int
	calls      map[string]int
	pushConns  map[string][]*websocket.Conn
	subscribed chan string

	upgrader websocket.Upgrader
}

func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		accounts:   map[string]Account{},
		sessions:   map[string]string{},
		bins:       map[string][]map[string]any{},
		latest:     map[string]any{},
		summaries:  map[string]map[string]any{},
		failures:   map[string]int{},
		calls:      map[string]int{},
		pushConns:  map[string][]*websocket.Conn{},
		subscribed: make(chan string, 16),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", s.login)
	mux.HandleFunc("POST /api/v1/auth/logout", s.logout)
	mux.HandleFunc("GET /api/v1/auth/me", s.me)
	mux.HandleFunc("GET /api/v1/bins/status/branch/{id}", s.listBins)
	mux.HandleFunc("GET /api/v1/bins/{id}/latest-weight", s.latestWeight)
	mux.HandleFunc("GET /api/v1/company", s.listCompanies)
	mux.HandleFunc("GET /api/v1/analytics/branch/{id}/waste-summary", s.wasteSummary)
	mux.HandleFunc("GET /ws", s.push)

	s.Server = httptest.NewServer(s.track(mux))
	t.Cleanup(func() {
		s.DropPushConnections()
		s.Close()
	})
	return s
}

func (s *Server) PushURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http") + "/ws"
}

func (s *Server) AddAccount(a Account) Account {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.Email] = a
	return a
}

func (s *Server) SetBins(branchID string, bins ...bin.Bin) {
	payload := make([]map[string]any, 0, len(bins))
	for _, b := range bins {
		payload = append(payload, map[string]any{
			"_id":           b.ID,
			"binName":       b.Name,
			"currentWeight": b.CurrentWeight,
			"binCapacity":   b.Capacity,
			"isActive":      b.IsActive,
		})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bins[branchID] = payload
}

func (s *Server) SetLatestWeight(binID string, weight any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[binID] = weight
}

func (s *Server) SetSummary(branchID string, byBinName map[string]float64) {
	cats := make([]map[string]any, 0, len(byBinName))
	for name, w := range byBinName {
		cats = append(cats, map[string]any{"binName": name, "weight": w})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[branchID] = map[string]any{"categories": cats}
}

func (s *Server) SetCompanies(companies ...readmodel.CompanyRM) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = nil
	for _, c := range companies {
		s.companies = append(s.companies, map[string]any{"_id": c.ID, "CompanyName": c.Name})
	}
}

// Fail makes every request whose path starts with prefix answer status.
func (s *Server) Fail(prefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[prefix] = status
}

func (s *Server) Calls(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for path, c := range s.calls {
		if strings.HasPrefix(path, prefix) {
			n += c
		}
	}
	return n
}

// WaitSubscribed blocks until a push client connects for branchID.
func (s *Server) WaitSubscribed(t *testing.T, branchID string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case b := <-s.subscribed:
			if b == branchID {
				return
			}
		case <-timeout:
			t.Fatalf("no push subscription for branch %q", branchID)
		}
	}
}

func (s *Server) Push(t *testing.T, branchID, event string, data map[string]any) {
	t.Helper()
	s.PushRaw(t, branchID, map[string]any{"event": event, "data": data})
}

func (s *Server) PushRaw(t *testing.T, branchID string, frame any) {
	t.Helper()
	s.mu.Lock()
	conns := append([]*websocket.Conn(nil), s.pushConns[branchID]...)
	s.mu.Unlock()
	require.NotEmpty(t, conns, "no push client for branch %q", branchID)
	for _, c := range conns {
		require.NoError(t, c.WriteJSON(frame))
	}
}

// DropPushConnections closes every push socket, forcing clients to reconnect.
func (s *Server) DropPushConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for branch, conns := range s.pushConns {
		for _, c := range conns {
			_ = c.Close()
		}
		delete(s.pushConns, branch)
	}
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		status := 0
		for prefix, code := range s.failures {
			if strings.HasPrefix(r.URL.Path, prefix) {
				status = code
			}
		}
		s.mu.Unlock()
		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	if !ok || acct.Password != req.Password {
		s.mu.Unlock()
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid credentials"})
		return
	}
	token := uuid.NewString()
	s.sessions[token] = acct.Email
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: token, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]any{"user": userJSON(acct)})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookieName); err == nil {
		s.mu.Lock()
		delete(s.sessions, c.Value)
		s.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.sessionAccount(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "not authenticated"})
		return
	}
	writeJSON(w, http.StatusOK, userJSON(acct))
}

func (s *Server) listBins(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	bins, ok := s.bins[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		bins = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bins": bins})
}

func (s *Server) latestWeight(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	weight, ok := s.latest[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, weight)
}

func (s *Server) listCompanies(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	companies := s.companies
	s.mu.Unlock()
	if companies == nil {
		companies = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (s *Server) wasteSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary, ok := s.summaries[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		summary = map[string]any{"categories": []any{}}
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) push(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branchId")
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.pushConns[branchID] = append(s.pushConns[branchID], conn)
	s.mu.Unlock()
	select {
	case s.subscribed <- branchID:
	default:
	}

	// hold the socket until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.removeConn(branchID, conn)
			return
		}
	}
}

func (s *Server) removeConn(branchID string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conns := s.pushConns[branchID]
	for i, c := range conns {
		if c == conn {
			s.pushConns[branchID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	_ = conn.Close()
}

func (s *Server) sessionAccount(r *http.Request) (Account, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return Account{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.sessions[c.Value]
	if !ok {
		return Account{}, false
	}
	acct, ok := s.accounts[email]
	return acct, ok
}

func userJSON(a Account) map[string]any {
	out := map[string]any{
		"_id":   a.ID,
		"email": a.Email,
		"role":  a.Role,
	}
	if a.CompanyID != "" {
		out["company"] = a.CompanyID
	}
	if a.BranchID != "" {
		out["branchAddress"] = map[string]any{"_id": a.BranchID, "name": a.BranchName}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
