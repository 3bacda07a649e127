package monitor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/softpedal/lanebot/internal/bot"
	"github.com/softpedal/lanebot/internal/trace"
)

// Source is the loop-side view the monitor observes. The frame path never
// blocks on the monitor: events arrive over a buffered channel and state
// through snapshots.
type Source interface {
	Events() <-chan bot.Event
	Status() bot.Status
}

// Message types.
type SnapshotMessage struct {
	Type   string     `json:"type"`
	Status bot.Status `json:"status"`
}

type ActionsMessage struct {
	Type    string      `json:"type"`
	Actions []bot.Event `json:"actions"`
}

// Server broadcasts lane state and key actions to connected clients. Purely
// observational; it has no way to influence the loop.
type Server struct {
	src     Source
	history *History
	batcher *Batcher

	mu     sync.RWMutex
	conns  map[*websocket.Conn]struct{}
	stopCh chan struct{}
}

// New creates a monitor server and starts its collector goroutines.
func New(src Source) *Server {
	s := &Server{
		src:     src,
		history: NewHistory(DefaultHistorySize),
		conns:   make(map[*websocket.Conn]struct{}),
		stopCh:  make(chan struct{}),
	}
	s.batcher = NewBatcher(DefaultBatchSize, DefaultFlushDelay, s.broadcastActions)

	go s.collectEvents()
	go s.broadcastSnapshots()

	return s
}

// Stop shuts down the collectors and flushes pending broadcasts.
func (s *Server) Stop() {
	close(s.stopCh)
	s.batcher.Stop()
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /state", s.handleState)

	return corsMiddleware(trace.Middleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) collectEvents() {
	for {
		select {
		case <-s.stopCh:
			return
		case evt := <-s.src.Events():
			s.history.Add(evt)
			s.batcher.Add(evt)
		}
	}
}

func (s *Server) broadcastSnapshots() {
	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.broadcast(SnapshotMessage{Type: "snapshot", Status: s.src.Status()})
		}
	}
}

func (s *Server) broadcastActions(actions []bot.Event) {
	s.broadcast(ActionsMessage{Type: "actions", Actions: actions})
}

func (s *Server) broadcast(msg any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for conn := range s.conns {
		go func(c *websocket.Conn) {
			_ = wsjson.Write(context.Background(), c, msg)
		}(conn)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("websocket accept error", "error", err)
		return
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	log := trace.Logger(r.Context())
	log.Info("monitor client connected", "remote", r.RemoteAddr)

	// Immediate snapshot so new clients don't wait a tick
	_ = wsjson.Write(r.Context(), conn, SnapshotMessage{Type: "snapshot", Status: s.src.Status()})

	// Clients only listen; the read loop just detects disconnects.
	for {
		var msg json.RawMessage
		if err := wsjson.Read(r.Context(), conn, &msg); err != nil {
			log.Debug("monitor client gone", "error", err)
			return
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(struct {
		Status bot.Status  `json:"status"`
		Recent []bot.Event `json:"recent"`
	}{
		Status: s.src.Status(),
		Recent: s.history.Recent(time.Minute),
	})
}
