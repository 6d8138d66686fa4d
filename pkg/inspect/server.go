package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/engine"
)

// Source provides the tree the server inspects. *engine.Engine
// satisfies it.
type Source interface {
	Root() core.Element
	FrameCount() uint64
}

// Event is one message on the /events stream.
type Event struct {
	Type   string `json:"type"`
	Frames uint64 `json:"frames"`
	Time   string `json:"time"`
}

// Server exposes a widget tree over HTTP for inspection.
type Server struct {
	source Source

	mu          sync.Mutex
	server      *http.Server
	listener    net.Listener
	subscribers map[chan Event]bool
}

// NewServer creates an inspection server over the given source.
func NewServer(source Source) *Server {
	return &Server{
		source:      source,
		subscribers: make(map[chan Event]bool),
	}
}

// Attach wires the server to an engine: each completed frame publishes
// a rebuild event to /events subscribers. Returns the server for
// chaining.
func Attach(eng *engine.Engine) *Server {
	s := NewServer(eng)
	eng.OnFrameEnd = s.NotifyBuild
	return s
}

// Start begins serving on the given port. Pass 0 for an ephemeral port.
// Returns the actual port. Starting an already running server returns
// its current port.
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return 0, fmt.Errorf("inspect server listen: %w", err)
	}

	r := chi.NewRouter()
	r.Get("/widget-tree", s.handleWidgetTree)
	r.Get("/health", s.handleHealth)
	r.Get("/debug", s.handleDebug)
	r.Get("/events", s.handleEvents)

	server := &http.Server{Handler: r}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Stop gracefully shuts down the server and closes event streams.
func (s *Server) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	for ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, ch)
	}
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// NotifyBuild publishes a rebuild event to all /events subscribers.
// Slow subscribers drop events rather than block the frame loop.
func (s *Server) NotifyBuild() {
	event := Event{
		Type:   "frame",
		Frames: s.source.FrameCount(),
		Time:   time.Now().Format(time.RFC3339Nano),
	}
	s.mu.Lock()
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Server) handleWidgetTree(w http.ResponseWriter, r *http.Request) {
	// Recover from panics during serialization.
	defer func() {
		if rec := recover(); rec != nil {
			http.Error(w, fmt.Sprintf("panic: %v", rec), http.StatusInternalServerError)
		}
	}()

	root := s.source.Root()
	if root == nil {
		http.Error(w, "no widget tree", http.StatusServiceUnavailable)
		return
	}
	tree := serializeTree(root, 0)

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	root := s.source.Root()
	var info struct {
		HasRoot  bool   `json:"hasRoot"`
		RootType string `json:"rootType,omitempty"`
		Frames   uint64 `json:"frames"`
	}
	info.HasRoot = root != nil
	if root != nil {
		info.RootType = reflect.TypeOf(root).String()
	}
	info.Frames = s.source.FrameCount()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

// handleEvents upgrades to WebSocket and streams rebuild events until
// the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		return
	}
	defer conn.CloseNow()

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	ctx := r.Context()
	for event := range ch {
		if err := wsjson.Write(ctx, conn, event); err != nil {
			return
		}
	}
	conn.Close(websocket.StatusNormalClosure, "server stopped")
}

func (s *Server) subscribe() chan Event {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subscribers[ch] = true
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan Event) {
	s.mu.Lock()
	if s.subscribers[ch] {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()
}
