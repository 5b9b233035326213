package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/logging"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/metrics"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

const shutdownTimeout = 3 * time.Second

// Options configure a Server.
type Options struct {
	Metrics *metrics.Collector // nil disables /metrics
	Logger  *slog.Logger
	// Direction resolves gestures that arrive without one. It should follow
	// the presenter's active language; nil means LTR.
	Direction func() gesture.Direction
}

// Server exposes a navigation machine over HTTP and WebSocket.
type Server struct {
	machine *navigation.Machine
	metrics   *metrics.Collector
	logger    *slog.Logger
	direction func() gesture.Direction
	hub       *Hub
	handler http.Handler
	cancel  func()
}

// New builds the router and subscribes the WebSocket hub to the machine.
func New(m *navigation.Machine, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	direction := opts.Direction
	if direction == nil {
		direction = func() gesture.Direction { return gesture.LTR }
	}
	s := &Server{
		machine:   m,
		metrics:   opts.Metrics,
		logger:    logger,
		direction: direction,
		hub:       NewHub(logger),
	}
	s.cancel = m.Observe(func(t navigation.Transition) {
		if t.Changed {
			s.hub.Broadcast(t.After, t.Seq)
		}
	})
	s.handler = enableCORS(s.routes())
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close detaches from the machine and drops WebSocket clients.
func (s *Server) Close() {
	s.cancel()
	s.hub.Close()
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("remote api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve remote api: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown remote api: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.getState)
		r.Get("/slides", s.getSlides)
		r.Get("/sections", s.getSections)

		r.Post("/next", s.mutate(navigation.OpNext, ""))
		r.Post("/prev", s.mutate(navigation.OpPrev, ""))
		r.Post("/slides/{id}", s.mutate(navigation.OpGoToSlide, "id"))
		r.Post("/sections/{id}", s.mutate(navigation.OpGoToSection, "id"))
		r.Post("/presentation-mode", s.mutate(navigation.OpTogglePresentation, ""))
		r.Post("/pause", s.mutate(navigation.OpTogglePause, ""))
		r.Post("/gesture", s.postGesture)
	})

	r.Get("/ws", s.hub.Handler(s.machine.Snapshot))
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
	})

	return r
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.machine.View(), s.logger)
}

func (s *Server) getSlides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.machine.Registry().Slides(), s.logger)
}

func (s *Server) getSections(w http.ResponseWriter, r *http.Request) {
	reg := s.machine.Registry()
	sections := reg.Sections()
	entries := make([]SectionEntry, 0, len(sections))
	for _, sec := range sections {
		slides := reg.SlidesIn(sec.ID)
		ids := make([]string, 0, len(slides))
		for _, sl := range slides {
			ids = append(ids, sl.ID)
		}
		entries = append(entries, SectionEntry{Section: sec, Slides: ids})
	}
	writeJSON(w, http.StatusOK, entries, s.logger)
}

// mutate answers with the view the operation committed. param names the URL
// parameter carrying the target id, if any.
func (s *Server) mutate(op navigation.Op, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target string
		if param != "" {
			target = chi.URLParam(r, param)
		}
		t := s.machine.Step(op, target)
		writeJSON(w, http.StatusOK, MutationResponse{Changed: t.Changed, State: t.After}, s.logger)
	}
}

func (s *Server) postGesture(w http.ResponseWriter, r *http.Request) {
	var body GestureRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("gesture: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"}, s.logger)
		return
	}
	g, ok := gesture.ParseGesture(body.Gesture)
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown gesture %q", body.Gesture)}, s.logger)
		return
	}

	dir := s.direction()
	if strings.TrimSpace(body.Direction) != "" {
		dir = gesture.ParseDirection(body.Direction)
	}

	op := gesture.Resolve(g, dir)
	var t navigation.Transition
	switch op {
	case gesture.OpNext:
		t = s.machine.Step(navigation.OpNext, "")
	case gesture.OpPrev:
		t = s.machine.Step(navigation.OpPrev, "")
	default:
		t.After, _ = s.machine.Snapshot()
	}
	writeJSON(w, http.StatusOK, GestureResponse{
		MutationResponse: MutationResponse{Changed: t.Changed, State: t.After},
		Operation:        op.String(),
	}, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
