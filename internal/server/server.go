// Package server exposes the simulation over HTTP: one game session, a JSON
// action endpoint and read-only views of state, stats and telemetry.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"teashop/internal/httpmw"
	"teashop/internal/sim"
	"teashop/internal/telemetry"
)

// Session is the single running game. The engine is pure, so the only shared
// mutable thing is the current state snapshot behind the mutex.
type Session struct {
	mu    sync.Mutex
	state sim.GameState
}

func NewSession(st sim.GameState) *Session {
	return &Session{state: st}
}

// State returns the current snapshot. The state is value-semantic; callers
// can read it freely.
func (s *Session) State() sim.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply runs fn under the session lock and stores the state it returns.
func (s *Session) Apply(fn func(sim.GameState) (sim.GameState, bool, error)) (sim.GameState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed, err := fn(s.state)
	if err == nil && changed {
		s.state = next
	}
	return next, changed, err
}

type Server struct {
	log       *slog.Logger
	engine    *sim.Engine
	session   *Session
	telemetry telemetry.Repository
	mux       *chi.Mux
}

func New(engine *sim.Engine, session *Session, repo telemetry.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:       logger,
		engine:    engine,
		session:   session,
		telemetry: repo,
		mux:       chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RealIP)
	r.Use(httpmw.WithRequestID)
	r.Use(httpmw.WithRecover(s.log))
	r.Use(httpmw.WithAccessLog(s.log))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/actions", s.handleAction)
		r.Get("/state", s.handleState)
		r.Get("/stats", s.handleStats)
		r.Get("/result", s.handleResult)
		r.Get("/can-open", s.handleCanOpen)
		r.Get("/health-alerts", s.handleHealthAlerts)
		r.Get("/event", s.handleEvent)
		r.Get("/telemetry", s.handleTelemetry)
	})
}

type actionResponse struct {
	Changed bool          `json:"changed"`
	State   sim.GameState `json:"state"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var action sim.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		writeError(w, http.StatusBadRequest, "invalid action body: "+err.Error())
		return
	}
	if action.Type == "" {
		writeError(w, http.StatusBadRequest, "missing action type")
		return
	}

	next, changed, err := s.session.Apply(func(st sim.GameState) (sim.GameState, bool, error) {
		return s.engine.Dispatch(st, action)
	})
	switch {
	case errors.Is(err, sim.ErrUnknownAction), errors.Is(err, sim.ErrInvalidOption):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Changed: changed, State: next})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.State())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ComputeCurrentStats(s.session.State()))
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ComputeGameResult(s.session.State()))
}

func (s *Server) handleCanOpen(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ComputeCanOpen(s.session.State()))
}

func (s *Server) handleHealthAlerts(w http.ResponseWriter, _ *http.Request) {
	alerts := s.engine.ComputeHealthAlerts(s.session.State())
	writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

type eventView struct {
	Pending     bool     `json:"pending"`
	EventID     string   `json:"event_id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

func (s *Server) handleEvent(w http.ResponseWriter, _ *http.Request) {
	st := s.session.State()
	if st.PendingEvent == nil {
		writeJSON(w, http.StatusOK, eventView{})
		return
	}
	view := eventView{Pending: true, EventID: st.PendingEvent.EventID}
	for _, def := range s.engine.Events {
		if def.ID != st.PendingEvent.EventID {
			continue
		}
		view.Title = def.Title
		view.Description = sim.ResolveDescription(def, st)
		if def.Notification {
			view.Options = []string{sim.NotificationOption}
		} else {
			for _, opt := range def.Options {
				view.Options = append(view.Options, opt.ID)
			}
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	since := time.Time{}
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid since timestamp: "+err.Error())
			return
		}
		since = t
	}
	events, err := s.telemetry.GetEvents(since, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":  stats,
		"events": events,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
