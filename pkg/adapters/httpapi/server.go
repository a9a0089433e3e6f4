// Package httpapi exposes the intake engine over a JSON HTTP API.
//
// The server is stateless: each request loads the session from the store
// under the session manager's lock, replays it into a flow controller with
// auto-advance disabled (the client owns its own pacing), applies the
// action, and saves the result.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lumora-app/intake"
	"github.com/lumora-app/intake/internal/logging"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
	"github.com/lumora-app/intake/pkg/session"
)

// Server wires the flow runtime to HTTP.
type Server struct {
	sessions *session.Manager
	profile  ports.ProfileService
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks forwards observability hooks to every flow the server
// drives (step metrics, submission metrics).
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// NewServer creates the HTTP server on top of a session manager and the
// profile persistence service.
func NewServer(sessions *session.Manager, profile ports.ProfileService, opts ...Option) *Server {
	s := &Server{
		sessions: sessions,
		profile:  profile,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Post("/answers", s.answer)
			r.Post("/back", s.back)
			r.Post("/next", s.next)
			r.Post("/submit", s.submit)
		})
	})
	return r
}

type createSessionRequest struct {
	// Answers optionally seeds the session, e.g. from a previous partial run.
	Answers map[string]any `json:"answers,omitempty"`
}

type answerRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type sessionResponse struct {
	SessionID string      `json:"session_id"`
	View      domain.View `json:"view"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	var opts []intake.Option
	opts = append(opts, intake.WithAutoAdvanceDelay(0), intake.WithProfileService(s.profile), intake.WithLifecycleHooks(s.hooks))
	if body.Answers != nil {
		opts = append(opts, intake.WithInitialAnswers(body.Answers))
	}

	flow, err := intake.New(opts...)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.NewString()
	sess := flow.Session(id)
	if err := s.sessions.Save(r.Context(), id, sess); err != nil {
		s.logger.Error("failed to create session", "err", err)
		s.writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	s.writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, View: flow.View()})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		s.writeLoadError(w, err)
		return
	}

	flow := s.flowFor(sess)
	s.writeJSON(w, http.StatusOK, sessionResponse{SessionID: id, View: flow.View()})
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	var body answerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.withFlow(w, r, func(flow *intake.Flow) (int, error) {
		if err := flow.Answer(r.Context(), domain.Field(body.Field), body.Value); err != nil {
			return http.StatusUnprocessableEntity, err
		}
		return http.StatusOK, nil
	})
}

func (s *Server) back(w http.ResponseWriter, r *http.Request) {
	s.withFlow(w, r, func(flow *intake.Flow) (int, error) {
		flow.Back()
		return http.StatusOK, nil
	})
}

func (s *Server) next(w http.ResponseWriter, r *http.Request) {
	s.withFlow(w, r, func(flow *intake.Flow) (int, error) {
		if err := flow.Next(); err != nil {
			return http.StatusUnprocessableEntity, err
		}
		return http.StatusOK, nil
	})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	err := s.sessions.WithLock(r.Context(), id, func(ctx context.Context) error {
		sess, err := s.sessions.Store().Load(ctx, id)
		if err != nil {
			return err
		}

		flow := s.flowFor(sess)
		if err := flow.Submit(ctx); err != nil {
			return err
		}

		// The flow ended; its state is discarded per the session lifecycle.
		return s.sessions.Store().Delete(ctx, id)
	})

	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "submitted"})
	case errors.Is(err, domain.ErrSessionNotFound):
		s.writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, domain.ErrStepIncomplete):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrSubmissionInFlight), errors.Is(err, domain.ErrFlowCompleted):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		var subErr *domain.SubmissionError
		if errors.As(err, &subErr) {
			s.writeError(w, http.StatusBadGateway, subErr.Error())
			return
		}
		s.logger.Error("submit failed", "session_id", id, "err", err)
		s.writeError(w, http.StatusInternalServerError, "submission failed")
	}
}

// withFlow loads the session, applies fn to its flow, persists the result,
// and renders the updated view. The whole round-trip holds the session lock.
func (s *Server) withFlow(w http.ResponseWriter, r *http.Request, fn func(*intake.Flow) (int, error)) {
	id := chi.URLParam(r, "sessionID")

	var view domain.View
	status := http.StatusOK

	err := s.sessions.WithLock(r.Context(), id, func(ctx context.Context) error {
		sess, err := s.sessions.Store().Load(ctx, id)
		if err != nil {
			return err
		}

		flow := s.flowFor(sess)
		st, err := fn(flow)
		status = st
		if err != nil {
			return err
		}

		view = flow.View()
		return s.sessions.Store().Save(ctx, id, flow.Session(id))
	})

	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.writeLoadError(w, err)
			return
		}
		if status >= 400 && status < 500 {
			s.writeError(w, status, err.Error())
			return
		}
		s.logger.Error("session update failed", "session_id", id, "err", err)
		s.writeError(w, http.StatusInternalServerError, "session update failed")
		return
	}

	s.writeJSON(w, status, sessionResponse{SessionID: id, View: view})
}

// flowFor replays a stored session into a controller with auto-advance
// disabled; over HTTP the client drives the pacing.
func (s *Server) flowFor(sess *domain.Session) *intake.Flow {
	flow, _ := intake.New(
		intake.WithAutoAdvanceDelay(0),
		intake.WithProfileService(s.profile),
		intake.WithLifecycleHooks(s.hooks),
		intake.WithLogger(s.logger),
	)
	flow.Restore(sess)
	return flow
}

func (s *Server) writeLoadError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		s.writeError(w, http.StatusNotFound, "session not found")
		return
	}
	s.logger.Error("failed to load session", "err", err)
	s.writeError(w, http.StatusInternalServerError, "failed to load session")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
