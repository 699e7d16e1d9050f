package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	appchat "github.com/bryanwahyu/health-agent/internal/application/chat"
	"github.com/bryanwahyu/health-agent/internal/domain/health"
	"github.com/bryanwahyu/health-agent/internal/middleware"
)

const (
	detailLoadFailed      = "Failed to load health data"
	detailMessageRequired = "Message is required"
)

// badRequest is an input error whose message is safe to return.
type badRequest struct{ detail string }

func (e badRequest) Error() string { return e.detail }

type Router struct {
	chatSvc *appchat.Service
	source  health.Source
	log     *log.Logger
	newID   func() string
}

// Options carries the optional cross-cutting pieces of the router.
type Options struct {
	Logger   *log.Logger
	Metrics  *middleware.Metrics
	Limiter  *middleware.RateLimiter
	Checkers map[string]middleware.HealthChecker
}

func NewRouter(chatSvc *appchat.Service, source health.Source, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	r := &Router{chatSvc: chatSvc, source: source, log: logger, newID: uuid.NewString}

	mux := chi.NewRouter()
	mux.Use(chimw.RealIP)
	mux.Use(middleware.LoggingMiddleware(logger))
	if opts.Metrics != nil {
		mux.Use(opts.Metrics.MetricsMiddleware)
	}
	// Recoverer must stay inside logging and metrics to record recovered 500s.
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Health AI Agent API is running"})
	})
	if opts.Metrics != nil {
		mux.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/health", middleware.LivenessHandler)
		rt.Get("/health/ready", middleware.ReadinessHandler(opts.Checkers))

		rt.Get("/user/profile", r.wrap(r.section(health.SectionUser)))
		rt.Get("/health/blood-tests", r.wrap(r.section(health.SectionBloodTests)))
		rt.Get("/health/vitals", r.wrap(r.section(health.SectionVitals)))
		rt.Get("/health/medical-history", r.wrap(r.section(health.SectionMedicalHistory)))
		rt.Get("/health/metrics", r.wrap(r.section(health.SectionHealthMetrics)))

		rt.Group(func(chat chi.Router) {
			if opts.Limiter != nil {
				chat.Use(opts.Limiter.Middleware)
			}
			chat.Post("/chat", r.wrap(r.handleChat))
			chat.Get("/chat/sessions/{id}", r.wrap(r.handleHistory))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var br badRequest
		switch {
		case errors.As(err, &br):
			writeDetail(w, http.StatusBadRequest, br.detail)
		case errors.Is(err, appchat.ErrEmptyMessage):
			writeDetail(w, http.StatusBadRequest, detailMessageRequired)
		case errors.Is(err, health.ErrDatasetUnavailable),
			errors.Is(err, health.ErrMalformedDataset),
			errors.Is(err, health.ErrSectionMissing):
			r.log.Error("health data load failed", "path", req.URL.Path, "err", err)
			writeDetail(w, http.StatusInternalServerError, detailLoadFailed)
		default:
			r.log.Error("request failed", "path", req.URL.Path, "err", err)
			writeDetail(w, http.StatusInternalServerError, err.Error())
		}
	}
}

// section serves one top-level part of the dataset verbatim.
func (r *Router) section(name string) handlerFunc {
	return func(w http.ResponseWriter, req *http.Request) error {
		doc, err := r.source.Load(req.Context())
		if err != nil {
			return err
		}
		raw, err := doc.Section(name)
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, err = w.Write(raw)
		return err
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Intent    string `json:"intent"`
	Source    string `json:"source"`
	ChatEnded bool   `json:"chat_ended"`
}

// POST /api/chat
// Body: {"message": "...", "session_id": "..."}
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
	var body chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 64<<10)).Decode(&body); err != nil {
		return badRequest{detail: detailMessageRequired}
	}
	msg, err := middleware.ValidateMessage(body.Message)
	if err != nil {
		return badRequest{detail: err.Error()}
	}
	if msg == "" {
		return appchat.ErrEmptyMessage
	}
	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = r.newID()
	} else if err := middleware.ValidateSessionID(sessionID); err != nil {
		return badRequest{detail: err.Error()}
	}

	doc, err := r.source.Load(req.Context())
	if err != nil {
		return err
	}

	reply, err := r.chatSvc.Process(req.Context(), appchat.ProcessInput{
		Message:   msg,
		SessionID: sessionID,
		Dataset:   &doc.Dataset,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, chatResponse{
		Response:  reply.Text,
		SessionID: sessionID,
		Intent:    string(reply.Intent),
		Source:    string(reply.Source),
		ChatEnded: reply.Ended,
	})
}

type turnResponse struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// GET /api/chat/sessions/{id}
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateSessionID(id); err != nil {
		return badRequest{detail: err.Error()}
	}
	turns, err := r.chatSvc.History(req.Context(), id)
	if err != nil {
		return err
	}
	if turns == nil {
		writeDetail(w, http.StatusNotFound, "Session not found")
		return nil
	}
	out := make([]turnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, turnResponse{Role: t.Role, Content: t.Content, At: t.At})
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"session_id": id,
		"history":    out,
		"chat_ended": appchat.ChatEnded(turns),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	_ = writeJSON(w, status, map[string]string{"detail": detail})
}
