// Package api serves the tracker over a JSON HTTP API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/bactrack/internal/common/log"
	"github.com/KirkDiggler/bactrack/internal/metrics"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Config holds configuration for the HTTP API
type Config struct {
	// Service handles every request
	Service tracker.Service

	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int
}

// Handler serves the tracker API
type Handler struct {
	service   tracker.Service
	rateLimit int
	logger    zerolog.Logger
}

// New creates a new HTTP API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Service == nil {
		return nil, errors.New("service cannot be nil")
	}

	return &Handler{
		service:   cfg.Service,
		rateLimit: cfg.RateLimit,
		logger:    log.WithComponent("api"),
	}, nil
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if h.rateLimit > 0 {
			r.Use(rateLimit(h.rateLimit, time.Minute))
		}

		r.Post("/profiles", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.Get("/drinks", h.handleListDrinks)

		r.Route("/profiles/{username}", func(r chi.Router) {
			r.Patch("/", h.handleUpdateProfile)
			r.Post("/sessions", h.handleStartSession)
			r.Get("/session", h.handleGetSession)
			r.Post("/readings", h.handleRecordReading)
			r.Post("/drinks", h.handleLogDrink)
			r.Get("/recommendations", h.handleRecommendations)
			r.Get("/drive", h.handleDriveStatus)
		})
	})

	return r
}

func rateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			Error(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}

// instrument logs and counts every request by its route pattern
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordHTTPRequest(route, strconv.Itoa(ww.Status()))

		h.logger.Debug().
			Str("method", r.Method).
			Str("route", route).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type registerRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Sex         string  `json:"sex"`
	WeightKg    float64 `json:"weight_kg"`
	DateOfBirth string  `json:"date_of_birth"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}

	input := &tracker.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Sex:      req.Sex,
		WeightKg: req.WeightKg,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			Error(w, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
			return
		}
		input.DateOfBirth = &dob
	}

	output, err := h.service.Register(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, newProfileView(output.Profile))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	output, err := h.service.Login(r.Context(), &tracker.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, newProfileView(output.Profile))
}

type updateProfileRequest struct {
	Sex      string  `json:"sex"`
	WeightKg float64 `json:"weight_kg"`
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	output, err := h.service.UpdateProfile(r.Context(), &tracker.UpdateProfileInput{
		Username: chi.URLParam(r, "username"),
		Sex:      req.Sex,
		WeightKg: req.WeightKg,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, newProfileView(output.Profile))
}

type startSessionRequest struct {
	MaxBAC    float64    `json:"max_bac"`
	DriveTime *time.Time `json:"drive_time"`
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if !decode(w, r, &req) {
		return
	}

	output, err := h.service.StartSession(r.Context(), &tracker.StartSessionInput{
		Username:  chi.URLParam(r, "username"),
		MaxBAC:    req.MaxBAC,
		DriveTime: req.DriveTime,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, newSessionView(output.Session))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetCurrentSession(r.Context(), &tracker.GetCurrentSessionInput{
		Username: chi.URLParam(r, "username"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, newSessionView(output.Session))
}

type recordReadingRequest struct {
	BAC    *float64 `json:"bac"`
	Source string   `json:"source"`
}

func (h *Handler) handleRecordReading(w http.ResponseWriter, r *http.Request) {
	var req recordReadingRequest
	if !decode(w, r, &req) {
		return
	}
	if req.BAC == nil {
		Error(w, http.StatusBadRequest, "bac is required")
		return
	}

	output, err := h.service.RecordReading(r.Context(), &tracker.RecordReadingInput{
		Username: chi.URLParam(r, "username"),
		BAC:      *req.BAC,
		Source:   models.ReadingSource(req.Source),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rd := output.Reading
	JSON(w, http.StatusCreated, readingView{
		ID:        rd.ID,
		SessionID: rd.SessionID,
		BAC:       rd.BAC,
		Source:    string(rd.Source),
		TakenAt:   rd.TakenAt,
	})
}

type logDrinkRequest struct {
	Drink string `json:"drink"`
}

func (h *Handler) handleLogDrink(w http.ResponseWriter, r *http.Request) {
	var req logDrinkRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Drink) == "" {
		Error(w, http.StatusBadRequest, "drink is required")
		return
	}

	output, err := h.service.LogDrink(r.Context(), &tracker.LogDrinkInput{
		Username:  chi.URLParam(r, "username"),
		DrinkName: req.Drink,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	entry := output.Entry
	JSON(w, http.StatusCreated, drinkLogView{
		ID:             entry.ID,
		SessionID:      entry.SessionID,
		DrinkName:      entry.DrinkName,
		StandardDrinks: entry.StandardDrinks,
		ConsumedAt:     entry.ConsumedAt,
		EstimatedBAC:   output.EstimatedBAC,
	})
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	current, ok := bacParam(w, r)
	if !ok {
		return
	}

	output, err := h.service.GetRecommendations(r.Context(), &tracker.GetRecommendationsInput{
		Username: chi.URLParam(r, "username"),
		BAC:      current,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	drinks := output.Drinks
	if drinks == nil {
		drinks = []models.Drink{}
	}

	JSON(w, http.StatusOK, recommendationView{
		SessionID:  output.Session.ID,
		CurrentBAC: output.CurrentBAC,
		BACSource:  string(output.BACSource),
		Path:       string(output.Path),
		Qualified:  output.Qualified,
		Drinks:     drinks,
	})
}

func (h *Handler) handleDriveStatus(w http.ResponseWriter, r *http.Request) {
	current, ok := bacParam(w, r)
	if !ok {
		return
	}

	output, err := h.service.GetDriveStatus(r.Context(), &tracker.GetDriveStatusInput{
		Username: chi.URLParam(r, "username"),
		BAC:      current,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, driveStatusView{
		CurrentBAC:        output.CurrentBAC,
		BACSource:         string(output.BACSource),
		SecondsUntilDrive: output.TimeUntilCanDrive.Seconds(),
		CanDriveAt:        output.CanDriveAt,
		DriveTime:         output.DriveTime,
		OnTrack:           output.OnTrack,
	})
}

func (h *Handler) handleListDrinks(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListDrinks(r.Context(), &tracker.ListDrinksInput{})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, output.Drinks)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// bacParam reads the optional ?bac= query parameter
func bacParam(w http.ResponseWriter, r *http.Request) (*float64, bool) {
	raw := r.URL.Query().Get("bac")
	if raw == "" {
		return nil, true
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		Error(w, http.StatusBadRequest, "bac must be a number")
		return nil, false
	}
	return &value, true
}
