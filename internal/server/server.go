// Package server exposes generated levels over HTTP as JSON.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// LevelSummary describes a preset in the level listing.
type LevelSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	NumRooms    int    `json:"numRooms"`
	Corridors   string `json:"corridors"`
}

// LevelResponse is a fully generated level.
type LevelResponse struct {
	Name           string       `json:"name"`
	Seed           int64        `json:"seed"`
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Rows           []string     `json:"rows"`
	Rooms          []world.Room `json:"rooms"`
	Start          world.Point  `json:"start"`
	ReachableRooms int          `json:"reachableRooms"`
}

// Handler serves level presets and generated levels.
type Handler struct {
	registry *gamedata.LevelRegistry
	now      func() time.Time
}

// NewHandler creates a handler backed by the given presets.
func NewHandler(registry *gamedata.LevelRegistry) *Handler {
	return &Handler{registry: registry, now: time.Now}
}

// Routes configures all routes and returns the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/levels", h.ListLevels)
		r.Get("/levels/{name}", h.GetLevel)
	})

	return r
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListLevels handles GET /api/levels.
func (h *Handler) ListLevels(w http.ResponseWriter, r *http.Request) {
	levels := h.registry.All()
	summaries := make([]LevelSummary, 0, len(levels))
	for _, l := range levels {
		summaries = append(summaries, LevelSummary{
			Name:        l.Name,
			Description: l.Description,
			Width:       l.Width,
			Height:      l.Height,
			NumRooms:    l.NumRooms,
			Corridors:   l.Corridors,
		})
	}
	respondJSON(w, http.StatusOK, summaries)
}

// GetLevel handles GET /api/levels/{name}?seed=N. Without a seed the
// current time is used and echoed back so the level can be requested again.
func (h *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.Tracer("server").Start(r.Context(), "server.get_level")
	defer span.End()

	level, err := h.registry.GetByName(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	seed := h.now().UnixNano()
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
	}

	params, err := level.Params()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	builder, err := world.NewMapBuilder(params, world.NewRand(seed))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := builder.Build(ctx); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, world.ErrRoomQuota) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, err.Error())
		return
	}

	span.SetAttributes(
		attribute.String("level.name", level.Name),
		attribute.Int64("level.seed", seed),
	)

	respondJSON(w, http.StatusOK, LevelResponse{
		Name:           level.Name,
		Seed:           seed,
		Width:          builder.Map.Width,
		Height:         builder.Map.Height,
		Rows:           builder.Map.Rows(),
		Rooms:          builder.Rooms,
		Start:          builder.StartingPoint,
		ReachableRooms: builder.ReachableRooms(),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
