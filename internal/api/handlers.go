package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vedic-backend/internal/config"
	"vedic-backend/internal/models"
	"vedic-backend/internal/places"
	"vedic-backend/internal/service"
)

// maxBodyBytes bounds a chart request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	Charts        *service.ChartService
	Places        *places.Service
	Offsets       places.OffsetResolver
	Defaults      config.Defaults
	CalendarYears int

	log *zap.Logger
	now func() time.Time
}

func NewHandler(charts *service.ChartService, placeSvc *places.Service, offsets places.OffsetResolver, cfg config.Config, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if offsets == nil {
		offsets = places.LongitudeResolver{}
	}
	return &Handler{
		Charts:        charts,
		Places:        placeSvc,
		Offsets:       offsets,
		Defaults:      cfg.Defaults,
		CalendarYears: cfg.CalendarYears,
		log:           log,
		now:           time.Now,
	}
}

// WithClock fixes the transit instant, for tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", h.HealthCheck)
	r.Post("/api/chart", h.Chart)
	r.Get("/api/places", h.SearchPlaces)
	r.Get("/api/tz", h.TimezoneOffset)
}

// ============================================================================
// Health
// ============================================================================

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, models.Envelope{OK: true, RequestID: GetRequestID(r.Context())}, http.StatusOK)
}

// ============================================================================
// Chart
// ============================================================================

// Chart computes a full chart. A place is geocoded when lat or lon is missing
// and the offset is resolved when tz_offset is missing.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var req models.ChartRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		BadRequest(w, r, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}

	birth, err := h.birthContext(r, req)
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := h.Charts.Compute(birth, service.ChartOptions{
		Now:              h.now(),
		CalendarFromYear: req.CalendarFromYear,
		CalendarYears:    h.CalendarYears,
	})
	if err != nil {
		h.log.Error("chart computation failed",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err))
		WriteError(w, r, err)
		return
	}
	WriteData(w, r, res)
}

func (h *Handler) birthContext(r *http.Request, req models.ChartRequest) (models.BirthContext, error) {
	local, err := models.ParseLocalDateTime(req.DateTime)
	if err != nil {
		return models.BirthContext{}, err
	}

	lat, lon := req.Lat, req.Lon
	place := strings.TrimSpace(req.Place)
	if place != "" && (!lat.Set || !lon.Set) {
		found, ok, err := h.Places.First(r.Context(), place)
		if err != nil {
			return models.BirthContext{}, err
		}
		if !ok {
			return models.BirthContext{}, &Error{Code: PlaceNotFound, Message: "Place not found"}
		}
		lat, lon = models.Float(found.Lat), models.Float(found.Lon)
		h.log.Debug("geocoded place", zap.String("place", place), zap.String("match", found.Name))
	}
	if !lat.Set || !lon.Set {
		return models.BirthContext{}, &Error{Code: InvalidInput, Message: "lat and lon are required when no place is given"}
	}

	offset := req.TZOffset
	if !offset.Set {
		v, err := h.Offsets.Offset(r.Context(), local, lat.Value, lon.Value)
		if err != nil {
			return models.BirthContext{}, &Error{Code: InvalidInput, Message: err.Error(), Err: err}
		}
		offset = models.Float(v)
	}

	return models.BirthContext{
		LocalTime:   local,
		Latitude:    lat.Value,
		Longitude:   lon.Value,
		UTCOffset:   offset.Value,
		Ayanamsa:    orDefault(req.Ayanamsa, h.Defaults.Ayanamsa),
		HouseSystem: orDefault(req.HouseSystem, h.Defaults.HouseSystem),
		NodeType:    orDefault(req.NodeType, h.Defaults.NodeType),
	}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return strings.ToLower(v)
	}
	return def
}

// ============================================================================
// Places & timezone
// ============================================================================

// SearchPlaces never fails: lookup errors degrade to an empty list.
func (h *Handler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	found, err := h.Places.Lookup(r.Context(), q)
	if err != nil {
		h.log.Warn("place lookup failed", zap.String("query", q), zap.Error(err))
		found = []places.Place{}
	}
	WriteData(w, r, found)
}

func (h *Handler) TimezoneOffset(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	local, err := models.ParseLocalDateTime(query.Get("datetime"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		BadRequest(w, r, fmt.Sprintf("invalid lat %q", query.Get("lat")))
		return
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		BadRequest(w, r, fmt.Sprintf("invalid lon %q", query.Get("lon")))
		return
	}

	offset, err := h.Offsets.Offset(r.Context(), local, lat, lon)
	if err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	WriteData(w, r, models.TZResponse{TZOffset: offset})
}
