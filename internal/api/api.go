package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"device-telemetry-backend/internal/db"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// repository is the slice of the datastore the API reads and writes. The
// handlers are pass-through: validate the request, forward it, shape the
// response.
type repository interface {
	GetDeviceWithHealth(ctx context.Context, deviceID string) (db.DeviceWithHealth, error)
	ListEvents(ctx context.Context, filter db.EventFilter) ([]db.Event, error)
	InsertEvent(ctx context.Context, event db.Event) (db.Event, error)
	UpsertDeviceSettings(ctx context.Context, deviceID string, settings map[string]any) error
}

type API struct {
	db repository
}

type Config struct {
	DB repository
}

func New(cfg Config) *API {
	return &API{db: cfg.DB}
}

func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/devices/{device_id}", a.GetDevice)
	r.Patch("/devices/{device_id}/settings", a.PatchDeviceSettings)
	r.Get("/events", a.ListEvents)
	r.Post("/events", a.CreateEvent)
	return r
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	if _, err := uuid.Parse(deviceID); err != nil {
		writeError(w, http.StatusBadRequest, "device id must be a uuid")
		return
	}

	device, err := a.db.GetDeviceWithHealth(r.Context(), deviceID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "device not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (a *API) ListEvents(w http.ResponseWriter, r *http.Request) {
	var filter db.EventFilter

	if deviceID := r.URL.Query().Get("device_id"); deviceID != "" {
		if _, err := uuid.Parse(deviceID); err != nil {
			writeError(w, http.StatusBadRequest, "device_id must be a uuid")
			return
		}
		filter.DeviceID = deviceID
	}
	filter.EventType = r.URL.Query().Get("type")
	if since := r.URL.Query().Get("since"); since != "" {
		ts, err := time.Parse(time.RFC3339, since)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be an RFC3339 timestamp")
			return
		}
		filter.Since = &ts
	}
	filter.Limit = 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 500 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		filter.Limit = limit
	}

	events, err := a.db.ListEvents(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (a *API) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := uuid.Parse(req.OwnerID); err != nil {
		writeError(w, http.StatusBadRequest, "owner_id must be a uuid")
		return
	}
	if _, err := uuid.Parse(req.DeviceID); err != nil {
		writeError(w, http.StatusBadRequest, "device_id must be a uuid")
		return
	}
	if req.EventType == "" {
		writeError(w, http.StatusBadRequest, "event_type is required")
		return
	}
	occurredAt := time.Now().UTC()
	if req.OccurredAt != "" {
		ts, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, "occurred_at must be an RFC3339 timestamp")
			return
		}
		occurredAt = ts
	}
	payload := req.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	stored, err := a.db.InsertEvent(r.Context(), db.Event{
		OwnerID:    req.OwnerID,
		DeviceID:   req.DeviceID,
		OccurredAt: occurredAt,
		EventType:  req.EventType,
		Payload:    payload,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (a *API) PatchDeviceSettings(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	if _, err := uuid.Parse(deviceID); err != nil {
		writeError(w, http.StatusBadRequest, "device id must be a uuid")
		return
	}

	var req PatchSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Settings == nil {
		writeError(w, http.StatusBadRequest, "settings object is required")
		return
	}

	if err := a.db.UpsertDeviceSettings(r.Context(), deviceID, req.Settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, OKResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
