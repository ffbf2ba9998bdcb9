package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/discovery"
	"github.com/zakiyahfaroo/HuskySync/internal/geo"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/handlers/dto"
	"github.com/zakiyahfaroo/HuskySync/internal/utils"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

// maxComparisonSize caps the comparison set in the UI policy.
const maxComparisonSize = 3

type EventHandler struct {
	repository EventRepository
	announcer  Announcer
	log        *slog.Logger
}

func NewEventHandler(log *slog.Logger, repo EventRepository, announcer Announcer) *EventHandler {
	return &EventHandler{
		repository: repo,
		announcer:  announcer,
		log:        log,
	}
}

// GetEvents handles GET /api/v1/events?date=...&tags=a,b&lat=...&lng=...
// Filters compose by AND; an empty tag list passes everything. Distances
// are measured from the reported viewer position, falling back to Red
// Square.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetEvents()"
	log := h.log.With(slog.String("op", op))

	criteria, err := parseCriteria(r)
	if err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}
	viewer := geo.ResolveViewer(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))

	events, err := h.repository.ReadAllEvents(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to read events: %w", err), w, http.StatusInternalServerError)
		return
	}

	visible := discovery.Apply(events, criteria)
	response := dto.MapDomainToEventResponseList(visible, &viewer)

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// CreateEvent handles POST /api/v1/events. Only required fields and
// formats are checked; overlapping or degenerate time ranges are
// accepted, conflicts stay advisory.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.CreateEvent()"
	log := h.log.With(slog.String("op", op))

	var req dto.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}

	event, err := dto.MapCreateRequestToDomain(req)
	if err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}

	created, err := h.repository.CreateEvent(r.Context(), event)
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to create event: %w", err), w, http.StatusInternalServerError)
		return
	}

	log.Info("event created", slog.String("eventID", created.ID.String()))

	if h.announcer != nil {
		if err := h.announcer.AnnounceEvent(created); err != nil {
			log.Error("failed to announce event", sl.Err(err))
		}
	}

	if err := utils.Json(w, http.StatusCreated, dto.MapDomainToEventResponse(created, nil)); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// GetEvent handles GET /api/v1/events/{eventId}.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetEvent()"
	log := h.log.With(slog.String("op", op))

	eventID := chi.URLParam(r, "eventId")
	parsedID, err := uuid.Parse(eventID)
	if err != nil {
		h.respondError(log, fmt.Errorf("invalid eventId: %w", err), w, http.StatusBadRequest)
		return
	}

	event, err := h.repository.FindEventByID(r.Context(), parsedID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			h.respondError(log, err, w, http.StatusNotFound)
			return
		}
		h.respondError(log, fmt.Errorf("failed to get event: %w", err), w, http.StatusInternalServerError)
		return
	}

	viewer := geo.ResolveViewer(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))

	if err := utils.Json(w, http.StatusOK, dto.MapDomainToEventResponse(event, &viewer)); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// CompareEvents handles GET /api/v1/events/compare?ids=a,b,c. At most 3
// ids are accepted; a larger selection is rejected and nothing changes.
// Events come back in collection order, not id order.
func (h *EventHandler) CompareEvents(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.CompareEvents()"
	log := h.log.With(slog.String("op", op))

	rawIDs := splitParam(r.URL.Query().Get("ids"))
	if len(rawIDs) == 0 {
		h.respondError(log, errors.New("ids query parameter is required"), w, http.StatusBadRequest)
		return
	}
	if len(rawIDs) > maxComparisonSize {
		h.respondError(log, errors.New("you can compare up to 3 events at a time"), w, http.StatusBadRequest)
		return
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.respondError(log, fmt.Errorf("invalid event id %q: %w", raw, err), w, http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	events, err := h.repository.ReadAllEvents(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to read events: %w", err), w, http.StatusInternalServerError)
		return
	}

	selected := discovery.SelectForComparison(ids, events)
	result := discovery.Compare(selected)
	viewer := geo.ResolveViewer(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))

	response := dto.CompareResponse{
		Events:       dto.MapDomainToEventResponseList(result.Events, &viewer),
		CommonTags:   make([]string, 0, len(result.CommonTags)),
		HasTimeClash: result.HasTimeClash,
		TagMatrix:    dto.BuildTagMatrix(result.Events),
	}
	for _, t := range result.CommonTags {
		response.CommonTags = append(response.CommonTags, t.String())
	}

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// GetMarkers handles GET /api/v1/events/markers, the data feed for the
// map surface: one marker per visible event plus the viewer position.
func (h *EventHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetMarkers()"
	log := h.log.With(slog.String("op", op))

	criteria, err := parseCriteria(r)
	if err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}
	viewer := geo.ResolveViewer(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))

	events, err := h.repository.ReadAllEvents(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to read events: %w", err), w, http.StatusInternalServerError)
		return
	}

	response := dto.MapDomainToMarkers(discovery.Apply(events, criteria), viewer)

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *EventHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}

func parseCriteria(r *http.Request) (discovery.Criteria, error) {
	tags, err := dto.ParseTags(splitParam(r.URL.Query().Get("tags")))
	if err != nil {
		return discovery.Criteria{}, err
	}
	return discovery.Criteria{
		Date: r.URL.Query().Get("date"),
		Tags: tags,
	}, nil
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
