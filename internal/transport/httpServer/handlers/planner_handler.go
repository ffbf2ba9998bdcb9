package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/zakiyahfaroo/HuskySync/internal/assistant"
	"github.com/zakiyahfaroo/HuskySync/internal/planner"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/handlers/dto"
	"github.com/zakiyahfaroo/HuskySync/internal/utils"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

type PlannerHandler struct {
	planner EventPlanner
	log     *slog.Logger
}

func NewPlannerHandler(log *slog.Logger, p EventPlanner) *PlannerHandler {
	return &PlannerHandler{
		planner: p,
		log:     log,
	}
}

// GetPlanner handles GET /api/v1/planner: the current draft, the latest
// generated texts and the conflict advisories against the live
// collection.
func (h *PlannerHandler) GetPlanner(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.GetPlanner()"
	log := h.log.With(slog.String("op", op))

	h.respondState(r, log, w, http.StatusOK)
}

// UpdateDraft handles PUT /api/v1/planner/draft. Partial drafts are
// fine; only format errors are rejected.
func (h *PlannerHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.UpdateDraft()"
	log := h.log.With(slog.String("op", op))

	var req dto.DraftDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}

	draft, err := dto.MapDraftToDomain(req)
	if err != nil {
		h.respondError(log, err, w, http.StatusBadRequest)
		return
	}

	h.planner.UpdateDraft(draft)
	h.respondState(r, log, w, http.StatusOK)
}

// RequestAdvice handles POST /api/v1/planner/advice. Generation runs in
// the background; the handler only confirms the job was queued.
func (h *PlannerHandler) RequestAdvice(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.RequestAdvice()"
	log := h.log.With(slog.String("op", op))

	h.respondEnqueue(log, w, h.planner.RequestAdvice(r.Context()))
}

// RequestMarketing handles POST /api/v1/planner/marketing.
func (h *PlannerHandler) RequestMarketing(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.RequestMarketing()"
	log := h.log.With(slog.String("op", op))

	var req dto.MarketingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(log, fmt.Errorf("cannot decode json: %w", err), w, http.StatusBadRequest)
		return
	}

	kind := assistant.MarketingKind(req.Type)
	if !kind.IsValid() {
		h.respondError(log, fmt.Errorf("unknown marketing type: %q", req.Type), w, http.StatusBadRequest)
		return
	}

	h.respondEnqueue(log, w, h.planner.RequestMarketing(r.Context(), kind))
}

// RequestFlyer handles POST /api/v1/planner/flyer.
func (h *PlannerHandler) RequestFlyer(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.RequestFlyer()"
	log := h.log.With(slog.String("op", op))

	h.respondEnqueue(log, w, h.planner.RequestFlyer(r.Context()))
}

// Publish handles POST /api/v1/planner/publish: validates the draft,
// moves it into the collection and resets the planner.
func (h *PlannerHandler) Publish(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.PlannerHandler.Publish()"
	log := h.log.With(slog.String("op", op))

	event, err := h.planner.Publish(r.Context())
	if err != nil {
		if errors.Is(err, planner.ErrDraftIncomplete) {
			h.respondError(log, err, w, http.StatusBadRequest)
			return
		}
		h.respondError(log, fmt.Errorf("failed to publish draft: %w", err), w, http.StatusInternalServerError)
		return
	}

	log.Info("draft published", slog.String("eventID", event.ID.String()))

	if err := utils.Json(w, http.StatusCreated, dto.MapDomainToEventResponse(event, nil)); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *PlannerHandler) respondState(r *http.Request, log *slog.Logger, w http.ResponseWriter, status int) {
	state := h.planner.State()

	conflicts, err := h.planner.Conflicts(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to detect conflicts: %w", err), w, http.StatusInternalServerError)
		return
	}
	schedule, err := h.planner.SameDaySchedule(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to read schedule: %w", err), w, http.StatusInternalServerError)
		return
	}

	response := dto.MapPlannerState(state, dto.MapConflictRecords(conflicts), dto.MapDomainToEventResponseList(schedule, nil))
	if err := utils.Json(w, status, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *PlannerHandler) respondEnqueue(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		if jsonErr := utils.Json(w, http.StatusAccepted, map[string]string{"status": "accepted"}); jsonErr != nil {
			log.Error("error encoding response", sl.Err(jsonErr))
		}
	case errors.Is(err, planner.ErrDraftIncomplete):
		h.respondError(log, err, w, http.StatusBadRequest)
	case errors.Is(err, planner.ErrJobBufferFull):
		h.respondError(log, err, w, http.StatusConflict)
	default:
		h.respondError(log, err, w, http.StatusInternalServerError)
	}
}

func (h *PlannerHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
