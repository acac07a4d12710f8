package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"afternote/internal/condition/models"
	"afternote/internal/condition/service"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

// Service is the condition operations the handler needs.
type Service interface {
	Save(ctx context.Context, ownerID id.OwnerID, req service.SaveRequest) (*models.DeliveryCondition, error)
	Load(ctx context.Context, ownerID id.OwnerID) (*models.DeliveryCondition, error)
	UpdateLeaveMessage(ctx context.Context, ownerID id.OwnerID, message *string) (*models.DeliveryCondition, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the owner endpoints. The router must already require an
// authenticated owner.
func (h *Handler) Register(r chi.Router) {
	r.Put("/api/users/delivery-condition", h.HandleSave)
	r.Get("/api/users/delivery-condition", h.HandleGet)
	r.Put("/api/users/delivery-condition/message", h.HandleUpdateMessage)
}

// HandleSave handles PUT /api/users/delivery-condition.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	ownerID, ok := h.requireOwner(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SaveConditionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	condition, err := h.service.Save(ctx, ownerID, service.SaveRequest{
		DeliveryMethod:   req.DeliveryMethod,
		TriggerCondition: req.TriggerCondition,
		TriggerDate:      req.ParsedTriggerDate(),
		LeaveMessage:     req.LeaveMessage,
		InactivityDays:   req.InactivityDays,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to save delivery condition",
			"request_id", requestID,
			"owner_id", ownerID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toConditionResponse(condition))
}

// HandleGet handles GET /api/users/delivery-condition.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := h.requireOwner(w, ctx)
	if !ok {
		return
	}
	condition, err := h.service.Load(ctx, ownerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toConditionResponse(condition))
}

// HandleUpdateMessage handles PUT /api/users/delivery-condition/message.
func (h *Handler) HandleUpdateMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	ownerID, ok := h.requireOwner(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateLeaveMessageRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	condition, err := h.service.UpdateLeaveMessage(ctx, ownerID, req.LeaveMessage)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toConditionResponse(condition))
}

func (h *Handler) requireOwner(w http.ResponseWriter, ctx context.Context) (id.OwnerID, bool) {
	ownerID := requestcontext.OwnerID(ctx)
	if ownerID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return id.OwnerID{}, false
	}
	return ownerID, true
}
