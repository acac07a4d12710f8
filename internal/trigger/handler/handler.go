package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"afternote/internal/trigger/models"
	"afternote/internal/trigger/service"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

type Service interface {
	EvaluateBatch(ctx context.Context, signals []models.OwnerSignal) ([]service.BatchResult, error)
	ReleaseFor(ctx context.Context, ownerID id.OwnerID) (*models.Release, error)
}

// Handler serves the scheduler-facing trigger endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the internal routes. The router must already require the
// admin token.
func (h *Handler) Register(r chi.Router) {
	r.Post("/internal/trigger/evaluate", h.HandleEvaluate)
	r.Get("/internal/trigger/releases/{ownerId}", h.HandleGetRelease)
}

// HandleEvaluate handles POST /internal/trigger/evaluate.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	results, err := h.service.EvaluateBatch(ctx, req.OwnerSignals())
	if err != nil {
		h.logger.ErrorContext(ctx, "trigger batch failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEvaluateResponse(results))
}

// HandleGetRelease handles GET /internal/trigger/releases/{ownerId}.
func (h *Handler) HandleGetRelease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, err := id.ParseOwnerID(chi.URLParam(r, "ownerId"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid owner id"))
		return
	}
	release, err := h.service.ReleaseFor(ctx, ownerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if release == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "owner not released"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toReleaseResponse(release))
}
