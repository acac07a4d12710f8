package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	capmw "afternote/internal/receiverauth/middleware"
	receiverauth "afternote/internal/receiverauth/models"
	"afternote/internal/review/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

type Service interface {
	Submit(ctx context.Context, capability receiverauth.AccessCapability, deathURL, familyURL string) (*models.Verification, error)
	GetStatus(ctx context.Context, capability receiverauth.AccessCapability) (*models.Verification, error)
	ListPending(ctx context.Context) ([]*models.Verification, error)
	Get(ctx context.Context, verificationID id.VerificationID) (*models.Verification, error)
	Approve(ctx context.Context, verificationID id.VerificationID, note *string) (*models.Verification, error)
	Reject(ctx context.Context, verificationID id.VerificationID, note *string) (*models.Verification, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterReceiver mounts the receiver side. The router must resolve
// X-Auth-Code first.
func (h *Handler) RegisterReceiver(r chi.Router) {
	r.Post("/api/receiver-auth/delivery-verification", h.HandleSubmit)
	r.Get("/api/receiver-auth/delivery-verification/status", h.HandleStatus)
}

// RegisterAdmin mounts the review queue. The router must require the admin
// token.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/api/admin/verifications", h.HandleListPending)
	r.Get("/api/admin/verifications/{id}", h.HandleGet)
	r.Post("/api/admin/verifications/{id}/approve", h.HandleApprove)
	r.Post("/api/admin/verifications/{id}/reject", h.HandleReject)
}

// HandleSubmit handles POST /api/receiver-auth/delivery-verification.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	capability, ok := capmw.CapabilityFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	v, err := h.service.Submit(ctx, capability, req.DeathCertificateURL, req.FamilyRelationCertificateURL)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to submit delivery verification",
			"request_id", requestID,
			"receiver_id", capability.ReceiverID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSubmissionResponse(v))
}

// HandleStatus handles GET /api/receiver-auth/delivery-verification/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	capability, ok := capmw.CapabilityFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
		return
	}
	v, err := h.service.GetStatus(ctx, capability)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toStatusResponse(v))
}

func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPending(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toListResponse(items))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	verificationID, ok := h.parseID(w, r)
	if !ok {
		return
	}
	v, err := h.service.Get(r.Context(), verificationID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVerificationResponse(v))
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Approve, "approve")
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.service.Reject, "reject")
}

type decision func(ctx context.Context, verificationID id.VerificationID, note *string) (*models.Verification, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, apply decision, action string) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	verificationID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	// The body is optional; an empty one means no note.
	var note *string
	if r.ContentLength != 0 {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
		if strings.TrimSpace(string(body)) != "" {
			r.Body = io.NopCloser(strings.NewReader(string(body)))
			req, ok := httputil.DecodeAndPrepare[DecisionRequest](w, r, h.logger, ctx, requestID)
			if !ok {
				return
			}
			note = req.AdminNote
		}
	}

	v, err := apply(ctx, verificationID, note)
	if err != nil {
		h.logger.WarnContext(ctx, "verification decision failed",
			"request_id", requestID,
			"verification_id", verificationID.String(),
			"action", action,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVerificationResponse(v))
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (id.VerificationID, bool) {
	verificationID, err := id.ParseVerificationID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid verification id"))
		return id.VerificationID{}, false
	}
	return verificationID, true
}
