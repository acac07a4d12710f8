package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	capmw "afternote/internal/receiverauth/middleware"
	"afternote/internal/receiverauth/models"
	"afternote/internal/receiverauth/service"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

type Service interface {
	RegisterReceiver(ctx context.Context, ownerID id.OwnerID, req service.RegisterRequest) (*models.RegisteredReceiver, error)
	ListReceivers(ctx context.Context, ownerID id.OwnerID) ([]*models.Receiver, error)
	SendEmailCode(ctx context.Context, email string) error
	VerifyEmailCode(ctx context.Context, email, code string) error
	VerifyMasterKey(ctx context.Context, authCode string) (*models.VerifyResult, error)
	PresignDocument(ctx context.Context, capability models.AccessCapability, extension string) (*models.DocumentUpload, error)
	GetMessage(ctx context.Context, capability models.AccessCapability) (*models.SenderMessage, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterOwner mounts receiver management. The router must already
// require an authenticated owner.
func (h *Handler) RegisterOwner(r chi.Router) {
	r.Post("/api/users/receivers", h.HandleRegisterReceiver)
	r.Get("/api/users/receivers", h.HandleListReceivers)
}

// RegisterPublic mounts the unauthenticated verification steps.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/api/receiver-auth/email/send", h.HandleSendEmailCode)
	r.Post("/api/receiver-auth/email/verify", h.HandleVerifyEmailCode)
	r.Post("/api/receiver-auth/verify", h.HandleVerifyMasterKey)
}

// RegisterCapability mounts routes that need a resolved X-Auth-Code.
func (h *Handler) RegisterCapability(r chi.Router) {
	r.Post("/api/receiver-auth/presigned-url", h.HandlePresign)
	r.Get("/api/receiver-auth/message", h.HandleGetMessage)
}

// HandleRegisterReceiver handles POST /api/users/receivers.
func (h *Handler) HandleRegisterReceiver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	ownerID := requestcontext.OwnerID(ctx)
	if ownerID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterReceiverRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	registered, err := h.service.RegisterReceiver(ctx, ownerID, service.RegisterRequest{
		Name:       req.Name,
		SenderName: req.SenderName,
		Relation:   req.Relation,
		Email:      req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to register receiver",
			"request_id", requestID,
			"owner_id", ownerID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, RegisteredReceiverResponse{
		ReceiverResponse: toReceiverResponse(registered.Receiver),
		MasterKey:        registered.MasterKey,
	})
}

// HandleListReceivers handles GET /api/users/receivers.
func (h *Handler) HandleListReceivers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := requestcontext.OwnerID(ctx)
	if ownerID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	receivers, err := h.service.ListReceivers(ctx, ownerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toReceiverListResponse(receivers))
}

// HandleSendEmailCode handles POST /api/receiver-auth/email/send.
func (h *Handler) HandleSendEmailCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SendEmailCodeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.service.SendEmailCode(ctx, req.Email); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EmailCodeResponse{Sent: true})
}

// HandleVerifyEmailCode handles POST /api/receiver-auth/email/verify.
func (h *Handler) HandleVerifyEmailCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[VerifyEmailCodeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	if err := h.service.VerifyEmailCode(ctx, req.Email, req.Code); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EmailCodeResponse{Verified: true})
}

// HandleVerifyMasterKey handles POST /api/receiver-auth/verify.
func (h *Handler) HandleVerifyMasterKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[VerifyMasterKeyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	result, err := h.service.VerifyMasterKey(ctx, req.AuthCode)
	if err != nil {
		h.logger.InfoContext(ctx, "master key verification failed",
			"request_id", requestID,
			"code", string(dErrors.CodeOf(err)),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVerifyResponse(result))
}

// HandlePresign handles POST /api/receiver-auth/presigned-url.
func (h *Handler) HandlePresign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	capability, ok := capmw.CapabilityFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[PresignRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	upload, err := h.service.PresignDocument(ctx, capability, req.Extension)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PresignResponse{
		PresignedURL: upload.PresignedURL,
		FileURL:      upload.FileURL,
		ContentType:  upload.ContentType,
	})
}

// HandleGetMessage handles GET /api/receiver-auth/message.
func (h *Handler) HandleGetMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	capability, ok := capmw.CapabilityFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
		return
	}
	msg, err := h.service.GetMessage(ctx, capability)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, MessageResponse{SenderName: msg.SenderName, Message: msg.Message})
}
