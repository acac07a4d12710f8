package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"afternote/internal/legacy/models"
	capmw "afternote/internal/receiverauth/middleware"
	receiverauth "afternote/internal/receiverauth/models"
	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
	"afternote/pkg/platform/httputil"
	"afternote/pkg/requestcontext"
)

type Service interface {
	ListTimeLetters(ctx context.Context, capability receiverauth.AccessCapability, limit, offset int) (*models.Page[*models.TimeLetter], error)
	GetTimeLetter(ctx context.Context, capability receiverauth.AccessCapability, deliveryID id.TimeLetterReceiverID) (*models.TimeLetter, error)
	ListMindRecords(ctx context.Context, capability receiverauth.AccessCapability, limit, offset int) (*models.Page[*models.MindRecord], error)
	GetMindRecord(ctx context.Context, capability receiverauth.AccessCapability, recordID id.MindRecordID) (*models.MindRecord, error)
	ListAfternotes(ctx context.Context, capability receiverauth.AccessCapability, limit, offset int) (*models.Page[*models.Afternote], error)
	GetAfternote(ctx context.Context, capability receiverauth.AccessCapability, noteID id.AfternoteID) (*models.Afternote, error)
	Overview(ctx context.Context, capability receiverauth.AccessCapability) (*models.Overview, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the gateway. The router must run RequireCapability and
// RequireAccess first.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/receiver-auth/time-letters", h.HandleListTimeLetters)
	r.Get("/api/receiver-auth/time-letters/{id}", h.HandleGetTimeLetter)
	r.Get("/api/receiver-auth/mind-records", h.HandleListMindRecords)
	r.Get("/api/receiver-auth/mind-records/{id}", h.HandleGetMindRecord)
	r.Get("/api/receiver-auth/after-notes", h.HandleListAfternotes)
	r.Get("/api/receiver-auth/after-notes/{id}", h.HandleGetAfternote)
	r.Get("/api/receiver-auth/overview", h.HandleOverview)
}

func (h *Handler) HandleListTimeLetters(w http.ResponseWriter, r *http.Request) {
	capability, limit, offset, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.ListTimeLetters(r.Context(), capability, limit, offset)
	if err != nil {
		h.fail(w, r, err, "list time letters")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPage(page, toTimeLetterResponse))
}

// HandleGetTimeLetter takes the timeLetterReceiverId, not the letter id.
func (h *Handler) HandleGetTimeLetter(w http.ResponseWriter, r *http.Request) {
	capability, ok := h.capability(w, r)
	if !ok {
		return
	}
	deliveryID, err := id.ParseTimeLetterReceiverID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid time letter id"))
		return
	}
	letter, err := h.service.GetTimeLetter(r.Context(), capability, deliveryID)
	if err != nil {
		h.fail(w, r, err, "get time letter")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toTimeLetterResponse(letter))
}

func (h *Handler) HandleListMindRecords(w http.ResponseWriter, r *http.Request) {
	capability, limit, offset, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.ListMindRecords(r.Context(), capability, limit, offset)
	if err != nil {
		h.fail(w, r, err, "list mind records")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPage(page, toMindRecordSummary))
}

func (h *Handler) HandleGetMindRecord(w http.ResponseWriter, r *http.Request) {
	capability, ok := h.capability(w, r)
	if !ok {
		return
	}
	recordID, err := id.ParseMindRecordID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid mind record id"))
		return
	}
	record, err := h.service.GetMindRecord(r.Context(), capability, recordID)
	if err != nil {
		h.fail(w, r, err, "get mind record")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMindRecordResponse(record))
}

func (h *Handler) HandleListAfternotes(w http.ResponseWriter, r *http.Request) {
	capability, limit, offset, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.service.ListAfternotes(r.Context(), capability, limit, offset)
	if err != nil {
		h.fail(w, r, err, "list afternotes")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPage(page, toAfternoteSummary))
}

func (h *Handler) HandleGetAfternote(w http.ResponseWriter, r *http.Request) {
	capability, ok := h.capability(w, r)
	if !ok {
		return
	}
	noteID, err := id.ParseAfternoteID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid afternote id"))
		return
	}
	note, err := h.service.GetAfternote(r.Context(), capability, noteID)
	if err != nil {
		h.fail(w, r, err, "get afternote")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAfternoteResponse(note))
}

func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	capability, ok := h.capability(w, r)
	if !ok {
		return
	}
	overview, err := h.service.Overview(r.Context(), capability)
	if err != nil {
		h.fail(w, r, err, "overview")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOverviewResponse(overview))
}

func (h *Handler) capability(w http.ResponseWriter, r *http.Request) (receiverauth.AccessCapability, bool) {
	capability, ok := capmw.CapabilityFrom(r.Context())
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "auth code required"))
	}
	return capability, ok
}

// listParams reads limit and offset. Missing values fall back to the page
// defaults; the service clamps the rest.
func (h *Handler) listParams(w http.ResponseWriter, r *http.Request) (receiverauth.AccessCapability, int, int, bool) {
	capability, ok := h.capability(w, r)
	if !ok {
		return capability, 0, 0, false
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer"))
		return capability, 0, 0, false
	}
	offset, err := intParam(r, "offset")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "offset must be an integer"))
		return capability, 0, 0, false
	}
	return capability, limit, offset, true
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	ctx := r.Context()
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.WarnContext(ctx, "legacy read failed",
			"request_id", requestcontext.RequestID(ctx),
			"action", action,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
