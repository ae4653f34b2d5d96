package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/service"
)

// maxMessageLimit caps the messages page size.
const maxMessageLimit = 200

// RoomHandlers serves room, message, knowledge, and assistant endpoints.
// Every handler runs behind RequireAuth, so the principal is always in the
// context; per-room authorization happens inside the service.
type RoomHandlers struct {
	Svc    *service.RoomService
	Logger *slog.Logger
}

// List handles GET /api/v1/rooms.
func (h *RoomHandlers) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Svc.List(r.Context(), CurrentUserID(r.Context()))
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, rooms)
}

// Create handles POST /api/v1/rooms.
func (h *RoomHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoomRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	room, err := h.Svc.Create(r.Context(), CurrentUserID(r.Context()), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, room)
}

// Get handles GET /api/v1/rooms/{id}.
func (h *RoomHandlers) Get(w http.ResponseWriter, r *http.Request) {
	room, err := h.Svc.Get(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()))
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, room)
}

// ListMessages handles GET /api/v1/rooms/{id}/messages.
func (h *RoomHandlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxMessageLimit {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation",
				Err:     errInvalidLimit,
			})
			return
		}
		limit = parsed
	}

	msgs, err := h.Svc.ListMessages(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()), limit)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, msgs)
}

// PostMessage handles POST /api/v1/rooms/{id}/messages.
func (h *RoomHandlers) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req model.PostMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	msg, err := h.Svc.PostMessage(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, msg)
}

// AttachKnowledge handles POST /api/v1/class_rooms/{id}/knowledge.
func (h *RoomHandlers) AttachKnowledge(w http.ResponseWriter, r *http.Request) {
	var req model.AttachKnowledgeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	result, err := h.Svc.AttachKnowledge(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// GetAssistant handles GET /api/v1/class_rooms/{id}/assistant.
func (h *RoomHandlers) GetAssistant(w http.ResponseWriter, r *http.Request) {
	asst, err := h.Svc.GetAssistant(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()))
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, asst)
}

// UpsertAssistant handles POST /api/v1/class_rooms/{id}/assistant.
func (h *RoomHandlers) UpsertAssistant(w http.ResponseWriter, r *http.Request) {
	var req model.UpsertAssistantRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	asst, err := h.Svc.UpsertAssistant(r.Context(), r.PathValue("id"), CurrentUserID(r.Context()), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, asst)
}
