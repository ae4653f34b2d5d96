package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/service"
)

var errInvalidLimit = errors.New("limit must be between 1 and 200")

// LibraryHandlers serves the user-owned library endpoints.
type LibraryHandlers struct {
	Svc    *service.LibraryService
	Logger *slog.Logger
}

// List handles GET /api/v1/libraries.
func (h *LibraryHandlers) List(w http.ResponseWriter, r *http.Request) {
	libs, err := h.Svc.List(r.Context(), CurrentUserID(r.Context()))
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, libs)
}

// Create handles POST /api/v1/libraries.
func (h *LibraryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLibraryRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	lib, err := h.Svc.Create(r.Context(), CurrentUserID(r.Context()), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusCreated, lib)
}
