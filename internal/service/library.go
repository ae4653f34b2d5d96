package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edinfinite/platform-api/internal/domain/model"
	apperrors "github.com/edinfinite/platform-api/internal/errors"
	"github.com/edinfinite/platform-api/internal/ports"
)

// LibraryServiceOptions groups dependencies for LibraryService.
type LibraryServiceOptions struct {
	Libraries ports.LibraryStore
}

// LibraryService orchestrates user-owned knowledge libraries. Libraries
// have a single owner and no membership concept; every operation is scoped
// to the caller.
type LibraryService struct {
	libs ports.LibraryStore
}

// NewLibraryService constructs a new LibraryService.
func NewLibraryService(opts LibraryServiceOptions) *LibraryService {
	return &LibraryService{libs: opts.Libraries}
}

// Create creates a library owned by userID.
func (s *LibraryService) Create(ctx context.Context, userID string, req *model.CreateLibraryRequest) (*model.Library, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	lib := &model.Library{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.libs.Create(ctx, lib); err != nil {
		return nil, fmt.Errorf("create library: %w", err)
	}
	return lib, nil
}

// List returns the libraries owned by userID.
func (s *LibraryService) List(ctx context.Context, userID string) ([]*model.Library, error) {
	libs, err := s.libs.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	return libs, nil
}
