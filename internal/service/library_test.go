package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edinfinite/platform-api/internal/domain/model"
	apperrors "github.com/edinfinite/platform-api/internal/errors"
	"github.com/edinfinite/platform-api/internal/mocks"
)

// newLibraryService creates a mock store and service for testing.
func newLibraryService(t *testing.T) (*mocks.MockLibraryStore, *LibraryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	libs := mocks.NewMockLibraryStore(ctrl)
	service := NewLibraryService(LibraryServiceOptions{Libraries: libs})
	return libs, service
}

func TestLibraryService_Create(t *testing.T) {
	t.Parallel()
	libs, service := newLibraryService(t)

	libs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lib *model.Library) error {
			assert.Equal(t, ownerUserID, lib.UserID)
			assert.Equal(t, "physics notes", lib.Name)
			assert.NotEmpty(t, lib.ID)
			return nil
		})

	lib, err := service.Create(context.Background(), ownerUserID,
		&model.CreateLibraryRequest{Name: "physics notes"})

	require.NoError(t, err)
	assert.Equal(t, "physics notes", lib.Name)
}

func TestLibraryService_Create_ValidationError(t *testing.T) {
	t.Parallel()
	_, service := newLibraryService(t)

	_, err := service.Create(context.Background(), ownerUserID, &model.CreateLibraryRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLibraryService_List(t *testing.T) {
	t.Parallel()
	libs, service := newLibraryService(t)

	libs.EXPECT().ListByOwner(gomock.Any(), ownerUserID).
		Return([]*model.Library{{ID: "lib-1", UserID: ownerUserID, Name: "physics notes"}}, nil)

	out, err := service.List(context.Background(), ownerUserID)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "lib-1", out[0].ID)
}
