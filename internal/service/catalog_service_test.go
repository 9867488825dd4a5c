package service

import (
	"context"
	"testing"

	"usecase-market/internal/catalog"
	"usecase-market/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceUnderTest(t *testing.T) (CatalogService, *MockUseCaseRepository) {
	t.Helper()

	logger := zerolog.Nop()
	store := catalog.NewStore(catalog.DefaultUseCases(), logger)
	mockRepo := new(MockUseCaseRepository)
	return NewCatalogService(store, mockRepo, logger), mockRepo
}

func TestCatalogService_Browse(t *testing.T) {
	service, _ := newCatalogServiceUnderTest(t)

	results := service.Browse(context.Background(), "all", "", "rating")

	require.NotEmpty(t, results)
	assert.InDelta(t, 4.9, results[0].Rating, 0.001)
}

func TestCatalogService_Featured(t *testing.T) {
	service, _ := newCatalogServiceUnderTest(t)

	featured := service.Featured(context.Background())

	require.Len(t, featured, 3)
	for _, uc := range featured {
		assert.True(t, uc.Featured)
	}
}

func TestCatalogService_Get_FromStore(t *testing.T) {
	service, mockRepo := newCatalogServiceUnderTest(t)

	uc, err := service.Get(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "AI Customer Service Chatbot", uc.Title)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCatalogService_Get_FromListings(t *testing.T) {
	service, mockRepo := newCatalogServiceUnderTest(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, "listing-1").Return(&model.UseCase{
		ID:     "listing-1",
		Title:  "Invoice OCR Pipeline",
		Status: model.UseCaseStatusPublished,
	}, nil)

	uc, err := service.Get(ctx, "listing-1")

	require.NoError(t, err)
	assert.Equal(t, "Invoice OCR Pipeline", uc.Title)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		id     string
		stored *model.UseCase
	}{
		{"empty id", "", nil},
		{"unknown id", "missing", nil},
		{"draft listing hidden", "draft-1", &model.UseCase{ID: "draft-1", Status: model.UseCaseStatusDraft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockRepo := newCatalogServiceUnderTest(t)
			if tt.id != "" {
				mockRepo.On("GetByID", ctx, tt.id).Return(tt.stored, nil)
			}

			uc, err := service.Get(ctx, tt.id)

			assert.Nil(t, uc)
			assert.ErrorIs(t, err, model.ErrUseCaseNotFound)
		})
	}
}

func TestCatalogService_Categories(t *testing.T) {
	service, _ := newCatalogServiceUnderTest(t)

	cats := service.Categories(context.Background())

	require.NotEmpty(t, cats)
	assert.Equal(t, model.CategoryAll, cats[0].ID)
}
