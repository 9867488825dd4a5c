package service

import (
	"context"
	"errors"
	"testing"

	"usecase-market/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSellerService_Listings(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockUseCaseRepo := new(MockUseCaseRepository)
	mockOrderRepo := new(MockOrderRepository)
	service := NewSellerService(mockUseCaseRepo, mockOrderRepo, logger)

	listings := []model.UseCase{
		{ID: "uc-2", Title: "Newer", Seller: model.Seller{ID: "seller-1"}},
		{ID: "uc-1", Title: "Older", Seller: model.Seller{ID: "seller-1"}},
	}
	mockUseCaseRepo.On("GetBySeller", ctx, "seller-1").Return(listings, nil)

	got, err := service.Listings(ctx, "seller-1")

	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestSellerService_Listings_NoSession(t *testing.T) {
	logger := zerolog.Nop()

	mockUseCaseRepo := new(MockUseCaseRepository)
	mockOrderRepo := new(MockOrderRepository)
	service := NewSellerService(mockUseCaseRepo, mockOrderRepo, logger)

	got, err := service.Listings(context.Background(), "")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrAuthRequired)
	mockUseCaseRepo.AssertNotCalled(t, "GetBySeller", mock.Anything, mock.Anything)
}

func TestSellerService_Stats(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockUseCaseRepo := new(MockUseCaseRepository)
	mockOrderRepo := new(MockOrderRepository)
	service := NewSellerService(mockUseCaseRepo, mockOrderRepo, logger)

	mockUseCaseRepo.On("GetBySeller", ctx, "seller-1").Return([]model.UseCase{
		{ID: "uc-1"}, {ID: "uc-2"}, {ID: "uc-3"},
	}, nil)
	mockOrderRepo.On("RevenueStats", ctx, "seller-1").Return(&model.RevenueStats{
		TotalRevenue:  14700,
		TotalOrders:   3,
		AvgOrderCents: 4900,
	}, nil)

	stats, err := service.Stats(ctx, "seller-1")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUseCases)
	assert.Equal(t, int64(14700), stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, int64(4900), stats.AvgOrderCents)
}

func TestSellerService_Stats_RevenueError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockUseCaseRepo := new(MockUseCaseRepository)
	mockOrderRepo := new(MockOrderRepository)
	service := NewSellerService(mockUseCaseRepo, mockOrderRepo, logger)

	mockUseCaseRepo.On("GetBySeller", ctx, "seller-1").Return([]model.UseCase{}, nil)
	mockOrderRepo.On("RevenueStats", ctx, "seller-1").
		Return(nil, errors.New("connection refused"))

	stats, err := service.Stats(ctx, "seller-1")

	assert.Nil(t, stats)
	assert.Error(t, err)
}
