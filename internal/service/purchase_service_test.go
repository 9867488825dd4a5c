package service

import (
	"context"
	"errors"
	"testing"

	"usecase-market/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.OrderStatus) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) RevenueStats(ctx context.Context, sellerID string) (*model.RevenueStats, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RevenueStats), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Browse(ctx context.Context, categoryID, query, sortKey string) []model.UseCase {
	args := m.Called(ctx, categoryID, query, sortKey)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.UseCase)
}

func (m *MockCatalogService) Featured(ctx context.Context) []model.UseCase {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.UseCase)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*model.UseCase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UseCase), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) []model.Category {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Category)
}

// MockProcessor is a mock implementation of payment.Processor.
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Charge(ctx context.Context, orderID string, amountCents int64) error {
	args := m.Called(ctx, orderID, amountCents)
	return args.Error(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func testUseCase() *model.UseCase {
	return &model.UseCase{
		ID:         "uc-1",
		Title:      "AI Customer Service Chatbot",
		PriceCents: 4900,
		Status:     model.UseCaseStatusPublished,
		Seller:     model.Seller{ID: "seller-1", Name: "TechCorp Solutions"},
	}
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)
	mockTx := new(MockTx)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("string"), int64(4900)).Return(nil)
	mockOrderRepo.On("UpdateStatus", ctx, mockTx, mock.AnythingOfType("uuid.UUID"), model.OrderStatusCompleted).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Purchase(ctx, "buyer-1", "uc-1")

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, "buyer-1", order.BuyerID)
	assert.Equal(t, "uc-1", order.UseCaseID)
	assert.Equal(t, int64(4900), order.AmountCents)
	assert.Equal(t, model.OrderStatusCompleted, order.Status)

	mockCatalog.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockProcessor.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestPurchaseService_Purchase_PendingBeforeCompletion(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)
	mockTx := new(MockTx)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.MatchedBy(func(o *model.Order) bool {
		return o.Status == model.OrderStatusPending
	})).Return(nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("string"), int64(4900)).Return(nil)
	mockOrderRepo.On("UpdateStatus", ctx, mockTx, mock.AnythingOfType("uuid.UUID"), model.OrderStatusCompleted).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	_, err := service.Purchase(ctx, "buyer-1", "uc-1")

	require.NoError(t, err)
	mockOrderRepo.AssertExpectations(t)
}

func TestPurchaseService_Purchase_NoSession(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	order, err := service.Purchase(ctx, "", "uc-1")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrAuthRequired)

	// The flow halts at the precondition: zero outbound calls.
	mockCatalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
	mockProcessor.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_Purchase_SelfPurchase(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)

	order, err := service.Purchase(ctx, "seller-1", "uc-1")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrSelfPurchase)

	// No order or payment calls are made once the precondition fails.
	mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
	mockProcessor.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseService_Purchase_UseCaseNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "missing").Return(nil, model.ErrUseCaseNotFound)

	order, err := service.Purchase(ctx, "buyer-1", "missing")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, model.ErrUseCaseNotFound)
	mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPurchaseService_Purchase_PaymentFailure(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)
	mockTx := new(MockTx)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("string"), int64(4900)).
		Return(errors.New("card declined"))
	mockOrderRepo.On("UpdateStatus", ctx, mockTx, mock.AnythingOfType("uuid.UUID"), model.OrderStatusFailed).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	order, err := service.Purchase(ctx, "buyer-1", "uc-1")

	assert.Nil(t, order)
	require.Error(t, err)

	// The collaborator's message surfaces verbatim.
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodePaymentFailed, domainErr.Code)
	assert.Equal(t, "card declined", domainErr.Message)

	// The failed order is still persisted.
	mockOrderRepo.AssertCalled(t, "UpdateStatus", ctx, mockTx, mock.AnythingOfType("uuid.UUID"), model.OrderStatusFailed)
	mockTx.AssertExpectations(t)
}

func TestPurchaseService_Purchase_CreateFailureRollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)
	mockTx := new(MockTx)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	order, err := service.Purchase(ctx, "buyer-1", "uc-1")

	assert.Nil(t, order)
	assert.Error(t, err)
	mockProcessor.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertExpectations(t)
}

func TestPurchaseService_Purchase_NotDeduplicated(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCatalog := new(MockCatalogService)
	mockProcessor := new(MockProcessor)
	mockTx := new(MockTx)

	service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

	mockCatalog.On("Get", ctx, "uc-1").Return(testUseCase(), nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("Create", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockProcessor.On("Charge", ctx, mock.AnythingOfType("string"), int64(4900)).Return(nil)
	mockOrderRepo.On("UpdateStatus", ctx, mockTx, mock.AnythingOfType("uuid.UUID"), model.OrderStatusCompleted).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	first, err := service.Purchase(ctx, "buyer-1", "uc-1")
	require.NoError(t, err)
	second, err := service.Purchase(ctx, "buyer-1", "uc-1")
	require.NoError(t, err)

	// Each attempt creates a distinct order.
	assert.NotEqual(t, first.ID, second.ID)
	mockOrderRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestPurchaseService_GetOrder(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orderID := uuid.New()
	stored := &model.Order{
		ID:          orderID,
		BuyerID:     "buyer-1",
		UseCaseID:   "uc-1",
		AmountCents: 4900,
		Status:      model.OrderStatusCompleted,
	}

	tests := []struct {
		name        string
		buyerID     string
		mockReturn  *model.Order
		mockError   error
		expectError error
	}{
		{
			name:       "owner retrieves order",
			buyerID:    "buyer-1",
			mockReturn: stored,
		},
		{
			name:        "other buyer gets not found",
			buyerID:     "buyer-2",
			mockReturn:  stored,
			expectError: model.ErrOrderNotFound,
		},
		{
			name:        "missing order",
			buyerID:     "buyer-1",
			mockReturn:  nil,
			expectError: model.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockCatalog := new(MockCatalogService)
			mockProcessor := new(MockProcessor)

			service := NewPurchaseService(mockOrderRepo, mockCatalog, mockProcessor, logger)

			mockOrderRepo.On("GetByID", ctx, orderID).Return(tt.mockReturn, tt.mockError)

			order, err := service.GetOrder(ctx, tt.buyerID, orderID)

			if tt.expectError != nil {
				assert.Nil(t, order)
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, order)
			}
		})
	}
}
