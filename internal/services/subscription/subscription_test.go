package services_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
	services "github.com/pan-subscribe-manager/finance-control/internal/services/subscription"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Мок для SubscriptionRepository
type SubscriptionRepoMock struct {
	mock.Mock
}

func (m *SubscriptionRepoMock) CreateSubscription(ctx context.Context, sub models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *SubscriptionRepoMock) GetSubscription(ctx context.Context, methodID, id uuid.UUID) (*models.Subscription, error) {
	args := m.Called(ctx, methodID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *SubscriptionRepoMock) ListSubscriptions(ctx context.Context, methodID uuid.UUID, limit, offset int) ([]*models.Subscription, error) {
	args := m.Called(ctx, methodID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}

func (m *SubscriptionRepoMock) UpdateSubscription(ctx context.Context, sub models.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *SubscriptionRepoMock) RemoveSubscription(ctx context.Context, methodID, id uuid.UUID) error {
	args := m.Called(ctx, methodID, id)
	return args.Error(0)
}

func (m *SubscriptionRepoMock) MarkPurchased(ctx context.Context, methodID, id uuid.UUID) error {
	args := m.Called(ctx, methodID, id)
	return args.Error(0)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSubscriptionService_Create_Defaults(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	draft := models.SubscriptionDraft{
		Name:       "Netflix",
		Price:      decimal.RequireFromString("9.99"),
		Currency:   "EUR",
		PeriodUnit: models.UnitMonth,
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
		return sub.MethodID == methodID &&
			sub.Name == "Netflix" &&
			sub.Period == 1 &&
			sub.IsActive &&
			sub.PurchasedAt.Equal(today)
	})).Return(nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	got, err := svc.Create(context.Background(), methodID, draft)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Period)
	assert.True(t, got.IsActive)
	assert.True(t, got.PurchasedAt.Equal(today))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSubscriptionService_Create_ExplicitFields(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	inactive := false
	draft := models.SubscriptionDraft{
		Name:        "Gym",
		Price:       decimal.RequireFromString("25.00"),
		Currency:    "USD",
		Period:      2,
		PeriodUnit:  models.UnitWeek,
		PurchasedAt: "2024-01-15",
		IsActive:    &inactive,
	}

	repo.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
		return sub.Period == 2 &&
			!sub.IsActive &&
			sub.PurchasedAt.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	got, err := svc.Create(context.Background(), methodID, draft)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	repo.AssertExpectations(t)
}

func TestSubscriptionService_Get_CacheMiss(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	sub := &models.Subscription{ID: uuid.New(), Name: "Spotify", MethodID: methodID}

	key := "subscription:" + methodID.String() + ":" + sub.ID.String()
	cache.On("Get", mock.Anything, key, mock.Anything).
		Return(false, nil).Once()
	repo.On("GetSubscription", mock.Anything, methodID, sub.ID).Return(sub, nil).Once()
	cache.On("Set", mock.Anything, key, sub, mock.Anything).
		Return(nil).Once()

	got, err := svc.Get(context.Background(), methodID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

// jsonCache хранит значения как JSON, повторяя сериализацию Redis-кеша.
type jsonCache struct {
	data map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{data: make(map[string][]byte)}
}

func (c *jsonCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, err
	}
	return true, nil
}

func (c *jsonCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *jsonCache) Invalidate(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func TestSubscriptionService_Get_CacheHit(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := newJSONCache()
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	sub := &models.Subscription{
		ID:          uuid.New(),
		Name:        "Spotify",
		Price:       decimal.RequireFromString("9.99"),
		Currency:    "EUR",
		Period:      1,
		PeriodUnit:  models.UnitMonth,
		PurchasedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		MethodID:    methodID,
	}

	// Ровно одно обращение к репозиторию: первое чтение наполняет кеш,
	// второе обслуживается из него.
	repo.On("GetSubscription", mock.Anything, methodID, sub.ID).Return(sub, nil).Once()

	first, err := svc.Get(context.Background(), methodID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, first)

	second, err := svc.Get(context.Background(), methodID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, second.ID)
	assert.Equal(t, "Spotify", second.Name)
	assert.True(t, sub.Price.Equal(second.Price))
	assert.True(t, sub.PurchasedAt.Equal(second.PurchasedAt))
	assert.Equal(t, methodID, second.MethodID)

	repo.AssertExpectations(t)
}

func TestSubscriptionService_Get_CacheScopedToMethod(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := newJSONCache()
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	otherMethodID := uuid.New()
	sub := &models.Subscription{ID: uuid.New(), Name: "Spotify", MethodID: methodID}

	repo.On("GetSubscription", mock.Anything, methodID, sub.ID).Return(sub, nil).Once()
	repo.On("GetSubscription", mock.Anything, otherMethodID, sub.ID).
		Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), methodID, sub.ID)
	require.NoError(t, err)

	// Закешированная запись не видна через другой способ оплаты.
	_, err = svc.Get(context.Background(), otherMethodID, sub.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestSubscriptionService_Get_NotFound(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	id := uuid.New()

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("GetSubscription", mock.Anything, methodID, id).
		Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), methodID, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubscriptionService_Update_AppliesOnlyGivenFields(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	existing := &models.Subscription{
		ID:         uuid.New(),
		Name:       "Netflix",
		Price:      decimal.RequireFromString("9.99"),
		Currency:   "EUR",
		Period:     1,
		PeriodUnit: models.UnitMonth,
		IsActive:   true,
		MethodID:   methodID,
	}

	inactive := false
	patch := models.SubscriptionPatch{IsActive: &inactive}

	repo.On("GetSubscription", mock.Anything, methodID, existing.ID).Return(existing, nil).Once()
	repo.On("UpdateSubscription", mock.Anything, mock.MatchedBy(func(sub models.Subscription) bool {
		// Меняется только is_active, остальные поля сохраняются.
		return !sub.IsActive && sub.Name == "Netflix" && sub.Period == 1
	})).Return(nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	got, err := svc.Update(context.Background(), methodID, existing.ID, patch)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Netflix", got.Name)

	repo.AssertExpectations(t)
}

func TestSubscriptionService_Remove_InvalidatesCache(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	id := uuid.New()

	cache.On("Invalidate", mock.Anything, "subscription:"+methodID.String()+":"+id.String()).Return(nil).Once()
	repo.On("RemoveSubscription", mock.Anything, methodID, id).Return(nil).Once()

	err := svc.Remove(context.Background(), methodID, id)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSubscriptionService_NextPayment(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	purchased := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -10)
	sub := &models.Subscription{
		ID:          uuid.New(),
		Name:        "Hosting",
		Period:      7,
		PeriodUnit:  models.UnitDay,
		PurchasedAt: purchased,
		MethodID:    methodID,
	}

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("GetSubscription", mock.Anything, methodID, sub.ID).Return(sub, nil).Once()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	lastPaid, next, err := svc.NextPayment(context.Background(), methodID, sub.ID)
	require.NoError(t, err)
	assert.True(t, lastPaid.Equal(purchased))
	assert.True(t, next.Equal(purchased.AddDate(0, 0, 14)))
}

func TestSubscriptionService_MarkPurchased(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	id := uuid.New()

	repo.On("MarkPurchased", mock.Anything, methodID, id).Return(nil).Once()
	cache.On("Invalidate", mock.Anything, "subscription:"+methodID.String()+":"+id.String()).Return(nil).Once()

	err := svc.MarkPurchased(context.Background(), methodID, id)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSubscriptionService_MarkPurchased_NotFound(t *testing.T) {
	repo := new(SubscriptionRepoMock)
	cache := new(CacheMock)
	svc := services.NewSubscriptionService(repo, cache, newNoopLogger())

	methodID := uuid.New()
	id := uuid.New()

	repo.On("MarkPurchased", mock.Anything, methodID, id).
		Return(repository.ErrNotFound).Once()

	err := svc.MarkPurchased(context.Background(), methodID, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
