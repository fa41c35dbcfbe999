// Package services содержит бизнес-логику для управления подписками и кешированием.
//
// Все операции выполняются в рамках способа оплаты, уже проверенного
// проверкой владения: подписка чужого метода неотличима от отсутствующей.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/lib/recurrence"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку.
	CreateSubscription(ctx context.Context, sub models.Subscription) error
	// GetSubscription возвращает подписку по ID в рамках способа оплаты.
	GetSubscription(ctx context.Context, methodID, id uuid.UUID) (*models.Subscription, error)
	// ListSubscriptions возвращает список подписок способа оплаты с пагинацией.
	ListSubscriptions(ctx context.Context, methodID uuid.UUID, limit, offset int) ([]*models.Subscription, error)
	// UpdateSubscription перезаписывает данные подписки.
	UpdateSubscription(ctx context.Context, sub models.Subscription) error
	// RemoveSubscription удаляет подписку.
	RemoveSubscription(ctx context.Context, methodID, id uuid.UUID) error
	// MarkPurchased атомарно сбрасывает дату последней оплаты на сегодня.
	MarkPurchased(ctx context.Context, methodID, id uuid.UUID) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// cacheTTL — время жизни закешированной подписки.
const cacheTTL = time.Hour

// SubscriptionService реализует бизнес-логику работы с подписками, включая кеширование.
type SubscriptionService struct {
	repo  SubscriptionRepository
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую подписку для способа оплаты и возвращает её.
// Опущенные поля получают значения по умолчанию: период 1,
// дата последней оплаты — сегодня, подписка активна.
func (s *SubscriptionService) Create(ctx context.Context, methodID uuid.UUID, draft models.SubscriptionDraft) (*models.Subscription, error) {
	const op = "services.subscription.Create"

	purchasedAt := time.Now().UTC().Truncate(24 * time.Hour)
	if draft.PurchasedAt != "" {
		d, err := time.Parse(models.DateLayout, draft.PurchasedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid purchased_at: %w", op, err)
		}
		purchasedAt = d
	}
	period := draft.Period
	if period == 0 {
		period = 1
	}
	isActive := true
	if draft.IsActive != nil {
		isActive = *draft.IsActive
	}

	sub := models.Subscription{
		ID:          uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Currency:    draft.Currency,
		Period:      period,
		PeriodUnit:  draft.PeriodUnit,
		PurchasedAt: purchasedAt,
		IsActive:    isActive,
		MethodID:    methodID,
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	s.log.Info("created new subscription", slog.String("id", sub.ID.String()))

	if err := s.cache.Set(ctx, cacheKey(methodID, sub.ID), sub, cacheTTL); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey(methodID, sub.ID)), slog.Any("err", err))
	}
	return &sub, nil
}

// Get возвращает подписку по ID, используя кеш или репозиторий.
// Ключ кеша включает способ оплаты, поэтому запись видна только
// через владеющий метод.
func (s *SubscriptionService) Get(ctx context.Context, methodID, id uuid.UUID) (*models.Subscription, error) {
	key := cacheKey(methodID, id)

	var cached models.Subscription
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		// MethodID не сериализуется в JSON, восстанавливаем из ключа.
		cached.MethodID = methodID
		return &cached, nil
	}

	result, err := s.repo.GetSubscription(ctx, methodID, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, result, cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает список подписок способа оплаты с пагинацией.
func (s *SubscriptionService) List(ctx context.Context, methodID uuid.UUID, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, methodID, limit, offset)
}

// Update применяет частичное обновление к подписке и возвращает
// итоговое состояние. Поля со значением nil в патче не изменяются.
func (s *SubscriptionService) Update(ctx context.Context, methodID, id uuid.UUID, patch models.SubscriptionPatch) (*models.Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx, methodID, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(sub)
	if err := s.repo.UpdateSubscription(ctx, *sub); err != nil {
		return nil, err
	}
	s.log.Info("updated subscription", slog.String("id", id.String()))

	if err := s.cache.Set(ctx, cacheKey(methodID, id), sub, cacheTTL); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey(methodID, id)), slog.Any("err", err))
	}
	return sub, nil
}

// Remove удаляет подписку и инвалидирует кеш.
func (s *SubscriptionService) Remove(ctx context.Context, methodID, id uuid.UUID) error {
	if err := s.cache.Invalidate(ctx, cacheKey(methodID, id)); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey(methodID, id)), slog.Any("err", err))
	}
	return s.repo.RemoveSubscription(ctx, methodID, id)
}

// NextPayment возвращает дату последней оплаты подписки и вычисленную
// дату следующего платежа — первую дату расписания строго позднее
// сегодняшней.
func (s *SubscriptionService) NextPayment(ctx context.Context, methodID, id uuid.UUID) (lastPaid, next time.Time, err error) {
	sub, err := s.Get(ctx, methodID, id)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	next, err = recurrence.NextPaymentDate(sub.PurchasedAt, sub.Period, sub.PeriodUnit, time.Now().UTC())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return sub.PurchasedAt, next, nil
}

// MarkPurchased сбрасывает дату последней оплаты подписки на сегодня
// и инвалидирует кеш.
func (s *SubscriptionService) MarkPurchased(ctx context.Context, methodID, id uuid.UUID) error {
	if err := s.repo.MarkPurchased(ctx, methodID, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, cacheKey(methodID, id)); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey(methodID, id)), slog.Any("err", err))
	}
	s.log.Info("marked subscription as purchased", slog.String("id", id.String()))
	return nil
}

func cacheKey(methodID, id uuid.UUID) string {
	return fmt.Sprintf("subscription:%s:%s", methodID, id)
}
