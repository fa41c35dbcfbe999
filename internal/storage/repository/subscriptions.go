package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// CreateSubscription вставляет новую подписку.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) error {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (id, name, description, price, currency,
			      period, period_unit, purchased_at, is_active, method_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := s.DB.ExecContext(ctx, query,
		sub.ID, sub.Name, sub.Description, sub.Price, sub.Currency,
		sub.Period, sub.PeriodUnit, sub.PurchasedAt, sub.IsActive, sub.MethodID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetSubscription возвращает подписку по ID в рамках способа оплаты.
// Подписка чужого метода или отсутствующая даёт ErrNotFound.
func (s *Storage) GetSubscription(ctx context.Context, methodID, id uuid.UUID) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, currency, period, period_unit,
			      purchased_at, is_active, method_id
			  FROM subscriptions
			  WHERE method_id = $1 AND id = $2`
	row := s.DB.QueryRowContext(ctx, query, methodID, id)

	var sub models.Subscription
	if err := row.Scan(&sub.ID, &sub.Name, &sub.Description, &sub.Price, &sub.Currency,
		&sub.Period, &sub.PeriodUnit, &sub.PurchasedAt, &sub.IsActive, &sub.MethodID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// ListSubscriptions возвращает список подписок способа оплаты с пагинацией.
func (s *Storage) ListSubscriptions(ctx context.Context, methodID uuid.UUID, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, currency, period, period_unit,
			      purchased_at, is_active, method_id
			  FROM subscriptions
			  WHERE method_id = $1
			  ORDER BY name, id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, methodID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Description, &sub.Price, &sub.Currency,
			&sub.Period, &sub.PeriodUnit, &sub.PurchasedAt, &sub.IsActive, &sub.MethodID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription перезаписывает данные подписки по её ID в рамках
// способа оплаты. Отсутствие записи даёт ErrNotFound.
func (s *Storage) UpdateSubscription(ctx context.Context, sub models.Subscription) error {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET name = $1, description = $2, price = $3, currency = $4,
			      period = $5, period_unit = $6, purchased_at = $7, is_active = $8
			  WHERE method_id = $9 AND id = $10`
	result, err := s.DB.ExecContext(ctx, query,
		sub.Name, sub.Description, sub.Price, sub.Currency,
		sub.Period, sub.PeriodUnit, sub.PurchasedAt, sub.IsActive,
		sub.MethodID, sub.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// RemoveSubscription удаляет подписку способа оплаты.
func (s *Storage) RemoveSubscription(ctx context.Context, methodID, id uuid.UUID) error {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE method_id = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, methodID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// MarkPurchased атомарно сбрасывает дату последней оплаты подписки
// на сегодняшнюю. Одно UPDATE-выражение, без чтения перед записью.
func (s *Storage) MarkPurchased(ctx context.Context, methodID, id uuid.UUID) error {
	const op = "storage.MarkPurchased"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET purchased_at = CURRENT_DATE
			  WHERE method_id = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, methodID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
