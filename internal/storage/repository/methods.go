package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// CreateMethod вставляет новый способ оплаты.
func (s *Storage) CreateMethod(ctx context.Context, method models.Method) error {
	const op = "storage.CreateMethod"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO methods (id, name, description, kind, color, username)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.DB.ExecContext(ctx, query,
		method.ID, method.Name, method.Description, method.Kind, method.Color,
		method.Username); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetMethod возвращает способ оплаты пользователя по ID.
// Чужой или отсутствующий метод даёт ErrNotFound.
func (s *Storage) GetMethod(ctx context.Context, username string, id uuid.UUID) (*models.Method, error) {
	const op = "storage.GetMethod"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, kind, color, username
			  FROM methods
			  WHERE username = $1 AND id = $2`
	row := s.DB.QueryRowContext(ctx, query, username, id)

	var m models.Method
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Kind, &m.Color, &m.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

// ListMethods возвращает список способов оплаты пользователя с пагинацией.
func (s *Storage) ListMethods(ctx context.Context, username string, limit, offset int) ([]*models.Method, error) {
	const op = "storage.ListMethods"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, kind, color, username
			  FROM methods
			  WHERE username = $1
			  ORDER BY name, id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Method
	for rows.Next() {
		var m models.Method
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Kind, &m.Color, &m.Username); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMethod перезаписывает данные способа оплаты по его ID в рамках
// владельца. Отсутствие записи даёт ErrNotFound.
func (s *Storage) UpdateMethod(ctx context.Context, method models.Method) error {
	const op = "storage.UpdateMethod"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE methods
			  SET name = $1, description = $2, kind = $3, color = $4
			  WHERE username = $5 AND id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		method.Name, method.Description, method.Kind, method.Color,
		method.Username, method.ID)
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

// RemoveMethod удаляет способ оплаты пользователя вместе с его
// подписками (ON DELETE CASCADE на стороне базы).
func (s *Storage) RemoveMethod(ctx context.Context, username string, id uuid.UUID) error {
	const op = "storage.RemoveMethod"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM methods WHERE username = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, username, id)
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

// MethodBelongsTo сообщает, принадлежит ли способ оплаты пользователю.
func (s *Storage) MethodBelongsTo(ctx context.Context, id uuid.UUID, username string) (bool, error) {
	const op = "storage.MethodBelongsTo"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*) FROM methods WHERE id = $1 AND username = $2`
	var count int
	if err := s.DB.QueryRowContext(ctx, query, id, username).Scan(&count); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return count > 0, nil
}
