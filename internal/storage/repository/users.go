package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных.
// Дубликат username даёт ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, password_hash, full_name, email, disabled)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.DB.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.FullName, user.Email, user.Disabled); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByUsername возвращает пользователя по его username.
// Отсутствие пользователя даёт ErrNotFound.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT username, password_hash, full_name, email, disabled
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)

	var fullName, email sql.NullString
	if err := row.Scan(&u.Username, &u.PasswordHash, &fullName, &email, &u.Disabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if fullName.Valid {
		u.FullName = fullName.String
	}
	if email.Valid {
		u.Email = email.String
	}
	return u, nil
}
