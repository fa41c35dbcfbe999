// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pan-subscribe-manager/finance-control/internal/lib/jwt"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/password"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Ошибки аутентификации. Неизвестный пользователь и неверный пароль
// неразличимы — оба дают ErrInvalidCredentials.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя; дубликат username даёт
	// repository.ErrConflict.
	CreateUser(ctx context.Context, user models.User) error

	// GetUserByUsername возвращает пользователя по имени или
	// repository.ErrNotFound, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, выдачу и проверку bearer-токенов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Сырой пароль никогда не сохраняется и не логируется.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	const op = "services.auth.Register"
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     req.Username,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Email:        req.Email,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// Login проверяет пароль пользователя и выдаёт подписанный токен.
// Неизвестное имя и неверный пароль дают одинаковую ошибку,
// заблокированный пользователь — ErrInactiveUser.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if user.Disabled {
		return "", ErrInactiveUser
	}
	ok, err := password.Verify(rawPassword, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Authenticate разрешает bearer-токен в полную запись пользователя.
// Непригодный токен, отсутствующий или заблокированный пользователь
// дают jwt.ErrInvalidToken либо ErrInactiveUser.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.Authenticate"
	username, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, jwt.ErrInvalidToken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.Disabled {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// SeedAdmin создаёт отладочного пользователя admin/admin.
// Используется только эндпоинтом /internal/users/initialize.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	const op = "services.auth.SeedAdmin"
	hashed, err := password.Hash("admin")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     "admin",
		PasswordHash: hashed,
		FullName:     "Admin@admin",
		Email:        "admin@email.tld",
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
