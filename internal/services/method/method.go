// Package services содержит бизнес-логику для управления способами оплаты.
// Все операции выполняются в рамках владельца: чужие записи неотличимы
// от отсутствующих.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
)

// MethodRepository определяет методы для работы со способами оплаты в хранилище.
type MethodRepository interface {
	// CreateMethod добавляет новый способ оплаты.
	CreateMethod(ctx context.Context, method models.Method) error
	// GetMethod возвращает способ оплаты пользователя по ID.
	GetMethod(ctx context.Context, username string, id uuid.UUID) (*models.Method, error)
	// ListMethods возвращает список способов оплаты пользователя с пагинацией.
	ListMethods(ctx context.Context, username string, limit, offset int) ([]*models.Method, error)
	// UpdateMethod перезаписывает данные способа оплаты.
	UpdateMethod(ctx context.Context, method models.Method) error
	// RemoveMethod удаляет способ оплаты вместе с подписками.
	RemoveMethod(ctx context.Context, username string, id uuid.UUID) error
	// MethodBelongsTo сообщает, принадлежит ли способ оплаты пользователю.
	MethodBelongsTo(ctx context.Context, id uuid.UUID, username string) (bool, error)
}

// MethodService реализует бизнес-логику работы со способами оплаты.
type MethodService struct {
	repo MethodRepository
	log  *slog.Logger
}

// NewMethodService создает новый экземпляр MethodService.
func NewMethodService(repo MethodRepository, log *slog.Logger) *MethodService {
	return &MethodService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый способ оплаты для пользователя и возвращает его.
func (s *MethodService) Create(ctx context.Context, username string, draft models.MethodDraft) (*models.Method, error) {
	method := models.Method{
		ID:          uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		Kind:        draft.Kind,
		Color:       draft.Color,
		Username:    username,
	}
	if err := s.repo.CreateMethod(ctx, method); err != nil {
		return nil, err
	}
	s.log.Info("created new method", slog.String("id", method.ID.String()))
	return &method, nil
}

// Get возвращает способ оплаты пользователя по ID.
func (s *MethodService) Get(ctx context.Context, username string, id uuid.UUID) (*models.Method, error) {
	return s.repo.GetMethod(ctx, username, id)
}

// List возвращает список способов оплаты пользователя с пагинацией.
func (s *MethodService) List(ctx context.Context, username string, limit, offset int) ([]*models.Method, error) {
	return s.repo.ListMethods(ctx, username, limit, offset)
}

// Update применяет частичное обновление к способу оплаты и возвращает
// итоговое состояние. Поля со значением nil в патче не изменяются.
func (s *MethodService) Update(ctx context.Context, username string, id uuid.UUID, patch models.MethodPatch) (*models.Method, error) {
	method, err := s.repo.GetMethod(ctx, username, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(method)
	if err := s.repo.UpdateMethod(ctx, *method); err != nil {
		return nil, err
	}
	s.log.Info("updated method", slog.String("id", id.String()))
	return method, nil
}

// Remove удаляет способ оплаты пользователя. Подписки метода удаляются
// каскадно на стороне базы.
func (s *MethodService) Remove(ctx context.Context, username string, id uuid.UUID) error {
	if err := s.repo.RemoveMethod(ctx, username, id); err != nil {
		return err
	}
	s.log.Info("removed method", slog.String("id", id.String()))
	return nil
}

// Owns сообщает, принадлежит ли способ оплаты пользователю.
// Используется проверкой владения перед операциями над подписками.
func (s *MethodService) Owns(ctx context.Context, username string, id uuid.UUID) (bool, error) {
	const op = "services.method.Owns"
	ok, err := s.repo.MethodBelongsTo(ctx, id, username)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}
