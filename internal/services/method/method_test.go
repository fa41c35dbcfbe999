package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pan-subscribe-manager/finance-control/internal/models"
	services "github.com/pan-subscribe-manager/finance-control/internal/services/method"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Мок для MethodRepository
type MethodRepoMock struct {
	mock.Mock
}

func (m *MethodRepoMock) CreateMethod(ctx context.Context, method models.Method) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MethodRepoMock) GetMethod(ctx context.Context, username string, id uuid.UUID) (*models.Method, error) {
	args := m.Called(ctx, username, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Method), args.Error(1)
}

func (m *MethodRepoMock) ListMethods(ctx context.Context, username string, limit, offset int) ([]*models.Method, error) {
	args := m.Called(ctx, username, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Method), args.Error(1)
}

func (m *MethodRepoMock) UpdateMethod(ctx context.Context, method models.Method) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MethodRepoMock) RemoveMethod(ctx context.Context, username string, id uuid.UUID) error {
	args := m.Called(ctx, username, id)
	return args.Error(0)
}

func (m *MethodRepoMock) MethodBelongsTo(ctx context.Context, id uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, id, username)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestMethodService_Create(t *testing.T) {
	repo := new(MethodRepoMock)
	svc := services.NewMethodService(repo, newNoopLogger())

	draft := models.MethodDraft{
		Name: "Main card",
		Kind: models.KindCreditCard,
	}

	repo.On("CreateMethod", mock.Anything, mock.MatchedBy(func(method models.Method) bool {
		return method.Name == "Main card" &&
			method.Kind == models.KindCreditCard &&
			method.Username == "testuser" &&
			method.ID != uuid.Nil
	})).Return(nil).Once()

	got, err := svc.Create(context.Background(), "testuser", draft)
	require.NoError(t, err)
	assert.Equal(t, "Main card", got.Name)
	assert.Equal(t, "testuser", got.Username)

	repo.AssertExpectations(t)
}

func TestMethodService_Update_AppliesOnlyGivenFields(t *testing.T) {
	repo := new(MethodRepoMock)
	svc := services.NewMethodService(repo, newNoopLogger())

	id := uuid.New()
	existing := &models.Method{
		ID:       id,
		Name:     "Main card",
		Kind:     models.KindCreditCard,
		Username: "testuser",
	}

	newName := "Backup card"
	patch := models.MethodPatch{Name: &newName}

	repo.On("GetMethod", mock.Anything, "testuser", id).Return(existing, nil).Once()
	repo.On("UpdateMethod", mock.Anything, mock.MatchedBy(func(method models.Method) bool {
		return method.Name == "Backup card" && method.Kind == models.KindCreditCard
	})).Return(nil).Once()

	got, err := svc.Update(context.Background(), "testuser", id, patch)
	require.NoError(t, err)
	assert.Equal(t, "Backup card", got.Name)
	assert.Equal(t, models.KindCreditCard, got.Kind)

	repo.AssertExpectations(t)
}

func TestMethodService_Update_NotFound(t *testing.T) {
	repo := new(MethodRepoMock)
	svc := services.NewMethodService(repo, newNoopLogger())

	id := uuid.New()
	repo.On("GetMethod", mock.Anything, "testuser", id).
		Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), "testuser", id, models.MethodPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMethodService_Owns(t *testing.T) {
	tests := []struct {
		name     string
		owns     bool
		repoErr  error
		wantOwns bool
		wantErr  bool
	}{
		{
			name:     "owner",
			owns:     true,
			wantOwns: true,
		},
		{
			name:     "not owner",
			owns:     false,
			wantOwns: false,
		},
		{
			name:    "repository error",
			repoErr: errors.New("db error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MethodRepoMock)
			svc := services.NewMethodService(repo, newNoopLogger())

			id := uuid.New()
			repo.On("MethodBelongsTo", mock.Anything, id, "testuser").
				Return(tt.owns, tt.repoErr).Once()

			owns, err := svc.Owns(context.Background(), "testuser", id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOwns, owns)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestMethodService_List(t *testing.T) {
	repo := new(MethodRepoMock)
	svc := services.NewMethodService(repo, newNoopLogger())

	methods := []*models.Method{
		{ID: uuid.New(), Name: "Card", Username: "testuser"},
		{ID: uuid.New(), Name: "Wallet", Username: "testuser"},
	}

	repo.On("ListMethods", mock.Anything, "testuser", 10, 0).Return(methods, nil).Once()

	got, err := svc.List(context.Background(), "testuser", 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
