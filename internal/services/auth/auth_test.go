package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pan-subscribe-manager/finance-control/internal/lib/jwt"
	"github.com/pan-subscribe-manager/finance-control/internal/lib/password"
	"github.com/pan-subscribe-manager/finance-control/internal/models"
	services "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
	"github.com/pan-subscribe-manager/finance-control/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		req        models.RegisterRequest
		setupMocks func(r *UserRepoMock)
		wantErr    bool
		errIs      error
	}{
		{
			name: "successful registration",
			req: models.RegisterRequest{
				Username: "testuser",
				Password: "password123",
				FullName: "Test User",
				Email:    "test@example.com",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					ok, err := password.Verify("password123", user.PasswordHash)
					return user.Username == "testuser" &&
						user.Email == "test@example.com" &&
						user.PasswordHash != "password123" &&
						err == nil && ok
				})).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "duplicate username",
			req: models.RegisterRequest{
				Username: "testuser",
				Password: "password123",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(repository.ErrConflict).Once()
			},
			wantErr: true,
			errIs:   repository.ErrConflict,
		},
		{
			name: "repository error",
			req: models.RegisterRequest{
				Username: "testuser",
				Password: "password123",
			},
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo)

			got, err := svc.Register(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Username, got.Username)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"
	hashed, err := password.Hash(rawPassword)
	assert.NoError(t, err)

	activeUser := &models.User{Username: "testuser", PasswordHash: hashed}
	disabledUser := &models.User{Username: "blocked", PasswordHash: hashed, Disabled: true}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErrIs  error
	}{
		{
			name:     "successful login",
			username: "testuser",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(activeUser, nil).Once()
				j.On("GenerateToken", "testuser").Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErrIs: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(activeUser, nil).Once()
			},
			wantErrIs: services.ErrInvalidCredentials,
		},
		{
			name:     "disabled user",
			username: "blocked",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByUsername", mock.Anything, "blocked").Return(disabledUser, nil).Once()
			},
			wantErrIs: services.ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	activeUser := &models.User{Username: "testuser"}
	disabledUser := &models.User{Username: "blocked", Disabled: true}

	tests := []struct {
		name       string
		token      string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantUser   *models.User
		wantErrIs  error
	}{
		{
			name:  "valid token and active user",
			token: "valid-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "valid-token").Return("testuser", nil).Once()
				r.On("GetUserByUsername", mock.Anything, "testuser").Return(activeUser, nil).Once()
			},
			wantUser: activeUser,
		},
		{
			name:  "invalid token",
			token: "bad-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "bad-token").Return("", jwt.ErrInvalidToken).Once()
			},
			wantErrIs: jwt.ErrInvalidToken,
		},
		{
			name:  "token subject no longer exists",
			token: "stale-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "stale-token").Return("deleted", nil).Once()
				r.On("GetUserByUsername", mock.Anything, "deleted").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErrIs: jwt.ErrInvalidToken,
		},
		{
			name:  "disabled user",
			token: "valid-token",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				j.On("ParseToken", "valid-token").Return("blocked", nil).Once()
				r.On("GetUserByUsername", mock.Anything, "blocked").Return(disabledUser, nil).Once()
			},
			wantErrIs: services.ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			user, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_SeedAdmin(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		ok, err := password.Verify("admin", user.PasswordHash)
		return user.Username == "admin" && err == nil && ok
	})).Return(nil).Once()

	svc := services.NewAuthService(repo, new(JwtMakerMock))
	err := svc.SeedAdmin(context.Background())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
