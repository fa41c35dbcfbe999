package token

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authservice "github.com/pan-subscribe-manager/finance-control/internal/services/auth"
)

// Мок сервиса с методом Login
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestTokenHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		mockToken      string
		mockErr        error
		expectCall     bool
		wantStatusCode int
		wantToken      string
		wantError      string
	}{
		{
			name: "successful login",
			form: url.Values{
				"username": {"testuser"},
				"password": {"password123"},
			},
			mockToken:      "signed-token",
			expectCall:     true,
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name: "missing username",
			form: url.Values{
				"password": {"password123"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "username and password are required",
		},
		{
			name: "missing password",
			form: url.Values{
				"username": {"testuser"},
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "username and password are required",
		},
		{
			name: "wrong credentials",
			form: url.Values{
				"username": {"testuser"},
				"password": {"wrongpass"},
			},
			mockErr:        authservice.ErrInvalidCredentials,
			expectCall:     true,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "incorrect username or password",
		},
		{
			name: "disabled user looks like wrong credentials",
			form: url.Values{
				"username": {"blocked"},
				"password": {"password123"},
			},
			mockErr:        authservice.ErrInactiveUser,
			expectCall:     true,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "incorrect username or password",
		},
		{
			name: "storage error",
			form: url.Values{
				"username": {"testuser"},
				"password": {"password123"},
			},
			mockErr:        errors.New("db error"),
			expectCall:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.expectCall {
				authMock.On("Login", mock.Anything, tt.form.Get("username"), tt.form.Get("password")).
					Return(tt.mockToken, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), authMock)

			req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, got["access_token"])
				assert.Equal(t, "bearer", got["token_type"])
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
