package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"comngon/internal/domain"
	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

// Mock implementations

type mockRegisterUseCase struct {
	RegisterFunc func(ctx context.Context, name, email, phone, password string) (string, *domain.User, error)
}

func (m *mockRegisterUseCase) Register(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
	return m.RegisterFunc(ctx, name, email, phone, password)
}

type mockLoginUseCase struct {
	LoginFunc func(ctx context.Context, identifier, password string) (string, *domain.User, error)
}

func (m *mockLoginUseCase) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	return m.LoginFunc(ctx, identifier, password)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)

	return rec
}

// Tests

func TestAuthController_Register_Created(t *testing.T) {
	register := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{
				ID: 5, Name: name, Email: email, Phone: phone,
			}, nil
		},
	}
	ctrl := NewAuthController(register, &mockLoginUseCase{}, zap.NewNop())

	rec := postJSON(t, ctrl.Register, dto.RegisterRequest{
		Name: "An", Email: "an@example.com", Phone: "0901234567", Password: "secret",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, uint(5), resp.User.ID)
	assert.Equal(t, "an@example.com", resp.User.Email)
	// The response never carries credentials.
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestAuthController_Register_MissingFields(t *testing.T) {
	register := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
			t.Fatal("use case must not be called for an invalid request")
			return "", nil, nil
		},
	}
	ctrl := NewAuthController(register, &mockLoginUseCase{}, zap.NewNop())

	rec := postJSON(t, ctrl.Register, dto.RegisterRequest{Name: "An"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
	assert.Contains(t, rec.Body.String(), "phone")
	assert.Contains(t, rec.Body.String(), "password")
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	register := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
			return "", nil, apperrors.NewConflictError("email already registered")
		},
	}
	ctrl := NewAuthController(register, &mockLoginUseCase{}, zap.NewNop())

	rec := postJSON(t, ctrl.Register, dto.RegisterRequest{
		Name: "An", Email: "an@example.com", Phone: "0901234567", Password: "secret",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

func TestAuthController_Login_OK(t *testing.T) {
	login := &mockLoginUseCase{
		LoginFunc: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			assert.Equal(t, "an@example.com", identifier)
			return "signed-token", &domain.User{ID: 5, Email: identifier}, nil
		},
	}
	ctrl := NewAuthController(&mockRegisterUseCase{}, login, zap.NewNop())

	rec := postJSON(t, ctrl.Login, dto.LoginRequest{Email: "an@example.com", Password: "secret"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	login := &mockLoginUseCase{
		LoginFunc: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			return "", nil, apperrors.NewUnauthorizedError("invalid email/phone or password")
		},
	}
	ctrl := NewAuthController(&mockRegisterUseCase{}, login, zap.NewNop())

	rec := postJSON(t, ctrl.Login, dto.LoginRequest{Email: "an@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email/phone or password")
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	ctrl := NewAuthController(&mockRegisterUseCase{}, &mockLoginUseCase{}, zap.NewNop())

	rec := postJSON(t, ctrl.Login, dto.LoginRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthController_Register_InvalidJSON(t *testing.T) {
	ctrl := NewAuthController(&mockRegisterUseCase{}, &mockLoginUseCase{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
