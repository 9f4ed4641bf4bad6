package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"comngon/internal/domain"
	apperrors "comngon/internal/errors"
)

func hashedPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()

	userRepo := &mockUserRepository{
		FindByEmailOrPhoneFunc: func(ctx context.Context, email, phone string) (*domain.User, error) {
			if email != "an@example.com" || phone != "an@example.com" {
				t.Errorf("identifier must be matched against both columns, got %q / %q", email, phone)
			}
			return &domain.User{
				ID:           9,
				Name:         "An",
				Email:        "an@example.com",
				Phone:        "0901234567",
				PasswordHash: hashedPassword(t, "secret"),
			}, nil
		},
	}
	issuer := &mockTokenIssuer{
		IssueFunc: func(userID uint) (string, error) {
			return "signed-token", nil
		},
	}

	uc := NewLoginUseCase(userRepo, issuer, zap.NewNop())

	tokenStr, user, err := uc.Login(ctx, "an@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr != "signed-token" {
		t.Errorf("expected signed-token, got %q", tokenStr)
	}
	if user.ID != 9 {
		t.Errorf("expected user id 9, got %d", user.ID)
	}
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	ctx := context.Background()

	userRepo := &mockUserRepository{
		FindByEmailOrPhoneFunc: func(ctx context.Context, email, phone string) (*domain.User, error) {
			return nil, nil
		},
	}
	issuer := &mockTokenIssuer{}

	uc := NewLoginUseCase(userRepo, issuer, zap.NewNop())

	_, _, err := uc.Login(ctx, "nobody@example.com", "secret")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	ue, ok := apperrors.IsUnauthorizedError(err)
	if !ok {
		t.Fatalf("expected UnauthorizedError, got %T", err)
	}
	if ue.Message != "invalid email/phone or password" {
		t.Errorf("unexpected message: %q", ue.Message)
	}
}

func TestLogin_WrongPassword_SameMessageAsUnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := &mockUserRepository{
		FindByEmailOrPhoneFunc: func(ctx context.Context, email, phone string) (*domain.User, error) {
			return &domain.User{
				ID:           9,
				Email:        "an@example.com",
				PasswordHash: hashedPassword(t, "secret"),
			}, nil
		},
	}
	issuer := &mockTokenIssuer{}

	uc := NewLoginUseCase(userRepo, issuer, zap.NewNop())

	_, _, err := uc.Login(ctx, "an@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	ue, ok := apperrors.IsUnauthorizedError(err)
	if !ok {
		t.Fatalf("expected UnauthorizedError, got %T", err)
	}
	// Wrong password and unknown identifier must be indistinguishable.
	if ue.Message != "invalid email/phone or password" {
		t.Errorf("unexpected message: %q", ue.Message)
	}
}

func TestLogin_ByPhone(t *testing.T) {
	ctx := context.Background()

	userRepo := &mockUserRepository{
		FindByEmailOrPhoneFunc: func(ctx context.Context, email, phone string) (*domain.User, error) {
			if phone == "0901234567" {
				return &domain.User{
					ID:           9,
					Phone:        "0901234567",
					PasswordHash: hashedPassword(t, "secret"),
				}, nil
			}
			return nil, nil
		},
	}
	issuer := &mockTokenIssuer{
		IssueFunc: func(userID uint) (string, error) {
			return "signed-token", nil
		},
	}

	uc := NewLoginUseCase(userRepo, issuer, zap.NewNop())

	_, user, err := uc.Login(ctx, "0901234567", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 9 {
		t.Errorf("expected user id 9, got %d", user.ID)
	}
}
