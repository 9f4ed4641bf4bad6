package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"comngon/internal/domain"
	apperrors "comngon/internal/errors"
)

const bcryptCost = 10

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (uint, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

type RegisterUseCase struct {
	userRepo UserRepository
	issuer   TokenIssuer
	logger   *zap.Logger
}

func NewRegisterUseCase(userRepo UserRepository, issuer TokenIssuer, logger *zap.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Register creates a new account and returns a fresh bearer token for it.
// Duplicate email and duplicate phone are reported as distinct conflicts so
// the client can point at the offending field.
func (uc *RegisterUseCase) Register(ctx context.Context, name, email, phone, password string) (string, *domain.User, error) {
	existing, err := uc.userRepo.FindByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return "", nil, apperrors.NewConflictError("email already registered")
		}
		return "", nil, apperrors.NewConflictError("phone number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
	}

	// The unique indexes on email and phone back up the pre-check above:
	// a racing duplicate insert still comes back as a ConflictError.
	userID, err := uc.userRepo.Insert(ctx, user)
	if err != nil {
		return "", nil, err
	}
	user.ID = userID

	tokenStr, err := uc.issuer.Issue(userID)
	if err != nil {
		return "", nil, apperrors.NewInternalError("issuing token", err)
	}

	uc.logger.Info("user registered", zap.Uint("userId", userID))

	return tokenStr, &user, nil
}
