package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"comngon/internal/domain"
	apperrors "comngon/internal/errors"
)

type LoginUseCase struct {
	userRepo UserRepository
	issuer   TokenIssuer
	logger   *zap.Logger
}

func NewLoginUseCase(userRepo UserRepository, issuer TokenIssuer, logger *zap.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login accepts the registered email or phone number as the identifier.
// Unknown identifier and wrong password produce the same generic failure so
// callers cannot probe which accounts exist.
func (uc *LoginUseCase) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	user, err := uc.userRepo.FindByEmailOrPhone(ctx, identifier, identifier)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.NewUnauthorizedError("invalid email/phone or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.NewUnauthorizedError("invalid email/phone or password")
	}

	tokenStr, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, apperrors.NewInternalError("issuing token", err)
	}

	uc.logger.Info("user logged in", zap.Uint("userId", user.ID))

	return tokenStr, user, nil
}
