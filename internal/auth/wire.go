package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"comngon/internal/auth/controller"
	"comngon/internal/auth/repository"
	"comngon/internal/auth/token"
	"comngon/internal/auth/usecase"
	"comngon/internal/config"
)

// NewModule wires the auth slice: user repository, token issuer, the
// register/login use cases and their controller. The issuer is returned
// separately so the router can build the auth middleware from it.
func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) (*controller.AuthController, *token.Issuer) {
	userRepo := repository.NewMySQLUserRepository(db)
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	registerUC := usecase.NewRegisterUseCase(userRepo, issuer, logger)
	loginUC := usecase.NewLoginUseCase(userRepo, issuer, logger)

	return controller.NewAuthController(registerUC, loginUC, logger), issuer
}
