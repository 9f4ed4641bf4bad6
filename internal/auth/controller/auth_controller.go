package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"comngon/internal/domain"
	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

type RegisterUseCase interface {
	Register(ctx context.Context, name, email, phone, password string) (string, *domain.User, error)
}

type LoginUseCase interface {
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}

type AuthController struct {
	register RegisterUseCase
	login    LoginUseCase
	logger   *zap.Logger
}

func NewAuthController(register RegisterUseCase, login LoginUseCase, logger *zap.Logger) *AuthController {
	return &AuthController{
		register: register,
		login:    login,
		logger:   logger,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateRegisterRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	tokenStr, user, err := c.register.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "registration successful",
		Token:   tokenStr,
		User:    toUserDTO(user),
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateLoginRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	tokenStr, user, err := c.login.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.AuthResponse{
		Message: "login successful",
		Token:   tokenStr,
		User:    toUserDTO(user),
	})
}

func validateRegisterRequest(req dto.RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Phone == "" {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "phone is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details...)
	}

	return nil
}

func validateLoginRequest(req dto.LoginRequest) error {
	var details []apperrors.ValidationDetail

	if req.Email == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("missing required fields", details...)
	}

	return nil
}

func toUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

func (c *AuthController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	// Duplicate email/phone reports as 400 so the registration form can
	// surface it inline, matching the public API contract.
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusBadRequest, "CONFLICT", err.Error())
		return
	}

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *AuthController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *AuthController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *AuthController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
