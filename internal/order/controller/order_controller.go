package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"comngon/internal/auth/middleware"
	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error)
}

type OrderHistoryUseCase interface {
	ListOrders(ctx context.Context, userID uint) ([]dto.OrderSummary, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*dto.OrderDetail, error)
}

type OrderController struct {
	placeOrder PlaceOrderUseCase
	history    OrderHistoryUseCase
	logger     *zap.Logger
}

func NewOrderController(placeOrder PlaceOrderUseCase, history OrderHistoryUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		placeOrder: placeOrder,
		history:    history,
		logger:     logger,
	}
}

func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	orderID, err := c.placeOrder.PlaceOrder(r.Context(), userID, req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		Message: "order placed successfully",
		OrderID: orderID,
	})
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	orders, err := c.history.ListOrders(r.Context(), userID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{
		Message: "orders retrieved successfully",
		Orders:  orders,
	})
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		c.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	order, err := c.history.GetOrder(r.Context(), userID, uint(orderID))
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.GetOrderResponse{
		Message: "order retrieved successfully",
		Order:   *order,
	})
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
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

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
