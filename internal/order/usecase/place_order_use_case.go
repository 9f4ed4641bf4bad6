package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

type PlacementService interface {
	PlaceOrder(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error)
}

type PlaceOrderUseCase struct {
	placementSvc PlacementService
	logger       *zap.Logger
}

func NewPlaceOrderUseCase(placementSvc PlacementService, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		placementSvc: placementSvc,
		logger:       logger,
	}
}

// PlaceOrder validates the payload before any transaction is opened, then
// hands the write to the placement service.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
	if err := validatePlaceOrderRequest(req); err != nil {
		return 0, err
	}

	uc.logger.Info("place order started",
		zap.Uint("userId", userID), zap.Int("itemCount", len(req.Items)))

	return uc.placementSvc.PlaceOrder(ctx, userID, req)
}

func validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.Phone == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if req.Address == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "address",
			Message: "address is required",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, item := range req.Items {
		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.Price < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].price",
				Message: "price must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid order payload", details...)
	}

	return nil
}
