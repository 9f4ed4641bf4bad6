package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"comngon/internal/domain"
	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

// PlacementService owns the one transaction in this system: the order
// header and all of its items are written inside a single *sql.Tx, so a
// failure at any point leaves no rows behind.
type PlacementService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewPlacementService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *PlacementService {
	return &PlacementService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

func (s *PlacementService) PlaceOrder(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, apperrors.NewInternalError("placing order", err)
	}
	// Rollback on every exit path. MySQL ignores it after a commit.
	defer tx.Rollback()

	order := domain.Order{
		UserID:       userID,
		CustomerName: req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Note:         req.Note,
		TotalAmount:  req.Total,
		Status:       domain.OrderStatusPending,
	}

	orderID, err := s.orderRepo.Insert(ctx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Uint("userId", userID), zap.Error(err))
		return 0, apperrors.NewInternalError("placing order", err)
	}

	for _, item := range req.Items {
		orderItem := domain.OrderItem{
			OrderID:     orderID,
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}

		if _, err := s.orderItemRepo.Insert(ctx, tx, orderItem); err != nil {
			s.logger.Error("failed to insert order item",
				zap.Uint("orderId", orderID), zap.Int("productId", item.ProductID), zap.Error(err))
			return 0, apperrors.NewInternalError("placing order", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, apperrors.NewInternalError("placing order", err)
	}

	s.logger.Info("order placed",
		zap.Uint("orderId", orderID), zap.Uint("userId", userID),
		zap.Int("itemCount", len(req.Items)), zap.Float64("totalAmount", req.Total))

	return orderID, nil
}
