package usecase

import (
	"context"

	"go.uber.org/zap"

	"comngon/internal/domain"
	"comngon/internal/dto"
)

type OrderRepository interface {
	FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Order, error)
}

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
	ListByOrderIDs(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderItem, error)
}

// OrderHistoryUseCase serves the read side: a user's order history and
// single-order detail, always scoped to the authenticated user.
type OrderHistoryUseCase struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
}

func NewOrderHistoryUseCase(
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderHistoryUseCase {
	return &OrderHistoryUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

// ListOrders returns every order owned by userID, newest first, with the
// line items folded in. The headers and the items come from two queries
// joined here rather than a store-side aggregation.
func (uc *OrderHistoryUseCase) ListOrders(ctx context.Context, userID uint) ([]dto.OrderSummary, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uint, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	itemsByOrder, err := uc.orderItemRepo.ListByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.OrderSummary, len(orders))
	for i, order := range orders {
		// An order without items should not exist given the write
		// invariant, but it lists as an empty sequence rather than failing.
		items := make([]dto.OrderItemSummary, 0, len(itemsByOrder[order.ID]))
		for _, item := range itemsByOrder[order.ID] {
			items = append(items, dto.OrderItemSummary{
				Name:     item.ProductName,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}

		summaries[i] = dto.OrderSummary{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			Phone:        order.Phone,
			Address:      order.Address,
			Note:         order.Note,
			TotalAmount:  order.TotalAmount,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
			Items:        items,
		}
	}

	uc.logger.Debug("orders listed", zap.Uint("userId", userID), zap.Int("count", len(summaries)))

	return summaries, nil
}

// GetOrder returns the header and full item rows of one order. A missing
// order and another user's order are indistinguishable to the caller.
func (uc *OrderHistoryUseCase) GetOrder(ctx context.Context, userID, orderID uint) (*dto.OrderDetail, error) {
	order, err := uc.orderRepo.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]dto.OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, dto.OrderItemDTO{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &dto.OrderDetail{
		ID:           order.ID,
		UserID:       order.UserID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		Note:         order.Note,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
		Items:        itemDTOs,
	}, nil
}
