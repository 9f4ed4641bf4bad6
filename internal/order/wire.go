package order

import (
	"database/sql"

	"go.uber.org/zap"

	"comngon/internal/order/controller"
	orderrepo "comngon/internal/order/repository"
	"comngon/internal/order/service"
	"comngon/internal/order/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)

	placementSvc := service.NewPlacementService(db, orderRepo, orderItemRepo, logger)

	placeOrderUC := usecase.NewPlaceOrderUseCase(placementSvc, logger)
	historyUC := usecase.NewOrderHistoryUseCase(orderRepo, orderItemRepo, logger)

	return controller.NewOrderController(placeOrderUC, historyUC, logger)
}
