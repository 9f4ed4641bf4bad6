package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"comngon/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	query := `INSERT INTO order_items (order_id, product_id, product_name, price, quantity) VALUES (?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, item.OrderID, item.ProductID, item.ProductName, item.Price, item.Quantity)
	if err != nil {
		return 0, fmt.Errorf("inserting order item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderItemRepository) ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, price, quantity
		FROM order_items
		WHERE order_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListByOrderIDs fetches the items of several orders in one query and
// groups them by order id. Orders without items simply have no entry in
// the returned map.
func (r *MySQLOrderItemRepository) ListByOrderIDs(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderItem, error) {
	grouped := make(map[uint][]domain.OrderItem)
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	placeholders := strings.Repeat("?,", len(orderIDs))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT id, order_id, product_id, product_name, price, quantity
		FROM order_items
		WHERE order_id IN (%s)
	`, placeholders)

	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}

	return grouped, nil
}

func scanItems(rows *sql.Rows) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Price, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
