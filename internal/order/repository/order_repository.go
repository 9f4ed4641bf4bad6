package repository

import (
	"context"
	"database/sql"
	"fmt"

	"comngon/internal/domain"
	"comngon/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert writes the order header inside the caller's transaction and
// returns the generated id.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (user_id, customer_name, phone, address, note, total_amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.UserID, order.CustomerName, order.Phone, order.Address,
		order.Note, order.TotalAmount, order.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindByIDAndUser scopes the lookup to the owning user. An order that
// exists but belongs to someone else reports the same NotFoundError as a
// missing one.
func (r *MySQLOrderRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*domain.Order, error) {
	query := `
		SELECT id, user_id, customer_name, phone, address, note, total_amount, status, created_at
		FROM orders
		WHERE id = ? AND user_id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&order.ID, &order.UserID, &order.CustomerName, &order.Phone, &order.Address,
		&order.Note, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, customer_name, phone, address, note, total_amount, status, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by user: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.CustomerName, &order.Phone, &order.Address,
			&order.Note, &order.TotalAmount, &order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
