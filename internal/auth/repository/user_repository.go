package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"comngon/internal/domain"
	apperrors "comngon/internal/errors"
)

const mysqlDuplicateEntry = 1062

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) Insert(ctx context.Context, user domain.User) (uint, error) {
	query := `INSERT INTO users (name, email, phone, password_hash) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, apperrors.NewConflictError("email or phone already registered")
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindByEmailOrPhone returns the first user whose email or phone matches
// either argument, or nil when no user matches.
func (r *MySQLUserRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash
		FROM users
		WHERE email = ? OR phone = ?
		LIMIT 1
	`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, email, phone).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email or phone: %w", err)
	}

	return &user, nil
}
