package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local test database. Tests that need it are
// skipped when a MySQL instance named 'comngon_test' is not reachable on
// localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/comngon_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_items", "orders", "users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		phone VARCHAR(30) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id INT UNSIGNED NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		address VARCHAR(255) NOT NULL,
		note TEXT,
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id),
		INDEX idx_user (user_id)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS order_items (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id INT UNSIGNED NOT NULL,
		product_id INT NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		INDEX idx_order (order_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"users", createUsersTable},
		{"orders", createOrdersTable},
		{"order_items", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// InsertTestUser creates a user row for tests that need an owner for
// orders, returning its id.
func InsertTestUser(t *testing.T, db *sql.DB, name, email, phone string) uint {
	result, err := db.Exec(
		`INSERT INTO users (name, email, phone, password_hash) VALUES (?, ?, ?, ?)`,
		name, email, phone, "test-hash",
	)
	if err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get test user id: %v", err)
	}

	return uint(id)
}
