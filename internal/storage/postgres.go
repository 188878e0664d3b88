package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"menuqr/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			price TEXT,
			image_data TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			table_number INTEGER NOT NULL,
			items TEXT NOT NULL,
			status TEXT DEFAULT 'pending',
			total_price REAL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// --- restaurants ---

func (r *PostgresRepository) InsertRestaurant(rest *domain.Restaurant) error {
	_, err := r.DB.Exec(
		"INSERT INTO restaurants (id, name, email) VALUES ($1, $2, $3)",
		rest.ID, rest.Name, rest.Email)
	return err
}

func (r *PostgresRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) RestaurantExists(id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// DeleteRestaurantCascade removes the restaurant's orders and menu items
// before the restaurant row itself, all in one transaction.
func (r *PostgresRepository) DeleteRestaurantCascade(id string) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM orders WHERE restaurant_id = $1", id); err != nil {
		return 0, err
	}
	if _, err := tx.Exec("DELETE FROM menu_items WHERE restaurant_id = $1", id); err != nil {
		return 0, err
	}
	result, err := tx.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return affected, nil
}

// --- menu items ---

func (r *PostgresRepository) InsertMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, category, price, image_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, item.RestaurantID, item.Name, item.Description, item.Category, item.Price, item.Image).
		Scan(&item.ID)
}

func (r *PostgresRepository) ListMenuItems(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), COALESCE(category, ''),
		       COALESCE(price, ''), COALESCE(image_data, '')
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Category, &item.Price, &item.Image); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) DeleteMenuItem(itemID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- orders ---

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	payload, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO orders (restaurant_id, table_number, items, status, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, order.RestaurantID, order.TableNumber, string(payload), order.Status, order.TotalPrice).
		Scan(&order.ID, &order.CreatedAt)
}

// GetOrder returns (nil, nil) when the order does not exist.
func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	var items string

	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, table_number, items, status, total_price, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &items,
		&order.Status, &order.TotalPrice, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// The items column is an opaque blob; a malformed one is served empty
	// rather than failing the whole read.
	if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
		order.Items = nil
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrdersByStatus(restaurantID, status string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, table_number, items, status, total_price, created_at
		FROM orders
		WHERE restaurant_id = $1 AND status = $2
		ORDER BY created_at DESC
	`, restaurantID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var items string
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &items,
			&order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
			order.Items = nil
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) ConfirmOrder(orderID int) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE orders SET status = $1 WHERE id = $2", domain.StatusConfirmed, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteOrder(orderID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// --- stats ---

func (r *PostgresRepository) DailyStats(restaurantID, date string) (domain.DailyStats, error) {
	var stats domain.DailyStats
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(total_price), 0), COUNT(*)
		FROM orders
		WHERE restaurant_id = $1 AND status = 'confirmed' AND created_at::date = $2::date
	`, restaurantID, date).Scan(&stats.TotalSales, &stats.OrdersCount)
	return stats, err
}
