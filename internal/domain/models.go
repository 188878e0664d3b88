package domain

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

const (
	EventOrderConfirmed = "order_confirmed"
	EventOrderDeleted   = "order_deleted"
)

type Restaurant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Registration is the payload returned to a freshly registered restaurant.
type Registration struct {
	TenantID   string `json:"tenant_id"`
	ClientLink string `json:"client_link"`
	StaffLink  string `json:"staff_link"`
}

type MenuItem struct {
	ID           int    `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	Image        string `json:"image,omitempty"`
}

// OrderLine is one entry of an order. Lines are persisted as a single JSON
// text blob in the orders table, never as normalized rows.
type OrderLine struct {
	DishID   int    `json:"dish_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	TableNumber  int         `json:"table_number"`
	Items        []OrderLine `json:"items"`
	Status       string      `json:"status"`
	TotalPrice   float64     `json:"total_price"`
	CreatedAt    time.Time   `json:"created_at"`
}

type DailyStats struct {
	TotalSales  float64 `json:"total_sales"`
	OrdersCount int     `json:"orders_count"`
}

// OrderEvent is emitted on status transitions and deletions. CreatedAt is the
// order's creation time, which is what daily stats are bucketed by.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
	Timestamp    time.Time `json:"timestamp"`
}
