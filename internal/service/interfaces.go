package service

import (
	"context"

	"menuqr/internal/domain"
)

type RestaurantRepository interface {
	InsertRestaurant(rest *domain.Restaurant) error
	EmailExists(email string) (bool, error)
	RestaurantExists(id string) (bool, error)
	DeleteRestaurantCascade(id string) (int64, error)
}

type MenuRepository interface {
	InsertMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID string) ([]domain.MenuItem, error)
	DeleteMenuItem(itemID int) (int64, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrdersByStatus(restaurantID, status string) ([]domain.Order, error)
	ConfirmOrder(orderID int) (int64, error)
	DeleteOrder(orderID int) (int64, error)
}

type StatsRepository interface {
	DailyStats(restaurantID, date string) (domain.DailyStats, error)
}

type TenantCache interface {
	MarkerKey(restaurantID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	Delete(ctx context.Context, key string) error
}

type StatsCache interface {
	DailyKey(date, restaurantID string) string
	GetDaily(ctx context.Context, key string) (*domain.DailyStats, error)
	AddDaily(ctx context.Context, key string, total float64, delta int64) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

// TenantValidator gates every tenant-scoped operation.
type TenantValidator interface {
	Validate(ctx context.Context, restaurantID string) (bool, error)
}

type RestaurantServiceInterface interface {
	Register(ctx context.Context, name, email string) (*domain.Registration, error)
	Validate(ctx context.Context, restaurantID string) (bool, error)
	Delete(ctx context.Context, restaurantID string) error
	ClientQRCode(ctx context.Context, restaurantID string) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	Add(ctx context.Context, item *domain.MenuItem) (int, error)
	Delete(ctx context.Context, itemID int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) (int, error)
	ListPending(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ListConfirmed(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Confirm(ctx context.Context, orderID int) error
	Delete(ctx context.Context, orderID int) error
	Status(ctx context.Context, orderID int) (string, error)
}

type StatsServiceInterface interface {
	Daily(ctx context.Context, restaurantID, date string) (domain.DailyStats, error)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
var _ TenantValidator = (*RestaurantService)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
var _ StatsServiceInterface = (*StatsService)(nil)
