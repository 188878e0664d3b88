package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"menuqr/internal/domain"
)

type OrderService struct {
	repository OrderRepository
	tenants    TenantValidator
	publisher  EventPublisher
}

func NewOrderService(repository OrderRepository, tenants TenantValidator, publisher EventPublisher) *OrderService {
	return &OrderService{
		repository: repository,
		tenants:    tenants,
		publisher:  publisher,
	}
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) (int, error) {
	ok, err := s.tenants.Validate(ctx, order.RestaurantID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	if order.TableNumber <= 0 || len(order.Items) == 0 {
		return 0, ErrValidation
	}
	for _, line := range order.Items {
		if line.DishID <= 0 || line.Quantity <= 0 {
			return 0, ErrValidation
		}
	}

	order.Status = domain.StatusPending
	if err := s.repository.InsertOrder(order); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return order.ID, nil
}

func (s *OrderService) ListPending(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.listByStatus(ctx, restaurantID, domain.StatusPending)
}

func (s *OrderService) ListConfirmed(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return s.listByStatus(ctx, restaurantID, domain.StatusConfirmed)
}

func (s *OrderService) listByStatus(ctx context.Context, restaurantID, status string) ([]domain.Order, error) {
	ok, err := s.tenants.Validate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.repository.ListOrdersByStatus(restaurantID, status)
}

// Confirm moves a pending order to confirmed. Confirming an already confirmed
// order is a no-op, not an error; the stats event is only emitted on the
// actual pending->confirmed transition so totals are not double counted.
func (s *OrderService) Confirm(ctx context.Context, orderID int) error {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return ErrNotFound
	}

	if _, err := s.repository.ConfirmOrder(orderID); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	if order.Status != domain.StatusConfirmed {
		s.publish(ctx, domain.OrderEvent{
			Type:         domain.EventOrderConfirmed,
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Status:       domain.StatusConfirmed,
			TotalPrice:   order.TotalPrice,
			CreatedAt:    order.CreatedAt,
			Timestamp:    time.Now(),
		})
	}
	return nil
}

// Delete is an unconditional hard delete regardless of status.
func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return ErrNotFound
	}

	affected, err := s.repository.DeleteOrder(orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if order.Status == domain.StatusConfirmed {
		s.publish(ctx, domain.OrderEvent{
			Type:         domain.EventOrderDeleted,
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
			TotalPrice:   order.TotalPrice,
			CreatedAt:    order.CreatedAt,
			Timestamp:    time.Now(),
		})
	}
	return nil
}

func (s *OrderService) Status(ctx context.Context, orderID int) (string, error) {
	order, err := s.repository.GetOrder(orderID)
	if err != nil {
		return "", fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return "", ErrNotFound
	}
	return order.Status, nil
}

func (s *OrderService) publish(ctx context.Context, evt domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		log.Printf("Warning: failed to publish %s for order %d: %v", evt.Type, evt.OrderID, err)
	}
}
