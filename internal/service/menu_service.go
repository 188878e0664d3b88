package service

import (
	"context"
	"fmt"
	"strconv"

	"menuqr/internal/domain"
)

type MenuService struct {
	repository MenuRepository
	tenants    TenantValidator
}

func NewMenuService(repository MenuRepository, tenants TenantValidator) *MenuService {
	return &MenuService{repository: repository, tenants: tenants}
}

func (s *MenuService) List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	ok, err := s.tenants.Validate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.repository.ListMenuItems(restaurantID)
}

func (s *MenuService) Add(ctx context.Context, item *domain.MenuItem) (int, error) {
	ok, err := s.tenants.Validate(ctx, item.RestaurantID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	if item.Name == "" || item.Description == "" || item.Category == "" || item.Price == "" {
		return 0, ErrValidation
	}
	// Price is stored as text but has to be a non-negative decimal.
	price, err := strconv.ParseFloat(item.Price, 64)
	if err != nil || price < 0 {
		return 0, ErrValidation
	}

	if err := s.repository.InsertMenuItem(item); err != nil {
		return 0, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return item.ID, nil
}

// Delete is by item id only. The original flow never checked the item against
// the caller's restaurant, and the route carries no tenant id to check with.
func (s *MenuService) Delete(ctx context.Context, itemID int) error {
	affected, err := s.repository.DeleteMenuItem(itemID)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
