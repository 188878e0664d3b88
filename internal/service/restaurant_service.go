package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"menuqr/internal/domain"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// TenantIDPrefix tags every issued restaurant identifier.
const TenantIDPrefix = "rest_"

type RestaurantService struct {
	repository RestaurantRepository
	cache      TenantCache
	baseURL    string
}

func NewRestaurantService(repository RestaurantRepository, cache TenantCache, baseURL string) *RestaurantService {
	return &RestaurantService{
		repository: repository,
		cache:      cache,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func newTenantID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TenantIDPrefix + raw[:12]
}

func (s *RestaurantService) Register(ctx context.Context, name, email string) (*domain.Registration, error) {
	if name == "" || email == "" {
		return nil, ErrValidation
	}

	exists, err := s.repository.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}

	rest := &domain.Restaurant{ID: newTenantID(), Name: name, Email: email}
	if err := s.repository.InsertRestaurant(rest); err != nil {
		return nil, fmt.Errorf("failed to insert restaurant: %w", err)
	}

	if err := s.cache.SetMarker(ctx, s.cache.MarkerKey(rest.ID)); err != nil {
		log.Printf("Warning: failed to cache restaurant marker: %v", err)
	}

	return &domain.Registration{
		TenantID:   rest.ID,
		ClientLink: s.ClientLink(rest.ID),
		StaffLink:  s.baseURL + "/staff/" + rest.ID,
	}, nil
}

func (s *RestaurantService) ClientLink(restaurantID string) string {
	return s.baseURL + "/client/" + restaurantID
}

// Validate fails closed: empty ids, ids without the rest_ prefix and unknown
// ids all come back false without distinguishing why.
func (s *RestaurantService) Validate(ctx context.Context, restaurantID string) (bool, error) {
	if restaurantID == "" || !strings.HasPrefix(restaurantID, TenantIDPrefix) {
		return false, nil
	}

	key := s.cache.MarkerKey(restaurantID)
	if cached, err := s.cache.Exists(ctx, key); err == nil && cached {
		return true, nil
	}

	exists, err := s.repository.RestaurantExists(restaurantID)
	if err != nil {
		return false, fmt.Errorf("failed to look up restaurant: %w", err)
	}
	if exists {
		if err := s.cache.SetMarker(ctx, key); err != nil {
			log.Printf("Warning: failed to cache restaurant marker: %v", err)
		}
	}
	return exists, nil
}

// Delete removes the restaurant together with its menu items and orders.
func (s *RestaurantService) Delete(ctx context.Context, restaurantID string) error {
	ok, err := s.Validate(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if _, err := s.repository.DeleteRestaurantCascade(restaurantID); err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if err := s.cache.Delete(ctx, s.cache.MarkerKey(restaurantID)); err != nil {
		log.Printf("Warning: failed to drop restaurant marker: %v", err)
	}
	return nil
}

// ClientQRCode renders the table-tent QR pointing at the client link.
func (s *RestaurantService) ClientQRCode(ctx context.Context, restaurantID string) ([]byte, error) {
	ok, err := s.Validate(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return qrcode.Encode(s.ClientLink(restaurantID), qrcode.Medium, 256)
}
