package tests

import (
	"context"
	"testing"
	"time"

	"menuqr/internal/domain"
	"menuqr/internal/mocks"
	"menuqr/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC)

	t.Run("confirmed_order_adds_to_daily_totals", func(t *testing.T) {
		cache := mocks.NewStatsCache(t)
		consumer := service.NewConsumer(nil, cache)

		cache.On("DailyKey", "2026-08-27", "rest_a").Return("stats:daily:2026-08-27:rest_a").Once()
		cache.On("AddDaily", ctx, "stats:daily:2026-08-27:rest_a", 10.5, int64(1)).Return(nil).Once()

		consumer.ProcessEvent(ctx, domain.OrderEvent{
			Type:         domain.EventOrderConfirmed,
			OrderID:      7,
			RestaurantID: "rest_a",
			TotalPrice:   10.5,
			CreatedAt:    createdAt,
		})
	})

	t.Run("deleted_confirmed_order_subtracts", func(t *testing.T) {
		cache := mocks.NewStatsCache(t)
		consumer := service.NewConsumer(nil, cache)

		cache.On("DailyKey", "2026-08-27", "rest_a").Return("stats:daily:2026-08-27:rest_a").Once()
		cache.On("AddDaily", ctx, "stats:daily:2026-08-27:rest_a", -20.25, int64(-1)).Return(nil).Once()

		consumer.ProcessEvent(ctx, domain.OrderEvent{
			Type:         domain.EventOrderDeleted,
			OrderID:      8,
			RestaurantID: "rest_a",
			TotalPrice:   20.25,
			CreatedAt:    createdAt,
		})
	})

	t.Run("unknown_event_type_is_ignored", func(t *testing.T) {
		cache := mocks.NewStatsCache(t)
		consumer := service.NewConsumer(nil, cache)

		cache.On("DailyKey", "2026-08-27", "rest_a").Return("stats:daily:2026-08-27:rest_a").Once()

		consumer.ProcessEvent(ctx, domain.OrderEvent{
			Type:         "order_created",
			RestaurantID: "rest_a",
			CreatedAt:    createdAt,
		})
		cache.AssertNotCalled(t, "AddDaily", ctx, "stats:daily:2026-08-27:rest_a", 0.0, int64(1))
	})
}
