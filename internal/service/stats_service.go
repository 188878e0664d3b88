package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"menuqr/internal/domain"
)

type StatsService struct {
	repository StatsRepository
	cache      StatsCache
	tenants    TenantValidator
}

func NewStatsService(repository StatsRepository, cache StatsCache, tenants TenantValidator) *StatsService {
	return &StatsService{
		repository: repository,
		cache:      cache,
		tenants:    tenants,
	}
}

// Daily sums confirmed orders created on the given calendar day. Reads go to
// the Redis hash maintained by the consumer first and fall back to SQL on a
// miss. An empty date means today.
func (s *StatsService) Daily(ctx context.Context, restaurantID, date string) (domain.DailyStats, error) {
	ok, err := s.tenants.Validate(ctx, restaurantID)
	if err != nil {
		return domain.DailyStats{}, err
	}
	if !ok {
		return domain.DailyStats{}, ErrNotFound
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if s.cache != nil {
		if cached, err := s.cache.GetDaily(ctx, s.cache.DailyKey(date, restaurantID)); err == nil && cached != nil {
			cached.TotalSales = round2(cached.TotalSales)
			return *cached, nil
		}
	}

	stats, err := s.repository.DailyStats(restaurantID, date)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("failed to aggregate daily stats: %w", err)
	}
	stats.TotalSales = round2(stats.TotalSales)
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
