package service

import (
	"context"
	"encoding/json"
	"log"

	"menuqr/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer folds order events into the per-day Redis stats hashes.
type Consumer struct {
	Reader *kafka.Reader
	Cache  StatsCache
}

func NewConsumer(reader *kafka.Reader, cache StatsCache) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order stats consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, evt)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) {
	day := evt.CreatedAt.Format("2006-01-02")
	key := c.Cache.DailyKey(day, evt.RestaurantID)

	switch evt.Type {
	case domain.EventOrderConfirmed:
		if err := c.Cache.AddDaily(ctx, key, evt.TotalPrice, 1); err != nil {
			log.Printf("Error updating daily stats: %v", err)
			return
		}
	case domain.EventOrderDeleted:
		if err := c.Cache.AddDaily(ctx, key, -evt.TotalPrice, -1); err != nil {
			log.Printf("Error updating daily stats: %v", err)
			return
		}
	default:
		return
	}

	log.Printf("Processed %s for order %d (restaurant %s)", evt.Type, evt.OrderID, evt.RestaurantID)
}
