package main

import (
	"context"
	"log"
	"time"

	"menuqr/config"
	httpapi "menuqr/internal/api/http"
	"menuqr/internal/service"
	"menuqr/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	reader := config.NewKafkaReader("orders", "stats-agg")
	defer reader.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(writer)

	restaurants := service.NewRestaurantService(repository, cache, config.BaseURL())
	menu := service.NewMenuService(repository, restaurants)
	orders := service.NewOrderService(repository, restaurants, publisher)
	stats := service.NewStatsService(repository, cache, restaurants)

	consumer := service.NewConsumer(reader, cache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(restaurants, menu, orders, stats)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Port(), router)
}
