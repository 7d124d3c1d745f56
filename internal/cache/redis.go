package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"trace-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	lotStatsKey = "lots:stats"

	barcodeTTL = 24 * time.Hour
	statsTTL   = 1 * time.Minute
)

var client *redis.Client

// Init connects to Redis. On failure the client stays nil and every cache
// call degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "redis"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetCachedBarcode returns a previously rendered barcode PNG for a lot number.
func GetCachedBarcode(ctx context.Context, lotNumber string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, "barcode:"+lotNumber).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheBarcode stores a rendered barcode PNG. Barcodes are deterministic per
// lot number, so a long TTL is safe.
func CacheBarcode(ctx context.Context, lotNumber string, png []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, "barcode:"+lotNumber, png, barcodeTTL)
}

// GetCachedLotStats returns the cached dashboard stats if present.
func GetCachedLotStats(ctx context.Context) (*models.LotStats, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, lotStatsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats models.LotStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// CacheLotStats stores dashboard stats for a short window.
func CacheLotStats(ctx context.Context, stats *models.LotStats) {
	if client == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	client.Set(ctx, lotStatsKey, data, statsTTL)
}

// InvalidateLotStats drops the stats entry after a write.
func InvalidateLotStats(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, lotStatsKey)
}
