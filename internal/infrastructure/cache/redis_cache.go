// Package cache implementa la caché de reportes de analítica sobre Redis.
// Los reportes de margen son costosos frente a consultas frecuentes del
// dashboard móvil; un TTL corto amortigua la carga sin comprometer frescura.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/wms-suite-api/internal/application/dto"
	"github.com/jhoicas/wms-suite-api/internal/application/usecase"
)

var _ usecase.ReportCache = (*RedisReportCache)(nil)

// RedisReportCache caché de reportes serializados como JSON en Redis.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache construye el cliente de caché.
func NewRedisReportCache(addr, password string, db int) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisReportCache{client: client}
}

// Ping verifica la conexión con Redis.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra la conexión.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// GetMarginReport devuelve el reporte cacheado bajo key, si existe y no expiró.
func (c *RedisReportCache) GetMarginReport(ctx context.Context, key string) (*dto.MarginReportDTO, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var report dto.MarginReportDTO
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal: %w", err)
	}
	return &report, true, nil
}

// SetMarginReport guarda el reporte bajo key con el TTL dado.
func (c *RedisReportCache) SetMarginReport(ctx context.Context, key string, report *dto.MarginReportDTO, ttl time.Duration) error {
	if report == nil {
		return nil
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
