package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/rtcc_dashboard/internal/models"
)

// DefaultIncidentCacheTTL - время жизни записи кеша по умолчанию
const DefaultIncidentCacheTTL = 5 * time.Minute

// IncidentCache кеширует отдельные инциденты в Redis под ключами incident:<id>
type IncidentCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewIncidentCache(redisClient *redis.Client, ttl time.Duration) *IncidentCache {
	if ttl <= 0 {
		ttl = DefaultIncidentCacheTTL
	}
	return &IncidentCache{redisClient: redisClient, ttl: ttl}
}

func incidentKey(incidentID string) string {
	return fmt.Sprintf("incident:%s", incidentID)
}

// GetIncident пытается получить инцидент из Redis; промах - (nil, nil)
func (c *IncidentCache) GetIncident(ctx context.Context, incidentID string) (*models.Incident, error) {
	val, err := c.redisClient.Get(ctx, incidentKey(incidentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncident сохраняет инцидент в Redis
func (c *IncidentCache) SetIncident(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, incidentKey(incident.IncidentID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncident удаляет инцидент из кеша
func (c *IncidentCache) InvalidateIncident(ctx context.Context, incidentID string) error {
	if err := c.redisClient.Del(ctx, incidentKey(incidentID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
