package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache guarda o resultado de /horarios por (barbeiro, data).
// Sem REDIS_URL o cache fica desligado e todos os métodos viram no-op.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(redisURL string) *AvailabilityCache {
	if redisURL == "" {
		return &AvailabilityCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return &AvailabilityCache{}
	}

	return &AvailabilityCache{client: redis.NewClient(opts)}
}

func key(barberID, date string) string {
	return fmt.Sprintf("horarios:%s:%s", barberID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, bool) {

	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID string,
	date string,
	slots []string,
) {

	if c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(barberID, date), raw, availabilityTTL).Err(); err != nil {
		log.Printf("cache set error: %v", err)
	}
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	barberID string,
	date string,
) {

	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(barberID, date)).Err(); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}

// InvalidateBarber remove todas as datas de um barbeiro (usado quando a
// agenda semanal ou os bloqueios mudam).
func (c *AvailabilityCache) InvalidateBarber(
	ctx context.Context,
	barberID string,
) {

	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, fmt.Sprintf("horarios:%s:*", barberID), 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
