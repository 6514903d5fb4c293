package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-appointment-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SearchCache keeps search results in Redis keyed by the effective filter.
// The directory is immutable after seeding, so cached entries can never go
// stale; the TTL only bounds memory. A nil client disables the cache and
// every lookup reports a miss.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewSearchCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *SearchCache {
	return &SearchCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *SearchCache) key(filter entity.DoctorFilter) string {
	return fmt.Sprintf("doctor_search:%s|%s",
		strings.ToLower(filter.Specialization), strings.ToLower(filter.Location))
}

func (c *SearchCache) Get(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, c.key(filter)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Search cache read failed: %+v", err)
		}
		return nil, false
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal([]byte(payload), &doctors); err != nil {
		c.log.Warnf("Search cache entry corrupt, ignoring: %+v", err)
		return nil, false
	}
	return doctors, true
}

func (c *SearchCache) Set(ctx context.Context, filter entity.DoctorFilter, doctors []entity.Doctor) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode search cache entry: %+v", err)
		return
	}

	if err := c.client.Set(ctx, c.key(filter), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Search cache write failed: %+v", err)
	}
}
