package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-tap-engine/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PolicyCache implements ports.PolicyCache using Redis. Policies are
// stored JSON-encoded under a "policy:" prefix keyed by the normalized
// service name.
type PolicyCache struct {
	client *goredis.Client
	prefix string
}

// NewPolicyCache creates a new Redis-backed policy cache.
func NewPolicyCache(client *goredis.Client) *PolicyCache {
	return &PolicyCache{
		client: client,
		prefix: "policy:",
	}
}

// Get retrieves a cached policy by service name.
// Returns nil, nil on a cache miss.
func (c *PolicyCache) Get(ctx context.Context, service string) (*domain.Policy, error) {
	val, err := c.client.Get(ctx, c.prefix+service).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis policy get: %w", err)
	}

	var p domain.Policy
	if err := json.Unmarshal(val, &p); err != nil {
		return nil, fmt.Errorf("decode cached policy: %w", err)
	}
	return &p, nil
}

// Set stores a policy with TTL, keyed by its service name.
func (c *PolicyCache) Set(ctx context.Context, policy *domain.Policy, ttl time.Duration) error {
	val, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("encode policy: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+policy.Service, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis policy set: %w", err)
	}
	return nil
}
