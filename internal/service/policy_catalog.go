package service

import (
	"context"
	"time"

	"campus-tap-engine/internal/core/domain"
	"campus-tap-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// PolicyCatalogImpl implements ports.PolicyCatalog: a Redis read-through
// cache in front of the policies table, with the built-in default table
// as last resort so taps keep resolving while the store is cold or down.
type PolicyCatalogImpl struct {
	policyRepo ports.PolicyRepository
	cache      ports.PolicyCache // nil = caching disabled
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewPolicyCatalog creates a new PolicyCatalogImpl.
func NewPolicyCatalog(
	policyRepo ports.PolicyRepository,
	cache ports.PolicyCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *PolicyCatalogImpl {
	return &PolicyCatalogImpl{
		policyRepo: policyRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// Lookup resolves a service name to its policy, case-insensitively.
// Resolution order: cache, store, built-in defaults. A store failure
// degrades to the defaults instead of failing the tap; only a service
// with no stored row and no default resolves to nil.
func (c *PolicyCatalogImpl) Lookup(ctx context.Context, serviceName string) (*domain.Policy, error) {
	name := domain.NormalizeService(serviceName)
	if name == "" {
		return nil, nil
	}

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, name)
		if err != nil {
			c.log.Warn().Err(err).Str("service", name).Msg("policy cache read failed, falling through to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	policy, err := c.policyRepo.GetByService(ctx, name)
	if err != nil {
		c.log.Warn().Err(err).Str("service", name).Msg("policy store lookup failed, using built-in defaults")
		return domain.DefaultPolicy(name), nil
	}
	if policy == nil {
		return domain.DefaultPolicy(name), nil
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, policy, c.cacheTTL); err != nil {
			c.log.Warn().Err(err).Str("service", name).Msg("policy cache write failed")
		}
	}

	return policy, nil
}
