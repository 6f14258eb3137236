package service

import (
	"context"
	"strconv"
	"time"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/internal/registry/repository"

	"github.com/patrickmn/go-cache"
)

// BearerNameCache resolves bearer names by ID. Bearer names never change and
// bearers are never deleted, so a cached entry cannot go stale.
type BearerNameCache struct {
	cache *cache.Cache
	repo  repository.BearerRepository
}

// NewBearerNameCache creates a cache whose entries expire after ttl.
func NewBearerNameCache(repo repository.BearerRepository, ttl time.Duration) *BearerNameCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &BearerNameCache{
		cache: cache.New(ttl, 2*ttl),
		repo:  repo,
	}
}

// Name returns the name of the bearer with the given ID.
func (c *BearerNameCache) Name(ctx context.Context, id uint) (string, error) {
	key := strconv.FormatUint(uint64(id), 10)
	if name, ok := c.cache.Get(key); ok {
		return name.(string), nil
	}

	bearer, err := c.repo.FindByID(ctx, nil, id)
	if err != nil {
		return "", err
	}
	c.Remember(bearer)
	return bearer.Name, nil
}

// Remember stores a committed bearer.
func (c *BearerNameCache) Remember(bearer *entity.Bearer) {
	c.cache.SetDefault(strconv.FormatUint(uint64(bearer.ID), 10), bearer.Name)
}
