package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/domains/recipe"
	"recipe-backend/pkg/cache"
)

const cascadeTimeout = 30 * time.Second

// deletedRows records what a cascade removed, for cache eviction after commit.
type deletedRows struct {
	authors []uuid.UUID
	recipes []uuid.UUID
}

func (d *deletedRows) keys() []string {
	keys := make([]string, 0, len(d.authors)+len(d.recipes))
	for _, id := range d.authors {
		keys = append(keys, author.CacheKey(id))
	}
	for _, id := range d.recipes {
		keys = append(keys, recipe.CacheKey(id))
	}
	return keys
}

func evictDeleted(ctx context.Context, c cache.Cache, d *deletedRows) {
	keys := d.keys()
	if len(keys) == 0 {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Int("keys", len(keys)).Msg("[AUTHOR] cascade cache eviction failed")
	}
}
