package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/gearfitness/internal/cache"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=workouts_test

type exerciseLoader interface {
	ExercisesByIDs(ctx context.Context, ids []uuid.UUID) ([]Exercise, error)
}

// Catalog resolves exercise references, keeping recently used exercises in an in-process cache.
// Only the (rarely changing) exercise catalog is cached, never user data or aggregates.
type Catalog struct {
	loader exerciseLoader
	cache  cache.Cache
}

func NewCatalog(loader exerciseLoader, c cache.Cache) *Catalog {
	return &Catalog{
		loader: loader,
		cache:  c,
	}
}

func exerciseCacheKey(id uuid.UUID) string {
	return "exercise:" + id.String()
}

// ByIDs returns the exercises for the given ids. Unknown ids are absent from the result.
func (c *Catalog) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Exercise, error) {
	found := make(map[uuid.UUID]Exercise, len(ids))
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		var e Exercise
		hit, err := c.cache.Get(exerciseCacheKey(id), &e)
		if err != nil {
			log.Warnf("exercise catalog cache get [%s]: %s", id, err)
		}
		if hit {
			found[id] = e
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return found, nil
	}

	loaded, err := c.loader.ExercisesByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	for _, e := range loaded {
		found[e.ID] = e
		if err := c.cache.Set(exerciseCacheKey(e.ID), e); err != nil {
			log.Warnf("exercise catalog cache set [%s]: %s", e.ID, err)
		}
	}

	return found, nil
}
