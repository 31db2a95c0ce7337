package repositories

import (
	"context"

	"github.com/maxaizer/job-board/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

// CachedTaxonomies wraps a store with a read-through cache for the taxonomy
// point lookups. Taxonomy records never change after seeding, so serving
// them from cache cannot return stale data; it only spares the document
// backend a query per hydrated foreign key.
type CachedTaxonomies struct {
	Store
	cache *gocache.Cache
}

func NewCachedTaxonomies(store Store) *CachedTaxonomies {
	return &CachedTaxonomies{Store: store, cache: gocache.New(gocache.NoExpiration, 0)}
}

func (c *CachedTaxonomies) City(ctx context.Context, id string) (*models.City, error) {
	if value, found := c.cache.Get("city:" + id); found {
		city := value.(models.City)
		return &city, nil
	}

	city, err := c.Store.City(ctx, id)
	if city != nil && err == nil {
		_ = c.cache.Add("city:"+id, *city, gocache.DefaultExpiration)
	}
	return city, err
}

func (c *CachedTaxonomies) JobCategory(ctx context.Context, id string) (*models.JobCategory, error) {
	if value, found := c.cache.Get("category:" + id); found {
		category := value.(models.JobCategory)
		return &category, nil
	}

	category, err := c.Store.JobCategory(ctx, id)
	if category != nil && err == nil {
		_ = c.cache.Add("category:"+id, *category, gocache.DefaultExpiration)
	}
	return category, err
}

func (c *CachedTaxonomies) Qualification(ctx context.Context, id string) (*models.Qualification, error) {
	if value, found := c.cache.Get("qualification:" + id); found {
		qualification := value.(models.Qualification)
		return &qualification, nil
	}

	qualification, err := c.Store.Qualification(ctx, id)
	if qualification != nil && err == nil {
		_ = c.cache.Add("qualification:"+id, *qualification, gocache.DefaultExpiration)
	}
	return qualification, err
}

func (c *CachedTaxonomies) JobType(ctx context.Context, id string) (*models.JobType, error) {
	if value, found := c.cache.Get("jobType:" + id); found {
		jobType := value.(models.JobType)
		return &jobType, nil
	}

	jobType, err := c.Store.JobType(ctx, id)
	if jobType != nil && err == nil {
		_ = c.cache.Add("jobType:"+id, *jobType, gocache.DefaultExpiration)
	}
	return jobType, err
}
