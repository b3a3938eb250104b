// Package services hosts application services built on top of the
// repositories: listing search and local/remote reconciliation.
package services

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/lokalmart/lokalmart/lokalmart/database/repositories"
)

const (
	searchCacheSize = 128
	snapshotKey     = "listing_snapshot"
	snapshotTTL     = time.Minute
)

// listingSearchItems implements fuzzy.Source over normalized listing titles.
type listingSearchItems []listingSearchItem

type listingSearchItem struct {
	Listing *models.Listing
	Name    string
}

func (items listingSearchItems) Len() int {
	return len(items)
}

func (items listingSearchItems) String(i int) string {
	return items[i].Name
}

type cachedSnapshot struct {
	items     listingSearchItems
	fetchedAt time.Time
}

// SearchService provides fuzzy browse/search over listings. The listing
// snapshot is cached briefly so bursts of keystroke-driven queries do not
// hammer the store.
type SearchService struct {
	listings repositories.ListingRepository
	cache    *lru.Cache
}

func NewSearchService(listings repositories.ListingRepository) *SearchService {
	cache, _ := lru.New(searchCacheSize)
	return &SearchService{
		listings: listings,
		cache:    cache,
	}
}

// Search returns listings ranked by fuzzy title match. An empty query
// returns the freshest available listings instead.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]*models.Listing, error) {
	if query == "" {
		listings, err := s.listings.GetByStatus(ctx, models.ListingStatusAvailable)
		if err != nil {
			return nil, err
		}
		return clip(listings, limit), nil
	}

	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.FindFrom(normalizeQuery(query), items)

	results := make([]*models.Listing, 0, len(matches))
	for _, m := range matches {
		results = append(results, items[m.Index].Listing)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (s *SearchService) snapshot(ctx context.Context) (listingSearchItems, error) {
	if v, ok := s.cache.Get(snapshotKey); ok {
		cached := v.(cachedSnapshot)
		if time.Since(cached.fetchedAt) < snapshotTTL {
			return cached.items, nil
		}
	}

	listings, err := s.listings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make(listingSearchItems, len(listings))
	for i, listing := range listings {
		items[i] = listingSearchItem{
			Listing: listing,
			Name:    normalizeQuery(listing.Title),
		}
	}

	s.cache.Add(snapshotKey, cachedSnapshot{items: items, fetchedAt: time.Now()})
	return items, nil
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

func clip(listings []*models.Listing, limit int) []*models.Listing {
	if limit > 0 && len(listings) > limit {
		return listings[:limit]
	}
	return listings
}
