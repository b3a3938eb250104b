package services

import (
	"context"
	"testing"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
)

type stubListingRepo struct {
	all       []*models.Listing
	available []*models.Listing
	getAlls   int
}

func (s *stubListingRepo) Create(context.Context, *models.Listing) error { return nil }

func (s *stubListingRepo) GetByID(context.Context, string) (*models.Listing, error) {
	return nil, nil
}

func (s *stubListingRepo) GetBySellerID(context.Context, string) ([]*models.Listing, error) {
	return nil, nil
}

func (s *stubListingRepo) GetByStatus(_ context.Context, status models.ListingStatus) ([]*models.Listing, error) {
	if status == models.ListingStatusAvailable {
		return s.available, nil
	}
	return nil, nil
}

func (s *stubListingRepo) GetAll(context.Context) ([]*models.Listing, error) {
	s.getAlls++
	return s.all, nil
}

func (s *stubListingRepo) UpdateStatus(context.Context, string, models.ListingStatus, bool) error {
	return nil
}

func (s *stubListingRepo) Delete(context.Context, string) error { return nil }

func TestSearchService_Search(t *testing.T) {
	bike := &models.Listing{ID: "1", Title: "Vintage Road Bike", Status: models.ListingStatusAvailable}
	lamp := &models.Listing{ID: "2", Title: "Desk Lamp", Status: models.ListingStatusAvailable}
	bikeHelmet := &models.Listing{ID: "3", Title: "Bike Helmet", Status: models.ListingStatusPending}

	repo := &stubListingRepo{
		all:       []*models.Listing{bike, lamp, bikeHelmet},
		available: []*models.Listing{bike, lamp},
	}
	s := NewSearchService(repo)
	ctx := context.Background()

	t.Run("FuzzyMatch", func(t *testing.T) {
		got, err := s.Search(ctx, "bike", 0)
		if err != nil {
			t.Fatalf("SearchService.Search() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Fatalf("SearchService.Search() returned %d listings, want 2", len(got))
		}
		for _, l := range got {
			if l.ID == "2" {
				t.Errorf("SearchService.Search() matched %q for query \"bike\"", l.Title)
			}
		}
	})

	t.Run("EmptyQueryReturnsAvailable", func(t *testing.T) {
		got, err := s.Search(ctx, "", 0)
		if err != nil {
			t.Fatalf("SearchService.Search() error = %v, want nil", err)
		}
		if len(got) != 2 {
			t.Errorf("SearchService.Search() returned %d listings, want 2", len(got))
		}
	})

	t.Run("LimitClipsResults", func(t *testing.T) {
		got, err := s.Search(ctx, "bike", 1)
		if err != nil {
			t.Fatalf("SearchService.Search() error = %v, want nil", err)
		}
		if len(got) != 1 {
			t.Errorf("SearchService.Search() returned %d listings, want 1", len(got))
		}
	})

	t.Run("SnapshotIsCached", func(t *testing.T) {
		before := repo.getAlls
		if _, err := s.Search(ctx, "lamp", 0); err != nil {
			t.Fatalf("SearchService.Search() error = %v, want nil", err)
		}
		if _, err := s.Search(ctx, "lamp", 0); err != nil {
			t.Fatalf("SearchService.Search() error = %v, want nil", err)
		}
		if repo.getAlls > before+1 {
			t.Errorf("snapshot fetched %d times within TTL, want at most 1", repo.getAlls-before)
		}
	})
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Lowercases", in: "Road BIKE", want: "road bike"},
		{name: "CollapsesWhitespace", in: "  desk\t lamp ", want: "desk lamp"},
		{name: "Empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeQuery(tt.in); got != tt.want {
				t.Errorf("normalizeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
