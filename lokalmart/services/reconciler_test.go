package services

import (
	"context"
	"sync"
	"testing"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
)

type stubOfferRepo struct {
	byListing map[string][]*models.Offer
}

func (s *stubOfferRepo) Insert(context.Context, *models.Offer) error { return nil }
func (s *stubOfferRepo) Delete(context.Context, *models.Offer) error { return nil }

func (s *stubOfferRepo) GetByID(context.Context, string) (*models.Offer, error) {
	return nil, nil
}

func (s *stubOfferRepo) UpdateStatus(context.Context, string, models.OfferStatus) error {
	return nil
}

func (s *stubOfferRepo) GetByListingID(_ context.Context, listingID string) ([]*models.Offer, error) {
	return s.byListing[listingID], nil
}

func (s *stubOfferRepo) GetSentByListingID(_ context.Context, listingID string) ([]*models.Offer, error) {
	var sent []*models.Offer
	for _, o := range s.byListing[listingID] {
		if o.Status == models.OfferStatusSent {
			sent = append(sent, o)
		}
	}
	return sent, nil
}

func (s *stubOfferRepo) GetByBuyerID(context.Context, string) ([]*models.Offer, error) {
	return nil, nil
}

type recordingListingRepo struct {
	stubListingRepo
	mu      sync.Mutex
	updates map[string]models.ListingStatus
}

func (r *recordingListingRepo) UpdateStatus(_ context.Context, id string, status models.ListingStatus, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updates == nil {
		r.updates = make(map[string]models.ListingStatus)
	}
	r.updates[id] = status
	return nil
}

type recordingRemote struct {
	mu             sync.Mutex
	savedOffers    []string
	listingUpdates map[string]models.ListingStatus
}

func (r *recordingRemote) Save(_ context.Context, offer *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.savedOffers = append(r.savedOffers, offer.ID)
	return nil
}

func (r *recordingRemote) UpdateStatus(_ context.Context, id string, status models.OfferStatus) error {
	return nil
}

func (r *recordingRemote) UpdateListingStatus(_ context.Context, id string, status models.ListingStatus, _ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listingUpdates == nil {
		r.listingUpdates = make(map[string]models.ListingStatus)
	}
	r.listingUpdates[id] = status
	return nil
}

type remoteListingAdapter struct {
	*recordingRemote
}

func (a remoteListingAdapter) UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	return a.UpdateListingStatus(ctx, id, status, sold)
}

func TestReconciler_ReconcileOnce(t *testing.T) {
	// drifted is pending with no sent offers left; stale is available with an
	// outstanding sent offer; sold must stay sold.
	drifted := &models.Listing{ID: "l-drifted", Title: "a", Status: models.ListingStatusPending}
	stale := &models.Listing{ID: "l-stale", Title: "b", Status: models.ListingStatusAvailable}
	sold := &models.Listing{ID: "l-sold", Title: "c", Status: models.ListingStatusSold, Sold: true}

	listings := &recordingListingRepo{}
	listings.all = []*models.Listing{drifted, stale, sold}

	offers := &stubOfferRepo{byListing: map[string][]*models.Offer{
		"l-drifted": {{ID: "o-1", ListingID: "l-drifted", Status: models.OfferStatusRejected}},
		"l-stale":   {{ID: "o-2", ListingID: "l-stale", Status: models.OfferStatusSent}},
		"l-sold":    {{ID: "o-3", ListingID: "l-sold", Status: models.OfferStatusAccepted}},
	}}

	remote := &recordingRemote{}
	r := NewReconciler(listings, offers, remote, remoteListingAdapter{remote}, ReconcilerConfig{MaxConcurrency: 2})

	if err := r.ReconcileOnce(context.Background()); err != nil {
		t.Fatalf("Reconciler.ReconcileOnce() error = %v, want nil", err)
	}

	if got := listings.updates["l-drifted"]; got != models.ListingStatusAvailable {
		t.Errorf("drifted listing repaired to %q, want %q", got, models.ListingStatusAvailable)
	}
	if got := listings.updates["l-stale"]; got != models.ListingStatusPending {
		t.Errorf("stale listing repaired to %q, want %q", got, models.ListingStatusPending)
	}
	if _, touched := listings.updates["l-sold"]; touched {
		t.Error("sold listing was repaired locally, want untouched")
	}

	if got := remote.listingUpdates["l-sold"]; got != models.ListingStatusSold {
		t.Errorf("sold listing pushed remotely as %q, want %q", got, models.ListingStatusSold)
	}
	if len(remote.savedOffers) != 3 {
		t.Errorf("re-pushed %d remote offers, want 3", len(remote.savedOffers))
	}
}

func TestWantedStatus(t *testing.T) {
	tests := []struct {
		name    string
		listing *models.Listing
		offers  []*models.Offer
		want    models.ListingStatus
	}{
		{
			name:    "SoldStaysSold",
			listing: &models.Listing{Status: models.ListingStatusSold, Sold: true},
			offers:  []*models.Offer{{Status: models.OfferStatusSent}},
			want:    models.ListingStatusSold,
		},
		{
			name:    "SentOfferMeansPending",
			listing: &models.Listing{Status: models.ListingStatusAvailable},
			offers:  []*models.Offer{{Status: models.OfferStatusRejected}, {Status: models.OfferStatusSent}},
			want:    models.ListingStatusPending,
		},
		{
			name:    "NoSentOffersMeansAvailable",
			listing: &models.Listing{Status: models.ListingStatusPending},
			offers:  []*models.Offer{{Status: models.OfferStatusRejected}},
			want:    models.ListingStatusAvailable,
		},
		{
			name:    "NoOffersMeansAvailable",
			listing: &models.Listing{Status: models.ListingStatusPending},
			want:    models.ListingStatusAvailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wantedStatus(tt.listing, tt.offers); got != tt.want {
				t.Errorf("wantedStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}
