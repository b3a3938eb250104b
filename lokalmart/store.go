package lokalmart

import (
	"context"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/lokalmart/lokalmart/lokalmart/database/repositories"
	"github.com/lokalmart/lokalmart/lokalmart/engine"
)

// localStore binds the listing and offer repositories into the single
// local-store surface the lifecycle engine consumes.
type localStore struct {
	listings repositories.ListingRepository
	offers   repositories.OfferRepository
}

func NewLocalStore(listings repositories.ListingRepository, offers repositories.OfferRepository) engine.LocalStore {
	return &localStore{listings: listings, offers: offers}
}

func (s *localStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

func (s *localStore) UpdateListingStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	return s.listings.UpdateStatus(ctx, id, status, sold)
}

func (s *localStore) InsertOffer(ctx context.Context, offer *models.Offer) error {
	return s.offers.Insert(ctx, offer)
}

func (s *localStore) DeleteOffer(ctx context.Context, offer *models.Offer) error {
	return s.offers.Delete(ctx, offer)
}

func (s *localStore) UpdateOfferStatus(ctx context.Context, id string, status models.OfferStatus) error {
	return s.offers.UpdateStatus(ctx, id, status)
}

func (s *localStore) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	return s.offers.GetByID(ctx, id)
}

func (s *localStore) GetOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error) {
	return s.offers.GetByListingID(ctx, listingID)
}

func (s *localStore) GetSentOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error) {
	return s.offers.GetSentByListingID(ctx, listingID)
}
