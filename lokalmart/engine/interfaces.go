package engine

import (
	"context"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
)

// LocalStore is the transactional cache the engine treats as canonical for
// UI reads. Writes here are expected to succeed; a failure propagates to
// the caller unwrapped.
type LocalStore interface {
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	UpdateListingStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error
	InsertOffer(ctx context.Context, offer *models.Offer) error
	DeleteOffer(ctx context.Context, offer *models.Offer) error
	UpdateOfferStatus(ctx context.Context, id string, status models.OfferStatus) error
	GetOffer(ctx context.Context, id string) (*models.Offer, error)
	GetOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error)
	GetSentOffersForListing(ctx context.Context, listingID string) ([]*models.Offer, error)
}

// RemoteOfferStore mirrors offers into the cloud document store. Save must
// be idempotent create-or-replace so a rolled-back operation can retry.
type RemoteOfferStore interface {
	Save(ctx context.Context, offer *models.Offer) error
	UpdateStatus(ctx context.Context, id string, status models.OfferStatus) error
}

// RemoteListingStore mirrors listing status transitions into the cloud
// document store.
type RemoteListingStore interface {
	UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error
}

// SystemNotice describes one lifecycle chat message to post into the
// buyer-seller thread of a listing.
type SystemNotice struct {
	ListingID    string
	ListingTitle string
	BuyerID      string
	SellerID     string
	SenderID     string
	ReceiverID   string
	OfferID      string
	Text         string
}

// Notifier posts a SYSTEM message into the conversation for a listing's
// buyer-seller pair, creating the thread if needed. The engine treats any
// error as best-effort: logged, never surfaced to its caller.
type Notifier interface {
	PostSystemMessage(ctx context.Context, notice SystemNotice) error
}
