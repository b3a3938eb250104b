// Package engine coordinates the offer lifecycle across the local store and
// the remote document store. Writes are local-first: every local commit
// precedes its dependent remote call, and a failed remote call replays the
// pre-write snapshot back into the local store. Remote side effects that
// already succeeded are never retracted; the resulting divergence is
// accepted eventual-consistency debt cleared by the next reconciliation.
//
// The engine provides no cross-invocation serialization: two accepts racing
// on offers of the same listing may both read the same listing pre-image.
// Cancellation mid-operation abandons the in-flight remote call without
// compensating the local pre-write; only I/O failures trigger rollback.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
)

const (
	msgOfferSent     = "Offer sent"
	msgOfferAccepted = "Offer accepted"
	msgOfferRejected = "Offer rejected"
)

type Engine struct {
	local          LocalStore
	remoteOffers   RemoteOfferStore
	remoteListings RemoteListingStore
	notifier       Notifier
	feed           *OfferFeed
}

func New(local LocalStore, remoteOffers RemoteOfferStore, remoteListings RemoteListingStore, notifier Notifier) *Engine {
	return &Engine{
		local:          local,
		remoteOffers:   remoteOffers,
		remoteListings: remoteListings,
		notifier:       notifier,
		feed:           newOfferFeed(local),
	}
}

// CreateOffer records a new offer against a listing, normalizing its status
// to sent regardless of caller input, and moves the listing to pending.
func (e *Engine) CreateOffer(ctx context.Context, offer *models.Offer) error {
	offer.Status = models.OfferStatusSent
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}

	// Listing pre-image: needed for rollback and for the chat title.
	listing, err := e.local.GetListing(ctx, offer.ListingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}

	if err := e.local.InsertOffer(ctx, offer); err != nil {
		return err
	}
	e.feed.invalidate(ctx, offer.ListingID)

	if err := e.remoteOffers.Save(ctx, offer); err != nil {
		e.rollbackOfferInsert(ctx, offer)
		return newError(CodeRemoteOfferCreateFailed, err)
	}

	if err := e.local.UpdateListingStatus(ctx, listing.ID, models.ListingStatusPending, false); err != nil {
		return err
	}

	if err := e.remoteListings.UpdateStatus(ctx, listing.ID, models.ListingStatusPending, false); err != nil {
		// The remote offer document written above stays behind as an
		// orphan until the next reconciliation pass.
		e.rollbackListing(ctx, listing)
		e.rollbackOfferInsert(ctx, offer)
		return newError(CodeRemoteListingUpdateFailed, err)
	}

	e.notify(ctx, SystemNotice{
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		BuyerID:      offer.BuyerID,
		SellerID:     offer.SellerID,
		SenderID:     offer.BuyerID,
		ReceiverID:   offer.SellerID,
		OfferID:      offer.ID,
		Text:         msgOfferSent,
	})
	return nil
}

// AcceptOffer marks a sent offer accepted and the listing sold. Both local
// writes land before any remote call; either remote failure rolls both
// back.
func (e *Engine) AcceptOffer(ctx context.Context, offerID, listingID string) error {
	offer, err := e.local.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if offer == nil {
		return ErrOfferNotFound
	}
	if offer.Status != models.OfferStatusSent {
		return ErrInvalidOfferState
	}

	listing, err := e.local.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}

	if err := e.local.UpdateOfferStatus(ctx, offer.ID, models.OfferStatusAccepted); err != nil {
		return err
	}
	if err := e.local.UpdateListingStatus(ctx, listing.ID, models.ListingStatusSold, true); err != nil {
		return err
	}
	e.feed.invalidate(ctx, listing.ID)

	if err := e.remoteOffers.UpdateStatus(ctx, offer.ID, models.OfferStatusAccepted); err != nil {
		e.rollbackAccept(ctx, offer, listing)
		return newError(CodeRemoteOfferUpdateFailed, err)
	}

	if err := e.remoteListings.UpdateStatus(ctx, listing.ID, models.ListingStatusSold, true); err != nil {
		// The remote offer already reads accepted; left as-is until the
		// next reconciliation.
		e.rollbackAccept(ctx, offer, listing)
		return newError(CodeRemoteListingUpdateFailed, err)
	}

	e.notify(ctx, SystemNotice{
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		BuyerID:      offer.BuyerID,
		SellerID:     offer.SellerID,
		SenderID:     offer.SellerID,
		ReceiverID:   offer.BuyerID,
		OfferID:      offer.ID,
		Text:         msgOfferAccepted,
	})
	return nil
}

// RejectOffer marks an offer rejected. When no sent offers remain on the
// listing it is re-opened as available; a remote failure on that re-open is
// logged and the reject still succeeds — offer-state correctness is
// mandatory, listing re-opening is advisory.
func (e *Engine) RejectOffer(ctx context.Context, offerID string) error {
	offer, err := e.local.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if offer == nil {
		return ErrOfferNotFound
	}

	listing, err := e.local.GetListing(ctx, offer.ListingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}

	prevStatus := offer.Status

	if err := e.local.UpdateOfferStatus(ctx, offer.ID, models.OfferStatusRejected); err != nil {
		return err
	}
	e.feed.invalidate(ctx, listing.ID)

	if err := e.remoteOffers.UpdateStatus(ctx, offer.ID, models.OfferStatusRejected); err != nil {
		if rerr := e.local.UpdateOfferStatus(ctx, offer.ID, prevStatus); rerr != nil {
			slog.Error("Failed to roll back offer status",
				slog.String("offer_id", offer.ID),
				slog.Any("error", rerr))
		}
		e.feed.invalidate(ctx, listing.ID)
		return newError(CodeRemoteOfferUpdateFailed, err)
	}

	remaining, err := e.local.GetSentOffersForListing(ctx, listing.ID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		if err := e.local.UpdateListingStatus(ctx, listing.ID, models.ListingStatusAvailable, false); err != nil {
			return err
		}
		if err := e.remoteListings.UpdateStatus(ctx, listing.ID, models.ListingStatusAvailable, false); err != nil {
			// Best effort only: the rejection itself is durable, so the
			// failed re-open is rolled back locally and logged, not
			// surfaced.
			e.rollbackListing(ctx, listing)
			slog.Warn("Failed to re-open listing remotely after reject",
				slog.String("listing_id", listing.ID),
				slog.Any("error", err))
		}
	}

	e.notify(ctx, SystemNotice{
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		BuyerID:      offer.BuyerID,
		SellerID:     offer.SellerID,
		SenderID:     offer.SellerID,
		ReceiverID:   offer.BuyerID,
		OfferID:      offer.ID,
		Text:         msgOfferRejected,
	})
	return nil
}

// OffersByListing subscribes to the listing's offers in the local store,
// newest first. The first element on the channel is the current snapshot;
// every engine-local offer mutation pushes a fresh one. Cancel ctx to
// unsubscribe; a new call restarts from the then-current snapshot. The
// subscription never touches the remote store.
func (e *Engine) OffersByListing(ctx context.Context, listingID string) (<-chan []*models.Offer, error) {
	return e.feed.subscribe(ctx, listingID)
}

func (e *Engine) rollbackOfferInsert(ctx context.Context, offer *models.Offer) {
	if err := e.local.DeleteOffer(ctx, offer); err != nil {
		slog.Error("Failed to roll back offer insert",
			slog.String("offer_id", offer.ID),
			slog.Any("error", err))
	}
	e.feed.invalidate(ctx, offer.ListingID)
}

func (e *Engine) rollbackListing(ctx context.Context, pre *models.Listing) {
	if err := e.local.UpdateListingStatus(ctx, pre.ID, pre.Status, pre.Sold); err != nil {
		slog.Error("Failed to roll back listing status",
			slog.String("listing_id", pre.ID),
			slog.Any("error", err))
	}
}

func (e *Engine) rollbackAccept(ctx context.Context, offer *models.Offer, listing *models.Listing) {
	if err := e.local.UpdateOfferStatus(ctx, offer.ID, models.OfferStatusSent); err != nil {
		slog.Error("Failed to roll back offer status",
			slog.String("offer_id", offer.ID),
			slog.Any("error", err))
	}
	e.rollbackListing(ctx, listing)
	e.feed.invalidate(ctx, listing.ID)
}

// notify posts a lifecycle SYSTEM message. Failures are logged and
// swallowed: by the time the message is emitted the offer and listing state
// is already durably committed.
func (e *Engine) notify(ctx context.Context, notice SystemNotice) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.PostSystemMessage(ctx, notice); err != nil {
		slog.Warn("Failed to post lifecycle chat message",
			slog.String("listing_id", notice.ListingID),
			slog.String("offer_id", notice.OfferID),
			slog.String("text", notice.Text),
			slog.Any("error", err))
	}
}
