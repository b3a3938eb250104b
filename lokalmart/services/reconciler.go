package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/lokalmart/lokalmart/lokalmart/database/repositories"
	"github.com/lokalmart/lokalmart/lokalmart/engine"
)

const defaultMaxConcurrency = 4

type ReconcilerConfig struct {
	MaxConcurrency int
}

// Reconciler is the periodic sync pass that clears eventual-consistency
// debt the lifecycle engine deliberately leaves behind: orphaned remote
// offer documents and listings whose status drifted from the surviving
// sent offers. Local state is canonical; the pass repairs the local
// pending/available invariant and re-pushes idempotent offer and listing
// documents to the remote store.
type Reconciler struct {
	listings       repositories.ListingRepository
	offers         repositories.OfferRepository
	remoteOffers   engine.RemoteOfferStore
	remoteListings engine.RemoteListingStore
	maxConcurrency int
}

func NewReconciler(
	listings repositories.ListingRepository,
	offers repositories.OfferRepository,
	remoteOffers engine.RemoteOfferStore,
	remoteListings engine.RemoteListingStore,
	cfg ReconcilerConfig,
) *Reconciler {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &Reconciler{
		listings:       listings,
		offers:         offers,
		remoteOffers:   remoteOffers,
		remoteListings: remoteListings,
		maxConcurrency: maxConcurrency,
	}
}

// Run executes a reconciliation pass every interval until ctx is done.
// Failures are logged; the loop keeps going.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.ReconcileOnce(ctx); err != nil {
				slog.Warn("Reconciliation pass failed",
					slog.Any("error", err))
			}
		}
	}
}

// ReconcileOnce repairs every listing once, bounding per-listing work by
// the configured concurrency.
func (r *Reconciler) ReconcileOnce(ctx context.Context) error {
	start := time.Now()

	listings, err := r.listings.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list listings for reconciliation: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrency)

	for _, listing := range listings {
		listing := listing
		g.Go(func() error {
			return r.repairListing(gctx, listing)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Reconciliation pass complete",
		slog.Int("listings", len(listings)),
		slog.Duration("took", time.Since(start)))
	return nil
}

func (r *Reconciler) repairListing(ctx context.Context, listing *models.Listing) error {
	offers, err := r.offers.GetByListingID(ctx, listing.ID)
	if err != nil {
		return err
	}

	want := wantedStatus(listing, offers)
	if listing.Status != want {
		slog.Info("Repairing listing status",
			slog.String("listing_id", listing.ID),
			slog.String("from", string(listing.Status)),
			slog.String("to", string(want)))
		if err := r.listings.UpdateStatus(ctx, listing.ID, want, models.SoldFlagFor(want)); err != nil {
			return err
		}
	}

	// Re-pushing canonical local state is idempotent on the remote side,
	// so partially-failed lifecycle operations converge here.
	if err := r.remoteListings.UpdateStatus(ctx, listing.ID, want, models.SoldFlagFor(want)); err != nil {
		return err
	}
	for _, offer := range offers {
		if err := r.remoteOffers.Save(ctx, offer); err != nil {
			return err
		}
	}
	return nil
}

// wantedStatus derives the listing status the offer set implies: sold stays
// sold, outstanding sent offers mean pending, otherwise available.
func wantedStatus(listing *models.Listing, offers []*models.Offer) models.ListingStatus {
	if listing.Status == models.ListingStatusSold || listing.Sold {
		return models.ListingStatusSold
	}
	for _, offer := range offers {
		if offer.Status == models.OfferStatusSent {
			return models.ListingStatusPending
		}
	}
	return models.ListingStatusAvailable
}
