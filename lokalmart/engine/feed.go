package engine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/puzpuzpuz/xsync/v3"
)

// OfferFeed fans local offer snapshots out to subscribers. Each subscriber
// is serviced by its own goroutine, which is the only sender on (and closer
// of) the subscriber's channel. Delivery is latest-snapshot-wins through a
// one-deep buffer, so a slow consumer never blocks a lifecycle operation.
type OfferFeed struct {
	local  LocalStore
	subs   *xsync.MapOf[uint64, *feedSub]
	nextID atomic.Uint64
}

type feedSub struct {
	listingID string
	wake      chan struct{}
}

func newOfferFeed(local LocalStore) *OfferFeed {
	return &OfferFeed{
		local: local,
		subs:  xsync.NewMapOf[uint64, *feedSub](),
	}
}

func (f *OfferFeed) subscribe(ctx context.Context, listingID string) (<-chan []*models.Offer, error) {
	snapshot, err := f.local.GetOffersForListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	sub := &feedSub{
		listingID: listingID,
		wake:      make(chan struct{}, 1),
	}
	id := f.nextID.Add(1)
	f.subs.Store(id, sub)

	out := make(chan []*models.Offer, 1)
	out <- snapshot

	go func() {
		defer close(out)
		defer f.subs.Delete(id)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.wake:
			}

			fresh, err := f.local.GetOffersForListing(ctx, sub.listingID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("Failed to refresh offer feed",
					slog.String("listing_id", sub.listingID),
					slog.Any("error", err))
				continue
			}

			// Replace a still-queued stale snapshot with the fresh one.
			select {
			case <-out:
			default:
			}
			select {
			case out <- fresh:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// invalidate wakes every subscriber of the listing; each re-queries its own
// snapshot. The one-deep wake buffer collapses bursts of mutations.
func (f *OfferFeed) invalidate(_ context.Context, listingID string) {
	f.subs.Range(func(_ uint64, sub *feedSub) bool {
		if sub.listingID == listingID {
			select {
			case sub.wake <- struct{}{}:
			default:
			}
		}
		return true
	})
}
