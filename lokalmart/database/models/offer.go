package models

import (
	"time"

	"github.com/uptrace/bun"
)

type OfferStatus string

const (
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

// Offer is a buyer's proposed price against a listing. The ID is minted by
// the caller before the offer reaches the lifecycle engine.
type Offer struct {
	bun.BaseModel `bun:"table:offers,alias:o"`

	ID        string      `bun:"id,pk"`
	ListingID string      `bun:"listing_id,notnull"`
	BuyerID   string      `bun:"buyer_id,notnull"`
	SellerID  string      `bun:"seller_id,notnull"`
	Amount    float64     `bun:"amount,notnull"`
	Status    OfferStatus `bun:"status,notnull"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:current_timestamp"`
}
