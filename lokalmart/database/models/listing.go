package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusSold      ListingStatus = "sold"
)

type Listing struct {
	bun.BaseModel `bun:"table:listings,alias:l"`

	ID          string        `bun:"id,pk"`
	SellerID    string        `bun:"seller_id,notnull"`
	CategoryID  string        `bun:"category_id"`
	Title       string        `bun:"title,notnull"`
	Description string        `bun:"description"`
	Price       float64       `bun:"price,notnull"`
	Location    string        `bun:"location"`
	Images      []string      `bun:"images,type:jsonb"`
	Status      ListingStatus `bun:"status,notnull,default:'available'"`
	Sold        bool          `bun:"sold,notnull,default:false"`
	CreatedAt   time.Time     `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time     `bun:"updated_at,notnull,default:current_timestamp"`
}

// SoldFlagFor keeps the sold flag in lockstep with the status enum:
// sold is true exactly when the status is sold.
func SoldFlagFor(status ListingStatus) bool {
	return status == ListingStatusSold
}
