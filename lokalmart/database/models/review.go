package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:rv"`

	ID         string    `bun:"id,pk"`
	ListingID  string    `bun:"listing_id,notnull"`
	ReviewerID string    `bun:"reviewer_id,notnull"`
	RevieweeID string    `bun:"reviewee_id,notnull"`
	Rating     int       `bun:"rating,notnull"`
	Comment    string    `bun:"comment"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
