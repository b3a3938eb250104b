package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Favourite struct {
	bun.BaseModel `bun:"table:favourites,alias:f"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    string    `bun:"user_id,notnull"`
	ListingID string    `bun:"listing_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
