package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string    `bun:"id,pk"`
	Username  string    `bun:"username,notnull,unique"`
	Email     string    `bun:"email,notnull"`
	AvatarURL string    `bun:"avatar_url"`
	Location  string    `bun:"location"`
	Bio       string    `bun:"bio"`
	Joined    time.Time `bun:"joined,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
