package models

import (
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

type MessageType string

const (
	MessageTypeUser MessageType = "user"
	// MessageTypeSystem marks automated lifecycle messages ("Offer sent",
	// "Offer accepted", ...) that no user authored.
	MessageTypeSystem MessageType = "system"
)

type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:cv"`

	ID            string    `bun:"id,pk"`
	Key           string    `bun:"key,notnull,unique"`
	ListingID     string    `bun:"listing_id,notnull"`
	ListingTitle  string    `bun:"listing_title"`
	BuyerID       string    `bun:"buyer_id,notnull"`
	SellerID      string    `bun:"seller_id,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
	LastMessageAt time.Time `bun:"last_message_at"`
}

type ChatMessage struct {
	bun.BaseModel `bun:"table:chat_messages,alias:cm"`

	ID             string      `bun:"id,pk"`
	ConversationID string      `bun:"conversation_id,notnull"`
	SenderID       string      `bun:"sender_id,notnull"`
	ReceiverID     string      `bun:"receiver_id,notnull"`
	ListingID      string      `bun:"listing_id"`
	OfferID        string      `bun:"offer_id"`
	Type           MessageType `bun:"type,notnull,default:'user'"`
	Text           string      `bun:"text,notnull"`
	CreatedAt      time.Time   `bun:"created_at,notnull,default:current_timestamp"`
}

// ConversationKey derives the deterministic lookup key for a listing's
// buyer-seller thread. Participants are sorted so the same thread is found
// no matter which side opens it.
func ConversationKey(listingID, userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join([]string{listingID, pair[0], pair[1]}, ":")
}
