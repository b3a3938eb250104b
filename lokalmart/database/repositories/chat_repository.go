package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/uptrace/bun"
)

type ChatRepository interface {
	GetOrCreateConversation(ctx context.Context, listingID, listingTitle, userA, userB string) (*models.Conversation, error)
	GetConversationByID(ctx context.Context, id string) (*models.Conversation, error)
	GetConversationsForUser(ctx context.Context, userID string) ([]*models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.ChatMessage) error
	GetMessages(ctx context.Context, conversationID string, limit int) ([]*models.ChatMessage, error)
}

type chatRepository struct {
	db *bun.DB
}

func NewChatRepository(db *bun.DB) ChatRepository {
	return &chatRepository{db: db}
}

// GetOrCreateConversation resolves the buyer-seller thread for a listing.
// The lookup key sorts the two participant ids, so whichever side opens the
// thread first, later calls land on the same row. Creation races on the
// unique key are resolved by re-reading the winner's row.
func (r *chatRepository) GetOrCreateConversation(ctx context.Context, listingID, listingTitle, userA, userB string) (*models.Conversation, error) {
	key := models.ConversationKey(listingID, userA, userB)

	conv := new(models.Conversation)
	err := r.db.NewSelect().
		Model(conv).
		Where("key = ?", key).
		Scan(ctx)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}

	conv = &models.Conversation{
		ID:           uuid.NewString(),
		Key:          key,
		ListingID:    listingID,
		ListingTitle: listingTitle,
		BuyerID:      userA,
		SellerID:     userB,
		CreatedAt:    time.Now(),
	}

	_, err = r.db.NewInsert().
		Model(conv).
		On("CONFLICT (key) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	// A concurrent creator may have won the conflict; read back the row
	// that actually exists.
	winner := new(models.Conversation)
	if err := r.db.NewSelect().Model(winner).Where("key = ?", key).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to read back conversation: %w", err)
	}
	return winner, nil
}

func (r *chatRepository) GetConversationByID(ctx context.Context, id string) (*models.Conversation, error) {
	conv := new(models.Conversation)
	err := r.db.NewSelect().
		Model(conv).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

func (r *chatRepository) GetConversationsForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	var convs []*models.Conversation
	err := r.db.NewSelect().
		Model(&convs).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("last_message_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get user conversations: %w", err)
	}
	return convs, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Type == "" {
		msg.Type = models.MessageTypeUser
	}
	msg.CreatedAt = time.Now()

	_, err := r.db.NewInsert().Model(msg).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}

	_, err = r.db.NewUpdate().
		Model((*models.Conversation)(nil)).
		Set("last_message_at = ?", msg.CreatedAt).
		Where("id = ?", msg.ConversationID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to bump conversation: %w", err)
	}
	return nil
}

func (r *chatRepository) GetMessages(ctx context.Context, conversationID string, limit int) ([]*models.ChatMessage, error) {
	var msgs []*models.ChatMessage
	q := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return msgs, nil
}
