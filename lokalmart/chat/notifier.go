// Package chat posts lifecycle messages into buyer-seller conversation
// threads.
package chat

import (
	"context"
	"fmt"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/lokalmart/lokalmart/lokalmart/database/repositories"
	"github.com/lokalmart/lokalmart/lokalmart/engine"
)

// Notifier implements engine.Notifier over the chat repository. It is an
// audit trail, not authoritative state: the engine logs and discards any
// error returned from here.
type Notifier struct {
	repo repositories.ChatRepository
}

func NewNotifier(repo repositories.ChatRepository) *Notifier {
	return &Notifier{repo: repo}
}

func (n *Notifier) PostSystemMessage(ctx context.Context, notice engine.SystemNotice) error {
	conv, err := n.repo.GetOrCreateConversation(ctx,
		notice.ListingID, notice.ListingTitle, notice.BuyerID, notice.SellerID)
	if err != nil {
		return fmt.Errorf("failed to resolve conversation: %w", err)
	}

	msg := &models.ChatMessage{
		ConversationID: conv.ID,
		SenderID:       notice.SenderID,
		ReceiverID:     notice.ReceiverID,
		ListingID:      notice.ListingID,
		OfferID:        notice.OfferID,
		Type:           models.MessageTypeSystem,
		Text:           notice.Text,
	}
	if err := n.repo.CreateMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to post system message: %w", err)
	}
	return nil
}
