package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/lokalmart/lokalmart/lokalmart/engine"
)

type stubChatRepo struct {
	conv       *models.Conversation
	convErr    error
	msgErr     error
	messages   []*models.ChatMessage
	resolveKey string
}

func (s *stubChatRepo) GetOrCreateConversation(_ context.Context, listingID, _, userA, userB string) (*models.Conversation, error) {
	if s.convErr != nil {
		return nil, s.convErr
	}
	s.resolveKey = models.ConversationKey(listingID, userA, userB)
	return s.conv, nil
}

func (s *stubChatRepo) GetConversationByID(context.Context, string) (*models.Conversation, error) {
	return nil, nil
}

func (s *stubChatRepo) GetConversationsForUser(context.Context, string) ([]*models.Conversation, error) {
	return nil, nil
}

func (s *stubChatRepo) CreateMessage(_ context.Context, msg *models.ChatMessage) error {
	if s.msgErr != nil {
		return s.msgErr
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *stubChatRepo) GetMessages(context.Context, string, int) ([]*models.ChatMessage, error) {
	return nil, nil
}

func TestNotifier_PostSystemMessage(t *testing.T) {
	notice := engine.SystemNotice{
		ListingID:    "listing-1",
		ListingTitle: "Road bike",
		BuyerID:      "buyer-1",
		SellerID:     "seller-1",
		SenderID:     "seller-1",
		ReceiverID:   "buyer-1",
		OfferID:      "offer-1",
		Text:         "Offer accepted",
	}

	t.Run("Success", func(t *testing.T) {
		repo := &stubChatRepo{conv: &models.Conversation{ID: "conv-1"}}
		n := NewNotifier(repo)

		if err := n.PostSystemMessage(context.Background(), notice); err != nil {
			t.Fatalf("Notifier.PostSystemMessage() error = %v, want nil", err)
		}
		if len(repo.messages) != 1 {
			t.Fatalf("posted %d messages, want 1", len(repo.messages))
		}
		msg := repo.messages[0]
		if msg.ConversationID != "conv-1" {
			t.Errorf("message conversation = %q, want conv-1", msg.ConversationID)
		}
		if msg.Type != models.MessageTypeSystem {
			t.Errorf("message type = %q, want %q", msg.Type, models.MessageTypeSystem)
		}
		if msg.SenderID != "seller-1" || msg.ReceiverID != "buyer-1" {
			t.Errorf("message sender/receiver = %s/%s, want seller-1/buyer-1", msg.SenderID, msg.ReceiverID)
		}
	})

	t.Run("ConversationLookupFails", func(t *testing.T) {
		repo := &stubChatRepo{convErr: errors.New("db down")}
		n := NewNotifier(repo)

		if err := n.PostSystemMessage(context.Background(), notice); err == nil {
			t.Error("Notifier.PostSystemMessage() error = nil, want error")
		}
	})

	t.Run("MessageInsertFails", func(t *testing.T) {
		repo := &stubChatRepo{conv: &models.Conversation{ID: "conv-1"}, msgErr: errors.New("db down")}
		n := NewNotifier(repo)

		if err := n.PostSystemMessage(context.Background(), notice); err == nil {
			t.Error("Notifier.PostSystemMessage() error = nil, want error")
		}
	})
}
