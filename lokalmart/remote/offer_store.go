package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const offersCollection = "offers"

// OfferDocument is the wire shape of an offer in the document store.
type OfferDocument struct {
	ID        string    `bson:"_id"`
	ListingID string    `bson:"listingId"`
	BuyerID   string    `bson:"buyerId"`
	SellerID  string    `bson:"sellerId"`
	Amount    float64   `bson:"amount"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// OfferDocumentFrom maps a local offer row into its remote document.
func OfferDocumentFrom(offer *models.Offer) OfferDocument {
	return OfferDocument{
		ID:        offer.ID,
		ListingID: offer.ListingID,
		BuyerID:   offer.BuyerID,
		SellerID:  offer.SellerID,
		Amount:    offer.Amount,
		Status:    string(offer.Status),
		CreatedAt: offer.CreatedAt,
		UpdatedAt: offer.UpdatedAt,
	}
}

type OfferStore struct {
	coll *mongo.Collection
}

func NewOfferStore(c *Client) *OfferStore {
	return &OfferStore{coll: c.db.Collection(offersCollection)}
}

// Save persists the offer document with create-or-replace semantics: a
// retry after a partial failure lands on the same document.
func (s *OfferStore) Save(ctx context.Context, offer *models.Offer) error {
	doc := OfferDocumentFrom(offer)
	doc.UpdatedAt = time.Now()

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save remote offer: %w", err)
	}
	return nil
}

func (s *OfferStore) UpdateStatus(ctx context.Context, id string, status models.OfferStatus) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    string(status),
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update remote offer status: %w", err)
	}
	return nil
}

func (s *OfferStore) GetByID(ctx context.Context, id string) (*OfferDocument, error) {
	var doc OfferDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get remote offer: %w", err)
	}
	return &doc, nil
}
