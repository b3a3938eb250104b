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

const listingsCollection = "listings"

type ListingStore struct {
	coll *mongo.Collection
}

func NewListingStore(c *Client) *ListingStore {
	return &ListingStore{coll: c.db.Collection(listingsCollection)}
}

// UpdateStatus pushes a listing status transition to the document store.
// The upsert keeps the write idempotent even when the listing document has
// not been synced yet.
func (s *ListingStore) UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    string(status),
			"sold":      sold,
			"updatedAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to update remote listing status: %w", err)
	}
	return nil
}

func (s *ListingStore) GetStatus(ctx context.Context, id string) (models.ListingStatus, bool, error) {
	var doc struct {
		Status string `bson:"status"`
		Sold   bool   `bson:"sold"`
	}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get remote listing: %w", err)
	}
	return models.ListingStatus(doc.Status), doc.Sold, nil
}
