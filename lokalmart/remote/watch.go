package remote

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchOffers opens a change stream over the offers collection and delivers
// the post-image of every insert, replace and update. The channel closes
// when ctx is cancelled or the stream dies; callers re-subscribe if they
// need the feed back.
func (s *OfferStore) WatchOffers(ctx context.Context) (<-chan OfferDocument, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "replace", "update"}},
		}}},
	}

	stream, err := s.coll.Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	out := make(chan OfferDocument)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument OfferDocument `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				slog.Warn("Failed to decode offer change event",
					slog.String("type", "db"),
					slog.Any("error", err))
				continue
			}
			select {
			case out <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			slog.Error("Offer change stream terminated",
				slog.String("type", "db"),
				slog.Any("error", err))
		}
	}()

	return out, nil
}
