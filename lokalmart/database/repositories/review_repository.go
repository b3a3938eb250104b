package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/uptrace/bun"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByRevieweeID(ctx context.Context, revieweeID string) ([]*models.Review, error)
	GetByListingID(ctx context.Context, listingID string) ([]*models.Review, error)
	AverageRating(ctx context.Context, revieweeID string) (float64, error)
}

type reviewRepository struct {
	db *bun.DB
}

func NewReviewRepository(db *bun.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = time.Now()

	_, err := r.db.NewInsert().Model(review).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByRevieweeID(ctx context.Context, revieweeID string) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.NewSelect().
		Model(&reviews).
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetByListingID(ctx context.Context, listingID string) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.NewSelect().
		Model(&reviews).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get listing reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, revieweeID string) (float64, error) {
	var avg float64
	err := r.db.NewSelect().
		Model((*models.Review)(nil)).
		ColumnExpr("COALESCE(AVG(rating), 0)").
		Where("reviewee_id = ?", revieweeID).
		Scan(ctx, &avg)

	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return avg, nil
}
