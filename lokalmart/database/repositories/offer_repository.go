package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/uptrace/bun"
)

type OfferRepository interface {
	Insert(ctx context.Context, offer *models.Offer) error
	Delete(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	UpdateStatus(ctx context.Context, id string, status models.OfferStatus) error
	GetByListingID(ctx context.Context, listingID string) ([]*models.Offer, error)
	GetSentByListingID(ctx context.Context, listingID string) ([]*models.Offer, error)
	GetByBuyerID(ctx context.Context, buyerID string) ([]*models.Offer, error)
}

type offerRepository struct {
	db *bun.DB
}

func NewOfferRepository(db *bun.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Insert(ctx context.Context, offer *models.Offer) error {
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}
	offer.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().Model(offer).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

func (r *offerRepository) Delete(ctx context.Context, offer *models.Offer) error {
	_, err := r.db.NewDelete().
		Model((*models.Offer)(nil)).
		Where("id = ?", offer.ID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}

// GetByID returns nil without error when the offer does not exist.
func (r *offerRepository) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	offer := new(models.Offer)
	err := r.db.NewSelect().
		Model(offer).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id string, status models.OfferStatus) error {
	_, err := r.db.NewUpdate().
		Model((*models.Offer)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update offer status: %w", err)
	}
	return nil
}

func (r *offerRepository) GetByListingID(ctx context.Context, listingID string) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get listing offers: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) GetSentByListingID(ctx context.Context, listingID string) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("listing_id = ? AND status = ?", listingID, models.OfferStatusSent).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get sent offers: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) GetByBuyerID(ctx context.Context, buyerID string) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get buyer offers: %w", err)
	}
	return offers, nil
}
