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

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	GetBySellerID(ctx context.Context, sellerID string) ([]*models.Listing, error)
	GetByStatus(ctx context.Context, status models.ListingStatus) ([]*models.Listing, error)
	GetAll(ctx context.Context) ([]*models.Listing, error)
	UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error
	Delete(ctx context.Context, id string) error
}

type listingRepository struct {
	db *bun.DB
}

func NewListingRepository(db *bun.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()
	if listing.Status == "" {
		listing.Status = models.ListingStatusAvailable
	}
	listing.Sold = models.SoldFlagFor(listing.Status)

	_, err := r.db.NewInsert().Model(listing).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetByID returns nil without error when the listing does not exist; the
// caller decides whether absence is a failure.
func (r *listingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	listing := new(models.Listing)
	err := r.db.NewSelect().
		Model(listing).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

func (r *listingRepository) GetBySellerID(ctx context.Context, sellerID string) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := r.db.NewSelect().
		Model(&listings).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get seller listings: %w", err)
	}
	return listings, nil
}

func (r *listingRepository) GetByStatus(ctx context.Context, status models.ListingStatus) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := r.db.NewSelect().
		Model(&listings).
		Where("status = ?", status).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get listings by status: %w", err)
	}
	return listings, nil
}

func (r *listingRepository) GetAll(ctx context.Context) ([]*models.Listing, error) {
	var listings []*models.Listing
	err := r.db.NewSelect().
		Model(&listings).
		Order("created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	return listings, nil
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id string, status models.ListingStatus, sold bool) error {
	_, err := r.db.NewUpdate().
		Model((*models.Listing)(nil)).
		Set("status = ?", status).
		Set("sold = ?", sold).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.NewDelete().
		Model((*models.Listing)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}
