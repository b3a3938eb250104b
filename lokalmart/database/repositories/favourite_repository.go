package repositories

import (
	"context"
	"time"

	"github.com/lokalmart/lokalmart/lokalmart/database/models"
	"github.com/uptrace/bun"
)

type FavouriteRepository interface {
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
	GetByUserID(ctx context.Context, userID string) ([]*models.Favourite, error)
	Exists(ctx context.Context, userID, listingID string) (bool, error)
}

type favouriteRepository struct {
	db *bun.DB
}

func NewFavouriteRepository(db *bun.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) Add(ctx context.Context, userID, listingID string) error {
	fav := &models.Favourite{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().Model(fav).Exec(ctx)
	return err
}

func (r *favouriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	_, err := r.db.NewDelete().
		Model((*models.Favourite)(nil)).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Exec(ctx)
	return err
}

func (r *favouriteRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Favourite, error) {
	var favs []*models.Favourite
	err := r.db.NewSelect().
		Model(&favs).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	return favs, err
}

func (r *favouriteRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Favourite)(nil)).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Exists(ctx)
	return exists, err
}
