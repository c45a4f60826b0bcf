package favourite

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type (
	FavouriteRepository interface {
		AddFavourite(ctx context.Context, username, recipeID string) error
		RemoveFavourite(ctx context.Context, username, recipeID string) error
		IsFavourited(ctx context.Context, username, recipeID string) (bool, error)
		GetFavouritePage(ctx context.Context, username string, after *time.Time, limit int) ([]entities.Favourite, error)
	}

	favouriteRepository struct {
		db *gorm.DB
	}
)

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

// AddFavourite is idempotent: marking an existing favourite again leaves the
// original mark in place.
func (r *favouriteRepository) AddFavourite(ctx context.Context, username, recipeID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	favourite := entities.Favourite{
		Username: username,
		RecipeID: recipeUUID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).
		Create(&favourite).Error
}

func (r *favouriteRepository) RemoveFavourite(ctx context.Context, username, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("username = ? AND recipe_id = ?", username, recipeID).
		Delete(&entities.Favourite{}).Error
}

func (r *favouriteRepository) IsFavourited(ctx context.Context, username, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("username = ? AND recipe_id = ?", username, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFavouritePage returns the user's favourites marked strictly before after,
// most recent first, with their recipes loaded.
func (r *favouriteRepository) GetFavouritePage(ctx context.Context, username string, after *time.Time, limit int) ([]entities.Favourite, error) {
	var favourites []entities.Favourite
	q := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("username = ?", username)
	if after != nil {
		q = q.Where("created_at < ?", after.UTC())
	}
	if err := q.
		Order("created_at desc").
		Limit(limit).
		Find(&favourites).Error; err != nil {
		return nil, err
	}
	return favourites, nil
}
