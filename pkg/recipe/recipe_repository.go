package recipe

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]entities.Recipe, error)
		GetIngredients(ctx context.Context, recipeID string) ([]entities.Ingredient, error)
		GetSteps(ctx context.Context, recipeID string) ([]entities.Step, error)
		DeleteRecipe(ctx context.Context, id string) error
		CountByUser(ctx context.Context, userID string) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe writes the recipe with its ingredients and steps atomically.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// GetRecipePage returns at most limit recipes created strictly before after,
// newest first. An empty author matches every author.
func (r *recipeRepository) GetRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	q := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if author != "" {
		q = q.Where("author = ?", author)
	}
	if after != nil {
		q = q.Where("created_at < ?", after.UTC())
	}
	if err := q.
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID string) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetSteps(ctx context.Context, recipeID string) ([]entities.Step, error) {
	var steps []entities.Step
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position asc").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// DeleteRecipe removes the recipe, everything that references it and every
// favourite mark on it in one transaction.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favourite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Step{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *recipeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
