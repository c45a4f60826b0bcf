package favourite

import (
	"Recipe-Share/domain"
	"Recipe-Share/pkg/recipe"
	"context"
	"fmt"
	"time"
)

type (
	FavouriteService interface {
		IsFavourited(ctx context.Context, viewer, recipeID string) (bool, error)
		AddFavourite(ctx context.Context, viewer, recipeID string) error
		RemoveFavourite(ctx context.Context, viewer, recipeID string) error
		GetFavourites(ctx context.Context, viewer string, after *time.Time, limit int) (*domain.FavouritesResponse, error)
	}

	favouriteService struct {
		favouriteRepository FavouriteRepository
		recipeRepository    recipe.RecipeRepository
	}
)

func NewFavouriteService(favouriteRepository FavouriteRepository, recipeRepository recipe.RecipeRepository) FavouriteService {
	return &favouriteService{
		favouriteRepository: favouriteRepository,
		recipeRepository:    recipeRepository,
	}
}

func (s *favouriteService) IsFavourited(ctx context.Context, viewer, recipeID string) (bool, error) {
	return s.favouriteRepository.IsFavourited(ctx, viewer, recipeID)
}

// AddFavourite marks recipeID for viewer. Viewers cannot favourite their own
// recipes.
func (s *favouriteService) AddFavourite(ctx context.Context, viewer, recipeID string) error {
	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if r.Author == viewer {
		return domain.ErrSelfFavourite
	}
	if err := s.favouriteRepository.AddFavourite(ctx, viewer, recipeID); err != nil {
		return fmt.Errorf("favourite: adding %s: %w", recipeID, err)
	}
	return nil
}

func (s *favouriteService) RemoveFavourite(ctx context.Context, viewer, recipeID string) error {
	if err := s.favouriteRepository.RemoveFavourite(ctx, viewer, recipeID); err != nil {
		return fmt.Errorf("favourite: removing %s: %w", recipeID, err)
	}
	return nil
}

// GetFavourites returns a page of the viewer's favourite recipes. NextCursor
// is set only when the page is full.
func (s *favouriteService) GetFavourites(ctx context.Context, viewer string, after *time.Time, limit int) (*domain.FavouritesResponse, error) {
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}
	favourites, err := s.favouriteRepository.GetFavouritePage(ctx, viewer, after, limit)
	if err != nil {
		return nil, fmt.Errorf("favourite: fetching favourites: %w", err)
	}

	res := &domain.FavouritesResponse{Recipes: make([]domain.RecipeSummary, 0, len(favourites))}
	for _, f := range favourites {
		if f.Recipe == nil {
			continue
		}
		summary := recipe.ToSummary(*f.Recipe)
		summary.IsFavourite = true
		res.Recipes = append(res.Recipes, summary)
	}
	if len(favourites) == limit {
		next := favourites[len(favourites)-1].CreatedAt
		res.NextCursor = &next
	}
	return res, nil
}
