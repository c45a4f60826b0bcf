package recipe

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/pkg/feed"
	"Recipe-Share/pkg/media"
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"time"
)

type (
	RecipeService interface {
		FetchRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]domain.RecipeSummary, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewer string) (*domain.RecipeDetail, error)
		FetchIngredients(ctx context.Context, recipeID string) ([]domain.Ingredient, error)
		FetchSteps(ctx context.Context, recipeID string) ([]domain.Step, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.CreateRecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
	}

	// AuthorLookup resolves the user creating a recipe.
	AuthorLookup interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		authors          AuthorLookup
		media            media.MediaService
		decorator        *feed.Decorator
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	authors AuthorLookup,
	media media.MediaService,
	favourites feed.FavouriteLookup,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		authors:          authors,
		media:            media,
		decorator:        feed.NewDecorator(favourites, 0),
	}
}

// ToSummary converts a stored recipe to its feed representation with
// IsFavourite unset.
func ToSummary(r entities.Recipe) domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:             r.ID.String(),
		Author:         r.Author,
		AuthorPhotoURL: r.AuthorPhotoURL,
		Title:          r.Title,
		Description:    r.Description,
		PhotoURL:       r.PhotoURL,
		CreatedAt:      r.CreatedAt,
	}
}

func (s *recipeService) FetchRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]domain.RecipeSummary, error) {
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	recipes, err := s.recipeRepository.GetRecipePage(ctx, author, after, limit)
	if err != nil {
		return nil, fmt.Errorf("recipe: fetching page: %w", err)
	}

	page := make([]domain.RecipeSummary, len(recipes))
	for i, r := range recipes {
		page[i] = ToSummary(r)
	}
	return page, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewer string) (*domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.FetchIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	steps, err := s.FetchSteps(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	summary := s.decorator.Decorate(ctx, viewer, []domain.RecipeSummary{ToSummary(*recipe)})[0]
	return &domain.RecipeDetail{
		RecipeSummary: summary,
		Ingredients:   ingredients,
		Steps:         steps,
	}, nil
}

func (s *recipeService) FetchIngredients(ctx context.Context, recipeID string) ([]domain.Ingredient, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		return nil, err
	}
	rows, err := s.recipeRepository.GetIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe: fetching ingredients: %w", err)
	}

	ingredients := make([]domain.Ingredient, len(rows))
	for i, row := range rows {
		ingredients[i] = domain.Ingredient{
			ID:       row.ID.String(),
			Position: row.Position,
			Name:     row.Name,
			Quantity: row.Quantity,
		}
	}
	return ingredients, nil
}

func (s *recipeService) FetchSteps(ctx context.Context, recipeID string) ([]domain.Step, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		return nil, err
	}
	rows, err := s.recipeRepository.GetSteps(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe: fetching steps: %w", err)
	}

	steps := make([]domain.Step, len(rows))
	for i, row := range rows {
		steps[i] = domain.Step{
			ID:          row.ID.String(),
			Position:    row.Position,
			Description: row.Description,
			PhotoURL:    row.PhotoURL,
		}
	}
	return steps, nil
}

// CreateRecipe uploads the recipe's photos and writes the recipe with its
// ingredients and steps. Photos already uploaded are removed again when a
// later step fails.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*domain.CreateRecipeResponse, error) {
	author, err := s.authors.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipeID := uuid.New()
	folder := fmt.Sprintf("recipes/%s/", recipeID)
	var uploaded []string
	cleanup := func() {
		for _, link := range uploaded {
			if err := s.media.DeleteImage(context.WithoutCancel(ctx), userID, link); err != nil {
				log.Warnf("recipe: removing orphaned image %s: %v", link, err)
			}
		}
	}

	photoURL, err := s.media.UploadImage(ctx, userID, folder+"main", req.Photo)
	if err != nil {
		return nil, err
	}
	uploaded = append(uploaded, photoURL)

	steps := make([]entities.Step, len(req.Steps))
	for i, step := range req.Steps {
		steps[i] = entities.Step{
			Position:    i + 1,
			Description: step.Description,
		}
		if step.Photo == "" {
			continue
		}
		link, err := s.media.UploadImage(ctx, userID, fmt.Sprintf("%ssteps/%d", folder, i+1), step.Photo)
		if err != nil {
			cleanup()
			return nil, err
		}
		uploaded = append(uploaded, link)
		steps[i].PhotoURL = link
	}

	ingredients := make([]entities.Ingredient, len(req.Ingredients))
	for i, ingredient := range req.Ingredients {
		ingredients[i] = entities.Ingredient{
			Position: i + 1,
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
		}
	}

	recipe := &entities.Recipe{
		ID:             recipeID,
		UserID:         author.ID,
		Author:         author.Username,
		AuthorPhotoURL: author.PhotoURL,
		Title:          req.Title,
		Description:    req.Description,
		PhotoURL:       photoURL,
		Ingredients:    ingredients,
		Steps:          steps,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		cleanup()
		return nil, fmt.Errorf("recipe: writing recipe: %w", err)
	}

	return &domain.CreateRecipeResponse{
		ID:        recipe.ID.String(),
		CreatedAt: recipe.CreatedAt,
	}, nil
}

// DeleteRecipe deletes a recipe owned by userID. Its images are removed
// afterwards; failures there are logged and do not fail the deletion.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	steps, err := s.recipeRepository.GetSteps(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("recipe: fetching steps: %w", err)
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	links := []string{recipe.PhotoURL}
	for _, step := range steps {
		links = append(links, step.PhotoURL)
	}
	for _, link := range links {
		if err := s.media.DeleteImage(ctx, userID, link); err != nil {
			log.Warnf("recipe: deleting image %s of recipe %s: %v", link, recipeID, err)
		}
	}
	return nil
}
