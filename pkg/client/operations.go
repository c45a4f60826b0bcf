package client

import (
	"Recipe-Share/domain"
	"context"
	"github.com/gofiber/fiber/v2"
	"net/url"
	"time"
)

// Authenticate signs in and keeps the session for later requests.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	var res domain.AuthResponse
	err := c.do(ctx, "authenticate", fiber.MethodPost, "/api/v1/users/login", nil,
		domain.LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.SetSession(&res)
	return &res, nil
}

// CreateAccount registers a user and signs in as them.
func (c *Client) CreateAccount(ctx context.Context, username, email, password string) (*domain.AuthResponse, error) {
	var res domain.AuthResponse
	err := c.do(ctx, "create account", fiber.MethodPost, "/api/v1/users/register", nil,
		domain.RegisterRequest{Username: username, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.SetSession(&res)
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*domain.UserProfile, error) {
	var res domain.UserProfile
	if err := c.do(ctx, "get profile", fiber.MethodGet, "/api/v1/users/me", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	var res domain.UserProfile
	if err := c.do(ctx, "get profile", fiber.MethodGet, "/api/v1/users/"+url.PathEscape(username), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdatePhoto replaces the profile photo and refreshes the session's copy.
func (c *Client) UpdatePhoto(ctx context.Context, dataURL string) (*domain.UserProfile, error) {
	var res domain.UserProfile
	err := c.do(ctx, "update photo", fiber.MethodPatch, "/api/v1/users/me", nil,
		domain.UpdateProfileRequest{Photo: dataURL}, &res)
	if err != nil {
		return nil, err
	}
	if s := c.Session(); s != nil {
		updated := *s
		updated.PhotoURL = res.PhotoURL
		c.SetSession(&updated)
	}
	return &res, nil
}

func (c *Client) FetchRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]domain.RecipeSummary, error) {
	var res domain.FeedPageResponse
	if err := c.do(ctx, "fetch recipe page", fiber.MethodGet, "/api/v1/recipes", pageQuery(author, after, limit), nil, &res); err != nil {
		return nil, err
	}
	return res.Recipes, nil
}

// FetchFeed is FetchRecipePage with favourite flags computed by the server.
func (c *Client) FetchFeed(ctx context.Context, author string, after *time.Time, limit int) (*domain.FeedPageResponse, error) {
	var res domain.FeedPageResponse
	if err := c.do(ctx, "fetch feed", fiber.MethodGet, "/api/v1/feed", pageQuery(author, after, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetRecipeDetail(ctx context.Context, recipeID string) (*domain.RecipeDetail, error) {
	var res domain.RecipeDetail
	if err := c.do(ctx, "get recipe", fiber.MethodGet, "/api/v1/recipes/"+url.PathEscape(recipeID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) FetchIngredients(ctx context.Context, recipeID string) ([]domain.Ingredient, error) {
	var res []domain.Ingredient
	if err := c.do(ctx, "fetch ingredients", fiber.MethodGet, "/api/v1/recipes/"+url.PathEscape(recipeID)+"/ingredients", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) FetchSteps(ctx context.Context, recipeID string) ([]domain.Step, error) {
	var res []domain.Step
	if err := c.do(ctx, "fetch steps", fiber.MethodGet, "/api/v1/recipes/"+url.PathEscape(recipeID)+"/steps", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// WriteRecipe creates a recipe with its photos, ingredients and steps in one request.
func (c *Client) WriteRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*domain.CreateRecipeResponse, error) {
	var res domain.CreateRecipeResponse
	if err := c.do(ctx, "write recipe", fiber.MethodPost, "/api/v1/recipes", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteRecipe(ctx context.Context, recipeID string) error {
	return c.do(ctx, "delete recipe", fiber.MethodDelete, "/api/v1/recipes/"+url.PathEscape(recipeID), nil, nil, nil)
}

func (c *Client) IsFavourited(ctx context.Context, viewer, recipeID string) (bool, error) {
	if err := c.checkViewer(viewer); err != nil {
		return false, err
	}
	var res domain.FavouriteStatus
	if err := c.do(ctx, "is favourited", fiber.MethodGet, "/api/v1/favourites/"+url.PathEscape(recipeID), nil, nil, &res); err != nil {
		return false, err
	}
	return res.IsFavourite, nil
}

func (c *Client) AddFavourite(ctx context.Context, viewer, recipeID string) error {
	if err := c.checkViewer(viewer); err != nil {
		return err
	}
	return c.do(ctx, "add favourite", fiber.MethodPost, "/api/v1/favourites/"+url.PathEscape(recipeID), nil, nil, nil)
}

func (c *Client) RemoveFavourite(ctx context.Context, viewer, recipeID string) error {
	if err := c.checkViewer(viewer); err != nil {
		return err
	}
	return c.do(ctx, "remove favourite", fiber.MethodDelete, "/api/v1/favourites/"+url.PathEscape(recipeID), nil, nil, nil)
}

func (c *Client) GetFavourites(ctx context.Context, after *time.Time, limit int) (*domain.FavouritesResponse, error) {
	var res domain.FavouritesResponse
	if err := c.do(ctx, "get favourites", fiber.MethodGet, "/api/v1/favourites", pageQuery("", after, limit), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UploadImage(ctx context.Context, path, dataURL string) (string, error) {
	var res domain.UploadImageResponse
	err := c.do(ctx, "upload image", fiber.MethodPost, "/api/v1/images", nil,
		domain.UploadImageRequest{Path: path, Photo: dataURL}, &res)
	if err != nil {
		return "", err
	}
	return res.URL, nil
}

func (c *Client) DeleteImage(ctx context.Context, imageRef string) error {
	return c.do(ctx, "delete image", fiber.MethodDelete, "/api/v1/images", url.Values{"ref": {imageRef}}, nil, nil)
}
