package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetIngredients  = "success get ingredients"
	MessageSuccessGetSteps        = "success get steps"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"
	MessageSuccessDeleteImage     = "image deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetIngredients  = "failed to get ingredients"
	MessageFailedGetSteps        = "failed to get steps"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload image"
	MessageFailedDeleteImage     = "failed to delete image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidImageFormat       = errors.New("invalid image format")
	ErrImageTooLarge            = errors.New("image too large")
	ErrInvalidCursor            = errors.New("invalid pagination cursor")
)

type (
	Ingredient struct {
		ID       string `json:"id,omitempty"`
		Position int    `json:"position"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	Step struct {
		ID          string `json:"id,omitempty"`
		Position    int    `json:"position"`
		Description string `json:"description"`
		PhotoURL    string `json:"photo_url,omitempty"`
	}

	RecipeDetail struct {
		RecipeSummary
		Ingredients []Ingredient `json:"ingredients"`
		Steps       []Step       `json:"steps"`
	}

	IngredientRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Quantity string `json:"quantity" validate:"max=50"`
	}

	StepRequest struct {
		Description string `json:"description" validate:"required,max=2000"`
		// Photo is an optional image data URL.
		Photo string `json:"photo,omitempty" validate:"omitempty,startswith=data:image/"`
	}

	CreateRecipeRequest struct {
		Title       string              `json:"title" validate:"required,max=100"`
		Description string              `json:"description" validate:"max=2000"`
		Photo       string              `json:"photo" validate:"required,startswith=data:image/"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Steps       []StepRequest       `json:"steps" validate:"required,min=1,dive"`
	}

	CreateRecipeResponse struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"created_at"`
	}

	UploadImageRequest struct {
		Path  string `json:"path" validate:"required,max=200"`
		Photo string `json:"photo" validate:"required,startswith=data:image/"`
	}

	UploadImageResponse struct {
		URL string `json:"url"`
	}
)
