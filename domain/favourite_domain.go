package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetFavourite    = "success get favourite status"
	MessageSuccessGetFavourites   = "success get favourites"
	MessageSuccessAddFavourite    = "recipe added to favourites"
	MessageSuccessRemoveFavourite = "recipe removed from favourites"

	MessageFailedGetFavourite    = "failed to get favourite status"
	MessageFailedGetFavourites   = "failed to get favourites"
	MessageFailedAddFavourite    = "failed to add favourite"
	MessageFailedRemoveFavourite = "failed to remove favourite"

	ErrSelfFavourite  = errors.New("cannot favourite your own recipe")
	ErrViewerMismatch = errors.New("viewer does not match the signed in user")
)

type (
	FavouriteMark struct {
		ID             string    `json:"id"`
		ViewerUsername string    `json:"viewer_username"`
		RecipeID       string    `json:"recipe_id"`
		CreatedAt      time.Time `json:"created_at"`
	}

	FavouriteStatus struct {
		RecipeID    string `json:"recipe_id"`
		IsFavourite bool   `json:"is_favourite"`
	}

	FavouritesResponse struct {
		Recipes    []RecipeSummary `json:"recipes"`
		NextCursor *time.Time      `json:"next_cursor,omitempty"`
	}
)
