package handlers

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/api/presenters"
	"Recipe-Share/pkg/favourite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavouriteHandler interface {
		GetFavouriteStatus(c *fiber.Ctx) error
		AddFavourite(c *fiber.Ctx) error
		RemoveFavourite(c *fiber.Ctx) error
		GetFavourites(c *fiber.Ctx) error
	}

	favouriteHandler struct {
		favouriteService favourite.FavouriteService
		validator        *validator.Validate
		pageSize         int
	}
)

func NewFavouriteHandler(favouriteService favourite.FavouriteService, validator *validator.Validate, pageSize int) FavouriteHandler {
	return &favouriteHandler{
		favouriteService: favouriteService,
		validator:        validator,
		pageSize:         pageSize,
	}
}

// The viewer of every favourite endpoint is the signed in user.

func (h *favouriteHandler) GetFavouriteStatus(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")
	fav, err := h.favouriteService.IsFavourited(c.UserContext(), username(c), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedGetFavourite, err)
	}
	return presenters.SuccessResponse(c, domain.FavouriteStatus{RecipeID: recipeID, IsFavourite: fav}, fiber.StatusOK, domain.MessageSuccessGetFavourite)
}

func (h *favouriteHandler) AddFavourite(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")
	if err := h.favouriteService.AddFavourite(c.UserContext(), username(c), recipeID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedAddFavourite, err)
	}
	return presenters.SuccessResponse(c, domain.FavouriteStatus{RecipeID: recipeID, IsFavourite: true}, fiber.StatusOK, domain.MessageSuccessAddFavourite)
}

func (h *favouriteHandler) RemoveFavourite(c *fiber.Ctx) error {
	recipeID := c.Params("recipe_id")
	if err := h.favouriteService.RemoveFavourite(c.UserContext(), username(c), recipeID); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedRemoveFavourite, err)
	}
	return presenters.SuccessResponse(c, domain.FavouriteStatus{RecipeID: recipeID, IsFavourite: false}, fiber.StatusOK, domain.MessageSuccessRemoveFavourite)
}

func (h *favouriteHandler) GetFavourites(c *fiber.Ctx) error {
	q, err := parsePageQuery(c, h.validator, h.pageSize)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFavourites, err)
	}

	res, err := h.favouriteService.GetFavourites(c.UserContext(), username(c), q.after, q.limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFavourites, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavourites)
}
