package handlers

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/api/presenters"
	"Recipe-Share/pkg/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetSteps(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
		pageSize      int
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate, pageSize int) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
		pageSize:      pageSize,
	}
}

// GetRecipes serves a raw page of recipes. Favourite flags are left unset;
// see the feed handler for the decorated variant.
func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	q, err := parsePageQuery(c, h.validator, h.pageSize)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	recipes, err := h.recipeService.FetchRecipePage(c.UserContext(), q.author, q.after, q.limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, pageResponse(recipes, q.limit), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.UserContext(), c.Params("id"), username(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.recipeService.FetchIngredients(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *recipeHandler) GetSteps(c *fiber.Ctx) error {
	res, err := h.recipeService.FetchSteps(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedGetSteps, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSteps)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.UserContext(), c.Params("id"), userID(c)); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
