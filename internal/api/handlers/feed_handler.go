package handlers

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/api/presenters"
	"Recipe-Share/pkg/feed"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetFeed(c *fiber.Ctx) error
	}

	feedHandler struct {
		source    feed.PageSource
		decorator *feed.Decorator
		validator *validator.Validate
		pageSize  int
	}
)

func NewFeedHandler(source feed.PageSource, decorator *feed.Decorator, validator *validator.Validate, pageSize int) FeedHandler {
	return &feedHandler{
		source:    source,
		decorator: decorator,
		validator: validator,
		pageSize:  pageSize,
	}
}

// GetFeed serves one page of recipes with IsFavourite set for the caller.
func (h *feedHandler) GetFeed(c *fiber.Ctx) error {
	q, err := parsePageQuery(c, h.validator, h.pageSize)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFeed, err)
	}

	ctx := c.UserContext()
	page, err := h.source.FetchRecipePage(ctx, q.author, q.after, q.limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeed, err)
	}
	decorated := h.decorator.Decorate(ctx, username(c), page)
	return presenters.SuccessResponse(c, pageResponse(decorated, q.limit), fiber.StatusOK, domain.MessageSuccessGetFeed)
}
