package handlers

import (
	"Recipe-Share/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func username(c *fiber.Ctx) string {
	name, _ := c.Locals("username").(string)
	return name
}

type pageQuery struct {
	author string
	after  *time.Time
	limit  int
}

// parsePageQuery reads author, after and limit. A missing limit falls back to
// pageSize.
func parsePageQuery(c *fiber.Ctx, validate *validator.Validate, pageSize int) (pageQuery, error) {
	req := new(domain.FeedPageRequest)
	if err := c.QueryParser(req); err != nil {
		return pageQuery{}, err
	}
	if err := validate.Struct(req); err != nil {
		return pageQuery{}, err
	}
	after, err := domain.ParseCursor(req.After)
	if err != nil {
		return pageQuery{}, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = pageSize
	}
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	return pageQuery{author: req.Author, after: after, limit: limit}, nil
}

func pageResponse(recipes []domain.RecipeSummary, limit int) domain.FeedPageResponse {
	if recipes == nil {
		recipes = []domain.RecipeSummary{}
	}
	res := domain.FeedPageResponse{
		Recipes:    recipes,
		ReachedEnd: len(recipes) < limit,
	}
	if n := len(recipes); n > 0 && !res.ReachedEnd {
		next := recipes[n-1].CreatedAt
		res.NextCursor = &next
	}
	return res
}
