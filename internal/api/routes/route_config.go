package routes

import (
	"Recipe-Share/internal/api/handlers"
	"Recipe-Share/internal/middleware"
	"Recipe-Share/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	RecipeHandler    handlers.RecipeHandler
	FavouriteHandler handlers.FavouriteHandler
	FeedHandler      handlers.FeedHandler
	ImageHandler     handlers.ImageHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipes()
	c.Favourites()
	c.Feed()
	c.Images()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePhoto)
		user.Get("/:username", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/ingredients", c.RecipeHandler.GetIngredients)
	recipes.Get("/:id/steps", c.RecipeHandler.GetSteps)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Favourites() {
	favourites := c.App.Group("/api/v1/favourites", c.Middleware.AuthMiddleware(c.JWTService))
	favourites.Get("", c.FavouriteHandler.GetFavourites)
	favourites.Get("/:recipe_id", c.FavouriteHandler.GetFavouriteStatus)
	favourites.Post("/:recipe_id", c.FavouriteHandler.AddFavourite)
	favourites.Delete("/:recipe_id", c.FavouriteHandler.RemoveFavourite)
}

func (c *Config) Feed() {
	c.App.Get("/api/v1/feed", c.Middleware.AuthMiddleware(c.JWTService), c.FeedHandler.GetFeed)
}

func (c *Config) Images() {
	images := c.App.Group("/api/v1/images", c.Middleware.AuthMiddleware(c.JWTService))
	images.Post("", c.ImageHandler.UploadImage)
	images.Delete("", c.ImageHandler.DeleteImage)
}
