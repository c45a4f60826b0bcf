package config

import (
	"Recipe-Share/internal/api/handlers"
	"Recipe-Share/internal/api/routes"
	"Recipe-Share/internal/middleware"
	"Recipe-Share/internal/utils"
	"Recipe-Share/internal/utils/mailing"
	"Recipe-Share/internal/utils/storage"
	"Recipe-Share/pkg/favourite"
	"Recipe-Share/pkg/feed"
	"Recipe-Share/pkg/jwt"
	"Recipe-Share/pkg/media"
	"Recipe-Share/pkg/recipe"
	"Recipe-Share/pkg/user"
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
	"io"
	"os"
	"path/filepath"
	"time"
)

// NewApp wires every repository, service and handler onto a fiber app. The
// returned closer releases the access log.
func NewApp(db *gorm.DB, conf *utils.Config, store storage.Storage) (*fiber.App, io.Closer, error) {
	app := fiber.New(fiber.Config{
		AppName:   "Recipe Share",
		BodyLimit: 16 << 20,
	})
	validator := utils.NewValidator()
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(conf.LogPath), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		conf.LogPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   conf.DBTimeZone,
		Output:     file,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        conf.RateLimit,
		Expiration: 1 * time.Second,
	}))

	// utils
	mailer := mailing.NewMailer(mailing.LoadMailConfig(conf))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	favouriteRepository := favourite.NewFavouriteRepository(db)

	// Service
	jwtService := jwt.NewJWTService(conf.JWTSecret)
	mediaService := media.NewMediaService(store)
	userService := user.NewUserService(userRepository, jwtService, mediaService, mailer, conf.AppURL)
	favouriteService := favourite.NewFavouriteService(favouriteRepository, recipeRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, mediaService, favouriteService)
	decorator := feed.NewDecorator(favouriteService, conf.FeedFanOut)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator, conf.FeedPageSize)
	favouriteHandler := handlers.NewFavouriteHandler(favouriteService, validator, conf.FeedPageSize)
	feedHandler := handlers.NewFeedHandler(recipeService, decorator, validator, conf.FeedPageSize)
	imageHandler := handlers.NewImageHandler(mediaService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		RecipeHandler:    recipeHandler,
		FavouriteHandler: favouriteHandler,
		FeedHandler:      feedHandler,
		ImageHandler:     imageHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, file, nil
}

// NewStorage opens the image storage selected by STORAGE_DRIVER.
func NewStorage(ctx context.Context, conf *utils.Config) (storage.Storage, error) {
	switch conf.StorageDriver {
	case "s3":
		return storage.NewAwsS3(ctx, conf.AWSS3Bucket, conf.AWSS3Region, conf.AWSAccessKey, conf.AWSSecretKey)
	case "gcs":
		return storage.NewGCS(ctx, conf.GCSBucket)
	}
	return nil, fmt.Errorf("unknown storage driver %q", conf.StorageDriver)
}
