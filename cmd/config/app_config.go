package config

import (
	"Recipe-Share-API/entities"
	"Recipe-Share-API/internal/api/handlers"
	"Recipe-Share-API/internal/api/presenters"
	"Recipe-Share-API/internal/api/routes"
	"Recipe-Share-API/internal/middleware"
	"Recipe-Share-API/internal/utils"
	"Recipe-Share-API/internal/utils/storage"
	"Recipe-Share-API/pkg/admin"
	"Recipe-Share-API/pkg/auth"
	"Recipe-Share-API/pkg/chef"
	"Recipe-Share-API/pkg/crud"
	"Recipe-Share-API/pkg/foodlover"
	"Recipe-Share-API/pkg/jwt"
	"Recipe-Share-API/pkg/recipe"
	"Recipe-Share-API/pkg/review"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		// Anything a handler lets escape becomes a generic 500 envelope.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return presenters.ErrorResponse(c, code, "An error occurred while processing your request.", err)
		},
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// uploads backend: local disk unless S3 is configured
	uploadsDir := utils.GetConfig("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("error creating uploads directory: %v", err)
	}
	var uploader storage.Uploader
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		uploader = storage.NewAwsS3()
	} else {
		uploader = storage.NewLocalStorage(uploadsDir)
	}

	// Repository
	adminRepository := crud.NewRepository[entities.Admin](db)
	chefRepository := crud.NewRepository[entities.Chef](db)
	foodLoverRepository := crud.NewRepository[entities.FoodLover](db)
	reviewRepository := crud.NewRepository[entities.Review](db, "Recipe", "FoodLover")
	recipeRepository := recipe.NewRecipeRepository(db)
	authRepository := auth.NewAuthRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	adminService := admin.NewAdminService(adminRepository)
	chefService := chef.NewChefService(chefRepository)
	foodLoverService := foodlover.NewFoodLoverService(foodLoverRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, uploader)
	reviewService := review.NewReviewService(reviewRepository)
	authService := auth.NewAuthService(authRepository, jwtService, uploader)

	// Handler
	adminHandler := handlers.NewAdminHandler(adminService, validator)
	chefHandler := handlers.NewChefHandler(chefService, validator)
	foodLoverHandler := handlers.NewFoodLoverHandler(foodLoverService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	authHandler := handlers.NewAuthHandler(authService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		AdminHandler:     adminHandler,
		ChefHandler:      chefHandler,
		FoodLoverHandler: foodLoverHandler,
		RecipeHandler:    recipeHandler,
		ReviewHandler:    reviewHandler,
		AuthHandler:      authHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
		UploadsDir:       uploadsDir,
	}
	routesConfig.Setup()
	return app, nil
}
