package routes

import (
	"Recipe-Share-API/internal/api/handlers"
	"Recipe-Share-API/internal/middleware"
	"Recipe-Share-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AdminHandler     handlers.AdminHandler
	ChefHandler      handlers.ChefHandler
	FoodLoverHandler handlers.FoodLoverHandler
	RecipeHandler    handlers.RecipeHandler
	ReviewHandler    handlers.ReviewHandler
	AuthHandler      handlers.AuthHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
	UploadsDir       string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Admin()
	c.Chef()
	c.FoodLover()
	c.Recipe()
	c.Review()
	c.Uploads()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.AuthHandler.Register)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Profile)
		auth.Get("/test", c.AuthHandler.Test)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin")
	{
		admin.Get("", c.AdminHandler.GetAdmins)
		admin.Post("", c.AdminHandler.CreateAdmin)
		admin.Get("/:id", c.AdminHandler.GetAdmin)
		admin.Put("/:id", c.AdminHandler.UpdateAdmin)
		admin.Delete("/:id", c.AdminHandler.DeleteAdmin)
	}
}

func (c *Config) Chef() {
	chef := c.App.Group("/api/chef")
	{
		chef.Get("", c.ChefHandler.GetChefs)
		chef.Post("", c.ChefHandler.CreateChef)
		chef.Get("/:id", c.ChefHandler.GetChef)
		chef.Put("/:id", c.ChefHandler.UpdateChef)
		chef.Delete("/:id", c.ChefHandler.DeleteChef)
	}
}

func (c *Config) FoodLover() {
	foodLover := c.App.Group("/api/foodlover")
	{
		foodLover.Get("", c.FoodLoverHandler.GetFoodLovers)
		foodLover.Post("", c.FoodLoverHandler.CreateFoodLover)
		foodLover.Get("/:id", c.FoodLoverHandler.GetFoodLover)
		foodLover.Put("/:id", c.FoodLoverHandler.UpdateFoodLover)
		foodLover.Delete("/:id", c.FoodLoverHandler.DeleteFoodLover)
	}
}

func (c *Config) Recipe() {
	recipe := c.App.Group("/api/recipe")
	{
		recipe.Get("", c.RecipeHandler.GetRecipes)
		recipe.Get("/health", c.RecipeHandler.HealthCheck)
		recipe.Get("/chef/:chefId", c.RecipeHandler.GetChefRecipes)
		recipe.Post("/chef", c.RecipeHandler.CreateChefRecipe)
		recipe.Get("/:id", c.RecipeHandler.GetRecipe)
		recipe.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipe.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Review() {
	review := c.App.Group("/api/review")
	{
		review.Get("", c.ReviewHandler.GetReviews)
		review.Post("", c.ReviewHandler.CreateReview)
		review.Get("/:id", c.ReviewHandler.GetReview)
		review.Delete("/:id", c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Uploads() {
	dir := c.UploadsDir
	if dir == "" {
		dir = "./uploads"
	}
	c.App.Static("/uploads", dir)
}
