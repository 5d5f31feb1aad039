package routes

import (
	"Bakify-Web/internal/api/handlers"
	"Bakify-Web/internal/middleware"
	"Bakify-Web/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/session", c.AuthHandler.SignIn)
		auth.Delete("/session", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.SignOut)
	}
}

func (c *Config) Catalog() {
	api := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService))
	{
		api.Get("/recipes", c.CatalogHandler.GetRecipes)
		api.Get("/recipes/:uuid", c.CatalogHandler.GetRecipeDetail)
		api.Get("/recipes/:uuid/share", c.CatalogHandler.ShareRecipe)
		api.Get("/categories", c.CatalogHandler.GetCategories)
		api.Get("/resolve", c.CatalogHandler.ResolveDeepLink)
		api.Post("/catalog/reload", c.CatalogHandler.ReloadCatalog)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
