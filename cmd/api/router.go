package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recipe-backend/internal/shared/middleware"
	"recipe-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(c.Config.RateLimit.RPS, c.Config.RateLimit.Burst))
	{
		setupAuthorRoutes(v1, c)
		setupRecipeRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(rg *gin.RouterGroup, c *container.Container) {
	authors := rg.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/recipes", c.RecipeHandler.ListByAuthor)
	}
}

func setupRecipeRoutes(rg *gin.RouterGroup, c *container.Container) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", c.RecipeHandler.Create)
		recipes.GET("", c.RecipeHandler.List)
		recipes.GET("/search", c.RecipeHandler.Search)
		recipes.GET("/:id", c.RecipeHandler.GetByID)
		recipes.PUT("/:id", c.RecipeHandler.Update)
		recipes.DELETE("/:id", c.RecipeHandler.Delete)

		ingredients := recipes.Group("/:id/ingredients")
		{
			ingredients.GET("", c.IngredientHandler.List)
			ingredients.POST("", c.IngredientHandler.Create)
			ingredients.GET("/:ingredientId", c.IngredientHandler.Get)
			ingredients.PUT("/:ingredientId", c.IngredientHandler.Update)
			ingredients.DELETE("/:ingredientId", c.IngredientHandler.Delete)
		}
	}
}
