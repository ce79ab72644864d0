package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/service"
)

type Deps struct {
	AuthService    *service.AuthService
	AuthHandler    *AuthHandler
	CatalogHandler *CatalogHandler
	CartHandler    *CartHandler
	ReviewHandler  *ReviewHandler
	SearchHandler  *SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)

	api.GET("/categories", d.CatalogHandler.GetCategories)
	api.POST("/categories", d.CatalogHandler.CreateCategory, RequireUser(d.AuthService), RequireAdmin())

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/search", d.SearchHandler.Search)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)
	api.POST("/products", d.CatalogHandler.CreateProduct, RequireUser(d.AuthService), RequireAdmin())

	cart := api.Group("/cart", RequireUser(d.AuthService))
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.DELETE("/remove/:product_id", d.CartHandler.RemoveFromCart)

	api.GET("/reviews", d.ReviewHandler.GetReviews)
	api.POST("/reviews", d.ReviewHandler.CreateReview, RequireUser(d.AuthService), RequireAdmin())

	api.POST("/contact", d.ReviewHandler.CreateContact)
}
