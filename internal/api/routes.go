package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/middleware"
)

// Handlers groups every HTTP handler wired by SetupRoutes.
type Handlers struct {
	Catalog    *CatalogHandler
	Budget     *BudgetHandler
	Cart       *CartHandler
	SharedCart *SharedCartHandler
	Recommend  *RecommendHandler
	Recipe     *RecipeHandler
	User       *UserHandler
}

// SetupRoutes configures the API routes. Shared-cart and discovery endpoints
// are public (anyone holding a session code may contribute); budget, personal
// cart and profile endpoints require a verified Firebase ID token.
func SetupRoutes(router *gin.Engine, h *Handlers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")

	public := apiGroup.Group("")
	public.Use(authMiddleware.OptionalToken())
	{
		public.GET("/products", h.Catalog.GetProducts)
		public.POST("/init_database", h.Catalog.InitDatabase)
		public.POST("/recommend", h.Recommend.Recommend)
		public.POST("/recipe-bot", h.Recipe.GetRecipe)

		sharedCart := public.Group("/shared-cart")
		{
			sharedCart.POST("/create", h.SharedCart.CreateSession)
			sharedCart.GET("/join/:cartId", h.SharedCart.JoinSession)
			sharedCart.GET("/:sessionId/items", h.SharedCart.ListItems)
			sharedCart.POST("/:sessionId/add", h.SharedCart.AddItem)
			sharedCart.DELETE("/:sessionId/items", h.SharedCart.ClearSession)
		}
	}

	private := apiGroup.Group("")
	private.Use(authMiddleware.VerifyToken())
	{
		private.POST("/users/initialize", h.User.InitializeUser)
		private.GET("/users/me", h.User.GetCurrentUser)

		private.GET("/budget", h.Budget.GetBudget)
		private.POST("/budget", h.Budget.SetBudget)

		private.GET("/cart", h.Cart.GetCart)
		private.POST("/cart", h.Cart.AddToCart)
		private.DELETE("/cart/:productId", h.Cart.RemoveFromCart)
	}
}
