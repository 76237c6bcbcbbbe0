package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/db"
)

// CatalogHandler handles API endpoints for the product catalog.
type CatalogHandler struct {
	catalogService core.CatalogService
	productRepo    db.ProductRepository
}

// NewCatalogHandler creates a new CatalogHandler. The repository is used only
// by the one-shot database seeding endpoint.
func NewCatalogHandler(cs core.CatalogService, pr db.ProductRepository) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, productRepo: pr}
}

// GetProducts handles GET /api/products. Optional query parameters `category`
// (exact match) and `q` (case-insensitive substring) narrow the result.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	products, err := h.catalogService.Filter(c.Request.Context(), category, query)
	if err != nil {
		log.Printf("Internal Server Error: failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

// InitDatabase handles POST /api/init_database. Seeding is a no-op when the
// catalog already holds products.
func (h *CatalogHandler) InitDatabase(c *gin.Context) {
	added, err := db.SeedProducts(c.Request.Context(), h.productRepo)
	if err != nil {
		log.Printf("Internal Server Error: failed to seed catalog: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize the product catalog"})
		return
	}

	message := "Product catalog already initialized"
	if added > 0 {
		message = fmt.Sprintf("Product catalog initialized with %d products", added)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        message,
		"products_added": added,
	})
}
