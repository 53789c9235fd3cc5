package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"storefront-service/internal/catalog"
	"storefront-service/internal/config"
	"storefront-service/internal/middleware"
	"storefront-service/internal/models"
	"storefront-service/internal/orders"
	"storefront-service/internal/store"
)

type StorefrontHandler struct {
	store      *store.CatalogStore
	normalizer *catalog.Normalizer
	classifier *catalog.Classifier
	cfg        *config.Config
}

func NewStorefrontHandler(s *store.CatalogStore, n *catalog.Normalizer, c *catalog.Classifier, cfg *config.Config) *StorefrontHandler {
	return &StorefrontHandler{
		store:      s,
		normalizer: n,
		classifier: c,
		cfg:        cfg,
	}
}

func errorJSON(c *gin.Context, status int, code, message, field string) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    code,
			Message: message,
			Field:   field,
		},
		RequestID: middleware.GetRequestID(c),
	})
}

// view runs one normalization+classification pass over the current
// snapshot. Recomputed per request: the snapshot is small, immutable for
// the duration of the pass, and never cached.
func (h *StorefrontHandler) view() []models.NormalizedProduct {
	snapshot := h.store.Snapshot()
	cls := h.classifier.ClassifyAll(snapshot)
	return h.normalizer.NormalizeAll(snapshot, cls)
}

// GetProducts returns the full normalized catalog
// @Summary List storefront products
// @Description Returns every product in render-ready normalized form
// @Tags storefront
// @Produce json
// @Param sort query string false "Sort order" Enums(name, price-low, price-high, newest)
// @Success 200 {object} models.ProductListResponse
// @Router /storefront/products [get]
func (h *StorefrontHandler) GetProducts(c *gin.Context) {
	products := h.view()
	sortProducts(products, c.Query("sort"))

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    products,
		Total:   len(products),
	})
}

// GetProduct returns one normalized product
// @Summary Get a storefront product
// @Tags storefront
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product ID must be an integer", "id")
		return
	}

	for _, p := range h.view() {
		if p.ID == id {
			c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: &p})
			return
		}
	}
	errorJSON(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "")
}

// GetCategories returns the category tiles
// @Summary List category tiles
// @Description Returns the taxonomy with per-category product counts
// @Tags storefront
// @Produce json
// @Success 200 {object} models.CategoryListResponse
// @Router /storefront/categories [get]
func (h *StorefrontHandler) GetCategories(c *gin.Context) {
	cls := h.classifier.ClassifyAll(h.store.Snapshot())

	tiles := make([]models.CategoryTile, 0, len(h.classifier.Taxonomy()))
	for _, cat := range h.classifier.Taxonomy() {
		tiles = append(tiles, models.CategoryTile{
			Label:       cat.Label,
			Image:       cat.Image,
			Description: cat.Description,
			Count:       cls.Counts[cat.Label],
		})
	}

	c.JSON(http.StatusOK, models.CategoryListResponse{Success: true, Data: tiles})
}

// GetCategoryProducts returns the products classified into one category
// @Summary List products in a category
// @Tags storefront
// @Produce json
// @Param label path string true "Category label"
// @Param sort query string false "Sort order" Enums(name, price-low, price-high, newest)
// @Success 200 {object} models.ProductListResponse
// @Router /storefront/categories/{label}/products [get]
func (h *StorefrontHandler) GetCategoryProducts(c *gin.Context) {
	label := c.Param("label")

	var matched []models.NormalizedProduct
	for _, p := range h.view() {
		if p.CategoryLabel == label {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, c.Query("sort"))

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success: true,
		Data:    matched,
		Total:   len(matched),
	})
}

// CreateWhatsAppOrder builds the pre-filled WhatsApp chat link for an order
// @Summary Create a WhatsApp order link
// @Description There is no order pipeline; ordering opens a pre-filled WhatsApp chat
// @Tags storefront
// @Accept json
// @Produce json
// @Param order body models.WhatsAppOrderRequest true "Order selections"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/orders/whatsapp [post]
func (h *StorefrontHandler) CreateWhatsAppOrder(c *gin.Context) {
	var req models.WhatsAppOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), "")
		return
	}

	var product *models.NormalizedProduct
	for _, p := range h.view() {
		if p.ID == req.ProductID {
			product = &p
			break
		}
	}
	if product == nil {
		errorJSON(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "productId")
		return
	}

	productURL := fmt.Sprintf("%s/product-detail.html?id=%d", h.cfg.StoreBaseURL, product.ID)
	message := orders.BuildOrderMessage(h.cfg.StoreName, *product, req.Color, req.Size, productURL)
	order := models.WhatsAppOrder{
		URL:     orders.WhatsAppLink(h.store.WhatsAppNumber(), message),
		Message: message,
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: order})
}

// sortProducts orders a product list in place. Unknown or empty sort keys
// leave catalog order untouched.
func sortProducts(products []models.NormalizedProduct, sortBy string) {
	switch sortBy {
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool {
			return effectivePrice(products[i]) < effectivePrice(products[j])
		})
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool {
			return effectivePrice(products[i]) > effectivePrice(products[j])
		})
	case "newest":
		// Newer products have higher ids.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}

func effectivePrice(p models.NormalizedProduct) float64 {
	if p.OnSale && p.SalePrice < p.ActualPrice {
		return p.SalePrice
	}
	return p.ActualPrice
}
