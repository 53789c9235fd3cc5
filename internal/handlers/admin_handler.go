package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"storefront-service/internal/models"
	"storefront-service/internal/store"
)

// placeholderGalleryURL stands in for uploaded product images. File
// upload is simulated in this demo; real uploads would go through a media
// service.
const placeholderGalleryURL = "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=600&h=600&fit=crop&crop=center"

// AdminHandler edits the in-memory catalog. None of these operations
// persist anything: the edited snapshot lives for the process lifetime
// and reloads from products.json on restart.
type AdminHandler struct {
	store *store.CatalogStore
}

func NewAdminHandler(s *store.CatalogStore) *AdminHandler {
	return &AdminHandler{store: s}
}

// ListProducts returns the raw catalog records
// @Summary List raw catalog records
// @Tags admin
// @Produce json
// @Success 200 {object} models.RawProductListResponse
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products := h.store.Snapshot()
	c.JSON(http.StatusOK, models.RawProductListResponse{
		Success: true,
		Data:    products,
		Total:   len(products),
	})
}

// CreateProduct adds a product to the in-memory catalog
// @Summary Add a product (in-memory only)
// @Tags admin
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "New product"
// @Success 201 {object} models.RawProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), "")
		return
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{placeholderGalleryURL}
	}

	sizes := make([]models.SizeEntry, 0, len(req.Sizes))
	for _, label := range req.Sizes {
		sizes = append(sizes, models.SizeEntry{Label: label})
	}

	product := models.RawProduct{
		Name:        req.Name,
		Price:       models.FlexNumber{Value: req.Price, Valid: true},
		Description: req.Description,
		Category:    models.FlexCategory{Primary: req.Category},
		Images:      models.FlexImages{List: images},
		Colors:      req.Colors,
		Sizes:       sizes,
		Featured:    models.FlexBool(req.Featured),
		InStock:     models.FlexBool(true),
	}
	product = h.store.Add(product)

	msg := "Product added. This is demo state: changes are not persisted."
	c.JSON(http.StatusCreated, models.RawProductResponse{
		Success: true,
		Data:    &product,
		Message: &msg,
	})
}

// DeleteProduct removes a product from the in-memory catalog
// @Summary Delete a product (in-memory only)
// @Tags admin
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product ID must be an integer", "id")
		return
	}

	if !h.store.Delete(id) {
		errorJSON(c, http.StatusNotFound, "NOT_FOUND", "Product not found", "id")
		return
	}

	msg := "Product deleted. This is demo state: changes are not persisted."
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: &msg})
}

// GetSettings returns the current store settings
// @Summary Get store settings
// @Tags admin
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    models.StoreSettings{WhatsAppNumber: h.store.WhatsAppNumber()},
	})
}

// UpdateWhatsAppNumber updates the order-destination number
// @Summary Update the WhatsApp order number
// @Tags admin
// @Accept json
// @Produce json
// @Param settings body models.UpdateWhatsAppRequest true "New number"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/settings/whatsapp [put]
func (h *AdminHandler) UpdateWhatsAppNumber(c *gin.Context) {
	var req models.UpdateWhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), "whatsappNumber")
		return
	}

	h.store.SetWhatsAppNumber(req.WhatsAppNumber)

	msg := "WhatsApp number updated. This number is used for all customer orders."
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: &msg})
}
