package models

// CategoryTile is one entry on the storefront category browser: a label,
// a tile image, and how many products classified into it.
type CategoryTile struct {
	Label       string `json:"label"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// CreateProductRequest represents an admin request to add a product.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	Colors      []Color  `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// WhatsAppOrderRequest represents a storefront order: a product plus the
// chosen color and size. Both selections are required before ordering.
type WhatsAppOrderRequest struct {
	ProductID int    `json:"productId" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

// WhatsAppOrder is the assembled order link handed back to the storefront.
type WhatsAppOrder struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// StoreSettings is the in-memory admin configuration. Nothing here is
// persisted; it resets to the configured defaults on restart.
type StoreSettings struct {
	WhatsAppNumber string `json:"whatsappNumber"`
}

// UpdateWhatsAppRequest updates the order-destination WhatsApp number.
type UpdateWhatsAppRequest struct {
	WhatsAppNumber string `json:"whatsappNumber" binding:"required"`
}

// Response types
type ProductResponse struct {
	Success bool               `json:"success"`
	Data    *NormalizedProduct `json:"data"`
	Message *string            `json:"message,omitempty"`
}

type ProductListResponse struct {
	Success bool                `json:"success"`
	Data    []NormalizedProduct `json:"data"`
	Total   int                 `json:"total"`
}

type RawProductResponse struct {
	Success bool        `json:"success"`
	Data    *RawProduct `json:"data"`
	Message *string     `json:"message,omitempty"`
}

type RawProductListResponse struct {
	Success bool         `json:"success"`
	Data    []RawProduct `json:"data"`
	Total   int          `json:"total"`
}

type CategoryListResponse struct {
	Success bool           `json:"success"`
	Data    []CategoryTile `json:"data"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}
