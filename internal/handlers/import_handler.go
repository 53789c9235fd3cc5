package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"storefront-service/internal/models"
	"storefront-service/internal/sheet"
	"storefront-service/internal/store"
)

// ImportHandler loads catalog spreadsheets into the in-memory store.
// Like every admin operation, the result lives only for the process
// lifetime.
type ImportHandler struct {
	store *store.CatalogStore
}

func NewImportHandler(s *store.CatalogStore) *ImportHandler {
	return &ImportHandler{store: s}
}

// ImportResult summarizes one spreadsheet import.
type ImportResult struct {
	TotalRows    int `json:"totalRows"`
	Imported     int `json:"imported"`
	CatalogCount int `json:"catalogCount"`
}

// ImportProducts appends products from an uploaded spreadsheet
// @Summary Import products from a spreadsheet (in-memory only)
// @Description Reads an .xlsx catalog export and appends its rows to the in-memory catalog
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet export (.xlsx)"
// @Param sheet formData string false "Worksheet name (default: first sheet)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/import [post]
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "FILE_REQUIRED", "Please upload an Excel file", "file")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		errorJSON(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Only .xlsx files are supported", "file")
		return
	}

	records, err := sheet.ParseWorkbook(file, c.DefaultPostForm("sheet", ""))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "PARSE_FAILED", err.Error(), "file")
		return
	}

	products, err := sheet.ToRawProducts(records)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "PARSE_FAILED", err.Error(), "file")
		return
	}

	// Spreadsheet ids are advisory; the store assigns max+1 like any
	// other admin add.
	imported := 0
	for _, p := range products {
		h.store.Add(p)
		imported++
	}

	msg := "Import complete. This is demo state: changes are not persisted."
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data: ImportResult{
			TotalRows:    len(records),
			Imported:     imported,
			CatalogCount: h.store.Count(),
		},
		Message: &msg,
	})
}
