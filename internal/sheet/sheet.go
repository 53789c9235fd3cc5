// Package sheet converts spreadsheet exports of the product catalog into
// raw product records. The storefront's catalog is maintained in a
// spreadsheet; this is the bridge from that export to products.json.
package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"storefront-service/internal/models"
)

// droppedColumns are spreadsheet columns the storefront never uses.
var droppedColumns = map[string]bool{
	"pricing.bulkPricing": true,
	"pricing.taxRate":     true,
}

// numericColumns are coerced from cell text to JSON numbers.
var numericColumns = map[string]bool{
	"id":          true,
	"price":       true,
	"actualPrice": true,
	"salePrice":   true,
}

// ParseWorkbook reads the given worksheet (or the first one when name is
// empty) and returns one record per data row, keyed by the header row.
func ParseWorkbook(r io.Reader, sheetName string) ([]map[string]interface{}, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data found in sheet %q", sheetName)
	}

	return ConvertRows(rows), nil
}

// ConvertRows turns a header row plus data rows into catalog records.
// Cells stay strings except for the known numeric columns; empty cells
// are omitted so the normalizer's fallback chain sees them as absent
// rather than as empty strings.
func ConvertRows(rows [][]string) []map[string]interface{} {
	headers := rows[0]
	records := make([]map[string]interface{}, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := make(map[string]interface{}, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" || droppedColumns[header] {
				continue
			}
			if i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			record[header] = convertCell(header, cell)
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records
}

func convertCell(header, cell string) interface{} {
	if numericColumns[header] {
		if n, err := strconv.ParseFloat(cell, 64); err == nil {
			if header == "id" {
				return int(n)
			}
			return n
		}
	}
	switch cell {
	case "TRUE", "True", "true":
		return true
	case "FALSE", "False", "false":
		return false
	}
	return cell
}

// ToRawProducts decodes converted records through the tolerant RawProduct
// types, so spreadsheet rows get the exact same schema-drift handling as
// products.json.
func ToRawProducts(records []map[string]interface{}) ([]models.RawProduct, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	var products []models.RawProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return products, nil
}
