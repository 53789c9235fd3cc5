package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber is a numeric field tolerant of historical catalog revisions:
// it accepts a JSON number, a numeric string, or null. Any other shape
// decodes to "absent" rather than failing the record.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = FlexNumber{}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexNumber{Value: n, Valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexNumber{Value: n, Valid: true}
			return nil
		}
	}
	*f = FlexNumber{}
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// FlexBool accepts a JSON bool, the strings "true"/"false", or the numbers
// 0/1. Anything else decodes to false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", `"true"`, "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// FlexImages captures every shape the images field has had across catalog
// revisions: a comma-separated string, an array of URLs, or the oldest
// object form with primary/gallery keys.
type FlexImages struct {
	CSV     string
	List    []string
	Primary string
	Gallery []string
}

func (f *FlexImages) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = FlexImages{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexImages{CSV: s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = FlexImages{List: list}
		return nil
	}

	var obj struct {
		Primary string   `json:"primary"`
		Gallery []string `json:"gallery"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*f = FlexImages{Primary: obj.Primary, Gallery: obj.Gallery}
		return nil
	}

	*f = FlexImages{}
	return nil
}

func (f FlexImages) MarshalJSON() ([]byte, error) {
	switch {
	case f.CSV != "":
		return json.Marshal(f.CSV)
	case len(f.List) > 0:
		return json.Marshal(f.List)
	case f.Primary != "" || len(f.Gallery) > 0:
		return json.Marshal(struct {
			Primary string   `json:"primary,omitempty"`
			Gallery []string `json:"gallery,omitempty"`
		}{Primary: f.Primary, Gallery: f.Gallery})
	default:
		return []byte("null"), nil
	}
}

// IsZero reports whether no images field was present at all.
func (f FlexImages) IsZero() bool {
	return f.CSV == "" && len(f.List) == 0 && f.Primary == "" && len(f.Gallery) == 0
}

// FlexCategory accepts the category field as a plain string or as an
// object with a primary key.
type FlexCategory struct {
	Primary string
}

func (f *FlexCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = FlexCategory{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexCategory{Primary: s}
		return nil
	}

	var obj struct {
		Primary string `json:"primary"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*f = FlexCategory{Primary: obj.Primary}
		return nil
	}

	*f = FlexCategory{}
	return nil
}

func (f FlexCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Primary)
}

// Measurement is a single named measurement on a size entry.
type Measurement struct {
	Name  string
	Value string
}

// SizeEntry is either a bare size label ("M") or an object carrying a
// label plus optional measurements. Measurements keep the order they
// appear in the raw JSON so the flattened display string is stable.
type SizeEntry struct {
	Label        string
	Measurements []Measurement
}

func (s *SizeEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = SizeEntry{}
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*s = SizeEntry{Label: label}
		return nil
	}

	// Object form: walk tokens so measurement order survives decoding.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		*s = SizeEntry{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		*s = SizeEntry{}
		return nil
	}

	entry := SizeEntry{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			break
		}
		key, _ := keyTok.(string)
		switch key {
		case "size":
			var v string
			if err := dec.Decode(&v); err != nil {
				*s = entry
				return nil
			}
			entry.Label = v
		case "measurements":
			entry.Measurements = decodeMeasurements(dec)
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				*s = entry
				return nil
			}
		}
	}
	*s = entry
	return nil
}

func decodeMeasurements(dec *json.Decoder) []Measurement {
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}
	var out []Measurement
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return out
		}
		out = append(out, Measurement{Name: key, Value: rawToText(raw)})
	}
	dec.Token() // closing brace
	return out
}

func rawToText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func (s SizeEntry) MarshalJSON() ([]byte, error) {
	if len(s.Measurements) == 0 {
		return json.Marshal(s.Label)
	}
	m := make(map[string]string, len(s.Measurements))
	for _, entry := range s.Measurements {
		m[entry.Name] = entry.Value
	}
	return json.Marshal(struct {
		Size         string            `json:"size"`
		Measurements map[string]string `json:"measurements"`
	}{Size: s.Label, Measurements: m})
}

// Color is a selectable product color. Hex arrives with or without a
// leading '#'; normalization fixes that up.
type Color struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Image string `json:"image,omitempty"`
}

// RawProduct is a catalog record exactly as loaded from products.json.
// Field shapes vary by catalog revision; the Flex types absorb the drift
// so a single struct covers every revision.
type RawProduct struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Price            FlexNumber   `json:"price,omitempty"`
	ActualPrice      FlexNumber   `json:"actualPrice,omitempty"`
	SalePrice        FlexNumber   `json:"salePrice,omitempty"`
	OnSale           FlexBool     `json:"onSale,omitempty"`
	Image            string       `json:"image,omitempty"`
	MainImage        string       `json:"mainImage,omitempty"`
	Images           FlexImages   `json:"images,omitempty"`
	Category         FlexCategory `json:"category,omitempty"`
	Colors           []Color      `json:"colors,omitempty"`
	Sizes            []SizeEntry  `json:"sizes,omitempty"`
	Description      string       `json:"description,omitempty"`
	Material         string       `json:"material,omitempty"`
	CareInstructions string       `json:"careInstructions,omitempty"`
	Featured         FlexBool     `json:"featured,omitempty"`
	InStock          FlexBool     `json:"inStock,omitempty"`
}

// SizeOption is a flattened size entry on a normalized product.
type SizeOption struct {
	Label        string `json:"label"`
	Measurements string `json:"measurements,omitempty"`
}

// NormalizedProduct is the canonical, render-ready view of a raw record.
// It is derived on every read and never persisted.
type NormalizedProduct struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	DisplayImage     string       `json:"displayImage"`
	DisplayPriceText string       `json:"displayPriceText"`
	ActualPrice      float64      `json:"actualPrice"`
	SalePrice        float64      `json:"salePrice"`
	OnSale           bool         `json:"onSale"`
	Colors           []Color      `json:"colors,omitempty"`
	Sizes            []SizeOption `json:"sizes,omitempty"`
	CategoryLabel    string       `json:"categoryLabel,omitempty"`
	Description      string       `json:"description,omitempty"`
	Material         string       `json:"material,omitempty"`
	CareInstructions string       `json:"careInstructions,omitempty"`
	Featured         bool         `json:"featured"`
	InStock          bool         `json:"inStock"`
}
