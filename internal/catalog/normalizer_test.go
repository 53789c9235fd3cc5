package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"storefront-service/internal/models"
)

func decodeProduct(t *testing.T, raw string) models.RawProduct {
	t.Helper()
	var p models.RawProduct
	err := json.Unmarshal([]byte(raw), &p)
	assert.NoError(t, err)
	return p
}

func TestResolveImage_FallbackOrder(t *testing.T) {
	n := NewNormalizer("")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "mainImage wins over everything",
			raw:  `{"id":1,"mainImage":"main.jpg","images":"a.jpg,b.jpg","image":"legacy.jpg"}`,
			want: "main.jpg",
		},
		{
			name: "comma-separated string takes first segment",
			raw:  `{"id":1,"images":" a.jpg , b.jpg "}`,
			want: "a.jpg",
		},
		{
			name: "comma-separated string skips empty segments",
			raw:  `{"id":1,"images":" , b.jpg"}`,
			want: "b.jpg",
		},
		{
			name: "array takes first non-empty element",
			raw:  `{"id":1,"images":["  ","c.jpg"]}`,
			want: "c.jpg",
		},
		{
			name: "object form primary",
			raw:  `{"id":1,"images":{"primary":"p.jpg","gallery":["g.jpg"]}}`,
			want: "p.jpg",
		},
		{
			name: "object form falls back to gallery head",
			raw:  `{"id":1,"images":{"gallery":["g.jpg","h.jpg"]}}`,
			want: "g.jpg",
		},
		{
			name: "legacy single image",
			raw:  `{"id":1,"image":"legacy.jpg"}`,
			want: "legacy.jpg",
		},
		{
			name: "nothing usable yields placeholder",
			raw:  `{"id":1,"name":"No Pictures"}`,
			want: DefaultPlaceholderImage,
		},
		{
			name: "whitespace-only fields yield placeholder",
			raw:  `{"id":1,"mainImage":"  ","images":"  ,  ","image":" "}`,
			want: DefaultPlaceholderImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.ResolveImage(decodeProduct(t, tt.raw)))
		})
	}
}

func TestResolveImage_CustomPlaceholder(t *testing.T) {
	n := NewNormalizer("assets/fallback.png")
	got := n.ResolveImage(decodeProduct(t, `{"id":1}`))
	assert.Equal(t, "assets/fallback.png", got)
}

func TestResolvePrice_SaleShowsBothValues(t *testing.T) {
	n := NewNormalizer("")

	p := decodeProduct(t, `{"id":7,"name":"Classic Cotton T-Shirt","actualPrice":500,"salePrice":400}`)
	view := n.ResolvePrice(p)

	assert.True(t, view.OnSale)
	assert.Equal(t, 500.0, view.Actual)
	assert.Equal(t, 400.0, view.Sale)
	assert.Contains(t, view.Text, "₹500")
	assert.Contains(t, view.Text, "₹400")
	assert.Contains(t, view.Text, `text-decoration-line-through">₹500`)
}

func TestResolvePrice_NoSaleShowsActualOnly(t *testing.T) {
	n := NewNormalizer("")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"legacy price field", `{"id":8,"price":300}`, "₹300"},
		{"sale equal to actual", `{"id":8,"actualPrice":300,"salePrice":300}`, "₹300"},
		{"sale above actual never shown", `{"id":8,"actualPrice":300,"salePrice":350}`, "₹300"},
		{"onSale flag without a lower sale price", `{"id":8,"price":300,"onSale":true}`, "₹300"},
		{"no price fields at all", `{"id":8}`, "₹0"},
		{"string-typed price degrades gracefully", `{"id":8,"price":"300"}`, "₹300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := n.ResolvePrice(decodeProduct(t, tt.raw))
			assert.Equal(t, tt.want, view.Text)
			assert.NotContains(t, view.Text, "line-through")
		})
	}
}

func TestResolvePrice_OnSaleFlagWithLowerSale(t *testing.T) {
	n := NewNormalizer("")
	view := n.ResolvePrice(decodeProduct(t, `{"id":9,"actualPrice":1000,"salePrice":749.5,"onSale":true}`))

	assert.True(t, view.OnSale)
	// Whole-unit rounding, ties away from zero.
	assert.Contains(t, view.Text, "₹750")
	assert.Contains(t, view.Text, "₹1000")
}

func TestResolveSizes_FlattensMeasurements(t *testing.T) {
	p := decodeProduct(t, `{"id":9,"images":"a.jpg, b.jpg","sizes":["S",{"size":"M","measurements":{"chest":"40in"}}]}`)

	sizes := ResolveSizes(p.Sizes)
	assert.Len(t, sizes, 2)
	assert.Equal(t, models.SizeOption{Label: "S"}, sizes[0])
	assert.Equal(t, "M", sizes[1].Label)
	assert.Equal(t, "chest: 40in", sizes[1].Measurements)
}

func TestResolveSizes_JoinsMeasurementsInOrder(t *testing.T) {
	p := decodeProduct(t, `{"id":1,"sizes":[{"size":"L","measurements":{"chest":"42in","length":"29in","sleeve":"25in"}}]}`)

	sizes := ResolveSizes(p.Sizes)
	assert.Equal(t, "chest: 42in | length: 29in | sleeve: 25in", sizes[0].Measurements)
}

func TestResolveColors_HexNormalization(t *testing.T) {
	n := NewNormalizer("")
	colors := n.ResolveColors([]models.Color{
		{Name: "Navy", Hex: "000080"},
		{Name: "Red", Hex: "#ff0000", Image: "red.jpg"},
		{Name: "Unknown", Hex: ""},
	})

	assert.Equal(t, "#000080", colors[0].Hex)
	assert.Equal(t, "#ff0000", colors[1].Hex)
	assert.Equal(t, "red.jpg", colors[1].Image)
	assert.Equal(t, "transparent", colors[2].Hex)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer("")
	p := decodeProduct(t, `{
		"id": 7,
		"name": "Classic Cotton T-Shirt",
		"actualPrice": 500,
		"salePrice": 400,
		"images": "a.jpg, b.jpg",
		"colors": [{"name": "Black", "hex": "000000"}],
		"sizes": ["S", {"size": "M", "measurements": {"chest": "40in"}}]
	}`)

	first := n.Normalize(p)
	second := n.Normalize(p)
	assert.Equal(t, first, second)
}

func TestNormalize_EndToEnd(t *testing.T) {
	n := NewNormalizer("")
	p := decodeProduct(t, `{"id":7,"name":"Classic Cotton T-Shirt","actualPrice":500,"salePrice":400}`)

	got := n.Normalize(p)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, DefaultPlaceholderImage, got.DisplayImage)
	assert.True(t, got.OnSale)
	assert.Contains(t, got.DisplayPriceText, `text-decoration-line-through">₹500`)
	assert.Contains(t, got.DisplayPriceText, "₹400")
}

func TestNormalizeAll_OrderPreservingWithLabels(t *testing.T) {
	n := NewNormalizer("")
	c := NewClassifier(nil, nil)

	var products []models.RawProduct
	err := json.Unmarshal([]byte(`[
		{"id": 2, "name": "Classic Cotton T-Shirt", "price": 500},
		{"id": 1, "name": "Running Shorts", "price": 300}
	]`), &products)
	assert.NoError(t, err)

	out := n.NormalizeAll(products, c.ClassifyAll(products))
	assert.Len(t, out, 2)
	assert.Equal(t, 2, out[0].ID)
	assert.Equal(t, "Tshirts (Unisex)", out[0].CategoryLabel)
	assert.Equal(t, 1, out[1].ID)
	assert.Empty(t, out[1].CategoryLabel)
	assert.Equal(t, "₹300", out[1].DisplayPriceText)
}
