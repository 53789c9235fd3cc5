package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront-service/internal/models"
)

// DefaultPlaceholderImage is the fallback path used when no usable image
// URL can be resolved from a record. Renderers install the same path as
// their load-failure fallback, so the resolved URL is a best-effort hint
// rather than a reachability guarantee.
const DefaultPlaceholderImage = "static/images/placeholder.jpg"

// currencySymbol for price display. Prices are whole-unit in this market.
const currencySymbol = "₹"

// Normalizer maps raw, schema-inconsistent product records onto the
// canonical NormalizedProduct shape. It never fails: every missing or
// wrong-typed field degrades to a documented default.
type Normalizer struct {
	placeholder string
}

// NewNormalizer builds a normalizer with the given placeholder image
// path; an empty path selects DefaultPlaceholderImage.
func NewNormalizer(placeholder string) *Normalizer {
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}
	return &Normalizer{placeholder: placeholder}
}

// Placeholder returns the configured placeholder image path.
func (n *Normalizer) Placeholder() string {
	return n.placeholder
}

// Normalize derives the render-ready view of one raw record. The label is
// left empty here; callers thread the classifier result in separately so
// normalization stays independent of the taxonomy.
func (n *Normalizer) Normalize(raw models.RawProduct) models.NormalizedProduct {
	price := n.ResolvePrice(raw)
	return models.NormalizedProduct{
		ID:               raw.ID,
		Name:             raw.Name,
		DisplayImage:     n.ResolveImage(raw),
		DisplayPriceText: price.Text,
		ActualPrice:      price.Actual,
		SalePrice:        price.Sale,
		OnSale:           price.OnSale,
		Colors:           n.ResolveColors(raw.Colors),
		Sizes:            ResolveSizes(raw.Sizes),
		Description:      raw.Description,
		Material:         raw.Material,
		CareInstructions: raw.CareInstructions,
		Featured:         bool(raw.Featured),
		InStock:          bool(raw.InStock),
	}
}

// NormalizeAll normalizes a snapshot in order, one output per input, and
// fills in category labels from the classifier's aggregate pass.
func (n *Normalizer) NormalizeAll(products []models.RawProduct, cls Classification) []models.NormalizedProduct {
	out := make([]models.NormalizedProduct, 0, len(products))
	for _, raw := range products {
		p := n.Normalize(raw)
		p.CategoryLabel = cls.Labels[raw.ID]
		out = append(out, p)
	}
	return out
}

// ResolveImage picks the display image for a record, trying each known
// schema variant in order: mainImage, images as a comma-separated string,
// images as an array, the oldest primary/gallery object form, and finally
// the legacy single image field. Exhausting all of them yields the
// placeholder path, never an empty string.
func (n *Normalizer) ResolveImage(raw models.RawProduct) string {
	if img := strings.TrimSpace(raw.MainImage); img != "" {
		return img
	}
	if raw.Images.CSV != "" {
		for _, part := range strings.Split(raw.Images.CSV, ",") {
			if img := strings.TrimSpace(part); img != "" {
				return img
			}
		}
	}
	for _, part := range raw.Images.List {
		if img := strings.TrimSpace(part); img != "" {
			return img
		}
	}
	if img := strings.TrimSpace(raw.Images.Primary); img != "" {
		return img
	}
	if len(raw.Images.Gallery) > 0 {
		if img := strings.TrimSpace(raw.Images.Gallery[0]); img != "" {
			return img
		}
	}
	if img := strings.TrimSpace(raw.Image); img != "" {
		return img
	}
	return n.placeholder
}

// PriceView is the resolved price of a record: the listed price, the
// effective sale price, and the ready-to-render display text.
type PriceView struct {
	Actual float64
	Sale   float64
	OnSale bool
	Text   string
}

// ResolvePrice reconciles the legacy price field with the newer
// actualPrice/salePrice pair. A sale price is only ever shown when it is
// strictly below the actual price; an onSale flag alone does not discount
// anything.
func (n *Normalizer) ResolvePrice(raw models.RawProduct) PriceView {
	actual := 0.0
	if raw.ActualPrice.Valid {
		actual = raw.ActualPrice.Value
	} else if raw.Price.Valid {
		actual = raw.Price.Value
	}

	sale := actual
	if raw.SalePrice.Valid {
		sale = raw.SalePrice.Value
	}

	view := PriceView{
		Actual: actual,
		Sale:   sale,
		OnSale: bool(raw.OnSale) || sale < actual,
	}
	if view.OnSale && sale < actual {
		view.Text = fmt.Sprintf(
			`<span class="text-muted text-decoration-line-through">%s%s</span> <span class="text-danger fw-bold">%s%s</span>`,
			currencySymbol, formatWhole(actual), currencySymbol, formatWhole(sale))
	} else {
		view.Text = currencySymbol + formatWhole(actual)
	}
	return view
}

// formatWhole renders a price truncated to whole currency units, rounding
// to the nearest integer with ties away from zero.
func formatWhole(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}

// ResolveSizes flattens size entries into display form. Entries with
// measurements get a "key: value" string joined by " | " in the order the
// measurements appeared; bare labels get no measurement string.
func ResolveSizes(sizes []models.SizeEntry) []models.SizeOption {
	if len(sizes) == 0 {
		return nil
	}
	out := make([]models.SizeOption, 0, len(sizes))
	for _, entry := range sizes {
		opt := models.SizeOption{Label: entry.Label}
		if len(entry.Measurements) > 0 {
			parts := make([]string, 0, len(entry.Measurements))
			for _, m := range entry.Measurements {
				parts = append(parts, m.Name+": "+m.Value)
			}
			opt.Measurements = strings.Join(parts, " | ")
		}
		out = append(out, opt)
	}
	return out
}

// ResolveColors passes colors through with the hex value normalized: a
// missing '#' prefix is prepended, and an empty hex becomes "transparent"
// so swatches still render.
func (n *Normalizer) ResolveColors(colors []models.Color) []models.Color {
	if len(colors) == 0 {
		return nil
	}
	out := make([]models.Color, 0, len(colors))
	for _, c := range colors {
		c.Hex = NormalizeHex(c.Hex)
		out = append(out, c)
	}
	return out
}

// NormalizeHex normalizes a color hex value for display.
func NormalizeHex(hex string) string {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return "transparent"
	}
	if !strings.HasPrefix(hex, "#") {
		return "#" + hex
	}
	return hex
}
