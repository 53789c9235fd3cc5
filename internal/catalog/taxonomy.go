package catalog

// CategoryDef is one entry of the storefront taxonomy. The taxonomy is
// configuration: callers supply an ordered list and the classifier never
// hard-codes one. Order matters — ties at the top score resolve to the
// first-listed category.
type CategoryDef struct {
	Label       string `json:"label"`
	Keyword     string `json:"keyword"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// OverrideRule maps a product name to a category unconditionally when the
// name contains every listed substring. Overrides run before scoring and
// the first matching rule wins.
type OverrideRule struct {
	Contains []string `json:"contains"`
	Label    string   `json:"label"`
}

// DefaultTaxonomy returns the six-category storefront taxonomy.
func DefaultTaxonomy() []CategoryDef {
	return []CategoryDef{
		{
			Label:       "Tshirts (Unisex)",
			Keyword:     "Tshirts",
			Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?w=600&h=400&fit=crop",
			Description: "Comfortable and stylish unisex t-shirts perfect for everyday wear.",
		},
		{
			Label:       "SweatShirts (Unisex)",
			Keyword:     "SweatShirts",
			Image:       "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?w=600&h=400&fit=crop",
			Description: "Cozy sweatshirts and hoodies for casual comfort.",
		},
		{
			Label:       "Hoodies (Unisex)",
			Keyword:     "Hoodies",
			Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?w=600&h=400&fit=crop",
			Description: "Trendy and warm hoodies for all genders.",
		},
		{
			Label:       "Polos",
			Keyword:     "Polos",
			Image:       "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=600&h=400&fit=crop",
			Description: "Premium polos for a smart and casual look.",
		},
		{
			Label:       "Female Dresses",
			Keyword:     "Female Dresses",
			Image:       "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=600&h=400&fit=crop",
			Description: "Elegant dresses for women's fashion.",
		},
		{
			Label:       "Ladies Blouses",
			Keyword:     "Ladies Blouses",
			Image:       "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=600&h=400&fit=crop",
			Description: "Chic and stylish blouses for ladies.",
		},
	}
}

// DefaultOverrides returns the explicit name-to-category rules applied
// ahead of keyword scoring.
func DefaultOverrides() []OverrideRule {
	return []OverrideRule{
		{Contains: []string{"classic", "t-shirt"}, Label: "Tshirts (Unisex)"},
		{Contains: []string{"sweatshirt"}, Label: "SweatShirts (Unisex)"},
		{Contains: []string{"blouse"}, Label: "Ladies Blouses"},
	}
}
