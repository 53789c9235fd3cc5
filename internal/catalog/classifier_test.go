package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"storefront-service/internal/models"
)

func TestClassify_OverrideRules(t *testing.T) {
	c := NewClassifier(nil, nil)

	tests := []struct {
		name string
		want string
	}{
		{"Classic Cotton T-Shirt", "Tshirts (Unisex)"},
		{"CLASSIC Premium T-Shirt", "Tshirts (Unisex)"},
		{"Cozy Fleece Sweatshirt", "SweatShirts (Unisex)"},
		{"Silk Blouse with Bow", "Ladies Blouses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.name))
		})
	}
}

func TestClassify_OverridesBeatScoring(t *testing.T) {
	// A name that matches the Polos special case by substring still
	// classifies through the classic+t-shirt override.
	c := NewClassifier(nil, nil)
	assert.Equal(t, "Tshirts (Unisex)", c.Classify("Classic Polo T-Shirt"))
}

func TestClassify_PolosSpecialCase(t *testing.T) {
	c := NewClassifier(nil, nil)
	assert.Equal(t, "Polos", c.Classify("Premium Polo Shirt"))
}

func TestClassify_UnmatchedNameIsUnclassified(t *testing.T) {
	c := NewClassifier(nil, nil)
	assert.Empty(t, c.Classify("Running Shorts"))
}

func TestClassify_EmptyNameIsUnclassified(t *testing.T) {
	c := NewClassifier(nil, nil)
	assert.Empty(t, c.Classify(""))
	assert.Empty(t, c.Classify("   "))
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(nil, nil)
	first := c.Classify("Premium Polo Shirt")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify("Premium Polo Shirt"))
	}
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	// Hyphenated keywords survive whitespace stripping and split into
	// word tokens, so fractional scores are exercised here.
	taxonomy := []CategoryDef{
		{Label: "Exact Threshold", Keyword: "aaa-bbb-ccc-ddd-eee-fff-ggg-hhh-iii-jjj"},
		{Label: "Above Threshold", Keyword: "foo-bar-baz"},
	}
	c := NewClassifier(taxonomy, []OverrideRule{})

	// 3 of 10 tokens match: score 0.3 is not strictly above the threshold.
	assert.Empty(t, c.Classify("aaa bbb ccc product"))

	// 1 of 3 tokens match: score ~0.33 clears the threshold.
	assert.Equal(t, "Above Threshold", c.Classify("deluxe foo product"))
}

func TestClassify_TieBreaksByTaxonomyOrder(t *testing.T) {
	taxonomy := []CategoryDef{
		{Label: "First", Keyword: "jacket"},
		{Label: "Second", Keyword: "jacket"},
	}
	c := NewClassifier(taxonomy, []OverrideRule{})

	// Both categories score 1.0; the first-listed wins, stably.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "First", c.Classify("Winter Jacket"))
	}
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    float64
	}{
		{"premium polo shirt", "Polos", 1.0},
		{"classic tshirts bundle", "Tshirts", 1.0},
		{"running shorts", "Tshirts", 0},
		{"", "Tshirts", 0},
		{"anything", "", 0},
		{"has foo only", "foo-bar-baz", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.keyword, func(t *testing.T) {
			assert.InDelta(t, tt.want, matchScore(tt.name, tt.keyword), 1e-9)
		})
	}
}

func TestClassifyAll_CountsAndLabels(t *testing.T) {
	c := NewClassifier(nil, nil)
	products := []models.RawProduct{
		{ID: 1, Name: "Classic Cotton T-Shirt"},
		{ID: 2, Name: "Cozy Fleece Sweatshirt"},
		{ID: 3, Name: "Premium Polo Shirt"},
		{ID: 4, Name: "Running Shorts"},
		{ID: 5, Name: "Classic Winter T-Shirt"},
	}

	result := c.ClassifyAll(products)

	assert.Equal(t, 2, result.Counts["Tshirts (Unisex)"])
	assert.Equal(t, 1, result.Counts["SweatShirts (Unisex)"])
	assert.Equal(t, 1, result.Counts["Polos"])
	// Every taxonomy label is present, including empty categories.
	assert.Equal(t, 0, result.Counts["Ladies Blouses"])
	assert.Equal(t, 0, result.Counts["Hoodies (Unisex)"])
	assert.Equal(t, 0, result.Counts["Female Dresses"])

	assert.Equal(t, "Tshirts (Unisex)", result.Labels[1])
	assert.Equal(t, "Polos", result.Labels[3])
	_, unclassified := result.Labels[4]
	assert.False(t, unclassified)
}

func TestClassifyAll_IndependentOfID(t *testing.T) {
	c := NewClassifier(nil, nil)

	a := c.ClassifyAll([]models.RawProduct{{ID: 1, Name: "Premium Polo Shirt"}})
	b := c.ClassifyAll([]models.RawProduct{{ID: 99, Name: "Premium Polo Shirt"}})

	assert.Equal(t, a.Labels[1], b.Labels[99])
	assert.Equal(t, a.Counts, b.Counts)
}
