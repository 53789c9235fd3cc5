package catalog

import (
	"regexp"
	"strings"

	"storefront-service/internal/models"
)

// scoreThreshold is the minimum keyword match score a category must beat
// for a product to classify into it.
const scoreThreshold = 0.3

var nonWord = regexp.MustCompile(`\W+`)

// Classifier assigns products to a fixed, ordered category taxonomy using
// explicit override rules first and keyword match scoring as the fallback.
// Classification is a pure function of the product name: same taxonomy,
// same name, same label, every time.
type Classifier struct {
	taxonomy  []CategoryDef
	overrides []OverrideRule
}

// NewClassifier builds a classifier over the given taxonomy and override
// rules. Nil slices fall back to the defaults.
func NewClassifier(taxonomy []CategoryDef, overrides []OverrideRule) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if overrides == nil {
		overrides = DefaultOverrides()
	}
	return &Classifier{taxonomy: taxonomy, overrides: overrides}
}

// Taxonomy returns the classifier's category definitions in order.
func (c *Classifier) Taxonomy() []CategoryDef {
	return c.taxonomy
}

// Classify returns the best-matching category label for a product name,
// or "" when nothing matches above the threshold. An empty name is simply
// unclassified, not an error.
func (c *Classifier) Classify(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	lower := strings.ToLower(name)

	for _, rule := range c.overrides {
		if ruleMatches(lower, rule) {
			return rule.Label
		}
	}

	bestLabel := ""
	bestScore := scoreThreshold
	for _, cat := range c.taxonomy {
		if score := matchScore(lower, cat.Keyword); score > bestScore {
			bestScore = score
			bestLabel = cat.Label
		}
	}
	return bestLabel
}

func ruleMatches(lowerName string, rule OverrideRule) bool {
	if len(rule.Contains) == 0 {
		return false
	}
	for _, sub := range rule.Contains {
		if !strings.Contains(lowerName, strings.ToLower(sub)) {
			return false
		}
	}
	return true
}

// matchScore computes the fraction of a keyword's significant word tokens
// (length > 2, lower-cased, whitespace and parentheses stripped) found as
// substrings of the lower-cased product name. A single-term "polos"
// keyword scores 1.0 outright on a "polo" substring hit.
func matchScore(lowerName, keyword string) float64 {
	if lowerName == "" || keyword == "" {
		return 0
	}
	key := strings.ToLower(keyword)
	key = strings.NewReplacer(" ", "", "\t", "", "(", "", ")", "").Replace(key)

	if key == "polos" && strings.Contains(lowerName, "polo") {
		return 1.0
	}

	var tokens []string
	for _, w := range nonWord.Split(key, -1) {
		if len(w) > 2 {
			tokens = append(tokens, w)
		}
	}
	if len(tokens) == 0 {
		return 0
	}

	matched := 0
	for _, w := range tokens {
		if strings.Contains(lowerName, w) {
			matched++
		}
	}
	return float64(matched) / float64(len(tokens))
}

// Classification is the aggregate result over a full catalog snapshot:
// per-category product counts for the tile view plus an id-to-label map
// so other views can look up assignments without reclassifying.
type Classification struct {
	Counts map[string]int
	Labels map[int]string
}

// ClassifyAll classifies every product in the snapshot. Counts carry an
// entry for every taxonomy category, including zero-product ones, so the
// tile view always renders the full taxonomy.
func (c *Classifier) ClassifyAll(products []models.RawProduct) Classification {
	result := Classification{
		Counts: make(map[string]int, len(c.taxonomy)),
		Labels: make(map[int]string, len(products)),
	}
	for _, cat := range c.taxonomy {
		result.Counts[cat.Label] = 0
	}
	for _, p := range products {
		label := c.Classify(p.Name)
		if label == "" {
			continue
		}
		result.Labels[p.ID] = label
		result.Counts[label]++
	}
	return result
}
