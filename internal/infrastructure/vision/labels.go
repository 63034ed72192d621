package vision

import "strings"

// LabelUnknown marks a raw classifier label that maps to no product category
const LabelUnknown = "unknown"

// labelRule maps raw classifier output onto the internal category vocabulary
type labelRule struct {
	category string
	keywords []string
}

// labelRules are checked in priority order; the first rule whose keyword is
// contained in the raw label wins. Order is a contract: earlier categories
// shadow later ones for ambiguous labels.
var labelRules = []labelRule{
	{"fruit", []string{"banana", "mango", "apple", "orange", "pineapple", "papaya", "berry", "citrus", "fruit"}},
	{"vegetable", []string{"tomato", "cabbage", "carrot", "onion", "lettuce", "greens", "pepper", "vegetable"}},
	{"food", []string{"bread", "honey", "cake", "snack", "meal", "dish", "food"}},
	{"fish", []string{"chambo", "tilapia", "salmon", "seafood", "fish"}},
	{"clothing", []string{"shirt", "dress", "fabric", "textile", "garment", "cloth", "wear"}},
	{"electronics", []string{"phone", "charger", "laptop", "radio", "computer", "speaker", "device", "electronic"}},
	{"handcraft", []string{"carving", "sculpture", "basket", "pottery", "wooden", "craft"}},
	{"jewelry", []string{"necklace", "bracelet", "bead", "ring", "jewel"}},
	{"produce", []string{"farm", "harvest", "crop", "produce"}},
	{"poultry", []string{"chicken", "hen", "rooster", "poultry"}},
}

// MapLabel maps a raw classifier label to the internal category vocabulary.
// Labels matching no rule map to LabelUnknown.
func MapLabel(raw string) string {
	lower := strings.ToLower(raw)
	for _, rule := range labelRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return LabelUnknown
}

// cleanObjectName strips trailing sub-label text after a comma.
// Classifier outputs like "banana, ripe fruit" become "banana".
func cleanObjectName(raw string) string {
	if idx := strings.Index(raw, ","); idx > 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}
