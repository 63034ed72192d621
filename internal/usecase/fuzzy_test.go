package usecase

import "testing"

func TestFuzzyMatch(t *testing.T) {
	t.Run("exact substring scores 1", func(t *testing.T) {
		if got := FuzzyMatch("Fresh Organic Mangoes", "mango"); got != 1 {
			t.Errorf("FuzzyMatch = %v, want 1", got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		upper := FuzzyMatch("FRESH ORGANIC MANGOES", "mangoes")
		lower := FuzzyMatch("fresh organic mangoes", "MANGOES")
		if upper != 1 || lower != 1 {
			t.Errorf("casing should not matter: upper=%v lower=%v", upper, lower)
		}
	})

	t.Run("partial token overlap", func(t *testing.T) {
		// "fresh" and "mangoes" match, "lilongwe" does not -> 2/3
		got := FuzzyMatch("Fresh Organic Mangoes", "fresh mangoes lilongwe")
		want := 2.0 / 3.0
		if got != want {
			t.Errorf("FuzzyMatch = %v, want %v", got, want)
		}
	})

	t.Run("no overlap scores 0", func(t *testing.T) {
		if got := FuzzyMatch("Chitenje Fabric", "laptop charger"); got != 0 {
			t.Errorf("FuzzyMatch = %v, want 0", got)
		}
	})

	t.Run("empty query scores 0", func(t *testing.T) {
		if got := FuzzyMatch("anything", ""); got != 0 {
			t.Errorf("FuzzyMatch = %v, want 0", got)
		}
	})

	t.Run("whitespace-only query scores 0", func(t *testing.T) {
		if got := FuzzyMatch("anything", "   "); got != 0 {
			t.Errorf("FuzzyMatch = %v, want 0", got)
		}
	})

	t.Run("empty text scores 0", func(t *testing.T) {
		if got := FuzzyMatch("", "mango"); got != 0 {
			t.Errorf("FuzzyMatch = %v, want 0", got)
		}
	})
}
