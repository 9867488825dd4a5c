package catalog

import (
	"strings"
	"testing"

	"usecase-market/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseFixture returns the nine-product catalog (featured entries excluded).
func baseFixture() []model.UseCase {
	var out []model.UseCase
	for _, uc := range DefaultUseCases() {
		if !uc.Featured {
			out = append(out, uc)
		}
	}
	return out
}

func TestFilterAndSort_AllCategoriesByRating(t *testing.T) {
	results := FilterAndSort(baseFixture(), "all", "", SortRating)

	require.Len(t, results, 9)
	assert.Equal(t, 4.9, results[0].Rating)

	// Two entries share the top rating; input order breaks the tie.
	assert.Equal(t, "2", results[0].ID)
	assert.Equal(t, "4", results[1].ID)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Rating, results[i].Rating,
			"ratings must be non-increasing at index %d", i)
	}
}

func TestFilterAndSort_QueryChatbot(t *testing.T) {
	results := FilterAndSort(baseFixture(), "all", "chatbot", "")

	require.Len(t, results, 1)
	assert.Equal(t, "AI Customer Service Chatbot", results[0].Title)
}

func TestFilterAndSort_CategoryFilter(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		expected   []string // expected IDs in order
	}{
		{
			name:       "all matches everything",
			categoryID: "all",
			expected:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		},
		{
			name:       "empty category matches everything",
			categoryID: "",
			expected:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		},
		{
			name:       "hyphenated slug matches spaced category",
			categoryID: "customer-support",
			expected:   []string{"1"},
		},
		{
			name:       "slug matches case-insensitively",
			categoryID: "Marketing",
			expected:   []string{"2"},
		},
		{
			name:       "human resources",
			categoryID: "human-resources",
			expected:   []string{"9"},
		},
		{
			name:       "index slug resolves to display name",
			categoryID: "hr",
			expected:   []string{"9"},
		},
		{
			name:       "display name drives matching not the slug",
			categoryID: "content", // resolves to "Content Generation"; entry 6 is "Content Creation"
			expected:   nil,
		},
		{
			name:       "no matching category",
			categoryID: "computer-vision",
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := FilterAndSort(baseFixture(), tt.categoryID, "", "")

			var ids []string
			for _, uc := range results {
				ids = append(ids, uc.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterAndSort_CategoryResultsSatisfyPredicate(t *testing.T) {
	// Every returned record's category must contain the de-hyphenated display
	// name of the category (the literal slug when the index does not know it).
	for _, categoryID := range []string{"customer-support", "marketing", "finance", "hr"} {
		name := categoryID
		if c, ok := CategoryByID(categoryID); ok {
			name = c.Name
		}
		needle := strings.ReplaceAll(strings.ToLower(name), "-", " ")
		for _, uc := range FilterAndSort(baseFixture(), categoryID, "", "") {
			assert.Contains(t, strings.ToLower(uc.Category), needle,
				"category %q result %q", categoryID, uc.ID)
		}
	}
}

func TestFilterAndSort_IndexSlugsOverFullCatalog(t *testing.T) {
	// Index slugs must match against the display name, not the raw slug, so
	// "hr" finds products whose category reads "Human Resources".
	results := FilterAndSort(DefaultUseCases(), "hr", "", "")
	require.Len(t, results, 1)
	assert.Equal(t, "Resume Screening Assistant", results[0].Title)

	// "analytics" resolves to "Data Analytics"; only the featured predictive
	// maintenance entry carries that category.
	results = FilterAndSort(DefaultUseCases(), "analytics", "", "")
	require.Len(t, results, 1)
	assert.Equal(t, "featured3", results[0].ID)
}

func TestFilterAndSort_QueryMatchesTitleDescriptionOrCategory(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "title match", query: "Email Marketing", expected: 1},
		{name: "description match", query: "stockouts", expected: 1},
		{name: "category match", query: "supply chain", expected: 1},
		{name: "case-insensitive", query: "CHATBOT", expected: 1},
		// Pure substring matching: "ai" also hits "email" and "tailored",
		// but not the resume-screening entry, which contains no "ai" at all.
		{name: "substring not tokenized", query: "AI", expected: 8},
		{name: "no match", query: "blockchain", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := FilterAndSort(baseFixture(), "all", tt.query, "")
			assert.Len(t, results, tt.expected)

			q := strings.ToLower(tt.query)
			for _, uc := range results {
				matched := strings.Contains(strings.ToLower(uc.Title), q) ||
					strings.Contains(strings.ToLower(uc.Description), q) ||
					strings.Contains(strings.ToLower(uc.Category), q)
				assert.True(t, matched, "result %q does not contain query %q", uc.ID, tt.query)
			}
		})
	}
}

func TestFilterAndSort_SortOrders(t *testing.T) {
	t.Run("price-low ascending", func(t *testing.T) {
		results := FilterAndSort(baseFixture(), "all", "", SortPriceLow)

		require.Len(t, results, 9)
		assert.Equal(t, "$39", results[0].Price)
		assert.Equal(t, "$129", results[8].Price)
		for i := 1; i < len(results); i++ {
			prev := displayPrice(results[i-1].Price)
			curr := displayPrice(results[i].Price)
			assert.True(t, prev.LessThanOrEqual(curr),
				"prices must be non-decreasing at index %d", i)
		}
	})

	t.Run("price-high descending", func(t *testing.T) {
		results := FilterAndSort(baseFixture(), "all", "", SortPriceHigh)

		require.Len(t, results, 9)
		assert.Equal(t, "$129", results[0].Price)
		for i := 1; i < len(results); i++ {
			prev := displayPrice(results[i-1].Price)
			curr := displayPrice(results[i].Price)
			assert.True(t, prev.GreaterThanOrEqual(curr),
				"prices must be non-increasing at index %d", i)
		}
	})

	t.Run("price ties keep input order", func(t *testing.T) {
		results := FilterAndSort(baseFixture(), "all", "", SortPriceLow)

		// IDs 2 and 9 are both $79; 2 precedes 9 in the fixture.
		var tied []string
		for _, uc := range results {
			if uc.Price == "$79" {
				tied = append(tied, uc.ID)
			}
		}
		assert.Equal(t, []string{"2", "9"}, tied)
	})

	t.Run("reviews descending", func(t *testing.T) {
		results := FilterAndSort(baseFixture(), "all", "", SortReviews)

		require.Len(t, results, 9)
		assert.Equal(t, 312, results[0].Reviews)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Reviews, results[i].Reviews)
		}
	})

	t.Run("unknown sort key keeps input order", func(t *testing.T) {
		results := FilterAndSort(baseFixture(), "all", "", "popularity")

		require.Len(t, results, 9)
		for i, uc := range baseFixture() {
			assert.Equal(t, uc.ID, results[i].ID)
		}
	})
}

func TestFilterAndSort_Deterministic(t *testing.T) {
	first := FilterAndSort(baseFixture(), "all", "ai", SortRating)
	second := FilterAndSort(baseFixture(), "all", "ai", SortRating)

	assert.Equal(t, first, second)
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	input := baseFixture()
	want := baseFixture()

	FilterAndSort(input, "all", "", SortPriceHigh)

	assert.Equal(t, want, input)
}

func TestFilterAndSort_EmptyCatalog(t *testing.T) {
	results := FilterAndSort(nil, "all", "", SortRating)
	assert.Empty(t, results)

	results = FilterAndSort([]model.UseCase{}, "analytics", "ai", SortPriceLow)
	assert.Empty(t, results)
}

func TestFilterAndSort_CombinedFilters(t *testing.T) {
	// Category and query must both pass.
	results := FilterAndSort(baseFixture(), "marketing", "chatbot", "")
	assert.Empty(t, results)

	results = FilterAndSort(baseFixture(), "marketing", "email", "")
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		price    string
		expected string
	}{
		{price: "$49", expected: "49"},
		{price: "$49.99", expected: "49.99"},
		{price: "$1,299.50", expected: "1299.5"},
		{price: "129", expected: "129"},
		{price: "free", expected: "0"},
		{price: "", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.expected, displayPrice(tt.price).String())
		})
	}
}
