package catalog

import (
	"sort"
	"strings"

	"usecase-market/internal/model"

	"github.com/shopspring/decimal"
)

// centsPerUnit converts a decimal currency amount to minor units.
var centsPerUnit = decimal.NewFromInt(100)

// Sort keys accepted by FilterAndSort. Any other value leaves the input
// order untouched.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortReviews   = "reviews"
)

// FilterAndSort returns the use cases matching the category and free-text
// query, ordered by the given sort key. The input slice is never mutated and
// identical inputs always produce identical output (ties keep input order).
//
// Category matching: categoryID "all" matches everything; otherwise the use
// case's category must contain, case-insensitively, the category's display
// name with hyphens read as spaces ("hr" resolves to "Human Resources" via
// the index; an unknown slug is matched literally).
//
// Query matching is a plain case-insensitive substring test against title,
// description, and category.
func FilterAndSort(useCases []model.UseCase, categoryID, query, sortKey string) []model.UseCase {
	matched := make([]model.UseCase, 0, len(useCases))
	for _, uc := range useCases {
		if matchesCategory(uc, categoryID) && matchesQuery(uc, query) {
			matched = append(matched, uc)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return displayPrice(matched[i].Price).LessThan(displayPrice(matched[j].Price))
		})
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return displayPrice(matched[i].Price).GreaterThan(displayPrice(matched[j].Price))
		})
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Rating > matched[j].Rating
		})
	case SortReviews:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Reviews > matched[j].Reviews
		})
	}

	return matched
}

// matchesCategory reports whether the use case belongs to the category.
// The slug is resolved to its display name through the category index, so
// the predicate compares against what the filter UI shows; slugs not in the
// index fall back to their literal form.
func matchesCategory(uc model.UseCase, categoryID string) bool {
	if categoryID == "" || categoryID == model.CategoryAll {
		return true
	}

	name := categoryID
	if c, ok := CategoryByID(categoryID); ok {
		name = c.Name
	}

	needle := strings.ReplaceAll(strings.ToLower(name), "-", " ")
	return strings.Contains(strings.ToLower(uc.Category), needle)
}

// matchesQuery reports whether the query appears in the use case's title,
// description, or category. An empty query matches everything.
func matchesQuery(uc model.UseCase, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(uc.Title), q) ||
		strings.Contains(strings.ToLower(uc.Description), q) ||
		strings.Contains(strings.ToLower(uc.Category), q)
}

// displayPrice extracts the leading numeric value from a display price
// string such as "$49" or "$1,299.50". Unparseable prices sort as zero.
func displayPrice(price string) decimal.Decimal {
	start := -1
	for i, r := range price {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return decimal.Zero
	}

	end := start
	for end < len(price) {
		c := price[end]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			end++
			continue
		}
		break
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(price[start:end], ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
