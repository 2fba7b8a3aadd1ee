package listings

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
)

// SortCriterion is the closed set of listing orderings.
type SortCriterion string

const (
	SortTitle     SortCriterion = "title"
	SortPriceLow  SortCriterion = "price-low"
	SortPriceHigh SortCriterion = "price-high"
	SortCategory  SortCriterion = "category"
)

var SortCriteria = []SortCriterion{SortTitle, SortPriceLow, SortPriceHigh, SortCategory}

func ParseSortCriterion(s string) (SortCriterion, error) {
	c := SortCriterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case SortTitle, SortPriceLow, SortPriceHigh, SortCategory:
		return c, nil
	}
	return "", fmt.Errorf("unknown sort criterion %q", s)
}

// Search keeps listings whose title or category contains query
// (case-insensitive) and whose category passes filter. An empty query
// matches everything. The input is not modified.
func Search(ls []models.Listing, query string, filter models.CategoryFilter) []models.Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Listing, 0, len(ls))
	for _, l := range ls {
		if !filter.Matches(l.Category) {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(string(l.Category)), q) {
			out = append(out, l)
		}
	}
	return out
}

// SortBy returns a sorted copy of ls. The sort is stable, so equal keys
// keep their collection order.
func SortBy(c SortCriterion, ls []models.Listing) []models.Listing {
	out := slices.Clone(ls)
	col := collate.New(language.English, collate.IgnoreCase)

	var cmp func(a, b models.Listing) int
	switch c {
	case SortTitle:
		cmp = func(a, b models.Listing) int { return col.CompareString(a.Title, b.Title) }
	case SortPriceLow:
		cmp = func(a, b models.Listing) int { return comparePrice(a.Price, b.Price) }
	case SortPriceHigh:
		cmp = func(a, b models.Listing) int { return comparePrice(b.Price, a.Price) }
	case SortCategory:
		cmp = func(a, b models.Listing) int { return col.CompareString(a.Category.Label(), b.Category.Label()) }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func CountActive(ls []models.Listing) int {
	n := 0
	for _, l := range ls {
		if !l.IsSold {
			n++
		}
	}
	return n
}

func CountSold(ls []models.Listing) int {
	return len(ls) - CountActive(ls)
}
