package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
)

func titles(ls []models.Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Title)
	}
	return out
}

func sample() []models.Listing {
	return []models.Listing{
		{ID: 1, Title: "Calculus Textbook", Price: 45, Category: models.CategorySchool},
		{ID: 2, Title: "Mini Fridge", Price: 80, Category: models.CategoryLiving},
		{ID: 3, Title: "desk Lamp", Price: 15, Category: models.CategoryLiving},
		{ID: 4, Title: "Bus Pass", Price: 15, Category: models.CategoryTickets},
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter models.CategoryFilter
		want   []string
	}{
		{name: "case-insensitive title", query: "CALC", filter: models.AllCategories, want: []string{"Calculus Textbook"}},
		{name: "category name", query: "living", filter: models.AllCategories, want: []string{"Mini Fridge", "desk Lamp"}},
		{name: "empty query", query: "  ", filter: models.AllCategories, want: []string{"Calculus Textbook", "Mini Fridge", "desk Lamp", "Bus Pass"}},
		{name: "filter only", query: "", filter: models.OnlyCategory(models.CategoryTickets), want: []string{"Bus Pass"}},
		{name: "filter intersects query", query: "lamp", filter: models.OnlyCategory(models.CategorySchool), want: []string{}},
		{name: "no match", query: "bicycle", filter: models.AllCategories, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sample()
			got := Search(in, tt.query, tt.filter)
			assert.Equal(t, tt.want, titles(got))
			assert.Equal(t, sample(), in, "input must not be modified")
		})
	}
}

func TestSortBy(t *testing.T) {
	tests := []struct {
		criterion SortCriterion
		want      []string
	}{
		{SortPriceLow, []string{"desk Lamp", "Bus Pass", "Calculus Textbook", "Mini Fridge"}},
		{SortPriceHigh, []string{"Mini Fridge", "Calculus Textbook", "desk Lamp", "Bus Pass"}},
		{SortTitle, []string{"Bus Pass", "Calculus Textbook", "desk Lamp", "Mini Fridge"}},
		{SortCategory, []string{"Mini Fridge", "desk Lamp", "Calculus Textbook", "Bus Pass"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			in := sample()
			got := SortBy(tt.criterion, in)
			assert.Equal(t, tt.want, titles(got))
			assert.Equal(t, sample(), in, "input must not be reordered")
		})
	}
}

func TestSortBy_PriceLowFridgeLamp(t *testing.T) {
	in := []models.Listing{
		{ID: 1, Title: "Fridge", Price: 80, Category: models.CategoryLiving},
		{ID: 2, Title: "Lamp", Price: 15, Category: models.CategoryLiving},
	}
	assert.Equal(t, []string{"Lamp", "Fridge"}, titles(SortBy(SortPriceLow, in)))
	assert.Equal(t, []string{"Fridge", "Lamp"}, titles(SortBy(SortPriceHigh, in)))
}

func TestParseSortCriterion(t *testing.T) {
	for _, c := range SortCriteria {
		got, err := ParseSortCriterion(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseSortCriterion("newest")
	assert.Error(t, err)
}

func TestCounts(t *testing.T) {
	ls := sample()
	ls[1].IsSold = true
	assert.Equal(t, 3, CountActive(ls))
	assert.Equal(t, 1, CountSold(ls))
	assert.Equal(t, 0, CountActive(nil))
}
