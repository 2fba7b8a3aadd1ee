package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory(" Tickets ")
	require.NoError(t, err)
	assert.Equal(t, CategoryTickets, got)

	_, err = ParseCategory("Textbooks")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestCategoryFilter(t *testing.T) {
	all, err := ParseCategoryFilter("all")
	require.NoError(t, err)
	assert.Equal(t, AllCategories, all)
	for _, c := range Categories {
		assert.True(t, all.Matches(c))
	}

	living, err := ParseCategoryFilter("living")
	require.NoError(t, err)
	assert.True(t, living.Matches(CategoryLiving))
	assert.False(t, living.Matches(CategorySchool))
	assert.Equal(t, "living", living.String())

	_, err = ParseCategoryFilter("furniture")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestListing_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Listing{ID: 1, Title: "Lamp", Price: 15, Category: CategoryLiving, Seller: "a@ufl.edu", IsSold: true})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, k := range []string{"id", "title", "price", "category", "seller", "image", "description", "isSold"} {
		assert.Contains(t, raw, k)
	}
	assert.Equal(t, true, raw["isSold"])
}

func TestListing_String(t *testing.T) {
	l := Listing{ID: 3, Title: "Desk Lamp", Price: 15, Category: CategoryLiving, Seller: "s@ufl.edu"}
	assert.Equal(t, "#3 Desk Lamp $15.00 (Living) by s@ufl.edu", l.String())
	l.IsSold = true
	assert.Contains(t, l.String(), "[SOLD]")
}

func TestIdentity_DisplayName(t *testing.T) {
	assert.Equal(t, "alice", Identity{Email: "a@ufl.edu", Username: "alice"}.DisplayName())
	assert.Equal(t, "a@ufl.edu", Identity{Email: "a@ufl.edu"}.DisplayName())
	assert.True(t, Identity{}.IsZero())
}
