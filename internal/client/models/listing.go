package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category is the closed set of listing categories.
type Category string

const (
	CategorySchool   Category = "school"
	CategoryApparel  Category = "apparel"
	CategoryLiving   Category = "living"
	CategoryServices Category = "services"
	CategoryTickets  Category = "tickets"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySchool,
	CategoryApparel,
	CategoryLiving,
	CategoryServices,
	CategoryTickets,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategorySchool, CategoryApparel, CategoryLiving, CategoryServices, CategoryTickets:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) Label() string {
	switch c {
	case CategorySchool:
		return "School"
	case CategoryApparel:
		return "Apparel"
	case CategoryLiving:
		return "Living"
	case CategoryServices:
		return "Services"
	case CategoryTickets:
		return "Tickets"
	}
	return string(c)
}

// CategoryFilter narrows a listing view. The zero value matches everything.
type CategoryFilter struct {
	category Category
}

// AllCategories matches every listing.
var AllCategories = CategoryFilter{}

func OnlyCategory(c Category) CategoryFilter {
	return CategoryFilter{category: c}
}

// ParseCategoryFilter accepts "all" (or "") and every category name.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	if v := strings.ToLower(strings.TrimSpace(s)); v == "" || v == "all" {
		return AllCategories, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return CategoryFilter{}, err
	}
	return OnlyCategory(c), nil
}

func (f CategoryFilter) Matches(c Category) bool {
	return f.category == "" || f.category == c
}

func (f CategoryFilter) String() string {
	if f.category == "" {
		return "all"
	}
	return string(f.category)
}

// DefaultImage is shown for listings created without an image.
const DefaultImage = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"

// Listing is an item offered for sale. Seller is the owner's email.
type Listing struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Seller      string   `json:"seller"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	IsSold      bool     `json:"isSold"`
}

// Fields are the user-editable parts of a listing.
type Fields struct {
	Title       string
	Price       float64
	Category    Category
	Image       string
	Description string
}

func (l Listing) String() string {
	status := ""
	if l.IsSold {
		status = " [SOLD]"
	}
	return fmt.Sprintf("#%d %s $%.2f (%s) by %s%s", l.ID, l.Title, l.Price, l.Category.Label(), l.Seller, status)
}
