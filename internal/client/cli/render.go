package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
)

func categoryChoices() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func browseHeader(q session.BrowseQuery) string {
	parts := []string{"Browse"}
	if q.Text != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Text))
	}
	parts = append(parts, "category "+q.Filter.String())
	if q.Sort != "" {
		parts = append(parts, "sorted by "+string(q.Sort))
	}
	return strings.Join(parts, " | ")
}

func printListings(ls []models.Listing) {
	if len(ls) == 0 {
		printlnFn("No listings found")
		return
	}
	for _, l := range ls {
		printlnFn(l.String())
	}
}

func printDetail(l models.Listing, owner bool) {
	printlnFn(fmt.Sprintf("#%d %s", l.ID, l.Title))
	printlnFn(fmt.Sprintf("Price:    $%.2f", l.Price))
	printlnFn("Category:", l.Category.Label())
	printlnFn("Seller:  ", l.Seller)
	if l.IsSold {
		printlnFn("Status:   sold")
	} else {
		printlnFn("Status:   available")
	}
	if l.Description != "" {
		printlnFn(l.Description)
	}
	if strings.HasPrefix(l.Image, "data:") {
		printlnFn("Image:    (embedded)")
	} else {
		printlnFn("Image:   ", l.Image)
	}
	if owner {
		printlnFn("Commands: edit, sold, delete, back")
	} else {
		printlnFn("Commands: back")
	}
}

func (a *App) getStatus() string {
	s := a.ctrl.State()
	parts := make([]string, 0, 3)
	if s.LoggedIn() {
		parts = append(parts, s.User.Email)
	}
	parts = append(parts, s.Page.String(), string(a.Mode()))
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) Status(ctx context.Context) error {
	s := a.ctrl.State()
	printlnFn("Session:", s.Status.String())
	if s.LoggedIn() {
		u := "User:    " + s.User.Email
		if s.User.IsAdmin {
			u += " (admin)"
		}
		printlnFn(u)
	}
	printlnFn("Page:   ", s.Page.String())
	printlnFn("Mode:   ", string(a.Mode()))
	if s.Notice != "" {
		printlnFn("Notice: ", s.Notice)
	}
	return nil
}
