package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/listings"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
)

var errInvalidID = errors.New("invalid listing id")

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		printlnFn("Invalid listing id:", s)
		return 0, errInvalidID
	}
	return id, nil
}

// Browse opens the browse tab. A non-empty query replaces the search text,
// "browse" alone clears it.
func (a *App) Browse(ctx context.Context, query string) error {
	a.browse.Text = query
	return a.showBrowse(ctx)
}

func (a *App) showBrowse(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, session.DashboardPage(session.TabBrowse)); err != nil {
		return a.report(ctx, err)
	}
	ls, err := a.ctrl.Browse(ctx, a.browse)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn(browseHeader(a.browse))
	printListings(ls)
	return nil
}

func (a *App) Filter(ctx context.Context, category string) error {
	f, err := models.ParseCategoryFilter(category)
	if err != nil {
		return a.report(ctx, err)
	}
	a.browse.Filter = f
	return a.showBrowse(ctx)
}

// Sort orders the tab currently shown; from any other page it sorts browse.
func (a *App) Sort(ctx context.Context, criterion string) error {
	c, err := listings.ParseSortCriterion(criterion)
	if err != nil {
		printlnFn(argCommands["sort"])
		return err
	}
	if p := a.ctrl.State().Page; p.Kind == session.PageDashboard && p.Tab == session.TabMine {
		a.mineSort = c
		return a.Mine(ctx)
	}
	a.browse.Sort = c
	return a.showBrowse(ctx)
}

func (a *App) Mine(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, session.DashboardPage(session.TabMine)); err != nil {
		return a.report(ctx, err)
	}
	ls, err := a.ctrl.MyListings(ctx, a.mineSort)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn("My listings")
	printListings(ls)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	if err := a.ctrl.Navigate(ctx, session.DetailPage(n)); err != nil {
		return a.report(ctx, err)
	}
	return a.showDetail(ctx)
}

func (a *App) showDetail(ctx context.Context) error {
	l, err := a.ctrl.Detail(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	printDetail(l, a.ctrl.CanModify(l))
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if err := a.ctrl.Back(ctx); err != nil {
		return a.report(ctx, err)
	}
	return a.renderPage(ctx)
}

// renderPage prints whatever page the controller is on.
func (a *App) renderPage(ctx context.Context) error {
	p := a.ctrl.State().Page
	switch p.Kind {
	case session.PageDashboard:
		if p.Tab == session.TabMine {
			return a.Mine(ctx)
		}
		return a.showBrowse(ctx)
	case session.PageProfile:
		return a.Profile(ctx)
	case session.PageListingDetail:
		return a.showDetail(ctx)
	}
	printlnFn("Please log in or register")
	return nil
}

// readListing prompts for the listing form, prefilled from cur.
func (a *App) readListing(cur models.Listing) (forms.Listing, error) {
	var f forms.Listing
	var err error

	price := ""
	if cur.Price > 0 {
		price = strconv.FormatFloat(cur.Price, 'f', -1, 64)
	}
	image := cur.Image
	if image == models.DefaultImage {
		image = ""
	}

	if f.Title, err = getWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return f, err
	}
	if f.Price, err = getWithDefault(a.reader, "Price", price, a.out); err != nil {
		return f, err
	}
	if f.Category, err = getWithDefault(a.reader, "Category ("+categoryChoices()+")", string(cur.Category), a.out); err != nil {
		return f, err
	}
	if f.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return f, err
	}
	if f.Description == "" {
		f.Description = cur.Description
	}
	if f.Image, err = getWithDefault(a.reader, "Image URL or file path (optional)", image, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) New(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(ctx, session.ErrNotLoggedIn)
	}
	f, err := a.readListing(models.Listing{})
	if err != nil {
		return err
	}
	l, err := a.ctrl.CreateListing(ctx, f)
	if err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Listing created:", l.String())
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	cur, err := a.ctrl.Lookup(ctx, n)
	if err != nil {
		return a.report(ctx, err)
	}
	if !a.ctrl.CanModify(cur) {
		return a.report(ctx, session.ErrNotOwner)
	}
	f, err := a.readListing(cur)
	if err != nil {
		return err
	}
	if err := a.ctrl.EditListing(ctx, n, f); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Listing updated")
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Delete listing #"+strconv.Itoa(n)+"? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled")
		return nil
	}
	open := a.ctrl.State().Page == session.DetailPage(n)
	if err := a.ctrl.DeleteListing(ctx, n); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Listing deleted")
	if open {
		return a.renderPage(ctx)
	}
	return nil
}

func (a *App) Sold(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	if err := a.ctrl.MarkSold(ctx, n); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Marked as sold")
	return nil
}
