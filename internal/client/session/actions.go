package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/listings"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
)

// fields validates a listing form and resolves its image.
func (c *Controller) fields(ctx context.Context, f forms.Listing) (models.Fields, error) {
	price, err := forms.ValidateListing(f)
	if err != nil {
		return models.Fields{}, err
	}

	category := models.CategorySchool
	if strings.TrimSpace(f.Category) != "" {
		if category, err = models.ParseCategory(f.Category); err != nil {
			return models.Fields{}, err
		}
	}

	image := strings.TrimSpace(f.Image)
	if c.images != nil {
		if image, err = c.images.Resolve(ctx, image); err != nil {
			return models.Fields{}, err
		}
	}

	return models.Fields{
		Title:       strings.TrimSpace(f.Title),
		Price:       price,
		Category:    category,
		Image:       image,
		Description: strings.TrimSpace(f.Description),
	}, nil
}

// CreateListing adds a listing owned by the session user.
func (c *Controller) CreateListing(ctx context.Context, f forms.Listing) (models.Listing, error) {
	user, gen, err := c.session()
	if err != nil {
		return models.Listing{}, err
	}

	fields, err := c.fields(ctx, f)
	if err != nil {
		return models.Listing{}, err
	}
	if !c.current(gen) {
		return models.Listing{}, ErrStale
	}

	return c.listings.Create(ctx, user.Email, fields)
}

// owned loads a listing and checks that the session user may change it.
// Admins may change any listing.
func (c *Controller) owned(ctx context.Context, id int) (models.Identity, uint64, error) {
	user, gen, err := c.session()
	if err != nil {
		return models.Identity{}, 0, err
	}
	l, err := c.listings.Get(ctx, id)
	if err != nil {
		return models.Identity{}, 0, err
	}
	if l.Seller != user.Email && !user.IsAdmin {
		return models.Identity{}, 0, ErrNotOwner
	}
	return user, gen, nil
}

func (c *Controller) EditListing(ctx context.Context, id int, f forms.Listing) error {
	_, gen, err := c.owned(ctx, id)
	if err != nil {
		return err
	}
	fields, err := c.fields(ctx, f)
	if err != nil {
		return err
	}
	if !c.current(gen) {
		return ErrStale
	}
	return c.listings.Update(ctx, id, fields)
}

// MarkSold flags an owned listing as sold. Repeating it is harmless.
func (c *Controller) MarkSold(ctx context.Context, id int) error {
	if _, _, err := c.owned(ctx, id); err != nil {
		return err
	}
	return c.listings.MarkSold(ctx, id)
}

// DeleteListing removes an owned listing. When its detail page is open the
// controller falls back to the previous page.
func (c *Controller) DeleteListing(ctx context.Context, id int) error {
	if _, _, err := c.owned(ctx, id); err != nil {
		return err
	}
	if err := c.listings.Delete(ctx, id); err != nil {
		return err
	}

	s := c.State()
	if s.Page.Kind == PageListingDetail && s.Page.ListingID == id {
		return c.Back(ctx)
	}
	return nil
}

// BrowseQuery describes the browse tab.
type BrowseQuery struct {
	Text   string
	Filter models.CategoryFilter
	Sort   listings.SortCriterion
}

// Browse lists other users' listings matching q.
func (c *Controller) Browse(ctx context.Context, q BrowseQuery) ([]models.Listing, error) {
	user, _, err := c.session()
	if err != nil {
		return nil, err
	}
	ls, err := c.listings.ListExcludingSeller(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	ls = listings.Search(ls, q.Text, q.Filter)
	if q.Sort != "" {
		ls = listings.SortBy(q.Sort, ls)
	}
	return ls, nil
}

// MyListings lists the session user's own listings.
func (c *Controller) MyListings(ctx context.Context, sort listings.SortCriterion) ([]models.Listing, error) {
	user, _, err := c.session()
	if err != nil {
		return nil, err
	}
	ls, err := c.listings.ListBySeller(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if sort != "" {
		ls = listings.SortBy(sort, ls)
	}
	return ls, nil
}

// Detail returns the listing shown on the open detail page.
func (c *Controller) Detail(ctx context.Context) (models.Listing, error) {
	s := c.State()
	if !s.LoggedIn() {
		return models.Listing{}, ErrNotLoggedIn
	}
	if s.Page.Kind != PageListingDetail {
		return models.Listing{}, ErrNotOnListing
	}
	return c.listings.Get(ctx, s.Page.ListingID)
}

// ProfileView is everything the profile page shows.
type ProfileView struct {
	User     models.Identity
	Profile  models.Profile
	Saved    bool
	Listings []models.Listing
	Active   int
	Sold     int
}

func (c *Controller) Profile(ctx context.Context) (ProfileView, error) {
	user, _, err := c.session()
	if err != nil {
		return ProfileView{}, err
	}
	p, saved, err := c.profiles.Get(ctx, user.Email)
	if err != nil {
		return ProfileView{}, err
	}
	mine, err := c.listings.ListBySeller(ctx, user.Email)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{
		User:     user,
		Profile:  p,
		Saved:    saved,
		Listings: mine,
		Active:   listings.CountActive(mine),
		Sold:     listings.CountSold(mine),
	}, nil
}

func (c *Controller) SaveProfile(ctx context.Context, f forms.Profile) error {
	user, gen, err := c.session()
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if !c.current(gen) {
		return ErrStale
	}
	return c.profiles.Save(ctx, user.Email, models.Profile{
		Name:  strings.TrimSpace(f.Name),
		Phone: strings.TrimSpace(f.Phone),
		Bio:   f.Bio,
	})
}

// Lookup returns one listing for a logged-in user, without navigating.
func (c *Controller) Lookup(ctx context.Context, id int) (models.Listing, error) {
	if _, _, err := c.session(); err != nil {
		return models.Listing{}, err
	}
	return c.listings.Get(ctx, id)
}

// CanModify reports whether the session user may change l.
func (c *Controller) CanModify(l models.Listing) bool {
	s := c.State()
	return s.LoggedIn() && (l.Seller == s.User.Email || s.User.IsAdmin)
}
