package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
)

func (a *App) Profile(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, session.ProfilePage()); err != nil {
		return a.report(ctx, err)
	}
	v, err := a.ctrl.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	printlnFn(v.Profile.Name)
	printlnFn("Email:", v.User.Email)
	if v.Profile.Phone != "" {
		printlnFn("Phone:", v.Profile.Phone)
	}
	if v.Profile.Bio != "" {
		printlnFn("Bio:", v.Profile.Bio)
	}
	printlnFn(fmt.Sprintf("Active listings: %d  Sold: %d", v.Active, v.Sold))
	printListings(v.Listings)
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	v, err := a.ctrl.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	var f forms.Profile
	if f.Name, err = getWithDefault(a.reader, "Name", v.Profile.Name, a.out); err != nil {
		return err
	}
	if f.Phone, err = getWithDefault(a.reader, "Phone", v.Profile.Phone, a.out); err != nil {
		return err
	}
	if f.Bio, err = getWithDefault(a.reader, fmt.Sprintf("Bio (max %d characters)", forms.MaxBioLength), v.Profile.Bio, a.out); err != nil {
		return err
	}

	if err := a.ctrl.SaveProfile(ctx, f); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Profile saved")
	return nil
}
