package cli

import (
	"context"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
)

// getSimpleText, getPassword, getWithDefault and getMultiline are
// indirections used to facilitate testing.
var (
	getSimpleText  = GetSimpleText
	getPassword    = GetPassword
	getWithDefault = GetWithDefault
	getMultiline   = GetMultiline
)

// report shows err to the user and returns it unchanged.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if msg := session.Message(err); msg != "" {
		printlnFn(msg)
	}
	a.logger.Debug(ctx, "command failed", "error", err)
	return err
}

// Register prompts for the sign-up form and creates the account.
func (a *App) Register(ctx context.Context) error {
	if err := a.ctrl.ShowRegister(); err != nil {
		return a.report(ctx, err)
	}

	var f forms.Register
	var err error
	if f.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "UF email", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if f.ConfirmPassword, err = getPassword("Confirm password", a.out); err != nil {
		return err
	}

	printlnFn("Creating account...")
	if err := a.ctrl.Register(ctx, f); err != nil {
		return a.report(ctx, err)
	}

	s := a.ctrl.State()
	if s.Notice != "" {
		printlnFn(s.Notice)
	}
	if s.LoggedIn() {
		printlnFn("Welcome, " + s.User.DisplayName() + "!")
		return a.showBrowse(ctx)
	}
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	if err := a.ctrl.ShowLogin(); err != nil {
		return a.report(ctx, err)
	}

	var f forms.Login
	var err error
	if f.Email, err = getSimpleText(a.reader, "UF email", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}

	printlnFn("Logging in...")
	if err := a.ctrl.Login(ctx, f); err != nil {
		return a.report(ctx, err)
	}

	printlnFn("Welcome, " + a.ctrl.State().User.DisplayName() + "!")
	return a.showBrowse(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	a.browse = session.BrowseQuery{}
	a.mineSort = ""
	if err := a.ctrl.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	printlnFn("Logged out")
	return nil
}
