package session

import (
	"fmt"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
)

type Status int

const (
	StatusLoggedOut Status = iota
	StatusAuthenticating
	StatusLoggedIn
)

func (s Status) String() string {
	switch s {
	case StatusLoggedOut:
		return "logged out"
	case StatusAuthenticating:
		return "authenticating"
	case StatusLoggedIn:
		return "logged in"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type PageKind int

const (
	PageLogin PageKind = iota + 1
	PageRegister
	PageDashboard
	PageProfile
	PageListingDetail
)

// Tab selects the dashboard view.
type Tab string

const (
	TabBrowse Tab = "browse"
	TabMine   Tab = "mine"
)

// Page identifies one screen. Tab is set for the dashboard only, ListingID
// for the detail page only.
type Page struct {
	Kind      PageKind
	Tab       Tab
	ListingID int
}

func LoginPage() Page    { return Page{Kind: PageLogin} }
func RegisterPage() Page { return Page{Kind: PageRegister} }
func ProfilePage() Page  { return Page{Kind: PageProfile} }

func DashboardPage(tab Tab) Page {
	if tab == "" {
		tab = TabBrowse
	}
	return Page{Kind: PageDashboard, Tab: tab}
}

func DetailPage(id int) Page {
	return Page{Kind: PageListingDetail, ListingID: id}
}

// requiresLogin reports whether the page is only reachable with a session.
func (p Page) requiresLogin() bool {
	switch p.Kind {
	case PageDashboard, PageProfile, PageListingDetail:
		return true
	}
	return false
}

func (p Page) String() string {
	switch p.Kind {
	case PageLogin:
		return "login"
	case PageRegister:
		return "register"
	case PageDashboard:
		return "dashboard/" + string(p.Tab)
	case PageProfile:
		return "profile"
	case PageListingDetail:
		return fmt.Sprintf("listing/%d", p.ListingID)
	}
	return "unknown"
}

// State is a snapshot of the navigation state machine.
//
//	LoggedOut      Page is login or register, User is zero
//	Authenticating Page is the form that started the attempt
//	LoggedIn       Page is dashboard, profile or a listing detail
//
// Previous is the page a detail view returns to.
type State struct {
	Status   Status
	Page     Page
	Previous Page
	User     models.Identity
	// Notice is an informational message for the user, such as the outcome
	// of a registration that did not sign in.
	Notice string
}

func (s State) LoggedIn() bool {
	return s.Status == StatusLoggedIn
}
