// Package session is the navigation controller of the marketplace client.
// It owns the single active session and the active page, routes user
// actions to the configured authenticator and the listing and profile
// stores, and turns their results into state transitions.
//
// Every asynchronous operation captures a generation number when it starts.
// If the state moved on before the operation finished (logout, navigation,
// another form) the result is dropped and ErrStale is returned.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/remote"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrLoggedIn     = errors.New("already logged in")
	ErrBusy         = errors.New("another request is in progress")
	ErrStale        = errors.New("state changed while the request was running")
	ErrNotOwner     = errors.New("listing belongs to another user")
	ErrInvalidPage  = errors.New("page not reachable from here")
	ErrNotOnListing = errors.New("no listing is open")
)

// Authenticator is implemented by the mock account service and the remote
// adapter. Register may return a zero identity, meaning the account exists
// but no session was opened.
type Authenticator interface {
	Register(ctx context.Context, displayName, email, password string) (models.Identity, error)
	Login(ctx context.Context, email, password string) (models.Identity, error)
	Logout(ctx context.Context) error
	HasSession(ctx context.Context) (bool, error)
	Restore(ctx context.Context) (models.Identity, error)
}

type Listings interface {
	Refresh(ctx context.Context) error
	Get(ctx context.Context, id int) (models.Listing, error)
	Create(ctx context.Context, seller string, f models.Fields) (models.Listing, error)
	Update(ctx context.Context, id int, f models.Fields) error
	MarkSold(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	ListBySeller(ctx context.Context, email string) ([]models.Listing, error)
	ListExcludingSeller(ctx context.Context, email string) ([]models.Listing, error)
}

type Profiles interface {
	Get(ctx context.Context, email string) (models.Profile, bool, error)
	Save(ctx context.Context, email string, p models.Profile) error
}

// ImageResolver turns the image field of a listing form into a stored value.
type ImageResolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

type Options struct {
	// EmailDomain is the required institutional suffix, e.g. "@ufl.edu".
	EmailDomain string
	Images      ImageResolver
	Logger      logging.Logger
}

type Controller struct {
	auth     Authenticator
	listings Listings
	profiles Profiles
	images   ImageResolver
	domain   string
	logger   logging.Logger

	mu    sync.Mutex
	state State
	gen   uint64
	busy  bool
}

func New(auth Authenticator, listings Listings, profiles Profiles, opts Options) *Controller {
	if opts.EmailDomain == "" {
		opts.EmailDomain = forms.DefaultEmailDomain
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}
	return &Controller{
		auth:     auth,
		listings: listings,
		profiles: profiles,
		images:   opts.Images,
		domain:   opts.EmailDomain,
		logger:   opts.Logger.With("component", "session"),
		state:    State{Status: StatusLoggedOut, Page: LoginPage()},
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// setLocked replaces the state and invalidates in-flight operations.
func (c *Controller) setLocked(s State) {
	c.state = s
	c.gen++
}

// begin marks an auth operation as running. It fails with ErrBusy while
// another one is pending.
func (c *Controller) begin() (uint64, State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return 0, State{}, ErrBusy
	}
	prev := c.state
	c.busy = true
	c.setLocked(State{Status: StatusAuthenticating, Page: prev.Page})
	return c.gen, prev, nil
}

// finish ends an auth operation. It applies next when the generation still
// matches, otherwise it reports ErrStale and leaves the state alone.
func (c *Controller) finish(gen uint64, next State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if c.gen != gen {
		return ErrStale
	}
	c.setLocked(next)
	return nil
}

// unverified reports whether err left the session's validity unknown.
func unverified(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var re *remote.Error
	return errors.As(err, &re) && re.Kind == remote.KindTransport
}

func (c *Controller) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen == gen
}

// Start restores a persisted session, if there is one. Without one, or when
// restoring fails, the controller ends on the login page. A rejected session
// is cleared; one that could not be checked because the backend was
// unreachable or the request was cancelled is kept for the next start.
func (c *Controller) Start(ctx context.Context) error {
	has, err := c.auth.HasSession(ctx)
	if err != nil {
		c.logger.Warn(ctx, "cannot read persisted session", "error", err)
		return err
	}
	if !has {
		return nil
	}

	gen, _, err := c.begin()
	if err != nil {
		return err
	}

	id, err := c.auth.Restore(ctx)
	if err != nil {
		c.logger.Info(ctx, "session restore failed", "error", err)
		if !unverified(err) {
			if lerr := c.auth.Logout(ctx); lerr != nil {
				c.logger.Warn(ctx, "failed to clear stale session", "error", lerr)
			}
		}
		if ferr := c.finish(gen, State{Status: StatusLoggedOut, Page: LoginPage()}); ferr != nil {
			return ferr
		}
		return err
	}

	return c.enter(ctx, gen, id, "")
}

// enter completes a successful authentication.
func (c *Controller) enter(ctx context.Context, gen uint64, id models.Identity, notice string) error {
	if err := c.finish(gen, State{
		Status: StatusLoggedIn,
		Page:   DashboardPage(TabBrowse),
		User:   id,
		Notice: notice,
	}); err != nil {
		// nobody is looking at this session any more
		if lerr := c.auth.Logout(ctx); lerr != nil {
			c.logger.Warn(ctx, "failed to drop discarded session", "error", lerr)
		}
		return err
	}

	c.logger.Info(ctx, "session started", "email", id.Email)
	if err := c.listings.Refresh(ctx); err != nil {
		c.logger.Warn(ctx, "listing refresh failed", "error", err)
	}
	return nil
}

// Login validates the form, then authenticates. On failure the state goes
// back to what it was before the attempt.
func (c *Controller) Login(ctx context.Context, f forms.Login) error {
	if c.State().LoggedIn() {
		return ErrLoggedIn
	}
	if err := f.Validate(c.domain); err != nil {
		return err
	}

	gen, prev, err := c.begin()
	if err != nil {
		return err
	}

	id, err := c.auth.Login(ctx, f.Email, f.Password)
	if err != nil {
		if ferr := c.finish(gen, prev); ferr != nil {
			return ferr
		}
		return err
	}
	return c.enter(ctx, gen, id, "")
}

// Register validates the form and creates the account. When the
// authenticator does not open a session on registration, Register signs in
// with the same credentials; if that fails it ends on the login page with
// a notice.
func (c *Controller) Register(ctx context.Context, f forms.Register) error {
	if c.State().LoggedIn() {
		return ErrLoggedIn
	}
	if err := f.Validate(c.domain); err != nil {
		return err
	}

	gen, prev, err := c.begin()
	if err != nil {
		return err
	}

	id, err := c.auth.Register(ctx, f.FullName, f.Email, f.Password)
	if err != nil {
		if ferr := c.finish(gen, prev); ferr != nil {
			return ferr
		}
		return err
	}

	if !id.IsZero() {
		return c.enter(ctx, gen, id, "Account created")
	}

	if !c.current(gen) {
		_ = c.finish(gen, State{})
		return ErrStale
	}

	id, err = c.auth.Login(ctx, f.Email, f.Password)
	if err != nil {
		c.logger.Info(ctx, "auto-login after registration failed", "error", err)
		return c.finish(gen, State{
			Status: StatusLoggedOut,
			Page:   LoginPage(),
			Notice: "Account created. Please log in.",
		})
	}
	return c.enter(ctx, gen, id, "Account created")
}

// Logout ends the session and clears what the authenticator persisted.
// The state is logged out even when clearing fails.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	was := c.state.User
	c.setLocked(State{Status: StatusLoggedOut, Page: LoginPage()})
	c.mu.Unlock()

	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if !was.IsZero() {
		c.logger.Info(ctx, "session ended", "email", was.Email)
	}
	return nil
}

// ShowLogin and ShowRegister switch between the two logged-out forms.
// While an attempt is running they abandon it.
func (c *Controller) ShowLogin() error {
	return c.showForm(LoginPage())
}

func (c *Controller) ShowRegister() error {
	return c.showForm(RegisterPage())
}

func (c *Controller) showForm(p Page) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.LoggedIn() {
		return ErrLoggedIn
	}
	c.setLocked(State{Status: StatusLoggedOut, Page: p})
	return nil
}

// Navigate moves between the logged-in pages. Entering the dashboard or the
// profile re-reads the catalog so writes made elsewhere show up.
func (c *Controller) Navigate(ctx context.Context, p Page) error {
	c.mu.Lock()
	if !c.state.LoggedIn() {
		c.mu.Unlock()
		return ErrNotLoggedIn
	}
	if !p.requiresLogin() {
		c.mu.Unlock()
		return ErrInvalidPage
	}
	if p.Kind == PageDashboard && p.Tab == "" {
		p.Tab = TabBrowse
	}
	gen := c.gen
	c.mu.Unlock()

	if p.Kind == PageListingDetail {
		if _, err := c.listings.Get(ctx, p.ListingID); err != nil {
			return err
		}
	} else if err := c.listings.Refresh(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return ErrStale
	}
	next := c.state
	if p.Kind == PageListingDetail && next.Page.Kind != PageListingDetail {
		next.Previous = next.Page
	}
	next.Page = p
	next.Notice = ""
	c.setLocked(next)
	return nil
}

// Back leaves a detail page for the page it was opened from.
func (c *Controller) Back(ctx context.Context) error {
	s := c.State()
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	if s.Page.Kind != PageListingDetail {
		return nil
	}
	prev := s.Previous
	if !prev.requiresLogin() || prev.Kind == PageListingDetail {
		prev = DashboardPage(TabBrowse)
	}
	return c.Navigate(ctx, prev)
}

// session returns the current user and generation, or ErrNotLoggedIn.
func (c *Controller) session() (models.Identity, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.LoggedIn() {
		return models.Identity{}, 0, ErrNotLoggedIn
	}
	return c.state.User, c.gen, nil
}
