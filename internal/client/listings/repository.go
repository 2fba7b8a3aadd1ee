// Package listings owns the marketplace catalog: an ordered collection of
// listings plus the id counter, persisted as one blob in the client store.
package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

var (
	ErrNotFound       = errors.New("listing not found")
	ErrInvalidListing = errors.New("invalid listing")
)

type snapshot struct {
	Listings []models.Listing `json:"listings"`
	NextID   int              `json:"nextId"`
}

// Repository is safe for concurrent use. State is loaded lazily on first
// use, and every mutation is persisted before it becomes visible.
type Repository struct {
	store  store.Store
	logger logging.Logger

	mu       sync.Mutex
	loaded   bool
	listings []models.Listing
	nextID   int
}

func NewRepository(st store.Store, logger logging.Logger) *Repository {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Repository{store: st, logger: logger.With("component", "listings")}
}

// Load reads the catalog unless it is already in memory. The first load on
// an empty store materialises and persists the seed catalog.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLoaded(ctx)
}

// Refresh re-reads the catalog from the store, dropping the in-memory copy.
func (r *Repository) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
	return r.ensureLoaded(ctx)
}

func (r *Repository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	raw, ok, err := r.store.Get(ctx, store.KeyListings)
	if err != nil {
		return fmt.Errorf("read listings: %w", err)
	}

	if !ok {
		seed := snapshot{Listings: Seed(), NextID: seedNextID()}
		if err := r.persist(ctx, seed); err != nil {
			return err
		}
		r.apply(seed)
		r.logger.Info(ctx, "seeded catalog", "count", len(seed.Listings))
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return fmt.Errorf("decode listings: %w", err)
	}
	// ids are never reused, even if the counter was written behind
	for _, l := range snap.Listings {
		if l.ID >= snap.NextID {
			snap.NextID = l.ID + 1
		}
	}
	if snap.NextID < 1 {
		snap.NextID = 1
	}
	r.apply(snap)
	return nil
}

func (r *Repository) apply(s snapshot) {
	r.listings = s.Listings
	if r.listings == nil {
		r.listings = []models.Listing{}
	}
	r.nextID = s.NextID
	r.loaded = true
}

func (r *Repository) persist(ctx context.Context, s snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyListings, string(data)); err != nil {
		return fmt.Errorf("persist listings: %w", err)
	}
	return nil
}

// commit persists next, and only then swaps it in.
func (r *Repository) commit(ctx context.Context, next []models.Listing, nextID int) error {
	s := snapshot{Listings: next, NextID: nextID}
	if err := r.persist(ctx, s); err != nil {
		return err
	}
	r.apply(s)
	return nil
}

func checkFields(f models.Fields) (models.Fields, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return f, fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if !(f.Price > 0) {
		return f, fmt.Errorf("%w: price must be positive", ErrInvalidListing)
	}
	c, err := models.ParseCategory(string(f.Category))
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidListing, err)
	}
	f.Category = c
	if strings.TrimSpace(f.Image) == "" {
		f.Image = models.DefaultImage
	}
	return f, nil
}

// Create appends a new unsold listing owned by seller.
func (r *Repository) Create(ctx context.Context, seller string, f models.Fields) (models.Listing, error) {
	f, err := checkFields(f)
	if err != nil {
		return models.Listing{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return models.Listing{}, err
	}

	l := models.Listing{
		ID:          r.nextID,
		Title:       f.Title,
		Price:       f.Price,
		Category:    f.Category,
		Seller:      seller,
		Image:       f.Image,
		Description: f.Description,
	}

	next := append(r.clone(), l)
	if err := r.commit(ctx, next, r.nextID+1); err != nil {
		return models.Listing{}, err
	}

	r.logger.Info(ctx, "listing created", "id", l.ID, "seller", seller)
	return l, nil
}

// Update replaces the editable fields of a listing. id, seller and the
// sold flag are left alone.
func (r *Repository) Update(ctx context.Context, id int, f models.Fields) error {
	f, err := checkFields(f)
	if err != nil {
		return err
	}
	return r.mutate(ctx, id, func(l *models.Listing) {
		l.Title = f.Title
		l.Price = f.Price
		l.Category = f.Category
		l.Image = f.Image
		l.Description = f.Description
	})
}

// MarkSold flags a listing as sold. Marking it again is a no-op.
func (r *Repository) MarkSold(ctx context.Context, id int) error {
	return r.mutate(ctx, id, func(l *models.Listing) {
		l.IsSold = true
	})
}

func (r *Repository) mutate(ctx context.Context, id int, fn func(*models.Listing)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	next := r.clone()
	i := indexOf(next, id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	fn(&next[i])
	return r.commit(ctx, next, r.nextID)
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}

	i := indexOf(r.listings, id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	next := make([]models.Listing, 0, len(r.listings)-1)
	next = append(next, r.listings[:i]...)
	next = append(next, r.listings[i+1:]...)

	if err := r.commit(ctx, next, r.nextID); err != nil {
		return err
	}
	r.logger.Info(ctx, "listing deleted", "id", id)
	return nil
}

func (r *Repository) Get(ctx context.Context, id int) (models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return models.Listing{}, err
	}
	i := indexOf(r.listings, id)
	if i < 0 {
		return models.Listing{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return r.listings[i], nil
}

// ListAll returns every listing in collection order.
func (r *Repository) ListAll(ctx context.Context) ([]models.Listing, error) {
	return r.filter(ctx, func(models.Listing) bool { return true })
}

// ListBySeller returns the listings owned by email.
func (r *Repository) ListBySeller(ctx context.Context, email string) ([]models.Listing, error) {
	return r.filter(ctx, func(l models.Listing) bool { return l.Seller == email })
}

// ListExcludingSeller returns everybody else's listings.
func (r *Repository) ListExcludingSeller(ctx context.Context, email string) ([]models.Listing, error) {
	return r.filter(ctx, func(l models.Listing) bool { return l.Seller != email })
}

func (r *Repository) filter(ctx context.Context, keep func(models.Listing) bool) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *Repository) clone() []models.Listing {
	out := make([]models.Listing, len(r.listings), len(r.listings)+1)
	copy(out, r.listings)
	return out
}

func indexOf(ls []models.Listing, id int) int {
	for i, l := range ls {
		if l.ID == id {
			return i
		}
	}
	return -1
}
