// Package profiles stores the per-user profile document (name, phone, bio).
package profiles

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
)

type Store struct {
	kv store.Store
}

func NewStore(kv store.Store) *Store {
	return &Store{kv: kv}
}

// Get returns the saved profile, or a default one when nothing was saved.
// The bool reports whether a saved profile exists.
func (s *Store) Get(ctx context.Context, email string) (models.Profile, bool, error) {
	raw, ok, err := s.kv.Get(ctx, store.ProfileKey(email))
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("read profile: %w", err)
	}
	if !ok {
		return models.Profile{Name: models.DefaultProfileName}, false, nil
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.Profile{}, false, fmt.Errorf("decode profile: %w", err)
	}
	if p.Name == "" {
		p.Name = models.DefaultProfileName
	}
	return p, true, nil
}

// Save overwrites the whole profile of email.
func (s *Store) Save(ctx context.Context, email string, p models.Profile) error {
	if err := (forms.Profile{Name: p.Name, Phone: p.Phone, Bio: p.Bio}).Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Set(ctx, store.ProfileKey(email), string(data)); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}
