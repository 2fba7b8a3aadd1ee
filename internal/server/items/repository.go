// Package items stores marketplace items and enforces who may change them.
package items

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("item not found")

type Repository interface {
	// Create inserts it and fills in its ID and CreatedAt.
	Create(ctx context.Context, it *Item) (*Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	// ListActive returns unsold items ordered by ID, seller email included.
	ListActive(ctx context.Context) ([]Item, error)
	// SetActive and Delete return ErrNotFound when no row has the id.
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
