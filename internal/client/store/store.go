// Package store is the client's durable key/value substrate. Every other
// client component persists its state as opaque string values under the
// stable keys declared here.
package store

import "context"

// Stable keys. Changing any of them orphans data written by earlier builds.
const (
	KeyCurrentUser = "mock_current_user"
	KeyAccessToken = "access_token"
	KeyUsers       = "mock_users"
	KeyListings    = "gator_listings"

	profileKeyPrefix = "profile_"
)

// ProfileKey returns the key holding the profile of the given user.
func ProfileKey(email string) string {
	return profileKeyPrefix + email
}

// Store is a string-keyed, string-valued durable map.
//
// Get reports ok=false for absent keys. Remove is idempotent. SetMany writes
// all pairs atomically: either every key is updated or none is.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	SetMany(ctx context.Context, values map[string]string) error
}
