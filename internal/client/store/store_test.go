package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func implementations(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": openTestSQLite(t),
	}
}

func TestStore_SetGetRemove(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Get(ctx, KeyCurrentUser)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, KeyCurrentUser, "a@ufl.edu"))
			v, ok, err := s.Get(ctx, KeyCurrentUser)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "a@ufl.edu", v)

			require.NoError(t, s.Set(ctx, KeyCurrentUser, "b@ufl.edu"))
			v, _, err = s.Get(ctx, KeyCurrentUser)
			require.NoError(t, err)
			assert.Equal(t, "b@ufl.edu", v)

			require.NoError(t, s.Remove(ctx, KeyCurrentUser))
			require.NoError(t, s.Remove(ctx, KeyCurrentUser))
			_, ok, err = s.Get(ctx, KeyCurrentUser)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", ""))
			v, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStore_SetMany(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.SetMany(ctx, map[string]string{
				KeyUsers:       `[]`,
				KeyCurrentUser: "a@ufl.edu",
			}))

			users, ok, err := s.Get(ctx, KeyUsers)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[]`, users)

			cur, ok, err := s.Get(ctx, KeyCurrentUser)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "a@ufl.edu", cur)
		})
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "market.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyAccessToken, "tok"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, ok, err := s.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)
}

func TestSQLite_ErrorsAreWrapped(t *testing.T) {
	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	ctx := context.Background()

	_, _, err = s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = s.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set kv[k]")

	err = s.Remove(ctx, "k")
	require.ErrorContains(t, err, "failed to remove kv[k]")

	err = s.SetMany(ctx, map[string]string{"k": "v"})
	require.Error(t, err)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, m.Set(ctx, "k", "v"), context.Canceled)
	assert.Equal(t, 0, m.Len())
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "profile_alice@ufl.edu", ProfileKey("alice@ufl.edu"))
}
