package listings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
)

func desk(price float64) models.Fields {
	return models.Fields{Title: "Desk", Price: price, Category: models.CategoryLiving}
}

func TestLoad_SeedsEmptyStore(t *testing.T) {
	st := store.NewMemory()
	repo := NewRepository(st, nil)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(Seed(), all); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}

	raw, ok, err := st.Get(ctx, store.KeyListings)
	require.NoError(t, err)
	require.True(t, ok, "seed must be persisted")

	var snap snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))
	assert.Equal(t, len(Seed())+1, snap.NextID)
}

func TestLoad_EmptyCatalogIsNotReseeded(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, store.KeyListings, `{"listings":[],"nextId":9}`))

	repo := NewRepository(st, nil)
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	assert.Equal(t, 9, l.ID)
}

func TestCreate_IDsIncreaseAndSellerPartition(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	second, err := repo.Create(ctx, "b@ufl.edu", desk(20))
	require.NoError(t, err)
	third, err := repo.Create(ctx, "a@ufl.edu", desk(30))
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
	assert.False(t, first.IsSold)
	assert.Equal(t, models.DefaultImage, first.Image)

	mine, err := repo.ListBySeller(ctx, "a@ufl.edu")
	require.NoError(t, err)
	others, err := repo.ListExcludingSeller(ctx, "a@ufl.edu")
	require.NoError(t, err)
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)

	assert.Len(t, mine, 2)
	assert.Equal(t, len(all), len(mine)+len(others))
	for _, l := range mine {
		assert.Equal(t, "a@ufl.edu", l.Seller)
	}
	for _, l := range others {
		assert.NotEqual(t, "a@ufl.edu", l.Seller)
	}
}

func TestCreate_RejectsInvalidFields(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	tests := map[string]models.Fields{
		"empty title":      {Price: 1, Category: models.CategorySchool},
		"zero price":       {Title: "x", Category: models.CategorySchool},
		"negative price":   {Title: "x", Price: -1, Category: models.CategorySchool},
		"unknown category": {Title: "x", Price: 1, Category: "Textbooks"},
	}
	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Create(ctx, "a@ufl.edu", f)
			require.ErrorIs(t, err, ErrInvalidListing)
		})
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(Seed()))
}

func TestIDsAreNeverReused(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, l.ID))

	again, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	assert.Greater(t, again.ID, l.ID)
}

func TestUpdate(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	require.NoError(t, repo.MarkSold(ctx, l.ID))

	err = repo.Update(ctx, l.ID, models.Fields{Title: "Standing Desk", Price: 99, Category: models.CategoryLiving, Description: "new"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standing Desk", got.Title)
	assert.Equal(t, 99.0, got.Price)
	assert.Equal(t, "new", got.Description)
	assert.Equal(t, "a@ufl.edu", got.Seller)
	assert.True(t, got.IsSold, "update must not reset the sold flag")

	err = repo.Update(ctx, 999, desk(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkSold_Idempotent(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	require.NoError(t, repo.MarkSold(ctx, 1))
	once, err := repo.ListAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.MarkSold(ctx, 1))
	twice, err := repo.ListAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(once, twice))
	assert.True(t, once[0].IsSold)

	assert.ErrorIs(t, repo.MarkSold(ctx, 999), ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository(store.NewMemory(), nil)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))
	_, err := repo.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, 2)
	assert.True(t, errors.Is(err, ErrNotFound))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(Seed())-1)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[1].ID, "order of the remaining listings is preserved")
}

func TestMutationsSurviveRestart(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	repo := NewRepository(st, nil)
	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	require.NoError(t, repo.MarkSold(ctx, l.ID))

	restarted := NewRepository(st, nil)
	got, err := restarted.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSold)
}

func TestRefresh_PicksUpExternalWrites(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	a := NewRepository(st, nil)
	b := NewRepository(st, nil)
	require.NoError(t, a.Load(ctx))
	require.NoError(t, b.Load(ctx))

	created, err := a.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)

	_, err = b.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound, "b still holds its old copy")

	require.NoError(t, b.Refresh(ctx))
	_, err = b.Get(ctx, created.ID)
	require.NoError(t, err)
}

type failingStore struct {
	store.Store
	failSet bool
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func TestCreate_PersistFailureLeavesStateUntouched(t *testing.T) {
	fs := &failingStore{Store: store.NewMemory()}
	repo := NewRepository(fs, nil)
	ctx := context.Background()
	require.NoError(t, repo.Load(ctx))

	fs.failSet = true
	_, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.ErrorContains(t, err, "disk full")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(Seed()))

	fs.failSet = false
	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	assert.Equal(t, len(Seed())+1, l.ID)
}

func TestLoad_CounterBehindIsRepaired(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, store.KeyListings,
		`{"listings":[{"id":5,"title":"x","price":1,"category":"school","seller":"a@ufl.edu"}],"nextId":2}`))

	repo := NewRepository(st, nil)
	l, err := repo.Create(ctx, "a@ufl.edu", desk(10))
	require.NoError(t, err)
	assert.Equal(t, 6, l.ID)
}
