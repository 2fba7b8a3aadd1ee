package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gatormarket/internal/server/config"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
)

func setup(t *testing.T) (*users.Service, *items.MemoryRepository) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	us := users.NewService(users.NewMemoryRepository(), cfg, nil).WithHashCost(bcrypt.MinCost)
	return us, items.NewMemoryRepository()
}

func TestRun_CreatesCatalog(t *testing.T) {
	us, repo := setup(t)
	ctx := context.Background()

	res, err := Run(ctx, us, repo, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{UsersCreated: 5, ItemsCreated: 100}, res)

	all, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, all, 100)

	perCategory := map[string]int{}
	perSeller := map[string]int{}
	for _, it := range all {
		perCategory[it.Category]++
		perSeller[it.SellerEmail]++
		assert.Equal(t, items.CategoryImages[it.Category], it.Image)
	}
	for _, c := range items.Categories {
		assert.Equal(t, PerCategory, perCategory[c], c)
	}
	for _, a := range Accounts {
		assert.Equal(t, 20, perSeller[a.Email], a.Email)
	}

	first := all[0]
	assert.Equal(t, "Intro to CS Textbook - Seed #1", first.Title)
	assert.Equal(t, 45.0, first.Price)
	assert.Equal(t, "admin1@ufl.edu", first.SellerEmail)
	assert.Equal(t, "Intro to CS Textbook for school category. High quality and great condition!", first.Description)

	last := all[99]
	assert.Equal(t, "Social Event Pass - Seed #100", last.Title)
	assert.Equal(t, 25.0, last.Price)
	assert.Equal(t, "seed_owner@ufl.edu", last.SellerEmail)
}

func TestRun_Idempotent(t *testing.T) {
	us, repo := setup(t)
	ctx := context.Background()

	_, err := Run(ctx, us, repo, nil)
	require.NoError(t, err)

	res, err := Run(ctx, us, repo, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{ItemsExisting: 100}, res)

	all, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 100)
}

func TestSeedAccountsCanLogIn(t *testing.T) {
	us, repo := setup(t)
	ctx := context.Background()

	_, err := Run(ctx, us, repo, nil)
	require.NoError(t, err)

	_, u, err := us.Login(ctx, "admin2@ufl.edu", "Passw0rd2!")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	_, u, err = us.Login(ctx, "seed_owner", "SeedPass!")
	require.NoError(t, err)
	assert.False(t, u.IsAdmin)
}

func TestPrice(t *testing.T) {
	tpl := template{Title: "Desk Lamp", MinPrice: 15, MaxPrice: 35}
	assert.Equal(t, 15.0, price(tpl, 0, 20))
	assert.Equal(t, 35.0, price(tpl, 19, 20))
	assert.Equal(t, 16.05, price(tpl, 1, 20))
	assert.Equal(t, 15.0, price(tpl, 0, 1))
}
