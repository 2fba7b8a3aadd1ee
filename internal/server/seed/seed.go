// Package seed loads the demo accounts and catalog. Running it again only
// adds what is missing: users are matched by email, items by title.
package seed

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
)

// PerCategory is the number of items generated for each category.
const PerCategory = 20

type Result struct {
	UsersCreated  int
	ItemsCreated  int
	ItemsExisting int
}

// Title is the unique title of the n-th generated item, counting from 1.
func Title(base string, n int) string {
	return fmt.Sprintf("%s - Seed #%d", base, n)
}

// price spreads the i-th item of a category evenly across its template range.
func price(t template, i, count int) float64 {
	frac := float64(i%count) / float64(max(count-1, 1))
	return math.Round((t.MinPrice+(t.MaxPrice-t.MinPrice)*frac)*100) / 100
}

func Run(ctx context.Context, us *users.Service, repo items.Repository, logger logging.Logger) (Result, error) {
	if logger == nil {
		logger = logging.Nop{}
	}
	logger = logger.With("component", "seed")

	var res Result

	sellers := make([]*users.User, len(Accounts))
	for i, a := range Accounts {
		u, created, err := us.EnsureUser(ctx, a.Username, a.Email, a.Password, a.IsAdmin)
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", a.Email, err)
		}
		if created {
			res.UsersCreated++
		}
		sellers[i] = u
	}

	n := 1
	for _, category := range items.Categories {
		tpls := templates[category]
		for i := 0; i < PerCategory; i++ {
			t := tpls[i%len(tpls)]
			title := Title(t.Title, n)
			n++

			exists, err := repo.ExistsByTitle(ctx, title)
			if err != nil {
				return res, fmt.Errorf("seed item %q: %w", title, err)
			}
			if exists {
				res.ItemsExisting++
				continue
			}

			seller := sellers[i%len(sellers)]
			_, err = repo.Create(ctx, &items.Item{
				Title:       title,
				Description: fmt.Sprintf("%s for %s category. High quality and great condition!", t.Title, category),
				Price:       price(t, i, len(tpls)),
				Category:    category,
				Image:       items.CategoryImages[category],
				IsActive:    true,
				SellerID:    seller.ID,
				SellerEmail: seller.Email,
			})
			if err != nil {
				return res, fmt.Errorf("seed item %q: %w", title, err)
			}
			res.ItemsCreated++
		}
	}

	logger.Info(ctx, "seed complete",
		"users_created", res.UsersCreated,
		"items_created", res.ItemsCreated,
		"items_existing", res.ItemsExisting)
	return res, nil
}
