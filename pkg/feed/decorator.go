package feed

import (
	"Recipe-Share/domain"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

// FavouriteLookup answers whether viewer has marked recipeID as a favourite.
type FavouriteLookup interface {
	IsFavourited(ctx context.Context, viewer, recipeID string) (bool, error)
}

// Decorator annotates a page of recipes with the viewer's favourite state.
type Decorator struct {
	lookup FavouriteLookup
	limit  int
}

// NewDecorator returns a Decorator issuing at most limit lookups at a time.
// A limit of 0 or less means one lookup per recipe, all at once.
func NewDecorator(lookup FavouriteLookup, limit int) *Decorator {
	return &Decorator{
		lookup: lookup,
		limit:  limit,
	}
}

// Decorate returns a copy of page with IsFavourite set for every recipe and
// returns only once every lookup has finished. Recipes authored by viewer are
// never looked up and are never favourites. A failed lookup leaves that
// recipe as not favourite.
func (d *Decorator) Decorate(ctx context.Context, viewer string, page []domain.RecipeSummary) []domain.RecipeSummary {
	out := make([]domain.RecipeSummary, len(page))
	copy(out, page)

	var grp errgroup.Group
	if d.limit > 0 {
		grp.SetLimit(d.limit)
	}
	for i := range out {
		if out[i].Author == viewer {
			out[i].IsFavourite = false
			continue
		}
		grp.Go(func() error {
			fav, err := d.lookup.IsFavourited(ctx, viewer, out[i].ID)
			if err != nil {
				log.Debugf("feed: favourite lookup for recipe %s failed: %v", out[i].ID, err)
				fav = false
			}
			out[i].IsFavourite = fav
			return nil
		})
	}
	// Lookups never return an error, Wait is only the join.
	_ = grp.Wait()

	return out
}
