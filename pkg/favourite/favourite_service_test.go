package favourite

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/internal/testutil"
	"Recipe-Share/pkg/recipe"
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestFavouriteService(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	recipes := recipe.NewRecipeRepository(db)
	repo := NewFavouriteRepository(db)
	svc := NewFavouriteService(repo, recipes)

	alice := entities.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&alice).Error)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		r := entities.Recipe{
			UserID:    alice.ID,
			Author:    "alice",
			Title:     []string{"soup", "salad", "stew"}[i],
			Timestamp: entities.Timestamp{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
		}
		require.NoError(t, recipes.CreateRecipe(ctx, &r))
		ids = append(ids, r.ID.String())
	}

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, svc.AddFavourite(ctx, "bob", ids[0]))
		require.NoError(t, svc.AddFavourite(ctx, "bob", ids[0]))

		var count int64
		require.NoError(t, db.Model(&entities.Favourite{}).Where("username = ?", "bob").Count(&count).Error)
		assert.EqualValues(t, 1, count)

		fav, err := svc.IsFavourited(ctx, "bob", ids[0])
		require.NoError(t, err)
		assert.True(t, fav)

		fav, err = svc.IsFavourited(ctx, "carol", ids[0])
		require.NoError(t, err)
		assert.False(t, fav)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, svc.RemoveFavourite(ctx, "bob", ids[0]))
		fav, err := svc.IsFavourited(ctx, "bob", ids[0])
		require.NoError(t, err)
		assert.False(t, fav)

		// Removing an absent mark is not an error.
		assert.NoError(t, svc.RemoveFavourite(ctx, "bob", ids[0]))
	})

	t.Run("own recipe", func(t *testing.T) {
		err := svc.AddFavourite(ctx, "alice", ids[1])
		assert.ErrorIs(t, err, domain.ErrSelfFavourite)
	})

	t.Run("missing recipe", func(t *testing.T) {
		err := svc.AddFavourite(ctx, "bob", uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("favourites page", func(t *testing.T) {
		for _, id := range ids {
			require.NoError(t, svc.AddFavourite(ctx, "dave", id))
			// Favourites are ordered by when they were marked.
			time.Sleep(5 * time.Millisecond)
		}

		first, err := svc.GetFavourites(ctx, "dave", nil, 2)
		require.NoError(t, err)
		require.Len(t, first.Recipes, 2)
		assert.Equal(t, "stew", first.Recipes[0].Title)
		assert.Equal(t, "salad", first.Recipes[1].Title)
		assert.True(t, first.Recipes[0].IsFavourite)
		require.NotNil(t, first.NextCursor)

		rest, err := svc.GetFavourites(ctx, "dave", first.NextCursor, 2)
		require.NoError(t, err)
		require.Len(t, rest.Recipes, 1)
		assert.Equal(t, "soup", rest.Recipes[0].Title)
		assert.Nil(t, rest.NextCursor)
	})

	t.Run("favourites removed with the recipe", func(t *testing.T) {
		require.NoError(t, recipes.DeleteRecipe(ctx, ids[2]))
		fav, err := svc.IsFavourited(ctx, "dave", ids[2])
		require.NoError(t, err)
		assert.False(t, fav)
	})
}
