package client_test

import (
	"Recipe-Share/cmd/config"
	"Recipe-Share/domain"
	"Recipe-Share/internal/testutil"
	"Recipe-Share/internal/utils"
	"Recipe-Share/pkg/client"
	"Recipe-Share/pkg/feed"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net"
	"path/filepath"
	"testing"
	"time"
)

func startServer(t *testing.T) string {
	t.Helper()
	conf := &utils.Config{
		JWTSecret:    "secret",
		LogPath:      filepath.Join(t.TempDir(), "app.log"),
		RateLimit:    1000,
		DBTimeZone:   "UTC",
		FeedPageSize: domain.DefaultPageSize,
	}
	app, accessLog, err := config.NewApp(testutil.NewDB(t), conf, testutil.NewMemStorage())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = app.Shutdown()
		_ = accessLog.Close()
	})
	return "http://" + ln.Addr().String()
}

func signUp(t *testing.T, baseURL, username string) *client.Client {
	t.Helper()
	c := client.New(baseURL, client.WithTimeout(5*time.Second))
	_, err := c.CreateAccount(context.Background(), username, username+"@example.com", "password1")
	require.NoError(t, err)
	return c
}

func newRecipe(t *testing.T, title string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       title,
		Photo:       testutil.PNGDataURL(t),
		Ingredients: []domain.IngredientRequest{{Name: "egg", Quantity: "2"}},
		Steps:       []domain.StepRequest{{Description: "whisk"}, {Description: "bake", Photo: testutil.PNGDataURL(t)}},
	}
}

func TestClient(t *testing.T) {
	baseURL := startServer(t)
	ctx := context.Background()

	alice := signUp(t, baseURL, "alice")
	bob := signUp(t, baseURL, "bob")
	require.NoError(t, alice.Ping(ctx))

	t.Run("auth errors map to sentinels", func(t *testing.T) {
		c := client.New(baseURL)
		_, err := c.Authenticate(ctx, "alice@example.com", "nope-nope1")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Nil(t, c.Session())

		_, err = c.CreateAccount(ctx, "alice", "new@example.com", "password1")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)

		var be *domain.BackendError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, 409, be.Status)
		assert.False(t, domain.IsTransient(err))

		res, err := c.Authenticate(ctx, "alice@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "alice", res.Username)
		assert.Equal(t, "alice", c.Session().Username)
	})

	created, err := alice.WriteRecipe(ctx, newRecipe(t, "omelette"))
	require.NoError(t, err)

	t.Run("recipe reads", func(t *testing.T) {
		detail, err := bob.GetRecipeDetail(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "omelette", detail.Title)
		assert.NotEmpty(t, detail.PhotoURL)

		steps, err := bob.FetchSteps(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Empty(t, steps[0].PhotoURL)
		assert.NotEmpty(t, steps[1].PhotoURL)

		ingredients, err := bob.FetchIngredients(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "egg", ingredients[0].Name)

		_, err = bob.GetRecipeDetail(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("favourites", func(t *testing.T) {
		_, err := bob.IsFavourited(ctx, "carol", created.ID)
		assert.ErrorIs(t, err, domain.ErrViewerMismatch)

		require.NoError(t, bob.AddFavourite(ctx, "bob", created.ID))
		fav, err := bob.IsFavourited(ctx, "bob", created.ID)
		require.NoError(t, err)
		assert.True(t, fav)

		err = alice.AddFavourite(ctx, "alice", created.ID)
		assert.ErrorIs(t, err, domain.ErrSelfFavourite)

		favs, err := bob.GetFavourites(ctx, nil, 10)
		require.NoError(t, err)
		require.Len(t, favs.Recipes, 1)

		feedPage, err := bob.FetchFeed(ctx, "", nil, 10)
		require.NoError(t, err)
		require.Len(t, feedPage.Recipes, 1)
		assert.True(t, feedPage.Recipes[0].IsFavourite)

		require.NoError(t, bob.RemoveFavourite(ctx, "bob", created.ID))
		fav, err = bob.IsFavourited(ctx, "bob", created.ID)
		require.NoError(t, err)
		assert.False(t, fav)
	})

	t.Run("images", func(t *testing.T) {
		link, err := bob.UploadImage(ctx, "scratch/one", testutil.PNGDataURL(t))
		require.NoError(t, err)

		err = alice.DeleteImage(ctx, link)
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
		require.NoError(t, bob.DeleteImage(ctx, link))
	})

	t.Run("profile", func(t *testing.T) {
		profile, err := alice.UpdatePhoto(ctx, testutil.PNGDataURL(t))
		require.NoError(t, err)
		assert.Equal(t, profile.PhotoURL, alice.Session().PhotoURL)

		public, err := bob.GetProfile(ctx, "alice")
		require.NoError(t, err)
		assert.EqualValues(t, 1, public.RecipeCount)

		me, err := alice.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", me.Email)
	})

	t.Run("delete", func(t *testing.T) {
		err := bob.DeleteRecipe(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
		require.NoError(t, alice.DeleteRecipe(ctx, created.ID))

		_, err = alice.FetchSteps(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("cancelled context never reaches the server", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := bob.FetchRecipePage(cctx, "", nil, 10)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := client.New("http://"+addr, client.WithTimeout(time.Second))
	_, err = c.FetchRecipePage(context.Background(), "", nil, 10)
	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
}

func TestClient_DrivesFeedController(t *testing.T) {
	baseURL := startServer(t)
	ctx := context.Background()

	alice := signUp(t, baseURL, "alice")
	bob := signUp(t, baseURL, "bob")

	var ids []string
	for _, title := range []string{"r1", "r2", "r3", "r4", "r5"} {
		author := alice
		if title == "r2" || title == "r4" {
			author = bob
		}
		res, err := author.WriteRecipe(ctx, newRecipe(t, title))
		require.NoError(t, err)
		ids = append(ids, res.ID)
	}
	require.NoError(t, alice.AddFavourite(ctx, "alice", ids[3]))

	var loads int
	c := feed.NewController(alice, "alice",
		feed.WithPageSize(2),
		feed.WithOnChange(func(s feed.State) {
			if !s.IsLoading {
				loads++
			}
		}),
	)

	require.NoError(t, c.LoadFirst(ctx, domain.FeedSpec{}))
	for !c.ReachedEnd() {
		require.NoError(t, c.LoadNext(ctx, domain.FeedSpec{}))
	}

	list := c.List()
	require.Len(t, list, 5)
	for i, r := range list {
		assert.Equal(t, ids[len(ids)-1-i], r.ID)
		if i > 0 {
			assert.True(t, list[i-1].CreatedAt.After(r.CreatedAt))
		}
		assert.Equal(t, r.ID == ids[3], r.IsFavourite, r.Title)
	}
	assert.Equal(t, 3, loads)

	// r4 is bob's; toggling removes the favourite on the server.
	idx := 1
	require.Equal(t, ids[3], list[idx].ID)
	require.NoError(t, c.ToggleFavourite(ctx, idx))
	assert.False(t, c.List()[idx].IsFavourite)
	fav, err := alice.IsFavourited(ctx, "alice", ids[3])
	require.NoError(t, err)
	assert.False(t, fav)

	// Own recipes are left alone.
	require.NoError(t, c.ToggleFavourite(ctx, 0))
	assert.False(t, c.List()[0].IsFavourite)

	t.Run("author feed", func(t *testing.T) {
		bc := feed.NewController(bob, "bob", feed.WithPageSize(10))
		require.NoError(t, bc.LoadFirst(ctx, domain.FeedSpec{Author: "bob"}))
		assert.True(t, bc.ReachedEnd())
		require.Len(t, bc.List(), 2)
		for _, r := range bc.List() {
			assert.Equal(t, "bob", r.Author)
			assert.False(t, r.IsFavourite)
		}
	})
}
