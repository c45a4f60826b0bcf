package recipe

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/internal/testutil"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"strings"
	"testing"
	"time"
)

type fakeMedia struct {
	failOn   string
	uploaded []string
	deleted  []string
}

func (m *fakeMedia) UploadImage(_ context.Context, userID string, name string, _ string) (string, error) {
	if m.failOn != "" && strings.HasSuffix(name, m.failOn) {
		return "", domain.ErrInvalidImageFormat
	}
	link := fmt.Sprintf("https://cdn.test/users/%s/%s.jpg", userID, name)
	m.uploaded = append(m.uploaded, link)
	return link, nil
}

func (m *fakeMedia) DeleteImage(_ context.Context, _ string, link string) error {
	if link != "" {
		m.deleted = append(m.deleted, link)
	}
	return nil
}

type fakeFavourites map[string]bool

func (f fakeFavourites) IsFavourited(_ context.Context, viewer, recipeID string) (bool, error) {
	return f[viewer+"/"+recipeID], nil
}

type authorRepo struct {
	db *gorm.DB
}

func (a authorRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	if err := a.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

type fixture struct {
	db    *gorm.DB
	repo  RecipeRepository
	media *fakeMedia
	favs  fakeFavourites
	svc   RecipeService
	alice entities.User
	bob   entities.User
	now   time.Time
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:    db,
		repo:  NewRecipeRepository(db),
		media: &fakeMedia{},
		favs:  fakeFavourites{},
		alice: entities.User{Username: "alice", Email: "alice@example.com", Password: "x", PhotoURL: "https://cdn.test/alice.jpg"},
		bob:   entities.User{Username: "bob", Email: "bob@example.com", Password: "x"},
		now:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		ctx:   context.Background(),
	}
	require.NoError(t, db.Create(&f.alice).Error)
	require.NoError(t, db.Create(&f.bob).Error)
	f.svc = NewRecipeService(f.repo, authorRepo{db: db}, f.media, f.favs)
	return f
}

// seed stores a recipe by author created minutesAgo before f.now.
func (f *fixture) seed(t *testing.T, author entities.User, title string, minutesAgo int) entities.Recipe {
	t.Helper()
	r := entities.Recipe{
		UserID:    author.ID,
		Author:    author.Username,
		Title:     title,
		Timestamp: entities.Timestamp{CreatedAt: f.now.Add(-time.Duration(minutesAgo) * time.Minute)},
	}
	require.NoError(t, f.repo.CreateRecipe(f.ctx, &r))
	return r
}

func titles(page []domain.RecipeSummary) []string {
	out := make([]string, len(page))
	for i, r := range page {
		out[i] = r.Title
	}
	return out
}

func TestRecipeService_FetchRecipePage(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.alice, "a1", 5)
	f.seed(t, f.bob, "b1", 4)
	f.seed(t, f.alice, "a2", 3)
	f.seed(t, f.bob, "b2", 2)
	f.seed(t, f.alice, "a3", 1)

	t.Run("newest first", func(t *testing.T) {
		page, err := f.svc.FetchRecipePage(f.ctx, "", nil, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a3", "b2", "a2"}, titles(page))
	})

	t.Run("cursor is exclusive", func(t *testing.T) {
		first, err := f.svc.FetchRecipePage(f.ctx, "", nil, 3)
		require.NoError(t, err)
		cursor := first[len(first)-1].CreatedAt

		next, err := f.svc.FetchRecipePage(f.ctx, "", &cursor, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"b1", "a1"}, titles(next))
	})

	t.Run("author filter", func(t *testing.T) {
		page, err := f.svc.FetchRecipePage(f.ctx, "alice", nil, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"a3", "a2", "a1"}, titles(page))
		for _, r := range page {
			assert.Equal(t, "alice", r.Author)
			assert.False(t, r.IsFavourite)
		}
	})

	t.Run("past the end", func(t *testing.T) {
		cursor := f.now.Add(-time.Hour)
		page, err := f.svc.FetchRecipePage(f.ctx, "", &cursor, 3)
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

func TestRecipeService_CreateAndDetail(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.CreateRecipe(f.ctx, domain.CreateRecipeRequest{
		Title:       "Pancakes",
		Description: "Fluffy",
		Photo:       "data:image/png;base64,AAAA",
		Ingredients: []domain.IngredientRequest{
			{Name: "flour", Quantity: "200g"},
			{Name: "milk", Quantity: "300ml"},
		},
		Steps: []domain.StepRequest{
			{Description: "mix"},
			{Description: "fry", Photo: "data:image/png;base64,AAAA"},
		},
	}, f.alice.ID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
	assert.Len(t, f.media.uploaded, 2)

	f.favs["bob/"+res.ID] = true
	detail, err := f.svc.GetRecipeDetail(f.ctx, res.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", detail.Title)
	assert.Equal(t, "alice", detail.Author)
	assert.Equal(t, f.alice.PhotoURL, detail.AuthorPhotoURL)
	assert.True(t, detail.IsFavourite)
	assert.Equal(t, f.media.uploaded[0], detail.PhotoURL)

	require.Len(t, detail.Ingredients, 2)
	assert.Equal(t, "flour", detail.Ingredients[0].Name)
	assert.Equal(t, 1, detail.Ingredients[0].Position)
	assert.Equal(t, "milk", detail.Ingredients[1].Name)

	require.Len(t, detail.Steps, 2)
	assert.Equal(t, "mix", detail.Steps[0].Description)
	assert.Empty(t, detail.Steps[0].PhotoURL)
	assert.Equal(t, f.media.uploaded[1], detail.Steps[1].PhotoURL)

	t.Run("author never sees own recipe as favourite", func(t *testing.T) {
		f.favs["alice/"+res.ID] = true
		detail, err := f.svc.GetRecipeDetail(f.ctx, res.ID, "alice")
		require.NoError(t, err)
		assert.False(t, detail.IsFavourite)
	})

	t.Run("missing recipe", func(t *testing.T) {
		_, err := f.svc.GetRecipeDetail(f.ctx, uuid.NewString(), "bob")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		_, err = f.svc.FetchIngredients(f.ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		_, err = f.svc.FetchSteps(f.ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRecipeService_CreateRecipeCleansUpOnFailure(t *testing.T) {
	f := newFixture(t)
	f.media.failOn = "steps/2"

	_, err := f.svc.CreateRecipe(f.ctx, domain.CreateRecipeRequest{
		Title:       "Soup",
		Photo:       "data:image/png;base64,AAAA",
		Ingredients: []domain.IngredientRequest{{Name: "water"}},
		Steps: []domain.StepRequest{
			{Description: "boil", Photo: "data:image/png;base64,AAAA"},
			{Description: "serve", Photo: "data:image/png;base64,AAAA"},
		},
	}, f.alice.ID.String())
	assert.True(t, errors.Is(err, domain.ErrInvalidImageFormat))
	assert.ElementsMatch(t, f.media.uploaded, f.media.deleted)

	page, err := f.svc.FetchRecipePage(f.ctx, "", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	f := newFixture(t)
	r := entities.Recipe{
		UserID:   f.alice.ID,
		Author:   "alice",
		Title:    "Salad",
		PhotoURL: "https://cdn.test/users/alice/main.jpg",
		Ingredients: []entities.Ingredient{
			{Position: 1, Name: "lettuce"},
		},
		Steps: []entities.Step{
			{Position: 1, Description: "chop", PhotoURL: "https://cdn.test/users/alice/steps/1.jpg"},
		},
	}
	require.NoError(t, f.repo.CreateRecipe(f.ctx, &r))
	require.NoError(t, f.db.Create(&entities.Favourite{Username: "bob", RecipeID: r.ID}).Error)

	err := f.svc.DeleteRecipe(f.ctx, r.ID.String(), f.bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	require.NoError(t, f.svc.DeleteRecipe(f.ctx, r.ID.String(), f.alice.ID.String()))
	assert.ElementsMatch(t, []string{
		"https://cdn.test/users/alice/main.jpg",
		"https://cdn.test/users/alice/steps/1.jpg",
	}, f.media.deleted)

	_, err = f.svc.GetRecipeDetail(f.ctx, r.ID.String(), "bob")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	for _, model := range []any{&entities.Favourite{}, &entities.Ingredient{}, &entities.Step{}} {
		var count int64
		require.NoError(t, f.db.Model(model).Where("recipe_id = ?", r.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	err = f.svc.DeleteRecipe(f.ctx, r.ID.String(), f.alice.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
