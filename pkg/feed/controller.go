package feed

import (
	"Recipe-Share/domain"
	"context"
	"fmt"
	"sync"
	"time"
)

type (
	// PageSource fetches recipes ordered by CreatedAt descending. An empty
	// author selects every author; a nil after starts from the newest recipe.
	PageSource interface {
		FetchRecipePage(ctx context.Context, author string, after *time.Time, limit int) ([]domain.RecipeSummary, error)
	}

	FavouriteWriter interface {
		AddFavourite(ctx context.Context, viewer, recipeID string) error
		RemoveFavourite(ctx context.Context, viewer, recipeID string) error
	}

	// Backend is everything the controller needs from the backend service.
	Backend interface {
		PageSource
		FavouriteLookup
		FavouriteWriter
	}

	// State is a snapshot of a feed as seen by its presentation layer.
	State struct {
		IsLoading  bool
		ReachedEnd bool
		List       []domain.RecipeSummary
	}

	Option func(*Controller)
)

// WithPageSize sets the number of recipes requested per page.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithFanOutLimit bounds concurrent favourite lookups per page.
func WithFanOutLimit(n int) Option {
	return func(c *Controller) {
		c.fanOut = n
	}
}

// WithOnChange registers fn to receive a snapshot every time the state changes.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller loads one feed page by page for a single viewer and toggles
// favourites on it. Overlapping loads on the same Controller are not
// prevented; callers issue one load at a time.
type Controller struct {
	backend   Backend
	decorator *Decorator
	viewer    string
	pageSize  int
	fanOut    int
	onChange  func(State)

	mu      sync.RWMutex
	store   *Store
	loading bool
}

func NewController(backend Backend, viewer string, opts ...Option) *Controller {
	c := &Controller{
		backend:  backend,
		viewer:   viewer,
		pageSize: domain.DefaultPageSize,
		store:    NewStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.decorator = NewDecorator(backend, c.fanOut)
	return c
}

// LoadFirst clears the feed and loads its first page.
func (c *Controller) LoadFirst(ctx context.Context, spec domain.FeedSpec) error {
	c.mu.Lock()
	c.store.Reset()
	c.loading = true
	c.mu.Unlock()
	c.notify()

	page, err := c.backend.FetchRecipePage(ctx, spec.Author, nil, c.pageSize)
	if err != nil {
		c.stopLoading()
		return fmt.Errorf("feed: loading first page: %w", err)
	}
	return c.publish(ctx, page, c.store.Replace)
}

// LoadNext loads the page after the last loaded recipe. It fails with
// domain.ErrEmptyFeed when nothing is loaded and does nothing once the end of
// the feed has been reached.
func (c *Controller) LoadNext(ctx context.Context, spec domain.FeedSpec) error {
	c.mu.Lock()
	cursor, err := c.store.Cursor()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if c.store.ReachedEnd() {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.mu.Unlock()
	c.notify()

	page, err := c.backend.FetchRecipePage(ctx, spec.Author, &cursor, c.pageSize)
	if err != nil {
		c.stopLoading()
		return fmt.Errorf("feed: loading next page: %w", err)
	}
	return c.publish(ctx, page, c.store.Append)
}

// publish decorates page and hands it to apply. A page whose context was
// cancelled meanwhile is dropped.
func (c *Controller) publish(ctx context.Context, page []domain.RecipeSummary, apply func([]domain.RecipeSummary)) error {
	decorated := c.decorator.Decorate(ctx, c.viewer, page)
	if err := ctx.Err(); err != nil {
		c.stopLoading()
		return err
	}

	c.mu.Lock()
	apply(decorated)
	// Only a short page ends the feed; a full last page costs one more request.
	c.store.MarkEndOfData(len(page) < c.pageSize)
	c.loading = false
	c.mu.Unlock()
	c.notify()
	return nil
}

// ToggleFavourite adds or removes the recipe at index from the viewer's
// favourites. The viewer's own recipes are left alone. The local flag flips
// only after the backend accepted the change.
func (c *Controller) ToggleFavourite(ctx context.Context, index int) error {
	c.mu.RLock()
	recipe, err := c.store.At(index)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	if recipe.Author == c.viewer {
		return nil
	}

	if recipe.IsFavourite {
		err = c.backend.RemoveFavourite(ctx, c.viewer, recipe.ID)
	} else {
		err = c.backend.AddFavourite(ctx, c.viewer, recipe.ID)
	}
	if err != nil {
		return fmt.Errorf("feed: toggling favourite of recipe %s: %w", recipe.ID, err)
	}

	c.mu.Lock()
	// The feed may have been reloaded while the backend call was in flight.
	current, err := c.store.At(index)
	if err != nil || !current.Equal(recipe) {
		c.mu.Unlock()
		return nil
	}
	_ = c.store.ToggleFavouriteAt(index)
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *Controller) Viewer() string {
	return c.viewer
}

func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Controller) ReachedEnd() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.ReachedEnd()
}

// List returns a copy of the loaded recipes.
func (c *Controller) List() []domain.RecipeSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Items()
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		IsLoading:  c.loading,
		ReachedEnd: c.store.ReachedEnd(),
		List:       c.store.Items(),
	}
}

func (c *Controller) stopLoading() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}
