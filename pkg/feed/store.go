package feed

import (
	"Recipe-Share/domain"
	"time"
)

// Store holds the accumulated recipes of one feed and its end-of-data flag.
// Pages are trusted to arrive sorted by CreatedAt descending; Store never
// reorders. It is not safe for concurrent use.
type Store struct {
	items      []domain.RecipeSummary
	reachedEnd bool
}

func NewStore() *Store {
	return &Store{}
}

// Reset clears the list and the end-of-data flag.
func (s *Store) Reset() {
	s.items = nil
	s.reachedEnd = false
}

// Append adds page to the tail of the list. An empty page is a no-op.
func (s *Store) Append(page []domain.RecipeSummary) {
	if len(page) == 0 {
		return
	}
	s.items = append(s.items, page...)
}

// Replace overwrites the list with page.
func (s *Store) Replace(page []domain.RecipeSummary) {
	s.items = append([]domain.RecipeSummary(nil), page...)
}

// Cursor returns the CreatedAt of the last recipe, the exclusive bound for the
// next page request.
func (s *Store) Cursor() (time.Time, error) {
	if len(s.items) == 0 {
		return time.Time{}, domain.ErrEmptyFeed
	}
	return s.items[len(s.items)-1].CreatedAt, nil
}

func (s *Store) MarkEndOfData(isEnd bool) {
	s.reachedEnd = isEnd
}

func (s *Store) ReachedEnd() bool {
	return s.reachedEnd
}

// ToggleFavouriteAt flips IsFavourite of the recipe at index in place.
func (s *Store) ToggleFavouriteAt(index int) error {
	if index < 0 || index >= len(s.items) {
		return domain.ErrIndexOutOfRange
	}
	s.items[index].IsFavourite = !s.items[index].IsFavourite
	return nil
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) At(index int) (domain.RecipeSummary, error) {
	if index < 0 || index >= len(s.items) {
		return domain.RecipeSummary{}, domain.ErrIndexOutOfRange
	}
	return s.items[index], nil
}

// Items returns a copy of the list.
func (s *Store) Items() []domain.RecipeSummary {
	return append([]domain.RecipeSummary(nil), s.items...)
}
