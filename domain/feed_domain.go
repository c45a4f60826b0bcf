package domain

import (
	"errors"
	"time"
)

const (
	// DefaultPageSize is the page size of general feeds.
	DefaultPageSize = 10
	// MaxPageSize bounds the limit a caller may request from the backend.
	MaxPageSize = 50
)

var (
	MessageSuccessGetFeed = "success get feed"
	MessageFailedGetFeed  = "failed to get feed"

	// ErrEmptyFeed means the caller tried to paginate a feed with nothing loaded.
	ErrEmptyFeed = errors.New("feed is empty")
	// ErrIndexOutOfRange means the caller referenced a position outside the feed.
	ErrIndexOutOfRange = errors.New("feed index out of range")
)

type (
	// RecipeSummary is one feed entry. IsFavourite is computed for the viewer
	// on every fetch and is never written back to the backend.
	RecipeSummary struct {
		ID             string    `json:"id"`
		Author         string    `json:"author"`
		AuthorPhotoURL string    `json:"author_photo_url,omitempty"`
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		PhotoURL       string    `json:"photo_url,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		IsFavourite    bool      `json:"is_favourite"`
	}

	// FeedSpec selects a feed. An empty Author is the global home feed.
	FeedSpec struct {
		Author string
	}

	FeedPageRequest struct {
		Author string `query:"author" validate:"omitempty,username"`
		// After is an RFC 3339 timestamp; only recipes created strictly before it are returned.
		After string `query:"after"`
		Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
	}

	FeedPageResponse struct {
		Recipes    []RecipeSummary `json:"recipes"`
		ReachedEnd bool            `json:"reached_end"`
		NextCursor *time.Time      `json:"next_cursor,omitempty"`
	}
)

// Equal reports whether r and o are the same recipe.
func (r RecipeSummary) Equal(o RecipeSummary) bool {
	return r.ID == o.ID
}

// ParseCursor parses an optional RFC 3339 cursor. An empty string is no cursor.
func ParseCursor(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &t, nil
}

// FormatCursor is the inverse of ParseCursor.
func FormatCursor(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
