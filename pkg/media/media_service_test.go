package media

import (
	"Recipe-Share/domain"
	"bytes"
	"context"
	"encoding/base64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/png"
	"strings"
	"testing"
)

type memStorage struct {
	objects map[string][]byte
}

func (m *memStorage) UploadFile(_ context.Context, key string, _ string, data []byte) (string, error) {
	m.objects[key] = data
	return key, nil
}

func (m *memStorage) DeleteFile(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memStorage) GetPublicLinkKey(key string) string {
	return "https://cdn.test/" + key
}

func (m *memStorage) GetObjectKeyFromLink(link string) string {
	key, ok := strings.CutPrefix(link, "https://cdn.test/")
	if !ok {
		return ""
	}
	return key
}

func photo(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestMediaService(t *testing.T) {
	store := &memStorage{objects: map[string][]byte{}}
	svc := NewMediaService(store)
	ctx := context.Background()

	link, err := svc.UploadImage(ctx, "u1", "recipes/r1/main.png", photo(t))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/users/u1/recipes/r1/main.jpg", link)
	require.Contains(t, store.objects, "users/u1/recipes/r1/main.jpg")

	t.Run("path traversal stays in the user folder", func(t *testing.T) {
		link, err := svc.UploadImage(ctx, "u1", "../../u2/profile", photo(t))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/users/u1/u2/profile.jpg", link)
	})

	t.Run("other users cannot delete", func(t *testing.T) {
		err := svc.DeleteImage(ctx, "u2", link)
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
		assert.Contains(t, store.objects, "users/u1/recipes/r1/main.jpg")
	})

	t.Run("foreign links are rejected", func(t *testing.T) {
		err := svc.DeleteImage(ctx, "u1", "https://elsewhere.test/users/u1/x.jpg")
		assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteImage(ctx, "u1", link))
		assert.NotContains(t, store.objects, "users/u1/recipes/r1/main.jpg")
	})

	t.Run("empty link is ignored", func(t *testing.T) {
		assert.NoError(t, svc.DeleteImage(ctx, "u1", ""))
	})

	t.Run("invalid data URL", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, "u1", "x", "data:text/plain;base64,AAAA")
		assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	})
}
