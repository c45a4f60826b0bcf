package storage

import (
	gcs "cloud.google.com/go/storage"
	"context"
	"errors"
	"fmt"
	"strings"
)

type GCS struct {
	client *gcs.Client
	bucket string
}

// NewGCS uses application default credentials.
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: creating gcs client: %w", err)
	}
	return &GCS{
		client: client,
		bucket: bucket,
	}, nil
}

func (g *GCS) UploadFile(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: writing %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: closing writer for %s: %w", key, err)
	}
	return key, nil
}

// DeleteFile treats an already missing object as deleted.
func (g *GCS) DeleteFile(ctx context.Context, key string) error {
	err := g.client.Bucket(g.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("storage: deleting %s: %w", key, err)
	}
	return nil
}

func (g *GCS) GetPublicLinkKey(key string) string {
	return g.linkPrefix() + key
}

func (g *GCS) GetObjectKeyFromLink(link string) string {
	key, ok := strings.CutPrefix(link, g.linkPrefix())
	if !ok {
		return ""
	}
	return key
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) linkPrefix() string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/", g.bucket)
}
