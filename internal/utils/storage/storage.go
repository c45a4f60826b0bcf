package storage

import "context"

// Storage keeps uploaded images. Objects are addressed by key; callers store
// the public link and map it back to a key with GetObjectKeyFromLink.
type Storage interface {
	UploadFile(ctx context.Context, key string, contentType string, data []byte) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetPublicLinkKey(key string) string
	// GetObjectKeyFromLink returns "" when link does not point into this storage.
	GetObjectKeyFromLink(link string) string
}
