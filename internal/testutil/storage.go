package testutil

import (
	"context"
	"strings"
	"sync"
)

const memLinkPrefix = "https://cdn.test/"

// MemStorage is an in-memory image storage.
type MemStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemStorage() *MemStorage {
	return &MemStorage{objects: map[string][]byte{}}
}

func (m *MemStorage) UploadFile(_ context.Context, key string, _ string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return key, nil
}

func (m *MemStorage) DeleteFile(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemStorage) GetPublicLinkKey(key string) string {
	return memLinkPrefix + key
}

func (m *MemStorage) GetObjectKeyFromLink(link string) string {
	key, ok := strings.CutPrefix(link, memLinkPrefix)
	if !ok {
		return ""
	}
	return key
}

func (m *MemStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *MemStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
