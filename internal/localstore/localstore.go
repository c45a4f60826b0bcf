// Package localstore keeps the CLI's state between runs in a small SQLite
// key-value table: the signed in session and an unsent recipe draft.
package localstore

import (
	"Recipe-Share/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"os"
	"path/filepath"
	"time"
)

const (
	keyToken    = "token"
	keyUserID   = "user_id"
	keyUsername = "username"
	keyPhotoRef = "photo_ref"
	keyDraft    = "pending_recipe"
)

type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "kv"
}

type Store struct {
	db *gorm.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("localstore: creating directory: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("localstore: opening %s: %w", path, err)
	}
	store := &Store{db: db}
	if err := db.AutoMigrate(&entry{}); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("localstore: migrating: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var e entry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	return s.putAll(ctx, map[string]string{key: value})
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Where("key IN ?", keys).Delete(&entry{}).Error
}

func (s *Store) putAll(ctx context.Context, values map[string]string) error {
	entries := make([]entry, 0, len(values))
	for k, v := range values {
		entries = append(entries, entry{Key: k, Value: v})
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entries).Error
}

// SaveSession caches the signed in user.
func (s *Store) SaveSession(ctx context.Context, session *domain.AuthResponse) error {
	return s.putAll(ctx, map[string]string{
		keyToken:    session.Token,
		keyUserID:   session.UserID,
		keyUsername: session.Username,
		keyPhotoRef: session.PhotoURL,
	})
}

// LoadSession returns the cached session, or nil when nobody is signed in.
func (s *Store) LoadSession(ctx context.Context) (*domain.AuthResponse, error) {
	token, ok, err := s.Get(ctx, keyToken)
	if err != nil || !ok || token == "" {
		return nil, err
	}
	session := &domain.AuthResponse{Token: token}
	for key, dst := range map[string]*string{
		keyUserID:   &session.UserID,
		keyUsername: &session.Username,
		keyPhotoRef: &session.PhotoURL,
	} {
		if *dst, _, err = s.Get(ctx, key); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.Delete(ctx, keyToken, keyUserID, keyUsername, keyPhotoRef)
}

// SaveDraft keeps a recipe whose upload failed so it can be retried.
func (s *Store) SaveDraft(ctx context.Context, draft domain.CreateRecipeRequest) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.Put(ctx, keyDraft, string(b))
}

// LoadDraft returns the retained draft, or nil when there is none.
func (s *Store) LoadDraft(ctx context.Context) (*domain.CreateRecipeRequest, error) {
	raw, ok, err := s.Get(ctx, keyDraft)
	if err != nil || !ok {
		return nil, err
	}
	var draft domain.CreateRecipeRequest
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("localstore: decoding draft: %w", err)
	}
	return &draft, nil
}

func (s *Store) ClearDraft(ctx context.Context) error {
	return s.Delete(ctx, keyDraft)
}
