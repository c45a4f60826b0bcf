package media

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/utils/imaging"
	"Recipe-Share/internal/utils/storage"
	"context"
	"path"
	"strings"
)

type (
	// MediaService stores user images. Every object lives under
	// users/<user id>/ and only that user may delete it.
	MediaService interface {
		UploadImage(ctx context.Context, userID string, name string, dataURL string) (string, error)
		DeleteImage(ctx context.Context, userID string, link string) error
	}

	mediaService struct {
		storage storage.Storage
	}
)

func NewMediaService(storage storage.Storage) MediaService {
	return &mediaService{storage: storage}
}

// UploadImage normalises the image in dataURL to JPEG and stores it at name
// inside the user's folder. It returns the public link.
func (s *mediaService) UploadImage(ctx context.Context, userID string, name string, dataURL string) (string, error) {
	key, err := objectKey(userID, name)
	if err != nil {
		return "", err
	}

	_, raw, err := imaging.ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}
	normalized, err := imaging.Normalize(raw)
	if err != nil {
		return "", err
	}

	key, err = s.storage.UploadFile(ctx, key, imaging.ContentType, normalized)
	if err != nil {
		return "", err
	}
	return s.storage.GetPublicLinkKey(key), nil
}

// DeleteImage removes the image behind link. Empty links are ignored.
func (s *mediaService) DeleteImage(ctx context.Context, userID string, link string) error {
	if link == "" {
		return nil
	}
	key := s.storage.GetObjectKeyFromLink(link)
	if key == "" || !strings.HasPrefix(key, userPrefix(userID)) {
		return domain.ErrUserNotAllowed
	}
	return s.storage.DeleteFile(ctx, key)
}

func userPrefix(userID string) string {
	return "users/" + userID + "/"
}

// objectKey places name under the user's folder with a .jpg extension.
func objectKey(userID string, name string) (string, error) {
	if userID == "" {
		return "", domain.ErrUserNotAllowed
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" || cleaned == "." {
		return "", domain.ErrInvalidImageFormat
	}
	cleaned = strings.TrimSuffix(cleaned, path.Ext(cleaned)) + ".jpg"
	return userPrefix(userID) + cleaned, nil
}
