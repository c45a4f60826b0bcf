package user

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		RegisterUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		CheckUser(ctx context.Context, email string, username string) (bool, bool, error)
		UpdatePhoto(ctx context.Context, id string, photoURL string) error
		CountRecipes(ctx context.Context, id string) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// RegisterUser inserts user. A unique index violation, from a registration
// that raced past CheckUser, is reported as the matching conflict error.
func (r *userRepository) RegisterUser(ctx context.Context, user *entities.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	emailTaken, _, checkErr := r.CheckUser(ctx, user.Email, user.Username)
	if checkErr != nil {
		return err
	}
	if emailTaken {
		return domain.ErrEmailAlreadyUsed
	}
	return domain.ErrUsernameTaken
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CheckUser reports whether the email and the username are already taken.
func (r *userRepository) CheckUser(ctx context.Context, email string, username string) (bool, bool, error) {
	var emails, usernames int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Where("email = ?", email).Count(&emails).Error; err != nil {
		return false, false, err
	}
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Where("username = ?", username).Count(&usernames).Error; err != nil {
		return false, false, err
	}
	return emails > 0, usernames > 0, nil
}

// UpdatePhoto sets the user's photo and the author photo of every recipe they
// wrote in one transaction.
func (r *userRepository) UpdatePhoto(ctx context.Context, id string, photoURL string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.User{}).Where("id = ?", id).Update("photo_url", photoURL)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return tx.Model(&entities.Recipe{}).
			Where("user_id = ?", id).
			Update("author_photo_url", photoURL).Error
	})
}

func (r *userRepository) CountRecipes(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
