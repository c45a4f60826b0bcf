package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "user logged in successfully"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain a letter and a digit")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,username"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,password"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token    string `json:"token"`
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		PhotoURL string `json:"photo_url,omitempty"`
	}

	UserProfile struct {
		ID          string    `json:"id"`
		Username    string    `json:"username"`
		Email       string    `json:"email,omitempty"`
		PhotoURL    string    `json:"photo_url,omitempty"`
		RecipeCount int64     `json:"recipe_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	UpdateProfileRequest struct {
		// Photo is an image data URL, e.g. data:image/jpeg;base64,....
		Photo string `json:"photo" validate:"required,startswith=data:image/"`
	}
)
