package user

import (
	"Recipe-Share/domain"
	"Recipe-Share/entities"
	"Recipe-Share/internal/utils"
	"Recipe-Share/internal/utils/mailing"
	"Recipe-Share/pkg/jwt"
	"Recipe-Share/pkg/media"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserProfile, error)
		GetProfile(ctx context.Context, username string) (*domain.UserProfile, error)
		UpdatePhoto(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		media          media.MediaService
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	media media.MediaService,
	mailer mailing.Mailer,
	appURL string,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		media:          media,
		mailer:         mailer,
		appURL:         appURL,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsStrongPassword(req.Password) {
		return nil, domain.ErrWeakPassword
	}

	emailTaken, usernameTaken, err := s.userRepository.CheckUser(ctx, email, req.Username)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, domain.ErrEmailAlreadyUsed
	}
	if usernameTaken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user: hashing password: %w", err)
	}

	user := entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepository.RegisterUser(ctx, &user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendMail(user.Email, "Welcome to Recipe Share", mailing.WelcomeBody(user.Username, s.appURL)); err != nil {
		log.Warnf("user: sending welcome mail to %s: %v", user.Email, err)
	}

	return s.authResponse(&user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *userService) authResponse(user *entities.User) (*domain.AuthResponse, error) {
	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Username)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
		PhotoURL: user.PhotoURL,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, user, true)
}

// GetProfile is the public profile of username, without the email address.
func (s *userService) GetProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, user, false)
}

func (s *userService) profile(ctx context.Context, user *entities.User, withEmail bool) (*domain.UserProfile, error) {
	count, err := s.userRepository.CountRecipes(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}
	profile := &domain.UserProfile{
		ID:          user.ID.String(),
		Username:    user.Username,
		PhotoURL:    user.PhotoURL,
		RecipeCount: count,
		CreatedAt:   user.CreatedAt,
	}
	if withEmail {
		profile.Email = user.Email
	}
	return profile, nil
}

// UpdatePhoto replaces the user's profile photo. The previous photo is deleted
// once the new one is in place.
func (s *userService) UpdatePhoto(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	link, err := s.media.UploadImage(ctx, userID, "profile/"+uuid.NewString(), req.Photo)
	if err != nil {
		return nil, err
	}
	if err := s.userRepository.UpdatePhoto(ctx, userID, link); err != nil {
		if delErr := s.media.DeleteImage(context.WithoutCancel(ctx), userID, link); delErr != nil {
			log.Warnf("user: removing orphaned photo %s: %v", link, delErr)
		}
		return nil, fmt.Errorf("user: updating photo: %w", err)
	}

	if err := s.media.DeleteImage(ctx, userID, user.PhotoURL); err != nil {
		log.Warnf("user: deleting previous photo %s: %v", user.PhotoURL, err)
	}

	user.PhotoURL = link
	return s.profile(ctx, user, true)
}
