package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/domain"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/repositories"
	"github.com/vishalpatil-45/Adventour/storage"
	"github.com/vishalpatil-45/Adventour/utils"
)

const minPasswordLength = 6

// UserService handles accounts: sign-up, log-in, tokens and the profile
type UserService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	Authenticate(ctx context.Context, token string) (*utils.Claims, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id uint, data []byte) (*domain.User, error)
}

type userService struct {
	repo    repositories.UserRepository
	tokens  *utils.TokenManager
	revoked repositories.TokenRepository
	avatars storage.AvatarStore
	now     func() time.Time
}

// NewUserService creates a UserService. revoked may be nil, in which case
// logging out only drops the token client side.
func NewUserService(repo repositories.UserRepository, tokens *utils.TokenManager, revoked repositories.TokenRepository, avatars storage.AvatarStore) UserService {
	if avatars == nil {
		avatars = storage.NewInlineStore()
	}
	return &userService{
		repo:    repo,
		tokens:  tokens,
		revoked: revoked,
		avatars: avatars,
		now:     time.Now,
	}
}

func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	// 1. Passwords
	if req.Password != req.ConfirmPassword {
		return nil, invalidf("Passwords do not match")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalidf("Password must be at least %d characters", minPasswordLength)
	}

	// 2. One account per email
	email := normalizeEmail(req.Email)
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// 3. Store the hash, never the password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  hashed,
		UserType:  domain.UserTypeNormal,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.WithFields(log.Fields{"user_id": user.ID}).Info("account created")

	// 4. Sign-up logs the user in
	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

// Logout revokes the token until it would have expired anyway
func (s *userService) Logout(ctx context.Context, claims *utils.Claims) error {
	if s.revoked == nil || claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

// Authenticate validates a bearer token and checks it was not revoked
func (s *userService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if s.revoked != nil && claims.ID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of req. The full name is split
// on the first space into first and last name.
func (s *userService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if fullName := strings.TrimSpace(req.FullName); fullName != "" {
		user.FirstName, user.LastName = SplitFullName(fullName)
	}

	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}

	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user.Phone = phone
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < minPasswordLength {
			return nil, invalidf("Password must be at least %d characters", minPasswordLength)
		}
		hashed, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, id uint, data []byte) (*domain.User, error) {
	if len(data) == 0 {
		return nil, invalidf("Please choose an image")
	}
	if len(data) > storage.MaxAvatarSize {
		return nil, invalidf("Image must be smaller than 2 MB")
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Save(ctx, id, data)
	if err != nil {
		if errors.Is(err, storage.ErrNotImage) {
			return nil, invalidf("Please choose an image")
		}
		return nil, err
	}

	user.Avatar = url
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: *user}, nil
}

// SplitFullName splits "Ada Lovelace King" into "Ada" and "Lovelace King"
func SplitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
