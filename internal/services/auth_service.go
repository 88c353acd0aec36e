package services

import (
	"errors"
	"fmt"

	"github.com/localsearch/backend/internal/dto"
	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService orchestrates registration, login, profile lookup and password
// changes against the credential store and the token service.
type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new enabled user. The exists checks are an early exit;
// the unique indexes on username and email are authoritative, so a
// constraint violation on insert maps back to the same duplicate errors.
func (s *AuthService) Register(req *dto.RegisterRequest) (uint, error) {
	if !req.Role.Valid() {
		return 0, ErrInvalidRole
	}

	if taken, err := s.users.ExistsByUsername(req.Username); err != nil {
		return 0, fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		return 0, ErrUsernameTaken
	}

	if taken, err := s.users.ExistsByEmail(req.Email); err != nil {
		return 0, fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		return 0, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		Enabled:  true,
	}

	if err := s.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race against a concurrent registration.
			if taken, _ := s.users.ExistsByUsername(req.Username); taken {
				return 0, ErrUsernameTaken
			}
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}

// Login verifies the credentials and issues a token carrying the user's
// role and id. Unknown username and wrong password are indistinguishable.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// CurrentUser resolves the public profile for a token subject.
func (s *AuthService) CurrentUser(username string) (*dto.UserInfoResponse, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &dto.UserInfoResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Enabled:  user.Enabled,
	}, nil
}

// ChangePassword re-hashes and persists the new password. Tokens issued
// before the change stay valid until they expire.
func (s *AuthService) ChangePassword(username string, req *dto.ChangePasswordRequest) error {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hash)
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
