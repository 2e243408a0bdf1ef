package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication, profile
// provisioning and the login log.
type AuthService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	mqClient    *rabbitmq.Client // may be nil; publishing is then skipped
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, mqClient *rabbitmq.Client, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		mqClient:    mqClient,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser registers a new user, hashes their password, and saves them
// to the database.
func (s *AuthService) RegisterUser(user *models.User) error {
	// Check if username or email already exists
	if existingUser, err := s.userRepo.GetByUsername(user.Username); err == nil && existingUser != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Do not reveal whether the username exists
			return "", fmt.Errorf("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// CreateProfile provisions a profile for an authenticated identity.
// Idempotent: if the identity is already provisioned the existing profile ID
// is returned and nothing is written.
func (s *AuthService) CreateProfile(userID string, role models.Role) (string, error) {
	if userID == "" {
		return "", ErrNotAuthenticated
	}

	existing, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	now := time.Now()
	profile := &models.UserProfile{
		UserID:    userID,
		Role:      role,
		LastLogin: now,
	}
	if err := s.profileRepo.CreateWithLogin(profile); err != nil {
		return "", err
	}
	s.publishLogin(userID, role.String(), now)
	return profile.ID, nil
}

// UpdateLastLogin records a login for the caller: last-login patch plus one
// login-log row. Silent for anonymous or unprovisioned callers.
func (s *AuthService) UpdateLastLogin(userID string) error {
	if userID == "" {
		// Silently return instead of failing
		return nil
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}

	now := time.Now()
	if err := s.profileRepo.TouchLogin(profile, now); err != nil {
		return err
	}
	s.publishLogin(userID, profile.Role.String(), now)
	return nil
}

// ProfileView is a profile joined with its user record.
type ProfileView struct {
	models.UserProfile
	User *models.User `json:"user"`
}

// CurrentProfile returns the caller's profile joined with the user record,
// or nil when the caller is anonymous or unprovisioned.
func (s *AuthService) CurrentProfile(userID string) (*ProfileView, error) {
	if userID == "" {
		return nil, nil
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = "" // never expose the hash
	return &ProfileView{
		UserProfile: *profile,
		User:        user,
	}, nil
}

// publishLogin emits a login.recorded event. Publish failures are logged and
// otherwise ignored; the login itself has already been committed.
func (s *AuthService) publishLogin(userID, role string, when time.Time) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"userId":    userID,
		"role":      role,
		"loginTime": when.Unix(),
	})
	if err != nil {
		log.Printf("Failed to marshal login event: %v", err)
		return
	}
	if err := s.mqClient.Publish("", rabbitmq.LoginQueue, body); err != nil {
		log.Printf("Warning: Failed to publish login event for user %s: %v", userID, err)
	}
}
