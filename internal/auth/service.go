package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
)

// UserStore is the subset of the user repository the auth service needs
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// Claims represents the JWT claims issued by this service
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService issues and validates JWTs and resolves the per-request actor
type AuthService struct {
	secret []byte
	expiry time.Duration
	users  UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, expiryMinutes int, users UserStore) *AuthService {
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	return &AuthService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
		users:  users,
	}
}

// Login looks up a user by email and issues a signed JWT. Credential
// verification happens at the identity provider in front of this service;
// this endpoint only mints tokens for known users.
func (s *AuthService) Login(email string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateJWT creates a signed token for the given user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ResolveActor loads the user behind validated claims and builds the actor
// passed into every action. Organization and person links are re-derived
// from the database on every request rather than trusted from the token.
func (s *AuthService) ResolveActor(claims *Claims) (*Actor, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &Actor{
		UserID:         user.ID,
		Email:          user.Email,
		OrganizationID: user.OrganizationID,
		PersonID:       user.PersonID,
	}, nil
}
