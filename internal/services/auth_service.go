package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/MiqayaMahmood/foodeez-0909/internal/models"
	"github.com/MiqayaMahmood/foodeez-0909/internal/repositories"
)

// AuthService handles registration, login and token validation for
// visitor accounts.
type AuthService struct {
	visitorRepo repositories.VisitorRepository
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(visitorRepo repositories.VisitorRepository, jwtSecret string) *AuthService {
	return &AuthService{
		visitorRepo: visitorRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterVisitor registers a new visitor account, hashes the password, and
// saves the account to the database.
func (s *AuthService) RegisterVisitor(account *models.VisitorAccount) error {
	if existing, err := s.visitorRepo.GetByEmail(account.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", account.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.Password = string(hashedPassword)

	if err := s.visitorRepo.Create(account); err != nil {
		return fmt.Errorf("failed to register visitor: %w", err)
	}
	return nil
}

// LoginVisitor authenticates a visitor by email and returns a JWT token on success.
func (s *AuthService) LoginVisitor(email, password string) (string, error) {
	account, err := s.visitorRepo.GetByEmail(email)
	if err != nil {
		// It's good practice not to reveal if the email exists or not for security
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"visitor_account_id": account.ID,
		"email":              account.Email,
		"exp":                time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":                time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
