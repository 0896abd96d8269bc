// services/auth_service.go - Registration, login and token issuance
package services

import (
	"log"
	"os"
	"time"

	"fitarena/models"
	"fitarena/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a user account. Role defaults to the regular user role
// when not supplied.
func (s *AuthService) Register(fullName, email, password, role string) (*AuthResult, error) {
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("a user with this email already exists", "EMAIL_EXISTS")
	}

	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, BadRequest("invalid role", "INVALID_ROLE")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Level:    1,
		IsActive: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Printf("✅ Registered user %d (%s)", user.ID, user.Email)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, Unauthorized("invalid credentials", "INVALID_CREDENTIALS")
	}
	if !user.IsActive {
		return nil, Forbidden("account is deactivated", "ACCOUNT_DISABLED")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, Unauthorized("invalid credentials", "INVALID_CREDENTIALS")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
