package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"
	"hospital-admission-backend/pkg/utils"
)

// Authentication guards. The admin guard is a narrower realm that only
// admits accounts with the admin role.
const (
	GuardWeb   = "web"
	GuardAdmin = "admin"
)

type AuthService struct {
	userRepo       *repository.UserRepository
	auditRepo      *repository.AuditRepository
	rememberExpiry time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository, rememberExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		rememberExpiry: rememberExpiry,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Redirect     string       `json:"redirect"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RedirectForRole maps an account role onto its landing page. The role set
// is closed; anything unrecognized routes home.
func RedirectForRole(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleAdmission:
		return "/admission/dashboard"
	case models.RolePharmacy:
		return "/pharmacy/dashboard"
	case models.RoleDoctor:
		return "/doctor/dashboard"
	case models.RolePatient:
		return "/patient/dashboard"
	case models.RoleImaging:
		return "/imaging/dashboard"
	case models.RoleSupplies:
		return "/supplies/dashboard"
	case models.RoleOperatingRoom:
		return "/operating-room/dashboard"
	default:
		return "/"
	}
}

// Login verifies credentials against the given guard and issues a fresh
// session. Every refresh token is brand new per login and the previous one
// is never reused, so a fixated identifier never survives authentication.
// All failures return the same generic error.
func (s *AuthService) Login(email, password string, remember bool, guard string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	// The admin guard is scoped to admin accounts only
	if guard == GuardAdmin && user.Role != models.RoleAdmin {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role, guard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiry := utils.GetRefreshTokenExpiry()
	if remember {
		expiry = s.rememberExpiry
	}

	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		Guard:     guard,
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login",
		fmt.Sprintf("User %s logged in via %s guard", email, guard))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Redirect:     RedirectForRole(user.Role),
		User: UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// RefreshAccessToken generates a new access token from a refresh token,
// preserving the guard the session was opened under
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	token, err := s.userRepo.FindRefreshTokenByHash(tokenHash)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if time.Now().After(token.ExpiresAt) {
		return "", ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role, token.Guard)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token, invalidating the session
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)

	if err := s.userRepo.RevokeRefreshTokenByHash(tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// Register creates a new account with a hashed password
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	if _, err := s.userRepo.FindUserByEmail(email); err == nil {
		return nil, errors.New("email already registered")
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration",
		fmt.Sprintf("User %s registered with role %s", email, role))

	return user, nil
}
