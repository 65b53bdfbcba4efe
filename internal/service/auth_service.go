package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/dto"
	"github.com/abdullah9786/nawab-products/internal/model"
	"github.com/abdullah9786/nawab-products/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// SessionClaims is the JWT payload of an admin session.
type SessionClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ParseToken(token string) (*SessionClaims, error)
	// SeedAdmin creates the bootstrap admin from configuration. It reports
	// false, with the existing admin's email, when any admin already exists.
	SeedAdmin(ctx context.Context) (*dto.SeedResponse, bool, error)
	// EnsureAdmin creates an admin with the given credentials unless one
	// already exists.
	EnsureAdmin(ctx context.Context, email, password, name string) (*model.Admin, bool, error)
	AdminStatus(ctx context.Context) (*dto.AdminStatusResponse, error)
}

type authService struct {
	repo repository.AdminRepository
	cfg  *config.Config
	cost int
}

func NewAuthService(repo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg, cost: bcryptCost}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := checkStruct(&req); err != nil {
		return nil, err
	}

	admin, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidLogin
	}

	token, err := s.generateToken(admin, s.cfg.SessionTTL())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(s.cfg.SessionTTL().Seconds()),
		Admin:     mapAdmin(admin),
	}, nil
}

func (s *authService) ParseToken(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.AdminID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) SeedAdmin(ctx context.Context) (*dto.SeedResponse, bool, error) {
	admin, created, err := s.EnsureAdmin(ctx, s.cfg.AdminEmail, s.cfg.AdminPassword, s.cfg.AdminName)
	if err != nil {
		return nil, false, err
	}
	resp := &dto.SeedResponse{Email: admin.Email}
	if created {
		resp.Hint = "Now login at /admin/login with your credentials"
	}
	return resp, created, nil
}

type seedInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,max=100"`
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password, name string) (*model.Admin, bool, error) {
	existing, err := s.repo.First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	in := seedInput{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
		Name:     strings.TrimSpace(name),
	}
	if err := checkStruct(&in); err != nil {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.Admin{Email: in.Email, PasswordHash: string(hash), Name: in.Name}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent seed
			existing, findErr := s.repo.FindByEmail(ctx, in.Email)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create admin: %w", err)
	}
	return admin, true, nil
}

func (s *authService) AdminStatus(ctx context.Context) (*dto.AdminStatusResponse, error) {
	admin, err := s.repo.First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AdminStatusResponse{
				Exists:  false,
				Message: "No admin user found! Visit /api/seed to create one.",
			}, nil
		}
		return nil, err
	}
	return &dto.AdminStatusResponse{
		Exists:  true,
		Email:   admin.Email,
		Name:    admin.Name,
		Message: "Admin exists. Try logging in with this email.",
	}, nil
}

func (s *authService) generateToken(admin *model.Admin, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AdminID: admin.ID.String(),
		Email:   admin.Email,
		Name:    admin.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func mapAdmin(a *model.Admin) dto.AdminResponse {
	return dto.AdminResponse{ID: a.ID.String(), Email: a.Email, Name: a.Name}
}

// AdminFromClaims builds the session view of the signed-in admin.
func AdminFromClaims(c *SessionClaims) dto.AdminResponse {
	return dto.AdminResponse{ID: c.AdminID, Email: c.Email, Name: c.Name}
}

// HashPassword hashes a password with the cost used for admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}
