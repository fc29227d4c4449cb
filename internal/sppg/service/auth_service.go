package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yasunstudio/bagizi-id-sub002/internal/config"
	"github.com/yasunstudio/bagizi-id-sub002/internal/middleware"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/apperr"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/entity"
	"github.com/yasunstudio/bagizi-id-sub002/internal/sppg/repository"
)

// AuthService issues and refreshes session tokens. Refresh tokens live in
// redis keyed by token id, so logout and rotation need no table.
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// TokenPair is an access token plus its refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

var errInvalidCredentials = apperr.Validation("credentials", "invalid email or password")

// Login verifies the password and returns the user with a fresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, errInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.TouchLogin(ctx, user.ID); err != nil {
		return nil, nil, fmt.Errorf("touch login: %w", err)
	}
	return user, pair, nil
}

// Refresh rotates a refresh token into a new pair. The old token is deleted
// first, so each refresh token works exactly once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	key := refreshKey(refreshToken)
	userID, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, apperr.Validation("refresh_token", "invalid or expired")
	}
	s.rdb.Del(ctx, key)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Validation("refresh_token", "user no longer active")
	}
	return s.issueTokens(ctx, user)
}

// Me returns the account behind a resolved identity.
func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, &apperr.NotFound{Resource: "user"}
	}
	return user, nil
}

// HashPassword is used at seed/registration time.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	expire := s.cfg.JWT.AccessTokenExpire
	now := time.Now()

	claims := &middleware.JWTClaims{
		UserID: user.ID,
		SppgID: user.SppgID,
		Name:   user.FullName,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh := uuid.New().String()
	if err := s.rdb.Set(ctx, refreshKey(refresh), user.ID, s.cfg.JWT.RefreshTokenExpire).Err(); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(expire.Seconds()),
	}, nil
}

func refreshKey(token string) string {
	return "auth:refresh:" + token
}
