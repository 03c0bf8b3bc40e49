package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

const accessTokenType = "access"

const msgInvalidCredentials = "invalid email or password"

// ServiceConfig combines the config interfaces the auth service needs.
type ServiceConfig interface {
	config.AuthServiceConfig
	config.JWTConfig
}

// Service authenticates the map administrator. There is a single admin
// account configured through the environment; no user storage exists.
type Service struct {
	cfg ServiceConfig
	log *logger.Logger
}

func NewService(cfg ServiceConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// SignIn verifies the admin credentials and issues a short-lived access token.
func (s *Service) SignIn(req SignInRequest) (AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	expected := strings.ToLower(s.cfg.GetAdminEmail())

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(expected)) == 1

	// Always run the hash comparison so a wrong email costs the same time
	// as a wrong password.
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(req.Password))
	if !emailMatch || err != nil {
		s.log.Warn("failed admin sign-in attempt", "email", email)
		return AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.signJWT(expected)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{AccessToken: token}, nil
}

func (s *Service) signJWT(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"type": accessTokenType,
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
