package service

import (
	"crypto/subtle"

	"github.com/nasaem/pos-api/internal/config"
	"github.com/nasaem/pos-api/pkg/apperror"
	"github.com/nasaem/pos-api/pkg/utils"
)

// AuthService gates the cart and history views behind the single operator
// account. One configured credential pair, compared in constant time, and a
// bearer token for the session. There is no user store behind this.
type AuthService struct {
	creds      *config.AuthConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(creds *config.AuthConfig, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{creds: creds, jwtManager: jwtManager}
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the credential pair and issues a session token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(username)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	return &LoginResult{Token: token, Username: username}, nil
}
