package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/finflowhq/finflow/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = user.ErrUserNotFound
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Register(name, email, password string, savingTarget float64) (*user.User, string, string, error)
	Login(email, password string) (*user.User, string, string, error)
	GoogleLogin(ctx context.Context, credential string) (*user.User, string, string, error)
	RefreshAccessToken(userID string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
	JWTRefreshTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService    user.Service
	jwtManager     JWTManagerInterface
	googleVerifier GoogleVerifier // nil when Google sign-in is not configured
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, googleVerifier GoogleVerifier) Service {
	return &service{
		userService:    userService,
		jwtManager:     jwtManager,
		googleVerifier: googleVerifier,
	}
}

func (s *service) Register(name, email, password string, savingTarget float64) (*user.User, string, string, error) {
	newUser, err := s.userService.Register(name, email, password, savingTarget)
	if err != nil {
		return nil, "", "", err
	}
	return s.issueTokens(newUser)
}

func (s *service) Login(email, password string) (*user.User, string, string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", "", ErrUserNotFound
		}
		return nil, "", "", ErrInternalError
	}

	if !s.userService.VerifyPassword(existingUser, password) {
		return nil, "", "", ErrInvalidCredentials
	}
	return s.issueTokens(existingUser)
}

func (s *service) GoogleLogin(ctx context.Context, credential string) (*user.User, string, string, error) {
	if s.googleVerifier == nil {
		return nil, "", "", ErrInvalidGoogleToken
	}

	email, name, err := s.googleVerifier.Verify(ctx, credential)
	if err != nil {
		return nil, "", "", ErrInvalidGoogleToken
	}

	existingUser, err := s.userService.FindOrCreateByEmail(name, email)
	if err != nil {
		log.Printf("Google login error: %v", err)
		return nil, "", "", ErrInternalError
	}
	return s.issueTokens(existingUser)
}

func (s *service) RefreshAccessToken(userID string) (string, error) {
	return s.jwtManager.GenerateAccessJWT(userID, defaultJWTDuration)
}

func (s *service) issueTokens(u *user.User) (*user.User, string, string, error) {
	accessToken, err := s.jwtManager.GenerateAccessJWT(u.ID, defaultJWTDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}
	refreshToken, err := s.jwtManager.GenerateRefreshJWT(u.ID, u.HashToken, defaultJWTRefreshDuration)
	if err != nil {
		return nil, "", "", ErrInternalError
	}
	return u, accessToken, refreshToken, nil
}
