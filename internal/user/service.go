package user

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	minEmailLength = 3
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Register(name, email, password string, savingTarget float64) (*User, error)
	FindOrCreateByEmail(name, email string) (*User, error)
	GetUserByID(id string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	VerifyPassword(user *User, password string) bool
	GetSavingTarget(userID string) (float64, error)
	UpdateSavingTarget(userID string, savingTarget float64) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Register(name, email, password string, savingTarget float64) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	_, err := s.repo.getUserByEmail(email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}
	hashToken, err := generateHashToken()
	if err != nil {
		return nil, fmt.Errorf("could not generate hash token: %v", err)
	}

	newUser := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		HashToken:    hashToken,
		SavingTarget: savingTarget,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// FindOrCreateByEmail backs Google sign-in: a first-time user gets an
// account with a random throwaway password.
func (s *service) FindOrCreateByEmail(name, email string) (*User, error) {
	existing, err := s.repo.getUserByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	password, err := generateHashToken()
	if err != nil {
		return nil, fmt.Errorf("could not generate password: %v", err)
	}
	return s.Register(name, email, password, 0)
}

func (s *service) GetUserByID(id string) (*User, error) {
	return s.repo.getUserByID(id)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *service) VerifyPassword(user *User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

func (s *service) GetSavingTarget(userID string) (float64, error) {
	existing, err := s.repo.getUserByID(userID)
	if err != nil {
		return 0, err
	}
	return existing.SavingTarget, nil
}

func (s *service) UpdateSavingTarget(userID string, savingTarget float64) error {
	if savingTarget < 0 {
		return errors.New("saving target must not be negative")
	}
	return s.repo.updateSavingTarget(userID, savingTarget)
}

func validateEmailAddress(email string) error {
	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return ErrInvalidEmail
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateHashToken() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
