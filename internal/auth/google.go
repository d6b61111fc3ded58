package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var ErrInvalidGoogleToken = errors.New("invalid Google token")

// GoogleVerifier checks a Google ID token and resolves the account's
// email and display name.
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (email, name string, err error)
}

type googleIDTokenVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleIDTokenVerifier{clientID: clientID}
}

func (v *googleIDTokenVerifier) Verify(ctx context.Context, credential string) (string, string, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return "", "", ErrInvalidGoogleToken
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", ErrInvalidGoogleToken
	}
	return email, name, nil
}
