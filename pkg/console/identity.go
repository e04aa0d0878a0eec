package console

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// FirebaseIdentity verifies Firebase ID tokens for admin login.
type FirebaseIdentity struct {
	client *auth.Client
}

func NewFirebaseIdentity(ctx context.Context, app *firebase.App) (*FirebaseIdentity, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseIdentity{client: client}, nil
}

func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	claims := &IdentityClaims{UID: token.UID}
	if v, ok := token.Claims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		claims.Name = v
	}
	if v, ok := token.Claims["email_verified"].(bool); ok {
		claims.EmailVerified = v
	}
	return claims, nil
}
