// Package identity defines the identity-backend strategy the session store
// delegates credential verification to, plus the concrete backends this app
// ships: a self-hosted account directory and a fixed demo credential list.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when email/password or a federated
	// credential do not match any account. It is an expected outcome, not a
	// defect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken indicates a sign-up collides with an existing account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnsupported indicates the backend does not implement the operation.
	ErrUnsupported = errors.New("operation not supported by identity backend")
)

// Account is the backend's view of an identity. The session store adapts it
// into the canonical domain.User.
type Account struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// SignUpInput carries the fields needed to create an account.
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Verifier is the identity backend contract. Implementations verify
// credentials and own identity issuance; they never touch session state.
type Verifier interface {
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignUp(ctx context.Context, in SignUpInput) (*Account, error)
	SignInWithCredential(ctx context.Context, idToken, accessToken string) (*Account, error)
	SignOut(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error
	SendEmailVerification(ctx context.Context, accountID string) error
	UpdateDisplayName(ctx context.Context, accountID, name string) error
}

// SessionWatcher is implemented by backends that can restore a session out
// of band (e.g. a hosted provider with its own token cache). The callback
// fires immediately with the provider's current session on subscription and
// again on every change; nil means no active session.
type SessionWatcher interface {
	OnSessionChanged(fn func(*Account))
}
