package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
)

// Credential is one entry in a fixed demo login list.
type Credential struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string
}

// StaticDirectory verifies against a fixed credential list with exact
// email+password equality. Demo/dev flows only; passwords are not hashed.
type StaticDirectory struct {
	creds []Credential
}

// NewStaticDirectory copies the given credential list. The list is never
// mutated afterwards; sign-ups synthesize local accounts instead.
func NewStaticDirectory(creds []Credential) *StaticDirectory {
	out := make([]Credential, len(creds))
	copy(out, creds)
	return &StaticDirectory{creds: out}
}

// DemoCredentials is the built-in demo login list.
func DemoCredentials() []Credential {
	return []Credential{
		{ID: "u1", Name: "Budi Santoso", Email: "budi@example.com", Phone: "081234567890", Password: "password123"},
		{ID: "u2", Name: "Siti Rahma", Email: "siti@example.com", Phone: "081298765432", Password: "rahasia45"},
		{ID: "u3", Name: "Test User", Email: "test@test.com", Phone: "0800000000", Password: "test123"},
	}
}

func (s *StaticDirectory) SignIn(_ context.Context, email, password string) (*Account, error) {
	for _, c := range s.creds {
		if c.Email == email && c.Password == password {
			return &Account{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// SignUp synthesizes a local account with a time-derived id. The fixed
// credential list stays untouched.
func (s *StaticDirectory) SignUp(_ context.Context, in SignUpInput) (*Account, error) {
	return &Account{
		ID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}, nil
}

func (s *StaticDirectory) SignInWithCredential(_ context.Context, _, _ string) (*Account, error) {
	return nil, ErrUnsupported
}

func (s *StaticDirectory) SignOut(_ context.Context) error {
	return nil
}

func (s *StaticDirectory) SendPasswordReset(_ context.Context, email string) error {
	for _, c := range s.creds {
		if c.Email == email {
			return nil
		}
	}
	return fmt.Errorf("password reset: %w", domain.ErrNotFound)
}

func (s *StaticDirectory) SendEmailVerification(_ context.Context, _ string) error {
	return nil
}

func (s *StaticDirectory) UpdateDisplayName(_ context.Context, _, _ string) error {
	return nil
}
