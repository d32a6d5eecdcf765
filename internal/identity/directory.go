package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Directory is a self-hosted identity backend: an in-memory account table
// with bcrypt password hashes and a registry of federated credential tokens.
type Directory struct {
	mu          sync.Mutex
	byEmail     map[string]*dirAccount
	byID        map[string]*dirAccount
	tokens      *credentialTokens
	passwordMin int
}

type dirAccount struct {
	Account
	passwordHash  string
	emailVerified bool
}

// NewDirectory returns an empty Directory with the default password policy.
func NewDirectory() *Directory {
	return &Directory{
		byEmail:     make(map[string]*dirAccount),
		byID:        make(map[string]*dirAccount),
		tokens:      newCredentialTokens(24 * time.Hour),
		passwordMin: 8,
	}
}

func (d *Directory) SignIn(_ context.Context, email, password string) (*Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.passwordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}
	out := acc.Account
	return &out, nil
}

func (d *Directory) SignUp(_ context.Context, in SignUpInput) (*Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, errors.New("email required")
	}
	password := strings.TrimSpace(in.Password)
	if err := validatePassword(password, d.passwordMin); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.byEmail[email]; exists {
		return nil, ErrEmailTaken
	}
	acc := &dirAccount{
		Account: Account{
			ID:    localID(),
			Name:  strings.TrimSpace(in.Name),
			Email: email,
			Phone: strings.TrimSpace(in.Phone),
		},
		passwordHash: string(hashed),
	}
	d.byEmail[email] = acc
	d.byID[acc.ID] = acc
	out := acc.Account
	return &out, nil
}

// SignInWithCredential exchanges a previously issued federated token for its
// account. Either token may be empty but not both.
func (d *Directory) SignInWithCredential(_ context.Context, idToken, accessToken string) (*Account, error) {
	token := idToken
	if token == "" {
		token = accessToken
	}
	accountID, ok := d.tokens.validate(token)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[accountID]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	out := acc.Account
	return &out, nil
}

// IssueCredential binds a fresh federated token to an existing account, as a
// stand-in for the token a real federated provider would mint.
func (d *Directory) IssueCredential(accountID string) (string, error) {
	d.mu.Lock()
	_, ok := d.byID[accountID]
	d.mu.Unlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	return d.tokens.issue(accountID)
}

func (d *Directory) SignOut(_ context.Context) error {
	return nil
}

func (d *Directory) SendPasswordReset(_ context.Context, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byEmail[normalizeEmail(email)]; !ok {
		return fmt.Errorf("password reset: %w", domain.ErrNotFound)
	}
	// Delivery is out of scope; a known address is accepted silently.
	return nil
}

func (d *Directory) SendEmailVerification(_ context.Context, accountID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[accountID]
	if !ok {
		return fmt.Errorf("email verification: %w", domain.ErrNotFound)
	}
	acc.emailVerified = true
	return nil
}

func (d *Directory) UpdateDisplayName(_ context.Context, accountID, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.byID[accountID]
	if !ok {
		return fmt.Errorf("update display name: %w", domain.ErrNotFound)
	}
	acc.Name = strings.TrimSpace(name)
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// localID derives an id from the current time, matching the ids the rest of
// the system mints for locally created records.
func localID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func validatePassword(p string, min int) error {
	trimmed := strings.TrimSpace(p)
	if len(trimmed) < min {
		return fmt.Errorf("password must be at least %d characters", min)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
