// Package session owns the client-side authentication state: the current
// user, the authenticated flag, and the initial restore-from-storage phase.
// All failures are converted to caller-branchable results at this boundary;
// no operation lets an error escape to the UI layer.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/identity"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

// storageKey is the fixed key the serialized user is persisted under.
const storageKey = "auth_user"

// State is a point-in-time snapshot of the session.
type State struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
}

// Result is the outcome of operations that carry a message alongside the
// success flag.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ProfileUpdate holds the fields UpdateProfile may merge into the current
// user. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Store mediates login, registration, logout, profile updates, and session
// persistence. The identity backend is injected at construction time; demo
// and self-hosted directories are selected by the caller, not by flags here.
type Store struct {
	verifier identity.Verifier
	storage  storage.Adapter
	logger   *log.Logger
	hub      notify.Hub

	mu            sync.Mutex
	user          *domain.User
	authenticated bool
	loading       bool
	gen           uint64
}

// New builds a Store. The session starts in the loading state until
// Initialize completes.
func New(verifier identity.Verifier, adapter storage.Adapter, logger *log.Logger) *Store {
	return &Store{
		verifier: verifier,
		storage:  adapter,
		logger:   logger,
		loading:  true,
	}
}

// State returns a snapshot. The user is copied so callers cannot mutate
// store state through it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return State{User: user, IsAuthenticated: s.authenticated, IsLoading: s.loading}
}

// Subscribe registers a change listener and returns an unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

// IsAuthenticated reports whether a user is currently logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Initialize restores a previously persisted session. When the identity
// backend can report sessions out of band it is subscribed to instead; the
// stored copy then mirrors whatever the backend reports. The loading flag
// drops exactly once and never comes back up, even if Initialize is called
// again.
func (s *Store) Initialize(ctx context.Context) {
	if watcher, ok := s.verifier.(identity.SessionWatcher); ok {
		watcher.OnSessionChanged(func(acc *identity.Account) {
			s.applyWatchedSession(ctx, acc)
		})
		return
	}

	user, err := s.restore(ctx)
	if err != nil {
		s.logger.Printf("session restore: %v", err)
	}

	s.mu.Lock()
	s.gen++
	s.user = user
	s.authenticated = user != nil
	s.loading = false
	s.mu.Unlock()
	s.hub.Notify()
}

// restore fetches and decodes the persisted user. Any failure is treated as
// "no saved session"; an unparsable value is removed best-effort.
func (s *Store) restore(ctx context.Context) (*domain.User, error) {
	raw, err := s.storage.Get(ctx, storageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		if rmErr := s.storage.Remove(ctx, storageKey); rmErr != nil {
			s.logger.Printf("drop stale session value: %v", rmErr)
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) applyWatchedSession(ctx context.Context, acc *identity.Account) {
	if acc != nil {
		user := accountToUser(acc)
		if err := s.persist(ctx, &user); err != nil {
			s.logger.Printf("persist watched session: %v", err)
		}
		s.mu.Lock()
		s.gen++
		s.user = &user
		s.authenticated = true
		s.loading = false
		s.mu.Unlock()
	} else {
		if err := s.storage.Remove(ctx, storageKey); err != nil {
			s.logger.Printf("remove persisted session: %v", err)
		}
		s.mu.Lock()
		s.gen++
		s.user = nil
		s.authenticated = false
		s.loading = false
		s.mu.Unlock()
	}
	s.hub.Notify()
}

// Login verifies email/password against the configured identity backend.
// Wrong credentials are an expected outcome and yield false, not an error.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return false
	}

	gen := s.begin()
	acc, err := s.verifier.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Printf("login: %v", err)
		}
		return false
	}
	return s.commitSignIn(ctx, gen, acc, "login")
}

// LoginWithCredential exchanges a federated credential for a session. At
// least one of the two tokens must be non-empty.
func (s *Store) LoginWithCredential(ctx context.Context, idToken, accessToken string) bool {
	if idToken == "" && accessToken == "" {
		return false
	}

	gen := s.begin()
	acc, err := s.verifier.SignInWithCredential(ctx, idToken, accessToken)
	if err != nil {
		if !errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Printf("credential login: %v", err)
		}
		return false
	}
	return s.commitSignIn(ctx, gen, acc, "credential login")
}

// Register creates an account, activates the new session, and best-effort
// triggers a verification email. A failed verification email never fails
// the registration.
func (s *Store) Register(ctx context.Context, in domain.RegisterInput) bool {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Password) == "" {
		return false
	}

	gen := s.begin()
	acc, err := s.verifier.SignUp(ctx, identity.SignUpInput{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		s.logger.Printf("register: %v", err)
		return false
	}

	if err := s.verifier.SendEmailVerification(ctx, acc.ID); err != nil {
		s.logger.Printf("send verification email: %v", err)
	}

	user := domain.User{
		ID:    acc.ID,
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
	return s.commitUser(ctx, gen, user, "register")
}

// Logout clears local session state. Remote sign-out and storage failures
// are logged and swallowed; local state is authoritative for the UI.
func (s *Store) Logout(ctx context.Context) {
	gen := s.begin()

	if err := s.verifier.SignOut(ctx); err != nil {
		s.logger.Printf("remote sign-out: %v", err)
	}
	if err := s.storage.Remove(ctx, storageKey); err != nil {
		s.logger.Printf("clear persisted session: %v", err)
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.logger.Printf("logout: discarding stale resolution")
		return
	}
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
	s.hub.Notify()
}

// UpdateProfile merges the given fields into the current user and persists
// the result. Returns false when no user is logged in.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) bool {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return false
	}
	merged := *s.user
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Address != nil {
		merged.Address = *update.Address
	}

	if update.Name != nil {
		if err := s.verifier.UpdateDisplayName(ctx, merged.ID, merged.Name); err != nil {
			s.logger.Printf("update display name: %v", err)
			return false
		}
	}

	return s.commitUser(ctx, gen, merged, "update profile")
}

// ResetPassword asks the identity backend to start a password reset.
func (s *Store) ResetPassword(ctx context.Context, email string) Result {
	if strings.TrimSpace(email) == "" {
		return Result{OK: false, Message: "email required"}
	}
	if err := s.verifier.SendPasswordReset(ctx, email); err != nil {
		s.logger.Printf("reset password: %v", err)
		return Result{OK: false, Message: err.Error()}
	}
	return Result{OK: true}
}

// SendEmailVerification re-sends the verification email for the current
// user.
func (s *Store) SendEmailVerification(ctx context.Context) Result {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	if user == nil {
		return Result{OK: false, Message: "no authenticated user"}
	}
	if err := s.verifier.SendEmailVerification(ctx, user.ID); err != nil {
		s.logger.Printf("send verification email: %v", err)
		return Result{OK: false, Message: err.Error()}
	}
	return Result{OK: true}
}

// begin opens an async mutation: it bumps the generation counter so any
// still-in-flight older operation resolves stale and gets discarded.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *Store) commitSignIn(ctx context.Context, gen uint64, acc *identity.Account, op string) bool {
	return s.commitUser(ctx, gen, accountToUser(acc), op)
}

// commitUser persists the user and installs it as the active session, unless
// a newer operation started in the meantime. The generation is checked both
// before and after the storage write so a stale resolution neither mutates
// state nor leaves a phantom user on disk.
func (s *Store) commitUser(ctx context.Context, gen uint64, user domain.User, op string) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.logger.Printf("%s: discarding stale resolution", op)
		return false
	}
	s.mu.Unlock()

	if err := s.persist(ctx, &user); err != nil {
		s.logger.Printf("%s: persist user: %v", op, err)
		return false
	}

	s.mu.Lock()
	if s.gen != gen {
		current := s.user
		s.mu.Unlock()
		s.logger.Printf("%s: discarding stale resolution", op)
		s.repairStorage(ctx, current, op)
		return false
	}
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
	s.hub.Notify()
	return true
}

// repairStorage re-aligns the persisted value with the authoritative
// in-memory state after a stale resolution already wrote to storage.
// Best-effort: a failure here is logged, not surfaced.
func (s *Store) repairStorage(ctx context.Context, current *domain.User, op string) {
	if current == nil {
		if err := s.storage.Remove(ctx, storageKey); err != nil {
			s.logger.Printf("%s: drop stale persisted user: %v", op, err)
		}
		return
	}
	u := *current
	if err := s.persist(ctx, &u); err != nil {
		s.logger.Printf("%s: restore persisted user: %v", op, err)
	}
}

func (s *Store) persist(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, storageKey, string(raw))
}

func accountToUser(acc *identity.Account) domain.User {
	return domain.User{
		ID:    acc.ID,
		Name:  acc.Name,
		Email: acc.Email,
		Phone: acc.Phone,
	}
}
