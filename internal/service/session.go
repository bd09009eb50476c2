package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/eventdeck/eventdeck-go/internal/crypto"
	"github.com/eventdeck/eventdeck-go/internal/model"
)

// Local storage keys. These are the exact keys the persisted records live
// under; Restore on either store reads them back at startup.
const (
	storageKeyToken  = "token"
	storageKeyUser   = "user"
	storageKeyEvents = "events"
)

// KV is the durable local key-value store both stores persist into.
// Implemented by repository.LocalStore.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionStore owns the current authentication session. There is no real
// credential store behind it: any non-empty email/password pair logs in,
// and the synthesized user plus a locally minted token are persisted so
// the session survives restarts.
//
// The store is safe for concurrent use; a single mutex is held across each
// operation, including its simulated latency, so no two mutations of the
// session can interleave.
type SessionStore struct {
	mu       sync.RWMutex
	kv       KV
	notifier Notifier
	clock    Clock

	jwtSecret string
	tokenTTL  time.Duration
	latency   time.Duration

	session  model.Session
	restored bool
}

// NewSessionStore creates a new SessionStore. The session starts loading
// until Restore has run. A nil notifier falls back to slog.
func NewSessionStore(kv KV, notifier Notifier, secret string, tokenTTL, latency time.Duration) *SessionStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &SessionStore{
		kv:        kv,
		notifier:  notifier,
		clock:     systemClock{},
		jwtSecret: secret,
		tokenTTL:  tokenTTL,
		latency:   latency,
		session:   model.Session{IsLoading: true},
	}
}

// Restore rehydrates the session from local storage. A persisted token and
// a well-formed user record together restore an authenticated session;
// anything else — missing keys, unreadable storage, malformed user JSON —
// discards the partial data and leaves the session anonymous. Restore
// never fails and runs at most once; it must complete before dependent
// reads are considered valid.
func (s *SessionStore) Restore(ctx context.Context) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return s.snapshot()
	}
	s.restored = true

	token, haveToken, err := s.kv.Get(ctx, storageKeyToken)
	if err != nil {
		slog.Warn("failed to read persisted token", "error", err)
	}
	rawUser, haveUser, err := s.kv.Get(ctx, storageKeyUser)
	if err != nil {
		slog.Warn("failed to read persisted user", "error", err)
	}

	if haveToken && haveUser {
		var user model.User
		if err := json.Unmarshal([]byte(rawUser), &user); err == nil && user.ID != "" {
			s.session = model.Session{
				User:            &user,
				Token:           token,
				IsAuthenticated: true,
				IsLoading:       false,
			}
			return s.snapshot()
		}
		slog.Warn("failed to parse user from local storage, discarding session")
	}

	// Either key on its own is useless; drop whatever half survived.
	if haveToken || haveUser {
		s.discardPersisted(ctx)
	}

	s.session = model.Session{IsLoading: false}
	return s.snapshot()
}

// Login authenticates with any non-empty email/password pair. It simulates
// a round-trip, synthesizes a user from the email, persists the new
// session and replaces the old one wholesale. Credentials are never
// checked against anything.
func (s *SessionStore) Login(ctx context.Context, email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.authenticate(ctx, loginUser(s.clock, email), email, password)
	if err != nil {
		s.notifier.Error("Login Failed", err.Error())
		return model.User{}, err
	}

	s.notifier.Success("Success", "You have successfully logged in")
	return user, nil
}

// Register creates a fresh account from the supplied name and email. The
// password is validated for length and then discarded, like everything
// else here — no credential is ever stored.
func (s *SessionStore) Register(ctx context.Context, name, email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		s.notifier.Error("Registration Failed", ErrNameRequired.Error())
		return model.User{}, ErrNameRequired
	}
	if len(password) > 0 && len(password) < 6 {
		s.notifier.Error("Registration Failed", ErrPasswordTooShort.Error())
		return model.User{}, ErrPasswordTooShort
	}

	user, err := s.authenticate(ctx, registeredUser(s.clock, name, email), email, password)
	if err != nil {
		s.notifier.Error("Registration Failed", err.Error())
		return model.User{}, err
	}

	s.notifier.Success("Success", "Account created successfully")
	return user, nil
}

// authenticate runs the shared login/register path: validate, simulated
// latency, mint token, persist, replace the session. Callers hold the
// lock. The session is only replaced after both records have been
// persisted, so a failure leaves it untouched.
func (s *SessionStore) authenticate(ctx context.Context, user model.User, email, password string) (model.User, error) {
	if email == "" {
		return model.User{}, ErrEmailRequired
	}
	if password == "" {
		return model.User{}, ErrPasswordRequired
	}

	if err := sleep(ctx, s.latency); err != nil {
		return model.User{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.User{}, err
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return model.User{}, err
	}
	if err := s.kv.Set(ctx, storageKeyToken, token); err != nil {
		return model.User{}, fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.Set(ctx, storageKeyUser, string(rawUser)); err != nil {
		return model.User{}, fmt.Errorf("failed to persist user: %w", err)
	}

	s.session = model.Session{
		User:            &user,
		Token:           token,
		IsAuthenticated: true,
		IsLoading:       false,
	}
	return user, nil
}

// Logout clears the persisted session and resets to anonymous. It has no
// failure mode: storage errors are logged and the in-memory session is
// reset regardless.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discardPersisted(context.Background())
	s.session = model.Session{IsLoading: false}

	s.notifier.Success("Logged Out", "You have been logged out successfully")
}

func (s *SessionStore) discardPersisted(ctx context.Context) {
	if err := s.kv.Delete(ctx, storageKeyToken); err != nil {
		slog.Warn("failed to remove persisted token", "error", err)
	}
	if err := s.kv.Delete(ctx, storageKeyUser); err != nil {
		slog.Warn("failed to remove persisted user", "error", err)
	}
}

// Session returns a copy of the current session state.
func (s *SessionStore) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// User returns the current session user, if any.
func (s *SessionStore) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.User == nil {
		return model.User{}, false
	}
	return *s.session.User, true
}

// Token returns the current session token, empty when anonymous.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// IsAuthenticated reports whether a session user exists.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}

// snapshot copies the session so callers can never alias internal state.
// Callers hold at least the read lock.
func (s *SessionStore) snapshot() model.Session {
	out := s.session
	if s.session.User != nil {
		user := *s.session.User
		out.User = &user
	}
	return out
}

// loginUser synthesizes the mock identity for a login: the id comes from
// the clock (millisecond timestamps are the monotonic id source throughout)
// and the display name is the email's local part.
func loginUser(clock Clock, email string) model.User {
	return model.User{
		ID:    fmt.Sprintf("user-%d", clock.Now().UnixMilli()),
		Name:  emailLocalPart(email),
		Email: email,
	}
}

// registeredUser synthesizes the mock identity for a registration, keeping
// the supplied display name.
func registeredUser(clock Clock, name, email string) model.User {
	return model.User{
		ID:    fmt.Sprintf("user-%d", clock.Now().UnixMilli()),
		Name:  name,
		Email: email,
	}
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
