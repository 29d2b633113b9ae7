package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/logging"
	"github.com/talenthub/talenthub-cli/internal/models"
)

// State is the session lifecycle state. StateUnknown is the transient
// startup state before the persisted token has been inspected.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// TokenStore is the persisted slot storage the manager owns. The metadata
// repository satisfies this interface. Get returns (nil, nil) for an
// absent key.
type TokenStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoginClient is the slice of the API client the manager needs for the
// credential exchange.
type LoginClient interface {
	Login(ctx context.Context, email string, password string, accountType models.AccountType) (*models.LoginResult, error)
}

// Manager owns the process-wide session. All state transitions take the
// mutex, so concurrent callbacks never observe a partial transition.
type Manager struct {
	mu    sync.Mutex
	state State
	user  *User
	token string

	api   LoginClient
	store TokenStore
	log   logging.Logger

	restoreOnce sync.Once
	restoreErr  error

	// onExpired is invoked (outside the lock) when a 401 forces the
	// session down, so the UI layer can redirect to the login entry point.
	onExpired func()

	now func() time.Time
}

func NewManager(api LoginClient, store TokenStore, log logging.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		state: StateUnknown,
		now:   time.Now,
	}
}

// SetOnSessionExpired registers the hook fired when the session is torn
// down by an unauthorized response. Must be called before requests are
// issued.
func (m *Manager) SetOnSessionExpired(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpired = fn
}

// Restore inspects the persisted token slot and resolves the startup state.
// It runs its work exactly once per process; later calls return the first
// result. It must complete before any authenticated request is issued.
//
// A missing token yields an anonymous session. An undecodable or expired
// token is purged and likewise yields an anonymous session; neither is an
// error, both are logged only.
func (m *Manager) Restore(ctx context.Context) error {
	m.restoreOnce.Do(func() {
		m.restoreErr = m.restore(ctx)
	})
	return m.restoreErr
}

func (m *Manager) restore(ctx context.Context) error {
	raw, err := m.store.Get(ctx, common.TokenSlotKey)
	if err != nil {
		return fmt.Errorf("reading token slot: %w", err)
	}

	if len(raw) == 0 {
		m.transition(StateAnonymous, nil, "")
		return nil
	}

	claims, err := DecodeToken(string(raw), m.now())
	if err != nil {
		m.log.Warn(ctx, "purging stored token", "reason", err)
		m.purge(ctx)
		m.transition(StateAnonymous, nil, "")
		return nil
	}

	m.transition(StateAuthenticated, claims.User(), string(raw))
	m.log.Info(ctx, "session restored", "userId", claims.UserID, "role", claims.Role)
	return nil
}

// Login exchanges credentials for a token at the role-specific endpoint and,
// on success, persists the token and transitions to an authenticated
// session. The returned string is the server-supplied success message.
//
// A 2xx response without a token, like a rejected login, surfaces as
// common.ErrInvalidCredentials; transport failures are returned as mapped
// by the API client. Either way the session stays (or becomes) anonymous.
func (m *Manager) Login(ctx context.Context, email string, password string, accountType models.AccountType) (string, error) {
	result, err := m.api.Login(ctx, email, password, accountType)
	if err != nil {
		m.fallToAnonymous()
		return "", fmt.Errorf("login: %w", err)
	}

	if result.Token == "" {
		m.fallToAnonymous()
		return "", common.ErrInvalidCredentials
	}

	claims, err := DecodeToken(result.Token, m.now())
	if err != nil {
		m.fallToAnonymous()
		return "", fmt.Errorf("login: %w", err)
	}

	if err := m.persist(ctx, result.Token, claims); err != nil {
		return "", err
	}

	m.transition(StateAuthenticated, claims.User(), result.Token)
	m.log.Info(ctx, "logged in", "userId", claims.UserID, "role", claims.Role)

	if result.Message == "" {
		return "Login successful", nil
	}
	return result.Message, nil
}

// Logout purges the persisted token and transitions to an anonymous
// session. It is a local operation and always succeeds; storage failures
// are logged only.
func (m *Manager) Logout(ctx context.Context) {
	m.purge(ctx)
	m.transition(StateAnonymous, nil, "")
	m.log.Info(ctx, "logged out")
}

// HandleUnauthorized tears the session down after a 401 on any
// authenticated request. It is idempotent under concurrent triggering:
// simultaneous 401s collapse to a single purge, transition, and hook
// firing.
func (m *Manager) HandleUnauthorized(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateAnonymous {
		m.mu.Unlock()
		return
	}
	m.state = StateAnonymous
	m.user = nil
	m.token = ""
	hook := m.onExpired
	m.mu.Unlock()

	m.purge(ctx)
	m.log.Warn(ctx, "session expired on unauthorized response")

	if hook != nil {
		hook()
	}
}

// Token returns the current bearer token, or "" for an anonymous session.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Current returns the session state and, when authenticated, a copy of the
// user identity.
func (m *Manager) Current() (State, *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return m.state, nil
	}
	u := *m.user
	return m.state, &u
}

// IsAuthenticated reports whether the session currently holds a valid user.
func (m *Manager) IsAuthenticated() bool {
	state, _ := m.Current()
	return state == StateAuthenticated
}

func (m *Manager) transition(state State, user *User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
	m.token = token
}

// fallToAnonymous reverts a failed login to the anonymous state unless a
// previously established session is still live.
func (m *Manager) fallToAnonymous() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		m.state = StateAnonymous
		m.user = nil
		m.token = ""
	}
}

func (m *Manager) persist(ctx context.Context, token string, claims *Claims) error {
	if err := m.store.Set(ctx, common.TokenSlotKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	// Convenience mirrors; the token slot stays the source of truth.
	if err := m.store.Set(ctx, common.UserIDSlotKey, []byte(claims.UserID)); err != nil {
		m.log.Warn(ctx, "failed to mirror userId", "error", err)
	}
	if err := m.store.Set(ctx, common.UserRoleSlotKey, []byte(claims.Role)); err != nil {
		m.log.Warn(ctx, "failed to mirror userRole", "error", err)
	}
	return nil
}

func (m *Manager) purge(ctx context.Context) {
	for _, key := range []string{common.TokenSlotKey, common.UserIDSlotKey, common.UserRoleSlotKey} {
		if err := m.store.Delete(ctx, key); err != nil {
			m.log.Warn(ctx, "failed to delete slot", "key", key, "error", err)
		}
	}
}
