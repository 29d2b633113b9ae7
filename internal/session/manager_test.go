package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/logging"
	"github.com/talenthub/talenthub-cli/internal/models"
)

// fakeStore is an in-memory TokenStore.
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// fakeLoginClient implements LoginClient.
type fakeLoginClient struct {
	calls           int
	lastEmail       string
	lastAccountType models.AccountType

	ret    *models.LoginResult
	retErr error
}

func (f *fakeLoginClient) Login(ctx context.Context, email string, password string, accountType models.AccountType) (*models.LoginResult, error) {
	f.calls++
	f.lastEmail = email
	f.lastAccountType = accountType
	return f.ret, f.retErr
}

func newManager(api LoginClient, store TokenStore) *Manager {
	return NewManager(api, store, logging.NewNopLogger())
}

func TestRestore_NoToken_Anonymous(t *testing.T) {
	m := newManager(&fakeLoginClient{}, newFakeStore())
	require.NoError(t, m.Restore(context.Background()))

	state, user := m.Current()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, user)
	assert.Empty(t, m.Token())
}

func TestRestore_ValidToken_Authenticated(t *testing.T) {
	store := newFakeStore()
	raw := mintToken(t, talentClaims(time.Now().Add(time.Hour)))
	require.NoError(t, store.Set(context.Background(), common.TokenSlotKey, []byte(raw)))

	m := newManager(&fakeLoginClient{}, store)
	require.NoError(t, m.Restore(context.Background()))

	state, user := m.Current()
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, "John", user.DisplayName)
	assert.Equal(t, raw, m.Token())
}

func TestRestore_ExpiredToken_PurgedAndAnonymous(t *testing.T) {
	store := newFakeStore()
	raw := mintToken(t, talentClaims(time.Now().Add(-time.Hour)))
	require.NoError(t, store.Set(context.Background(), common.TokenSlotKey, []byte(raw)))

	m := newManager(&fakeLoginClient{}, store)
	require.NoError(t, m.Restore(context.Background()), "expired token must not fail startup")

	state, _ := m.Current()
	assert.Equal(t, StateAnonymous, state)

	v, err := store.Get(context.Background(), common.TokenSlotKey)
	require.NoError(t, err)
	assert.Nil(t, v, "expired token must be purged from the slot")
}

func TestRestore_UndecodableToken_PurgedAndAnonymous(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.Set(context.Background(), common.TokenSlotKey, []byte("garbage")))

	m := newManager(&fakeLoginClient{}, store)
	require.NoError(t, m.Restore(context.Background()))

	state, _ := m.Current()
	assert.Equal(t, StateAnonymous, state)

	v, err := store.Get(context.Background(), common.TokenSlotKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRestore_RunsExactlyOnce(t *testing.T) {
	store := newFakeStore()
	raw := mintToken(t, talentClaims(time.Now().Add(time.Hour)))
	require.NoError(t, store.Set(context.Background(), common.TokenSlotKey, []byte(raw)))

	m := newManager(&fakeLoginClient{}, store)
	require.NoError(t, m.Restore(context.Background()))

	// Dropping the slot after restore must not affect a second call.
	require.NoError(t, store.Delete(context.Background(), common.TokenSlotKey))
	require.NoError(t, m.Restore(context.Background()))

	state, _ := m.Current()
	assert.Equal(t, StateAuthenticated, state)
}

func TestLogin_Success(t *testing.T) {
	raw := mintToken(t, recruiterClaims(time.Now().Add(time.Hour)))
	api := &fakeLoginClient{ret: &models.LoginResult{Token: raw, Message: "Welcome back"}}
	store := newFakeStore()
	m := newManager(api, store)

	msg, err := m.Login(context.Background(), "a@b.com", "secret", models.AccountRecruiters)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back", msg)
	assert.Equal(t, models.AccountRecruiters, api.lastAccountType)

	state, user := m.Current()
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, user)
	assert.Equal(t, "recruiter", user.Role)
	assert.Equal(t, "Acme", user.DisplayName)

	v, err := store.Get(context.Background(), common.TokenSlotKey)
	require.NoError(t, err)
	assert.Equal(t, raw, string(v))

	role, err := store.Get(context.Background(), common.UserRoleSlotKey)
	require.NoError(t, err)
	assert.Equal(t, "recruiter", string(role))
}

func TestLogin_DefaultMessage(t *testing.T) {
	raw := mintToken(t, talentClaims(time.Now().Add(time.Hour)))
	api := &fakeLoginClient{ret: &models.LoginResult{Token: raw}}
	m := newManager(api, newFakeStore())

	msg, err := m.Login(context.Background(), "a@b.com", "secret", models.AccountTalents)
	require.NoError(t, err)
	assert.Equal(t, "Login successful", msg)
}

func TestLogin_MissingToken_InvalidCredentials(t *testing.T) {
	api := &fakeLoginClient{ret: &models.LoginResult{Message: "nope"}}
	m := newManager(api, newFakeStore())

	_, err := m.Login(context.Background(), "a@b.com", "wrong", models.AccountTalents)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	state, _ := m.Current()
	assert.Equal(t, StateAnonymous, state)
}

func TestLogin_TransportError_StaysAnonymous(t *testing.T) {
	api := &fakeLoginClient{retErr: common.ErrUnavailable}
	m := newManager(api, newFakeStore())

	_, err := m.Login(context.Background(), "a@b.com", "secret", models.AccountTalents)
	require.ErrorIs(t, err, common.ErrUnavailable)

	state, _ := m.Current()
	assert.Equal(t, StateAnonymous, state)
}

func TestLogout_PurgesSlots(t *testing.T) {
	raw := mintToken(t, talentClaims(time.Now().Add(time.Hour)))
	api := &fakeLoginClient{ret: &models.LoginResult{Token: raw}}
	store := newFakeStore()
	m := newManager(api, store)

	_, err := m.Login(context.Background(), "a@b.com", "secret", models.AccountTalents)
	require.NoError(t, err)

	m.Logout(context.Background())

	state, user := m.Current()
	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, user)
	assert.Empty(t, m.Token())

	for _, key := range []string{common.TokenSlotKey, common.UserIDSlotKey, common.UserRoleSlotKey} {
		v, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Nil(t, v, "slot %s must be purged", key)
	}
}

func TestHandleUnauthorized_ConcurrentCallsCollapse(t *testing.T) {
	raw := mintToken(t, talentClaims(time.Now().Add(time.Hour)))
	store := newFakeStore()
	require.NoError(t, store.Set(context.Background(), common.TokenSlotKey, []byte(raw)))

	m := newManager(&fakeLoginClient{}, store)
	require.NoError(t, m.Restore(context.Background()))

	var mu sync.Mutex
	fired := 0
	m.SetOnSessionExpired(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.HandleUnauthorized(context.Background())
		}()
	}
	wg.Wait()

	state, _ := m.Current()
	assert.Equal(t, StateAnonymous, state)
	assert.Equal(t, 1, fired, "hook must fire exactly once")

	v, err := store.Get(context.Background(), common.TokenSlotKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestHandleUnauthorized_NoopWhenAnonymous(t *testing.T) {
	m := newManager(&fakeLoginClient{}, newFakeStore())
	require.NoError(t, m.Restore(context.Background()))

	fired := 0
	m.SetOnSessionExpired(func() { fired++ })

	m.HandleUnauthorized(context.Background())
	assert.Zero(t, fired)
}
