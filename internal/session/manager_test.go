package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzpay/payconsole/internal/models"
	"github.com/tzpay/payconsole/internal/storage"
)

// fakeAuth implements Authenticator with canned responses.
type fakeAuth struct {
	loginResp *models.AuthResponse
	loginErr  error

	registerResp *models.AuthResponse
	registerErr  error

	lastUsername string
	lastPassword string
	lastRegister models.RegisterRequest
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.lastUsername, f.lastPassword = username, password
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.lastRegister = req
	return f.registerResp, f.registerErr
}

// failingStore wraps a Store and fails every Update.
type failingStore struct {
	storage.Store
}

func (f *failingStore) Update(ctx context.Context, fn func(s storage.Store) error) error {
	return errors.New("disk full")
}

func authOK() *fakeAuth {
	return &fakeAuth{
		loginResp: &models.AuthResponse{
			Token: "abc",
			User:  models.User{ID: 1, Username: "biz1", Business: models.Business{Name: "Acme"}},
		},
	}
}

func TestLogin_EstablishesSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	auth := authOK()
	m := NewManager(auth, store, nil)

	user, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "biz1", auth.lastUsername)
	assert.Equal(t, "secret123", auth.lastPassword)
	assert.Equal(t, "Acme", user.Business.Name)

	assert.True(t, m.IsAuthenticated())
	token, ok := m.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	// Persisted copies must be consistent with the response.
	rawToken, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), rawToken)

	rawUser, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	var persisted models.User
	require.NoError(t, json.Unmarshal(rawUser, &persisted))
	assert.Equal(t, *user, persisted)
}

func TestLogin_FailureLeavesPriorSessionUntouched(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	auth := authOK()
	m := NewManager(auth, store, nil)

	_, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	auth.loginResp = nil
	auth.loginErr = errors.New("Unable to log in with provided credentials.")

	_, err = m.Login(ctx, "biz1", "wrong")
	require.Error(t, err)

	assert.True(t, m.IsAuthenticated(), "old session must survive a failed login")
	token, _ := m.Token()
	assert.Equal(t, "abc", token)
}

func TestLogin_PersistFailureDoesNotSwapSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(authOK(), &failingStore{Store: storage.NewMemory()}, nil)

	_, err := m.Login(ctx, "biz1", "secret123")
	require.Error(t, err)
	assert.False(t, m.IsAuthenticated())
	_, ok := m.Token()
	assert.False(t, ok)
}

func TestRegister_EstablishesSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	auth := &fakeAuth{
		registerResp: &models.AuthResponse{
			Token: "def",
			User:  models.User{ID: 2, Username: "biz2"},
		},
	}
	m := NewManager(auth, store, nil)

	req := models.RegisterRequest{
		Username: "biz2",
		Email:    "biz2@example.com",
		Password: "longenough",
		Business: models.Business{Name: "Globex", BusinessRegNumber: "REG-9"},
	}
	user, err := m.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "biz2", user.Username)
	assert.Equal(t, "Globex", auth.lastRegister.Business.Name)
	assert.True(t, m.IsAuthenticated())
}

func TestLogout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m := NewManager(authOK(), store, nil)

	_, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	m.Logout(ctx)

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	_, ok := m.Token()
	assert.False(t, ok)

	rawToken, _ := store.Get(ctx, storage.KeyToken)
	rawUser, _ := store.Get(ctx, storage.KeyUser)
	assert.Nil(t, rawToken)
	assert.Nil(t, rawUser)
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m := NewManager(authOK(), store, nil)

	_, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	m.Logout(ctx)
	m.Logout(ctx)

	assert.False(t, m.IsAuthenticated())
	rawToken, _ := store.Get(ctx, storage.KeyToken)
	assert.Nil(t, rawToken)
}

func TestLogout_OnEmptySession(t *testing.T) {
	m := NewManager(authOK(), storage.NewMemory(), nil)
	m.Logout(context.Background())
	assert.False(t, m.IsAuthenticated())
}

func TestRestore_RoundTripAfterLogin(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	first := NewManager(authOK(), store, nil)
	loggedIn, err := first.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	// Simulated reload: a fresh manager over the same storage.
	second := NewManager(authOK(), store, nil)
	second.Restore(ctx)

	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, loggedIn, second.CurrentUser())
	token, ok := second.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestRestore_NothingPersisted(t *testing.T) {
	m := NewManager(authOK(), storage.NewMemory(), nil)
	m.Restore(context.Background())
	assert.False(t, m.IsAuthenticated())
}

func TestRestore_CorruptUserRecordClearsSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("abc")))
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte(`{not json`)))

	m := NewManager(authOK(), store, nil)
	m.Restore(ctx)

	assert.False(t, m.IsAuthenticated(), "corrupt credential must resolve to fully logged out")
	_, ok := m.Token()
	assert.False(t, ok)

	rawToken, _ := store.Get(ctx, storage.KeyToken)
	rawUser, _ := store.Get(ctx, storage.KeyUser)
	assert.Nil(t, rawToken)
	assert.Nil(t, rawUser)
}

func TestRestore_PartialCredentialClearsSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	// Token present, user missing: a partial credential violates the
	// both-or-neither invariant and must be discarded.
	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("abc")))

	m := NewManager(authOK(), store, nil)
	m.Restore(ctx)

	assert.False(t, m.IsAuthenticated())
	rawToken, _ := store.Get(ctx, storage.KeyToken)
	assert.Nil(t, rawToken)
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewManager(authOK(), storage.NewMemory(), nil)
	_, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	u := m.CurrentUser()
	u.Username = "tampered"
	assert.Equal(t, "biz1", m.CurrentUser().Username)
}

func TestLoginAgainAfterLogout_ReplacesToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	auth := authOK()
	m := NewManager(auth, store, nil)

	_, err := m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)
	m.Logout(ctx)

	auth.loginResp = &models.AuthResponse{Token: "xyz", User: models.User{ID: 1, Username: "biz1"}}
	_, err = m.Login(ctx, "biz1", "secret123")
	require.NoError(t, err)

	token, ok := m.Token()
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)
}
