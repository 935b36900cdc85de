// Package session owns the authentication credential: who is logged in,
// persisted across restarts. It is the single writer of the persisted
// token/user pair and the gateway's source of the current token.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tzpay/payconsole/internal/logging"
	"github.com/tzpay/payconsole/internal/models"
	"github.com/tzpay/payconsole/internal/storage"
)

// Authenticator is the slice of the gateway the manager drives: the two
// operations that mint a credential.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// Manager is the session store. The credential invariant: token and user are
// either both present or both absent, in memory and in storage.
type Manager struct {
	client Authenticator
	store  storage.Store
	log    logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewManager builds a session manager over the given authenticator and
// persistence capability.
func NewManager(client Authenticator, store storage.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{client: client, store: store, log: log.With("component", "session")}
}

// Restore loads the persisted credential at startup. Anything short of a
// complete, parseable credential — a missing key, a storage error, a corrupt
// user record — resolves to the logged-out state without surfacing an error:
// restoration failure is silent self-healing, not a reported fault. Callers
// must not show protected surfaces until Restore has returned.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		m.log.Warn(ctx, "session restore failed, clearing", "error", err)
		m.Logout(ctx)
		return
	}
	rawUser, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		m.log.Warn(ctx, "session restore failed, clearing", "error", err)
		m.Logout(ctx)
		return
	}
	if len(token) == 0 || len(rawUser) == 0 {
		// No session, or half a session: either way nothing restorable.
		m.Logout(ctx)
		return
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		m.log.Warn(ctx, "discarding unreadable persisted session", "error", err)
		m.Logout(ctx)
		return
	}

	m.mu.Lock()
	m.token = string(token)
	m.user = &user
	m.mu.Unlock()
	m.log.Info(ctx, "session restored", "username", user.Username)
}

// Login authenticates against the backend and, on success, persists the new
// credential atomically before swapping it in. On failure the prior session,
// persisted and in-memory, is left untouched.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return m.CurrentUser(), nil
}

// Register creates the account and establishes a session under the same
// contract as Login.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := m.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return m.CurrentUser(), nil
}

func (m *Manager) persist(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	// Both records in one batch: a token without a user (or the reverse)
	// must never hit storage.
	err = m.store.Update(ctx, func(s storage.Store) error {
		if err := s.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
			return err
		}
		return s.Set(ctx, storage.KeyUser, raw)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()

	m.log.Info(ctx, "session established", "username", user.Username)
	return nil
}

// Logout drops the credential everywhere. It always succeeds: the in-memory
// state is cleared unconditionally and the storage clear is best-effort
// (a failure is logged, not returned). Calling it twice is the same as once.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	wasAuthenticated := m.user != nil
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	err := m.store.Update(ctx, func(s storage.Store) error {
		if err := s.Remove(ctx, storage.KeyToken); err != nil {
			return err
		}
		return s.Remove(ctx, storage.KeyUser)
	})
	if err != nil {
		m.log.Warn(ctx, "could not clear persisted session", "error", err)
	}
	if wasAuthenticated {
		m.log.Info(ctx, "logged out")
	}
}

// IsAuthenticated reports whether a user is currently logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token implements api.TokenProvider for the request gateway.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}
