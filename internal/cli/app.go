// Package cli is the interactive console over the payment backend: a REPL
// wiring the session manager, the request gateway, and the local credential
// store together.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/tzpay/payconsole/internal/api"
	"github.com/tzpay/payconsole/internal/callback"
	"github.com/tzpay/payconsole/internal/config"
	"github.com/tzpay/payconsole/internal/logging"
	"github.com/tzpay/payconsole/internal/session"
	"github.com/tzpay/payconsole/internal/storage"
)

// App holds the wired components behind the REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      api.Client
	session  *session.Manager
	verifier *callback.Verifier
	store    *storage.SQLite
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires config -> storage -> gateway -> session and restores any
// persisted session before returning, so by the time the REPL prompt shows,
// the authentication state is settled.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel)

	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	// The gateway reads the token through the manager; the manager logs in
	// through the gateway. The closure breaks the construction cycle.
	var sess *session.Manager
	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, api.TokenProviderFunc(func() (string, bool) {
		return sess.Token()
	}), log)
	sess = session.NewManager(apiClient, store, log)

	sess.Restore(ctx)

	return &App{
		config:   cfg,
		log:      log,
		api:      apiClient,
		session:  sess,
		verifier: callback.NewVerifier(apiClient, log),
		store:    store,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the payment console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the credential store.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Username + ")"
	}
	return ""
}
