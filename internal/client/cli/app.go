package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/config"
	"github.com/dmitrijs2005/teamconsole/internal/client/services"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// App is the interactive console. It is also the navigator and the
// notifier handed to the workflows.
type App struct {
	config *config.Config
	store  *session.Store
	log    logging.Logger

	authService services.AuthService
	profile     *services.ProfileWorkflow
	password    *services.PasswordChangeWorkflow
	users       *services.UserListWorkflow

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	view session.Route
}

func NewApp(c *config.Config, api client.Client, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		view:   session.RouteHome,
	}

	guard := session.NewGuard(store, a)
	a.authService = services.NewAuthService(api, store, guard, a, a, log)
	a.profile = services.NewProfileWorkflow(api, guard, store, a, a, log)
	a.password = services.NewPasswordChangeWorkflow(api, guard, a, log)
	a.users = services.NewUserListWorkflow(api, guard, a, log)
	return a
}

// Navigate switches the current view and tells the user where they are.
func (a *App) Navigate(ctx context.Context, route session.Route) {
	a.mu.Lock()
	changed := a.view != route
	a.view = route
	a.mu.Unlock()

	if !changed {
		return
	}
	a.log.Debug(ctx, "navigate", "route", string(route))
	switch route {
	case session.RouteLogin:
		fmt.Fprintln(a.out, "Please sign in: type 'login' or 'register'.")
	case session.RouteHome:
		fmt.Fprintln(a.out, "Signed in. Type 'help' for commands.")
	}
}

func (a *App) Success(ctx context.Context, msg string) {
	fmt.Fprintln(a.out, "✓", msg)
}

func (a *App) Error(ctx context.Context, msg string) {
	fmt.Fprintln(a.out, "✗", msg)
}

func (a *App) currentView() session.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.Read(context.Background())
	return ok
}

func (a *App) isAdmin() bool {
	s, ok := a.store.Read(context.Background())
	return ok && s.User.Role.IsAdmin()
}

func (a *App) getStatus() string {
	s, ok := a.store.Read(context.Background())
	if !ok {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s %s)", s.User.Email, a.currentView())
}

// Run blocks in the REPL until the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Team console for %s (type 'help' for commands)\n", a.config.ServerURL)
	if !a.isLoggedIn() {
		a.Navigate(ctx, session.RouteLogin)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}
