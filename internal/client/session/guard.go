package session

import (
	"context"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
)

type Route string

const (
	RouteLogin   Route = "login"
	RouteHome    Route = "home"
	RouteProfile Route = "profile"
	RouteUsers   Route = "users"
)

// Navigator switches the console to another view.
type Navigator interface {
	Navigate(ctx context.Context, route Route)
}

// Reader is the read side of Store.
type Reader interface {
	Read(ctx context.Context) (*models.Session, bool)
}

type Guard struct {
	store Reader
	nav   Navigator
}

func NewGuard(store Reader, nav Navigator) *Guard {
	return &Guard{store: store, nav: nav}
}

// Require returns the current session. Without one it sends the user to
// the login view and returns client.ErrSessionAbsent; callers must stop
// before making any request.
func (g *Guard) Require(ctx context.Context) (*models.Session, error) {
	s, ok := g.store.Read(ctx)
	if !ok {
		g.nav.Navigate(ctx, RouteLogin)
		return nil, client.ErrSessionAbsent
	}
	return s, nil
}
