package services

import (
	"context"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
)

// Notifier shows transient messages to the user. Calls never block on the
// user and never fail.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// SessionGuard hands out the current session or redirects to sign-in.
type SessionGuard interface {
	Require(ctx context.Context) (*models.Session, error)
}

// Credentials is the write side of the credential store.
type Credentials interface {
	Write(ctx context.Context, token string, user models.UserRecord, remember bool) error
	Clear(ctx context.Context) error
}

// notifyDetails sends one error per server field message. It falls back to
// a single message when the server gave no details.
func notifyDetails(ctx context.Context, n Notifier, err error, fallback string) {
	apiErr := client.AsAPIError(err)
	sent := false
	for _, d := range apiErr.Details {
		if d.Message == "" {
			continue
		}
		n.Error(ctx, d.Message)
		sent = true
	}
	if !sent {
		n.Error(ctx, apiErr.MessageOr(fallback))
	}
}
