package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/services"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
)

// Users lists every account with a note on which ones may be deleted.
func (a *App) Users(ctx context.Context) error {
	if err := a.users.Load(ctx); err != nil {
		return err
	}
	a.Navigate(ctx, session.RouteUsers)

	self := a.selfID()
	list := a.users.Users()

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tDELETE")
	for _, u := range list {
		note := "yes"
		if ok, reason := services.Eligibility(self, u); !ok {
			note = "no: " + reason
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d user(s)\n", len(list))
	return nil
}

// DeleteUser reloads the list, stages the account with the given id and
// deletes it once the user confirms.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	if err := a.users.Load(ctx); err != nil {
		return err
	}

	target, ok := findUser(a.users.Users(), id)
	if !ok {
		a.Error(ctx, fmt.Sprintf("no user with id %s", id))
		return services.ErrIneligible
	}
	if ok, reason := services.Eligibility(a.selfID(), target); !ok {
		a.Error(ctx, reason)
		return services.ErrIneligible
	}

	a.users.RequestDelete(target)
	yes, err := getConfirmation(a.reader, fmt.Sprintf("Delete %s <%s>?", target.Name, target.Email), false, a.out)
	if err != nil || !yes {
		a.users.CancelDelete()
		return err
	}
	return a.users.ConfirmDelete(ctx)
}

func (a *App) selfID() string {
	s, ok := a.store.Read(context.Background())
	if !ok {
		return ""
	}
	return s.User.ID
}

func findUser(list []models.UserRecord, id string) (models.UserRecord, bool) {
	for _, u := range list {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserRecord{}, false
}
