package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/services"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/common"
)

// deleteAccountPhrase must be typed verbatim to confirm self-deletion.
const deleteAccountPhrase = "DELETE"

func (a *App) Profile(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}
	a.Navigate(ctx, session.RouteProfile)

	p, _ := a.profile.Profile()
	a.printProfile(p)
	return nil
}

func (a *App) printProfile(p models.UserRecord) {
	fmt.Fprintf(a.out, "Name:    %s\n", p.Name)
	fmt.Fprintf(a.out, "Email:   %s\n", p.Email)
	fmt.Fprintf(a.out, "Role:    %s\n", p.Role)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "Created: %s\n", p.CreatedAt.Local().Format(time.DateTime))
	}
	if !p.UpdatedAt.IsZero() {
		fmt.Fprintf(a.out, "Updated: %s\n", p.UpdatedAt.Local().Format(time.DateTime))
	}
}

// Edit loads the profile, asks for new values and saves what changed. An
// empty answer keeps the current value.
func (a *App) Edit(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}
	a.Navigate(ctx, session.RouteProfile)

	if err := a.profile.EnterEdit(); err != nil {
		return err
	}
	draft := a.profile.Draft()

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", draft.Name), a.out)
	if err != nil {
		a.profile.CancelEdit()
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", draft.Email), a.out)
	if err != nil {
		a.profile.CancelEdit()
		return err
	}
	if name != "" {
		_ = a.profile.SetName(name)
	}
	if email != "" {
		_ = a.profile.SetEmail(email)
	}

	save, err := getConfirmation(a.reader, "Save changes?", true, a.out)
	if err != nil || !save {
		a.profile.CancelEdit()
		return err
	}

	if err := a.profile.Save(ctx); err != nil {
		a.profile.CancelEdit()
		return err
	}

	p, _ := a.profile.Profile()
	a.printProfile(p)
	return nil
}

// ChangePassword opens the password form for one submission.
func (a *App) ChangePassword(ctx context.Context) error {
	a.password.Open()
	defer a.password.Close()

	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	return a.password.Submit(ctx, models.PasswordChangeDraft{
		CurrentPassword: string(current),
		NewPassword:     string(next),
		ConfirmPassword: string(confirm),
	})
}

// DeleteAccount asks twice before deleting the signed-in account.
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.profile.Load(ctx); err != nil {
		return err
	}

	first, err := getConfirmation(a.reader, "Delete your account? This cannot be undone.", false, a.out)
	if err != nil {
		return err
	}
	confirmed := first
	if first {
		phrase, err := getSimpleText(a.reader, fmt.Sprintf("Type %s to confirm", deleteAccountPhrase), a.out)
		if err != nil {
			return err
		}
		confirmed = phrase == deleteAccountPhrase
	}

	err = a.profile.DeleteAccount(ctx, confirmed)
	switch {
	case err == nil:
		a.forgetPages()
	case errors.Is(err, services.ErrNotConfirmed):
		fmt.Fprintln(a.out, "Account deletion cancelled.")
	}
	return err
}
