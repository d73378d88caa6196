package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Register prompts for name, e-mail and password and creates the account.
// The new session lives only as long as this process.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Register(ctx, models.RegistrationForm{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}
	a.forgetPages()
	return nil
}

// Login prompts for credentials and whether to remember the session
// across restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := getConfirmation(a.reader, "Remember me on this machine?", false, a.out)
	if err != nil {
		return err
	}

	s, err := a.authService.Login(ctx, email, string(password), remember)
	if err != nil {
		return err
	}
	a.forgetPages()
	fmt.Fprintf(a.out, "Welcome, %s!\n", s.User.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	defer a.forgetPages()
	return a.authService.Logout(ctx)
}

// forgetPages drops everything the previous user loaded.
func (a *App) forgetPages() {
	a.profile.Reset()
	a.password.Close()
	a.users.Reset()
}

func (a *App) WhoAmI(ctx context.Context) error {
	id, err := a.authService.WhoAmI(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:    %s\n", id.User.ID)
	fmt.Fprintf(a.out, "Name:  %s\n", id.User.Name)
	fmt.Fprintf(a.out, "Email: %s\n", id.User.Email)
	fmt.Fprintf(a.out, "Role:  %s\n", id.User.Role)
	if id.HasExpiry {
		fmt.Fprintf(a.out, "Token expires: %s\n", id.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
