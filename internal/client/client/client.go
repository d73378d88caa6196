package client

import (
	"context"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
)

// Client is the console's view of the team-management API. Methods that
// take a token send it as a bearer credential; an empty token sends none.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, form models.RegistrationForm) (*models.AuthResult, error)
	GetProfile(ctx context.Context, token string) (*models.UserRecord, error)
	UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (*models.UserRecord, error)
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, token, id string) error
	ListUsers(ctx context.Context, token string) ([]models.UserRecord, error)
}
