package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/policy"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/common"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// AuthService signs users in and out.
//
// Contract:
//   - Login: authenticate and store the session in the lifetime chosen by remember.
//   - Register: validate the form locally, create the account, store the
//     session in the ephemeral lifetime.
//   - Logout: clear both lifetimes and return to the sign-in view.
//   - WhoAmI: report the current session.
type AuthService interface {
	Login(ctx context.Context, email, password string, remember bool) (*models.Session, error)
	Register(ctx context.Context, form models.RegistrationForm) (*models.Session, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*Identity, error)
}

// Identity is the signed-in user plus the token expiry, when the token
// carries one.
type Identity struct {
	User      models.UserRecord
	ExpiresAt time.Time
	HasExpiry bool
}

type authService struct {
	api      client.Client
	store    Credentials
	guard    SessionGuard
	notify   Notifier
	nav      session.Navigator
	validate *validator.Validate
	log      logging.Logger
}

func NewAuthService(api client.Client, store Credentials, guard SessionGuard, notify Notifier, nav session.Navigator, log logging.Logger) AuthService {
	return &authService{
		api:      api,
		store:    store,
		guard:    guard,
		notify:   notify,
		nav:      nav,
		validate: newValidator(),
		log:      log,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (a *authService) Login(ctx context.Context, email, password string, remember bool) (*models.Session, error) {
	email = common.NormalizeEmail(email)
	if email == "" || password == "" {
		a.notify.Error(ctx, MsgCredentialsNeeded)
		return nil, ErrRejected
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.notify.Error(ctx, client.AsAPIError(err).MessageOr(MsgLoginFailed))
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := a.store.Write(ctx, res.Token, res.User, remember); err != nil {
		a.notify.Error(ctx, MsgLoginFailed)
		return nil, fmt.Errorf("store session: %w", err)
	}

	a.log.Info(ctx, "signed in", "user_id", res.User.ID, "remember", remember)
	a.nav.Navigate(ctx, session.RouteHome)
	return &models.Session{Token: res.Token, User: res.User}, nil
}

func (a *authService) Register(ctx context.Context, form models.RegistrationForm) (*models.Session, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = common.NormalizeEmail(form.Email)

	problems := a.formProblems(form)
	problems = append(problems, policy.ValidatePassword(form.Password)...)
	if len(problems) > 0 {
		for _, p := range problems {
			a.notify.Error(ctx, p)
		}
		return nil, ErrRejected
	}

	res, err := a.api.Register(ctx, form)
	if err != nil {
		notifyDetails(ctx, a.notify, err, MsgRegisterFailed)
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := a.store.Write(ctx, res.Token, res.User, false); err != nil {
		a.notify.Error(ctx, MsgRegisterFailed)
		return nil, fmt.Errorf("store session: %w", err)
	}

	a.log.Info(ctx, "account registered", "user_id", res.User.ID)
	a.notify.Success(ctx, MsgRegistered)
	a.nav.Navigate(ctx, session.RouteHome)
	return &models.Session{Token: res.Token, User: res.User}, nil
}

// formProblems turns struct-tag failures into one message per field.
func (a *authService) formProblems(form models.RegistrationForm) []string {
	err := a.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			out = append(out, fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param()))
		case "email":
			out = append(out, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return out
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "clear session", "error", err)
		a.notify.Error(ctx, MsgLogoutFailed)
		return fmt.Errorf("logout: %w", err)
	}
	a.nav.Navigate(ctx, session.RouteLogin)
	return nil
}

func (a *authService) WhoAmI(ctx context.Context) (*Identity, error) {
	s, err := a.guard.Require(ctx)
	if err != nil {
		return nil, err
	}

	id := &Identity{User: s.User}
	id.ExpiresAt, id.HasExpiry = session.TokenExpiry(s.Token)
	return id, nil
}
