package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// ---- fake client ----

// fakeClient implements client.Client. Results are configured per method
// and arguments of the last call are recorded in Last* fields.
type fakeClient struct {
	mu sync.Mutex

	LoginRet *models.AuthResult
	LoginErr error

	RegisterRet *models.AuthResult
	RegisterErr error

	GetProfileRet *models.UserRecord
	GetProfileErr error

	UpdateProfileRet *models.UserRecord
	UpdateProfileErr error

	ChangePasswordErr error

	DeleteUserErr error

	ListUsersRet []models.UserRecord
	ListUsersErr error

	// block, when set, is waited on inside every call
	block chan struct{}

	LastLoginEmail    string
	LastLoginPassword string
	LastRegisterForm  models.RegistrationForm
	LastToken         string
	LastPatch         models.ProfilePatch
	LastCurrentPw     string
	LastNewPw         string
	LastDeleteID      string

	Calls map[string]int
}

func (f *fakeClient) record(method, token string) {
	f.mu.Lock()
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[method]++
	if token != "" {
		f.LastToken = token
	}
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
}

func (f *fakeClient) calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		n += c
	}
	return n
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	f.record("Login", "")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, form models.RegistrationForm) (*models.AuthResult, error) {
	f.LastRegisterForm = form
	f.record("Register", "")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) GetProfile(ctx context.Context, token string) (*models.UserRecord, error) {
	f.record("GetProfile", token)
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (*models.UserRecord, error) {
	f.LastPatch = patch
	f.record("UpdateProfile", token)
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	f.LastCurrentPw, f.LastNewPw = currentPassword, newPassword
	f.record("ChangePassword", token)
	return f.ChangePasswordErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, token, id string) error {
	f.LastDeleteID = id
	f.record("DeleteUser", token)
	return f.DeleteUserErr
}

func (f *fakeClient) ListUsers(ctx context.Context, token string) ([]models.UserRecord, error) {
	f.record("ListUsers", token)
	return f.ListUsersRet, f.ListUsersErr
}

// ---- fake notifier / navigator ----

type fakeNotifier struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *fakeNotifier) Success(ctx context.Context, msg string) {
	n.mu.Lock()
	n.Successes = append(n.Successes, msg)
	n.mu.Unlock()
}

func (n *fakeNotifier) Error(ctx context.Context, msg string) {
	n.mu.Lock()
	n.Errors = append(n.Errors, msg)
	n.mu.Unlock()
}

type fakeNavigator struct {
	mu     sync.Mutex
	Routes []session.Route
}

func (n *fakeNavigator) Navigate(ctx context.Context, route session.Route) {
	n.mu.Lock()
	n.Routes = append(n.Routes, route)
	n.mu.Unlock()
}

func (n *fakeNavigator) last() session.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Routes) == 0 {
		return ""
	}
	return n.Routes[len(n.Routes)-1]
}

// ---- fixtures ----

type env struct {
	api    *fakeClient
	store  *session.Store
	guard  *session.Guard
	notify *fakeNotifier
	nav    *fakeNavigator
	log    logging.Logger
}

func newEnv() *env {
	e := &env{
		api:    &fakeClient{},
		store:  session.NewStore(session.NewMemoryLifetime(), session.NewMemoryLifetime(), logging.Discard()),
		notify: &fakeNotifier{},
		nav:    &fakeNavigator{},
		log:    logging.Discard(),
	}
	e.guard = session.NewGuard(e.store, e.nav)
	return e
}

// signIn stores a session for user in the ephemeral lifetime.
func (e *env) signIn(user models.UserRecord) {
	if err := e.store.Write(context.Background(), "tok-"+user.ID, user, false); err != nil {
		panic(err)
	}
}

var (
	member = models.UserRecord{ID: "u-1", Email: "ana@example.com", Name: "Ana", Role: models.RoleMember}
	admin  = models.UserRecord{ID: "u-9", Email: "root@example.com", Name: "Root", Role: "ADMIN"}
	other  = models.UserRecord{ID: "u-2", Email: "bob@example.com", Name: "Bob", Role: models.RoleMember}
	admin2 = models.UserRecord{ID: "u-8", Email: "eve@example.com", Name: "Eve", Role: models.RoleAdmin}
)
