package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// UserListWorkflow is the admin view of all accounts.
type UserListWorkflow struct {
	api    client.Client
	guard  SessionGuard
	notify Notifier
	log    logging.Logger

	loading  atomic.Bool
	deleting atomic.Bool

	mu      sync.Mutex
	owner   string
	users   []models.UserRecord
	pending *models.UserRecord
	errMsg  string
}

func NewUserListWorkflow(api client.Client, guard SessionGuard, notify Notifier, log logging.Logger) *UserListWorkflow {
	return &UserListWorkflow{api: api, guard: guard, notify: notify, log: log}
}

// Load fetches every account. Non-admins are turned away before any
// request is made.
func (w *UserListWorkflow) Load(ctx context.Context) error {
	if !w.loading.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.loading.Store(false)

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	if !s.User.Role.IsAdmin() {
		w.Reset()
		w.setError(MsgUsersForbidden)
		w.notify.Error(ctx, MsgUsersForbidden)
		return client.ErrPermissionDenied
	}

	users, err := w.api.ListUsers(ctx, s.Token)
	if err != nil {
		msg := MsgUsersLoadFailed
		if errors.Is(err, client.ErrPermissionDenied) {
			msg = MsgUsersForbidden
		}
		w.log.Warn(ctx, "list users", "error", err)
		w.setError(msg)
		w.notify.Error(ctx, msg)
		return fmt.Errorf("list users: %w", err)
	}

	w.mu.Lock()
	if w.owner != s.User.ID {
		w.pending = nil
	}
	w.owner = s.User.ID
	w.users = users
	w.errMsg = ""
	w.mu.Unlock()
	return nil
}

// Reset forgets the loaded list and any staged target.
func (w *UserListWorkflow) Reset() {
	w.mu.Lock()
	w.owner = ""
	w.users = nil
	w.pending = nil
	w.errMsg = ""
	w.mu.Unlock()
}

// Eligibility reports whether target may be deleted by the signed-in user
// whose id is self. The reason is empty when it may.
func Eligibility(self string, target models.UserRecord) (bool, string) {
	switch {
	case target.ID == self:
		return false, MsgCannotDeleteSelf
	case target.Role.IsAdmin():
		return false, MsgCannotDeleteAdmin
	}
	return true, ""
}

// RequestDelete stages target for deletion. Nothing is sent until
// ConfirmDelete.
func (w *UserListWorkflow) RequestDelete(target models.UserRecord) {
	w.mu.Lock()
	w.pending = &target
	w.mu.Unlock()
}

func (w *UserListWorkflow) CancelDelete() {
	w.mu.Lock()
	w.pending = nil
	w.mu.Unlock()
}

// ConfirmDelete deletes the staged account and drops it from the list.
// Only an admin whose own Load produced the list may confirm. On failure
// the list and the staged target are left as they were.
func (w *UserListWorkflow) ConfirmDelete(ctx context.Context) error {
	if !w.deleting.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.deleting.Store(false)

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	if !s.User.Role.IsAdmin() {
		w.Reset()
		w.notify.Error(ctx, MsgUsersForbidden)
		return client.ErrPermissionDenied
	}

	w.mu.Lock()
	if w.owner != s.User.ID {
		w.mu.Unlock()
		w.Reset()
		return ErrSessionChanged
	}
	if w.pending == nil {
		w.mu.Unlock()
		return ErrNotConfirmed
	}
	target := *w.pending
	w.mu.Unlock()

	if ok, reason := Eligibility(s.User.ID, target); !ok {
		w.notify.Error(ctx, reason)
		return ErrIneligible
	}

	if err := w.api.DeleteUser(ctx, s.Token, target.ID); err != nil {
		msg := client.AsAPIError(err).MessageOr(MsgUserDeleteFailed)
		w.setError(msg)
		w.notify.Error(ctx, msg)
		return fmt.Errorf("delete user %s: %w", target.ID, err)
	}

	w.mu.Lock()
	w.users = slices.DeleteFunc(w.users, func(u models.UserRecord) bool { return u.ID == target.ID })
	w.pending = nil
	w.errMsg = ""
	w.mu.Unlock()

	w.log.Info(ctx, "user deleted", "user_id", target.ID)
	w.notify.Success(ctx, MsgUserDeleted)
	return nil
}

func (w *UserListWorkflow) setError(msg string) {
	w.mu.Lock()
	w.errMsg = msg
	w.mu.Unlock()
}

// Users returns a copy of the loaded list.
func (w *UserListWorkflow) Users() []models.UserRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.users)
}

// Pending returns the staged target, if any.
func (w *UserListWorkflow) Pending() (models.UserRecord, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return models.UserRecord{}, false
	}
	return *w.pending, true
}

func (w *UserListWorkflow) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}
