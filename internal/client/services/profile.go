package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/session"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// ProfileWorkflow is the signed-in user's own profile page: view, edit,
// save and self-deletion.
type ProfileWorkflow struct {
	api    client.Client
	guard  SessionGuard
	store  Credentials
	notify Notifier
	nav    session.Navigator
	log    logging.Logger

	loading  atomic.Bool
	saving   atomic.Bool
	deleting atomic.Bool

	mu      sync.Mutex
	profile *models.UserRecord
	draft   models.ProfileDraft
	editing bool
	errMsg  string
}

func NewProfileWorkflow(api client.Client, guard SessionGuard, store Credentials, notify Notifier, nav session.Navigator, log logging.Logger) *ProfileWorkflow {
	return &ProfileWorkflow{api: api, guard: guard, store: store, notify: notify, nav: nav, log: log}
}

// Load fetches the own record and seeds the draft from it.
func (w *ProfileWorkflow) Load(ctx context.Context) error {
	if !w.loading.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.loading.Store(false)

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	u, err := w.api.GetProfile(ctx, s.Token)
	if err != nil {
		w.log.Warn(ctx, "load profile", "error", err)
		w.setError(MsgProfileLoadFailed)
		w.notify.Error(ctx, MsgProfileLoadFailed)
		return fmt.Errorf("load profile: %w", err)
	}

	w.mu.Lock()
	if w.profile != nil && w.profile.ID != u.ID {
		w.editing = false
	}
	w.profile = u
	w.draft = models.DraftOf(*u)
	w.errMsg = ""
	w.mu.Unlock()
	return nil
}

func (w *ProfileWorkflow) EnterEdit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.profile == nil {
		return ErrProfileNotLoaded
	}
	w.editing = true
	return nil
}

// CancelEdit leaves edit mode and throws the draft away.
func (w *ProfileWorkflow) CancelEdit() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.editing = false
	w.errMsg = ""
	if w.profile != nil {
		w.draft = models.DraftOf(*w.profile)
	}
}

func (w *ProfileWorkflow) SetName(name string) error {
	return w.edit(func(d *models.ProfileDraft) { d.Name = name })
}

func (w *ProfileWorkflow) SetEmail(email string) error {
	return w.edit(func(d *models.ProfileDraft) { d.Email = email })
}

func (w *ProfileWorkflow) edit(fn func(d *models.ProfileDraft)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.editing {
		return ErrNotEditing
	}
	fn(&w.draft)
	return nil
}

// Save sends the fields that differ from the loaded record. Nothing is
// sent when the draft is unchanged.
func (w *ProfileWorkflow) Save(ctx context.Context) error {
	if !w.saving.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.saving.Store(false)

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.profile == nil {
		w.mu.Unlock()
		return ErrProfileNotLoaded
	}
	if !w.editing {
		w.mu.Unlock()
		return ErrNotEditing
	}
	patch := w.draft.Diff(*w.profile)
	if patch.Empty() {
		w.editing = false
		w.errMsg = ""
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	u, err := w.api.UpdateProfile(ctx, s.Token, patch)
	if err != nil {
		msg := client.AsAPIError(err).FirstMessage(MsgProfileSaveFailed)
		w.setError(msg)
		w.notify.Error(ctx, msg)
		return fmt.Errorf("update profile: %w", err)
	}

	w.mu.Lock()
	w.profile = u
	w.draft = models.DraftOf(*u)
	w.editing = false
	w.errMsg = ""
	w.mu.Unlock()

	w.notify.Success(ctx, MsgProfileSaved)
	return nil
}

// DeleteAccount removes the signed-in account. confirmed is the outcome of
// the caller's confirmation step; without it nothing happens.
func (w *ProfileWorkflow) DeleteAccount(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if !w.deleting.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.deleting.Store(false)

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	id := s.User.ID
	w.mu.Lock()
	if w.profile != nil && w.profile.ID != id {
		w.mu.Unlock()
		w.Reset()
		w.notify.Error(ctx, MsgAccountDeleteFail)
		return ErrSessionChanged
	}
	w.mu.Unlock()

	if err := w.api.DeleteUser(ctx, s.Token, id); err != nil {
		msg := client.AsAPIError(err).MessageOr(MsgAccountDeleteFail)
		w.setError(msg)
		w.notify.Error(ctx, msg)
		return fmt.Errorf("delete account: %w", err)
	}

	if err := w.store.Clear(ctx); err != nil {
		w.log.Error(ctx, "clear session after account deletion", "error", err)
	}

	w.Reset()

	w.log.Info(ctx, "account deleted", "user_id", id)
	w.notify.Success(ctx, MsgAccountDeleted)
	w.nav.Navigate(ctx, session.RouteLogin)
	return nil
}

// Reset drops the loaded record, the draft and edit mode.
func (w *ProfileWorkflow) Reset() {
	w.mu.Lock()
	w.profile = nil
	w.draft = models.ProfileDraft{}
	w.editing = false
	w.errMsg = ""
	w.mu.Unlock()
}

func (w *ProfileWorkflow) setError(msg string) {
	w.mu.Lock()
	w.errMsg = msg
	w.mu.Unlock()
}

// Profile returns a copy of the loaded record.
func (w *ProfileWorkflow) Profile() (models.UserRecord, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.profile == nil {
		return models.UserRecord{}, false
	}
	return *w.profile, true
}

func (w *ProfileWorkflow) Draft() models.ProfileDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *ProfileWorkflow) Editing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.editing
}

// Error is the last message shown on the page, empty when none.
func (w *ProfileWorkflow) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}
