package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
	"github.com/dmitrijs2005/teamconsole/internal/client/policy"
	"github.com/dmitrijs2005/teamconsole/internal/logging"
)

// PasswordChangeWorkflow backs the change-password form.
type PasswordChangeWorkflow struct {
	api    client.Client
	guard  SessionGuard
	notify Notifier
	log    logging.Logger

	submitting atomic.Bool

	mu    sync.Mutex
	open  bool
	draft models.PasswordChangeDraft
}

func NewPasswordChangeWorkflow(api client.Client, guard SessionGuard, notify Notifier, log logging.Logger) *PasswordChangeWorkflow {
	return &PasswordChangeWorkflow{api: api, guard: guard, notify: notify, log: log}
}

func (w *PasswordChangeWorkflow) Open() {
	w.mu.Lock()
	w.open = true
	w.mu.Unlock()
}

// Close hides the form and forgets whatever was typed into it.
func (w *PasswordChangeWorkflow) Close() {
	w.mu.Lock()
	w.open = false
	w.draft = models.PasswordChangeDraft{}
	w.mu.Unlock()
}

func (w *PasswordChangeWorkflow) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

func (w *PasswordChangeWorkflow) Draft() models.PasswordChangeDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Submit checks draft locally and, when it passes, asks the server to
// change the password. Local rejections are reported through the notifier
// and return ErrRejected without a request.
func (w *PasswordChangeWorkflow) Submit(ctx context.Context, draft models.PasswordChangeDraft) error {
	if !w.IsOpen() {
		return ErrFormClosed
	}

	if !w.submitting.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer w.submitting.Store(false)

	w.mu.Lock()
	w.draft = draft
	w.mu.Unlock()

	if problems := checkPasswordChange(draft); len(problems) > 0 {
		for _, p := range problems {
			w.notify.Error(ctx, p)
		}
		return ErrRejected
	}

	s, err := w.guard.Require(ctx)
	if err != nil {
		return err
	}

	if err := w.api.ChangePassword(ctx, s.Token, draft.CurrentPassword, draft.NewPassword); err != nil {
		w.log.Warn(ctx, "change password", "error", err)
		notifyDetails(ctx, w.notify, err, MsgPasswordFailed)
		return fmt.Errorf("change password: %w", err)
	}

	w.Close()
	w.notify.Success(ctx, MsgPasswordChanged)
	return nil
}

// checkPasswordChange applies the cross-field rules first; the policy only
// runs once those pass.
func checkPasswordChange(d models.PasswordChangeDraft) []string {
	switch {
	case d.CurrentPassword == "" || d.NewPassword == "":
		return []string{MsgPasswordFieldsEmpty}
	case d.NewPassword != d.ConfirmPassword:
		return []string{MsgPasswordMismatch}
	case d.NewPassword == d.CurrentPassword:
		return []string{MsgPasswordUnchanged}
	}
	return policy.ValidatePassword(d.NewPassword)
}
