package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/teamconsole/internal/client/client"
	"github.com/dmitrijs2005/teamconsole/internal/client/models"
)

func newUserList(e *env) *UserListWorkflow {
	return NewUserListWorkflow(e.api, e.guard, e.notify, e.log)
}

func loadedUserList(t *testing.T, e *env) *UserListWorkflow {
	t.Helper()
	e.signIn(admin)
	e.api.ListUsersRet = []models.UserRecord{member, admin, other, admin2}
	w := newUserList(e)
	require.NoError(t, w.Load(context.Background()))
	return w
}

func TestUsers_Load_NonAdminNeverCalls(t *testing.T) {
	e := newEnv()
	e.signIn(member)
	w := newUserList(e)

	err := w.Load(context.Background())
	require.ErrorIs(t, err, client.ErrPermissionDenied)
	assert.Zero(t, e.api.total())
	assert.Equal(t, MsgUsersForbidden, w.Error())
}

func TestUsers_Load_ServerForbidden(t *testing.T) {
	e := newEnv()
	e.signIn(admin)
	e.api.ListUsersErr = &client.APIError{Kind: client.KindPermission, Status: 403, Message: "Forbidden"}
	w := newUserList(e)

	require.Error(t, w.Load(context.Background()))
	assert.Equal(t, []string{MsgUsersForbidden}, e.notify.Errors)
}

func TestUsers_Load_OtherFailure(t *testing.T) {
	e := newEnv()
	e.signIn(admin)
	e.api.ListUsersErr = &client.APIError{Kind: client.KindValidation, Status: 500, Message: "boom"}
	w := newUserList(e)

	require.Error(t, w.Load(context.Background()))
	assert.Equal(t, []string{MsgUsersLoadFailed}, e.notify.Errors)
}

func TestUsers_Load_NoSession(t *testing.T) {
	e := newEnv()
	w := newUserList(e)

	require.ErrorIs(t, w.Load(context.Background()), client.ErrSessionAbsent)
	assert.Zero(t, e.api.total())
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name   string
		target models.UserRecord
		ok     bool
		reason string
	}{
		{"member", other, true, ""},
		{"self", admin, false, MsgCannotDeleteSelf},
		{"other admin", admin2, false, MsgCannotDeleteAdmin},
		{"upper-case admin role", models.UserRecord{ID: "u-7", Role: "ADMIN"}, false, MsgCannotDeleteAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Eligibility(admin.ID, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestUsers_ConfirmDelete_RemovesPreservingOrder(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)

	w.RequestDelete(member)
	assert.Zero(t, e.api.calls("DeleteUser"), "staging must not call the API")

	require.NoError(t, w.ConfirmDelete(context.Background()))
	assert.Equal(t, member.ID, e.api.LastDeleteID)
	assert.Equal(t, []models.UserRecord{admin, other, admin2}, w.Users())
	_, staged := w.Pending()
	assert.False(t, staged)
	assert.Equal(t, 1, e.api.calls("ListUsers"), "no refetch after delete")
}

func TestUsers_ConfirmDelete_IneligibleNeverCalls(t *testing.T) {
	for _, target := range []models.UserRecord{admin, admin2} {
		e := newEnv()
		w := loadedUserList(t, e)

		w.RequestDelete(target)
		require.ErrorIs(t, w.ConfirmDelete(context.Background()), ErrIneligible)
		assert.Zero(t, e.api.calls("DeleteUser"))
		assert.Len(t, w.Users(), 4)
	}
}

func TestUsers_ConfirmDelete_FailureKeepsState(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)
	e.api.DeleteUserErr = &client.APIError{Kind: client.KindValidation, Message: "user owns a team"}

	w.RequestDelete(other)
	require.Error(t, w.ConfirmDelete(context.Background()))

	assert.Equal(t, []models.UserRecord{member, admin, other, admin2}, w.Users())
	p, staged := w.Pending()
	require.True(t, staged)
	assert.Equal(t, other, p)
	assert.Equal(t, []string{"user owns a team"}, e.notify.Errors)
}

func TestUsers_ConfirmDelete_NothingStaged(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)

	require.ErrorIs(t, w.ConfirmDelete(context.Background()), ErrNotConfirmed)
	assert.Zero(t, e.api.calls("DeleteUser"))
}

func TestUsers_CancelDelete(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)

	w.RequestDelete(other)
	w.CancelDelete()
	_, staged := w.Pending()
	assert.False(t, staged)
}

func TestUsers_UsersReturnsCopy(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)

	got := w.Users()
	got[0].Name = "mutated"
	assert.Equal(t, member.Name, w.Users()[0].Name)
}

func TestUsers_ConfirmDelete_MemberCannotUseAdminList(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)
	ctx := context.Background()
	w.RequestDelete(other)

	require.NoError(t, e.store.Clear(ctx))
	e.signIn(member)

	require.ErrorIs(t, w.ConfirmDelete(ctx), client.ErrPermissionDenied)
	assert.Zero(t, e.api.calls("DeleteUser"))
	assert.Empty(t, w.Users(), "the admin's list must not outlive the session")
	_, staged := w.Pending()
	assert.False(t, staged)
}

func TestUsers_ConfirmDelete_AnotherAdminMustReload(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)
	ctx := context.Background()
	w.RequestDelete(other)

	require.NoError(t, e.store.Clear(ctx))
	e.signIn(admin2)

	require.ErrorIs(t, w.ConfirmDelete(ctx), ErrSessionChanged)
	assert.Zero(t, e.api.calls("DeleteUser"))
	assert.Empty(t, w.Users())
}

func TestUsers_Load_MemberDropsCachedList(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)
	ctx := context.Background()

	require.NoError(t, e.store.Clear(ctx))
	e.signIn(member)

	require.ErrorIs(t, w.Load(ctx), client.ErrPermissionDenied)
	assert.Empty(t, w.Users())
	assert.Equal(t, 1, e.api.calls("ListUsers"))
}

func TestUsers_Reset(t *testing.T) {
	e := newEnv()
	w := loadedUserList(t, e)
	w.RequestDelete(other)

	w.Reset()

	assert.Empty(t, w.Users())
	_, staged := w.Pending()
	assert.False(t, staged)
	assert.Empty(t, w.Error())
	require.ErrorIs(t, w.ConfirmDelete(context.Background()), ErrSessionChanged)
	assert.Zero(t, e.api.calls("DeleteUser"))
}
