// Package services holds the console's workflows: sign-in and sign-up,
// the own-profile page, the password form and the admin user list.
//
// Every workflow re-checks the session through a guard before it touches
// the API, reports failures through a Notifier, and refuses re-entrant
// calls of an operation that is still in flight.
package services

import "errors"

var (
	ErrBusy             = errors.New("operation already in progress")
	ErrNotConfirmed     = errors.New("action not confirmed")
	ErrIneligible       = errors.New("target cannot be deleted")
	ErrProfileNotLoaded = errors.New("profile not loaded")
	ErrRejected         = errors.New("input rejected")
	ErrNotEditing       = errors.New("profile is not in edit mode")
	ErrFormClosed       = errors.New("password form is not open")
	ErrSessionChanged   = errors.New("signed-in user changed since the data was loaded")
)

// User-facing messages.
const (
	MsgLoginFailed       = "could not sign in"
	MsgCredentialsNeeded = "email and password are required"
	MsgRegisterFailed    = "could not create account"
	MsgRegistered        = "account created"
	MsgLogoutFailed      = "could not sign out"

	MsgProfileLoadFailed = "could not load profile"
	MsgProfileSaveFailed = "could not update profile"
	MsgProfileSaved      = "profile updated"
	MsgAccountDeleteFail = "could not delete account"
	MsgAccountDeleted    = "account deleted"

	MsgPasswordFieldsEmpty = "current and new password are required"
	MsgPasswordMismatch    = "new password and confirmation do not match"
	MsgPasswordUnchanged   = "new password must differ from the current one"
	MsgPasswordFailed      = "could not change password"
	MsgPasswordChanged     = "password changed"

	MsgUsersLoadFailed   = "could not load users"
	MsgUsersForbidden    = "you do not have permission to view users"
	MsgUserDeleteFailed  = "could not delete user"
	MsgUserDeleted       = "user deleted"
	MsgCannotDeleteSelf  = "you cannot delete your own account here"
	MsgCannotDeleteAdmin = "admin accounts cannot be deleted"
)
