package models

// ProfileDraft is the editable projection of a UserRecord.
type ProfileDraft struct {
	Name  string
	Email string
}

// DraftOf seeds a draft from the record's editable fields.
func DraftOf(u UserRecord) ProfileDraft {
	return ProfileDraft{Name: u.Name, Email: u.Email}
}

// ProfilePatch is a partial profile update. A nil field is left out of the
// payload and therefore untouched on the server.
type ProfilePatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Email == nil
}

// Diff returns the patch that turns base into d, restricted to name and
// e-mail.
func (d ProfileDraft) Diff(base UserRecord) ProfilePatch {
	var p ProfilePatch
	if d.Name != base.Name {
		name := d.Name
		p.Name = &name
	}
	if d.Email != base.Email {
		email := d.Email
		p.Email = &email
	}
	return p
}

// PasswordChangeDraft is the password form's content. It is never persisted.
type PasswordChangeDraft struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}
