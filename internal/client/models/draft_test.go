package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileDraft_Diff(t *testing.T) {
	base := UserRecord{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: RoleMember}

	tests := []struct {
		name    string
		draft   ProfileDraft
		payload string
	}{
		{name: "unchanged", draft: DraftOf(base), payload: `{}`},
		{name: "name only", draft: ProfileDraft{Name: "Ana Maria", Email: base.Email}, payload: `{"name":"Ana Maria"}`},
		{name: "email only", draft: ProfileDraft{Name: base.Name, Email: "ana@corp.io"}, payload: `{"email":"ana@corp.io"}`},
		{name: "both", draft: ProfileDraft{Name: "A", Email: "a@b.c"}, payload: `{"name":"A","email":"a@b.c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := tt.draft.Diff(base)
			b, err := json.Marshal(patch)
			require.NoError(t, err)
			assert.JSONEq(t, tt.payload, string(b))
			assert.Equal(t, tt.payload == `{}`, patch.Empty())
		})
	}
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, Role("ADMIN").IsAdmin())
	assert.False(t, RoleMember.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}
