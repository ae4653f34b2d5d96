//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "testing"

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"valid", LoginRequest{Email: "a@example.com", Password: "pw"}, false},
		{"missing email", LoginRequest{Password: "pw"}, true},
		{"whitespace email", LoginRequest{Email: "   ", Password: "pw"}, true},
		{"missing password", LoginRequest{Email: "a@example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequestNormalizedEmail(t *testing.T) {
	r := LoginRequest{Email: "  teacher@example.com "}
	if got := r.NormalizedEmail(); got != "teacher@example.com" {
		t.Errorf("NormalizedEmail() = %q", got)
	}
}

func TestUserAuthLockedAt(t *testing.T) {
	future := int64(2_000)
	u := UserAuth{LockedUntil: &future}

	if !u.LockedAt(1_000) {
		t.Error("record with future locked_until should be locked")
	}
	if u.LockedAt(3_000) {
		t.Error("record with past locked_until should not be locked")
	}

	u.LockedUntil = nil
	if u.LockedAt(1_000) {
		t.Error("record without locked_until should not be locked")
	}
}

func TestAttachKnowledgeRequestValidate(t *testing.T) {
	valid := AttachKnowledgeRequest{LibraryIDs: []string{"a", "b"}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	empty := AttachKnowledgeRequest{}
	if err := empty.Validate(); err == nil {
		t.Error("empty library_ids should fail validation")
	}

	blank := AttachKnowledgeRequest{LibraryIDs: []string{"a", " "}}
	if err := blank.Validate(); err == nil {
		t.Error("blank library id should fail validation")
	}
}
