//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxLibraryNameLen = 255

// Library is a user-owned knowledge library. Exactly one owner; no
// membership rows exist for libraries.
type Library struct {
	ID          string  `json:"id"                    db:"id"`
	UserID      string  `json:"user_id"               db:"user_id"`
	Name        string  `json:"name"                  db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	CreatedAt   int64   `json:"created_at"            db:"created_at"`
	UpdatedAt   int64   `json:"updated_at"            db:"updated_at"`
}

// CreateLibraryRequest represents parameters to create a Library.
type CreateLibraryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Validate validates CreateLibraryRequest.
func (r *CreateLibraryRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxLibraryNameLen {
		return errors.New("name exceeds maximum length")
	}
	return nil
}
