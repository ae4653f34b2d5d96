//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"errors"
	"strings"
)

// Assistant is the per-room assistant configuration. At most one row exists
// per room; posting again overwrites it in place.
type Assistant struct {
	ID              string          `json:"id"                      db:"id"`
	RoomID          string          `json:"class_room_id"           db:"class_room_id"`
	CreatedByUserID string          `json:"-"                       db:"created_by_user_id"`
	ModelID         string          `json:"model_id"                db:"model_id"`
	Name            *string         `json:"name,omitempty"          db:"name"`
	SystemPrompt    *string         `json:"system_prompt,omitempty" db:"system_prompt"`
	Temperature     float64         `json:"temperature"             db:"temperature"`
	InvocationMode  string          `json:"invocation_mode"         db:"invocation_mode"`
	ToolConfig      json.RawMessage `json:"tool_config,omitempty"   db:"tool_config"`
	IsActive        bool            `json:"is_active"               db:"is_active"`
	CreatedAt       int64           `json:"created_at"              db:"created_at"`
	UpdatedAt       int64           `json:"updated_at"              db:"updated_at"`
}

// UpsertAssistantRequest represents parameters to create or replace a
// room's assistant.
type UpsertAssistantRequest struct {
	ModelID        string          `json:"model_id"`
	Name           *string         `json:"name,omitempty"`
	SystemPrompt   *string         `json:"system_prompt,omitempty"`
	Temperature    float64         `json:"temperature"`
	InvocationMode string          `json:"invocation_mode"`
	ToolConfig     json.RawMessage `json:"tool_config,omitempty"`
}

// Validate validates UpsertAssistantRequest, applying defaults for optional
// fields the way the API has always done.
func (r *UpsertAssistantRequest) Validate() error {
	if strings.TrimSpace(r.ModelID) == "" {
		return errors.New("model_id is required and cannot be empty")
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return errors.New("temperature must be between 0 and 2")
	}
	if r.Temperature == 0 {
		r.Temperature = 0.7
	}
	if r.InvocationMode == "" {
		r.InvocationMode = "manual"
	}
	return nil
}
