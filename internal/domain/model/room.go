//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	maxRoomNameLen       = 255
	maxMessageContentLen = 64 * 1024
)

// Room is a shared class room. Exactly one creator owns it; other users
// gain access through explicit membership rows.
type Room struct {
	ID              string  `json:"id"                     db:"id"`
	ClassID         string  `json:"class_id"               db:"class_id"`
	CreatedByUserID string  `json:"created_by_user_id"     db:"created_by_user_id"`
	Name            string  `json:"name"                   db:"name"`
	Description     *string `json:"description,omitempty"  db:"description"`
	ChannelType     *string `json:"channel_type,omitempty" db:"channel_type"`
	IsArchived      bool    `json:"is_archived"            db:"is_archived"`
	CreatedAt       int64   `json:"created_at"             db:"created_at"`
	UpdatedAt       int64   `json:"updated_at"             db:"updated_at"`
}

// RoomSummary is the list/read projection of a room with its member count.
type RoomSummary struct {
	Room
	MemberCount int `json:"member_count"`
}

// RoomMember is an explicit membership row. The creator is authorized
// without one (owner bypass).
type RoomMember struct {
	RoomID     string `json:"class_room_id" db:"class_room_id"`
	UserID     string `json:"user_id"       db:"user_id"`
	RoleInRoom string `json:"role_in_room"  db:"role_in_room"`
}

// CreateRoomRequest represents parameters to create a Room.
type CreateRoomRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ChannelType *string  `json:"channel_type,omitempty"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}

// Validate validates CreateRoomRequest.
func (r *CreateRoomRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxRoomNameLen {
		return errors.New("name exceeds maximum length")
	}
	return nil
}

// Message is one chat message in a room.
type Message struct {
	ID           string  `json:"id"                       db:"id"`
	RoomID       string  `json:"class_room_id"            db:"class_room_id"`
	UserID       string  `json:"user_id"                  db:"user_id"`
	ParentID     *string `json:"parent_id,omitempty"      db:"parent_id"`
	TargetUserID *string `json:"target_user_id,omitempty" db:"target_user_id"`
	Content      string  `json:"content"                  db:"content"`
	CreatedAt    int64   `json:"created_at"               db:"created_at"`
}

// PostMessageRequest represents parameters to post a Message.
type PostMessageRequest struct {
	Content      string  `json:"content"`
	ParentID     *string `json:"parent_id,omitempty"`
	TargetUserID *string `json:"target_user_id,omitempty"`
}

// Validate validates PostMessageRequest.
func (r *PostMessageRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required and cannot be empty")
	}
	if len(r.Content) > maxMessageContentLen {
		return errors.New("content exceeds maximum length")
	}
	return nil
}

// KnowledgeAttachment links a library to a room as assistant knowledge.
type KnowledgeAttachment struct {
	RoomID          string `json:"class_room_id"      db:"class_room_id"`
	LibraryID       string `json:"library_id"         db:"library_id"`
	CreatedByUserID string `json:"created_by_user_id" db:"created_by_user_id"`
}

// AttachKnowledgeRequest represents parameters for attaching libraries to a
// room. Ids the caller does not own are reported back as missing rather
// than failing the whole batch.
type AttachKnowledgeRequest struct {
	LibraryIDs []string `json:"library_ids"`
}

// Validate validates AttachKnowledgeRequest.
func (r *AttachKnowledgeRequest) Validate() error {
	if len(r.LibraryIDs) == 0 {
		return errors.New("library_ids is required and cannot be empty")
	}
	for _, id := range r.LibraryIDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("library_ids cannot contain empty ids")
		}
	}
	return nil
}

// AttachKnowledgeResult is the partial-success outcome of an attach call.
type AttachKnowledgeResult struct {
	Attached int      `json:"attached"`
	Missing  []string `json:"missing"`
}
