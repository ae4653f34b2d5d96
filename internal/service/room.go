package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edinfinite/platform-api/internal/domain/model"
	apperrors "github.com/edinfinite/platform-api/internal/errors"
	"github.com/edinfinite/platform-api/internal/ports"
)

// RoomServiceOptions groups dependencies for RoomService.
type RoomServiceOptions struct {
	Rooms     ports.RoomStore
	Libraries ports.LibraryStore
	// Counts is optional; without it member counts always hit the store.
	Counts   ports.MemberCountCache
	CacheTTL time.Duration
}

// RoomService orchestrates room CRUD, messaging, assistant configuration,
// and knowledge attachment. All reads and writes on a specific room go
// through RequireRoomAccess first.
type RoomService struct {
	rooms    ports.RoomStore
	libs     ports.LibraryStore
	counts   ports.MemberCountCache
	cacheTTL time.Duration
}

// NewRoomService constructs a new RoomService.
func NewRoomService(opts RoomServiceOptions) *RoomService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RoomService{
		rooms:    opts.Rooms,
		libs:     opts.Libraries,
		counts:   opts.Counts,
		cacheTTL: ttl,
	}
}

// RequireRoomAccess resolves a room and checks the caller may act on it.
// Order matters: a missing room is NotFound for everyone, the creator is
// always allowed, and anyone else needs an explicit membership row.
func (s *RoomService) RequireRoomAccess(ctx context.Context, roomID, userID string) (*model.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, ports.ErrRoomNotFound) {
			return nil, apperrors.NotFound("room not found")
		}
		return nil, fmt.Errorf("lookup room: %w", err)
	}
	if room.CreatedByUserID == userID {
		return room, nil
	}
	member, err := s.rooms.HasMember(ctx, roomID, userID)
	if err != nil {
		return nil, fmt.Errorf("check room membership: %w", err)
	}
	if !member {
		return nil, apperrors.Forbidden("room access denied")
	}
	return room, nil
}

// Create creates a room owned by userID, backed by a fresh user group. The
// creator gets a membership row; any extra member ids are attached too.
func (s *RoomService) Create(ctx context.Context, userID string, req *model.CreateRoomRequest) (*model.RoomSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	room := &model.Room{
		ID:              uuid.NewString(),
		ClassID:         uuid.NewString(),
		CreatedByUserID: userID,
		Name:            req.Name,
		Description:     req.Description,
		ChannelType:     req.ChannelType,
	}
	if err := s.rooms.Create(ctx, room, req.MemberIDs); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	count, err := s.rooms.MemberCount(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	s.cacheCount(ctx, room.ID, count)
	return &model.RoomSummary{Room: *room, MemberCount: count}, nil
}

// List returns the rooms created by userID, newest first, with member
// counts.
func (s *RoomService) List(ctx context.Context, userID string) ([]*model.RoomSummary, error) {
	rooms, err := s.rooms.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]*model.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		count, err := s.memberCount(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.RoomSummary{Room: *room, MemberCount: count})
	}
	return out, nil
}

// Get returns one room the caller has access to, with its member count.
func (s *RoomService) Get(ctx context.Context, roomID, userID string) (*model.RoomSummary, error) {
	room, err := s.RequireRoomAccess(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.memberCount(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &model.RoomSummary{Room: *room, MemberCount: count}, nil
}

// ListMessages returns the most recent messages in a room, newest first.
func (s *RoomService) ListMessages(ctx context.Context, roomID, userID string, limit int) ([]*model.Message, error) {
	if _, err := s.RequireRoomAccess(ctx, roomID, userID); err != nil {
		return nil, err
	}
	msgs, err := s.rooms.ListMessages(ctx, ports.MessageQuery{RoomID: roomID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// PostMessage stores a new message from userID in the room.
func (s *RoomService) PostMessage(ctx context.Context, roomID, userID string, req *model.PostMessageRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := s.RequireRoomAccess(ctx, roomID, userID); err != nil {
		return nil, err
	}
	msg := &model.Message{
		ID:           uuid.NewString(),
		RoomID:       roomID,
		UserID:       userID,
		ParentID:     req.ParentID,
		TargetUserID: req.TargetUserID,
		Content:      req.Content,
	}
	if err := s.rooms.InsertMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// AttachKnowledge links the caller's libraries to the room. Ids the caller
// does not own (or that do not exist) are skipped and reported back as
// missing instead of failing the batch.
func (s *RoomService) AttachKnowledge(ctx context.Context, roomID, userID string, req *model.AttachKnowledgeRequest) (*model.AttachKnowledgeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := s.RequireRoomAccess(ctx, roomID, userID); err != nil {
		return nil, err
	}

	owned, err := s.libs.FilterOwned(ctx, userID, req.LibraryIDs)
	if err != nil {
		return nil, fmt.Errorf("filter owned libraries: %w", err)
	}

	attachments := make([]model.KnowledgeAttachment, 0, len(owned))
	missing := make([]string, 0)
	for _, id := range req.LibraryIDs {
		if !owned[id] {
			missing = append(missing, id)
			continue
		}
		attachments = append(attachments, model.KnowledgeAttachment{
			RoomID:          roomID,
			LibraryID:       id,
			CreatedByUserID: userID,
		})
	}
	if err := s.rooms.AttachKnowledge(ctx, attachments); err != nil {
		return nil, fmt.Errorf("attach knowledge: %w", err)
	}
	return &model.AttachKnowledgeResult{Attached: len(attachments), Missing: missing}, nil
}

// GetAssistant returns the room's assistant configuration.
func (s *RoomService) GetAssistant(ctx context.Context, roomID, userID string) (*model.Assistant, error) {
	if _, err := s.RequireRoomAccess(ctx, roomID, userID); err != nil {
		return nil, err
	}
	asst, err := s.rooms.GetAssistant(ctx, roomID)
	if err != nil {
		if errors.Is(err, ports.ErrAssistantNotFound) {
			return nil, apperrors.NotFound("assistant not found")
		}
		return nil, fmt.Errorf("get assistant: %w", err)
	}
	return asst, nil
}

// UpsertAssistant creates or replaces the room's assistant configuration.
func (s *RoomService) UpsertAssistant(ctx context.Context, roomID, userID string, req *model.UpsertAssistantRequest) (*model.Assistant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := s.RequireRoomAccess(ctx, roomID, userID); err != nil {
		return nil, err
	}
	asst, err := s.rooms.UpsertAssistant(ctx, &model.Assistant{
		ID:              uuid.NewString(),
		RoomID:          roomID,
		CreatedByUserID: userID,
		ModelID:         req.ModelID,
		Name:            req.Name,
		SystemPrompt:    req.SystemPrompt,
		Temperature:     req.Temperature,
		InvocationMode:  req.InvocationMode,
		ToolConfig:      req.ToolConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert assistant: %w", err)
	}
	return asst, nil
}

// memberCount reads through the cache when one is wired.
func (s *RoomService) memberCount(ctx context.Context, roomID string) (int, error) {
	if s.counts != nil {
		if count, ok, err := s.counts.Get(ctx, roomID); err == nil && ok {
			return count, nil
		}
	}
	count, err := s.rooms.MemberCount(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	s.cacheCount(ctx, roomID, count)
	return count, nil
}

// cacheCount is best effort; a cache failure never fails the request.
func (s *RoomService) cacheCount(ctx context.Context, roomID string, count int) {
	if s.counts == nil {
		return
	}
	if err := s.counts.Set(ctx, roomID, count, s.cacheTTL); err != nil {
		slog.Warn("member count cache set failed", "room_id", roomID, "error", err)
	}
}
