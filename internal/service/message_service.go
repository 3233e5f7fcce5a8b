package service

import (
	"context"
	"fmt"
	"strings"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/google/uuid"
)

type MessageService interface {
	Send(ctx context.Context, emitterID, receiverID uuid.UUID, text string) (*model.Message, error)
	// Inbox pages through messages received by the user, newest first,
	// with the emitter populated.
	Inbox(ctx context.Context, receiverID uuid.UUID, page int) (*dto.PaginatedMessages, error)
	// Outbox pages through messages sent by the user, newest first, with
	// both endpoints populated.
	Outbox(ctx context.Context, emitterID uuid.UUID, page int) (*dto.PaginatedMessages, error)
	UnviewedCount(ctx context.Context, receiverID uuid.UUID) (int64, error)
	// MarkAllViewed flags every unread message for the receiver, across
	// all senders, and returns how many changed.
	MarkAllViewed(ctx context.Context, receiverID uuid.UUID) (int64, error)
}

type messageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

func (s *messageService) Send(ctx context.Context, emitterID, receiverID uuid.UUID, text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message must have text: %w", apperror.ErrBadRequest)
	}
	if receiverID == uuid.Nil {
		return nil, fmt.Errorf("message must have a receiver: %w", apperror.ErrBadRequest)
	}

	message := &model.Message{
		Text:       text,
		EmitterID:  emitterID,
		ReceiverID: receiverID,
		Viewed:     false,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *messageService) Inbox(ctx context.Context, receiverID uuid.UUID, page int) (*dto.PaginatedMessages, error) {
	if page < 1 {
		page = 1
	}

	messages, total, err := s.messages.FindByReceiver(ctx, receiverID, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedMessages{
		Total:    total,
		Pages:    dto.TotalPages(total, dto.ItemsPerPage),
		Messages: messages,
	}, nil
}

func (s *messageService) Outbox(ctx context.Context, emitterID uuid.UUID, page int) (*dto.PaginatedMessages, error) {
	if page < 1 {
		page = 1
	}

	messages, total, err := s.messages.FindByEmitter(ctx, emitterID, dto.Offset(page, dto.ItemsPerPage), dto.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedMessages{
		Total:    total,
		Pages:    dto.TotalPages(total, dto.ItemsPerPage),
		Messages: messages,
	}, nil
}

func (s *messageService) UnviewedCount(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	return s.messages.CountUnviewed(ctx, receiverID)
}

func (s *messageService) MarkAllViewed(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	return s.messages.MarkViewed(ctx, receiverID)
}
