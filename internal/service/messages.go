package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"webhookd/internal/model"
	"webhookd/internal/repository"
)

// MessagesService wraps the queue repository with the configured query
// timeout so callers never hang on a wedged database.
type MessagesService struct {
	messages repository.MessagesProvider
	timeout  time.Duration
}

func NewMessagesService(
	messages repository.MessagesProvider,
	timeout time.Duration,
) *MessagesService {
	return &MessagesService{
		messages: messages,
		timeout:  timeout,
	}
}

// Enqueue stores the message and returns it with its queue id filled in.
func (s *MessagesService) Enqueue(
	ctx context.Context,
	message model.Message,
) (model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.messages.Enqueue(ctx, message)
	if err != nil {
		return model.Message{}, err
	}

	message.Id = id
	return message, nil
}

// GetPending returns nil when the message is no longer queued.
func (s *MessagesService) GetPending(ctx context.Context, id int64) (*model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	message, err := s.messages.GetPending(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (s *MessagesService) ListPending(ctx context.Context, limit int) ([]model.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.messages.ListPending(ctx, limit)
}

func (s *MessagesService) IncrementAttempts(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.messages.IncrementAttempts(ctx, id)
}

func (s *MessagesService) MarkSent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.messages.MarkSent(ctx, id)
}

func (s *MessagesService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.messages.Delete(ctx, id)
}
