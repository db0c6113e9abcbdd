package repository

import (
	"context"
	"webhookd/internal/model"
)

// MessagesProvider is the durable delivery queue: Enqueue puts a message on
// it, MarkSent moves the message into the sent archive, Delete drops a
// message that can never be delivered.
type MessagesProvider interface {
	Enqueue(ctx context.Context, message model.Message) (int64, error)
	GetPending(ctx context.Context, id int64) (model.Message, error)
	ListPending(ctx context.Context, limit int) ([]model.Message, error)
	IncrementAttempts(ctx context.Context, id int64) error
	MarkSent(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
