package broker

import (
	"context"

	"webhookd/internal/model"
)

// MessageBroker is the wake-up path between the webhook listener and the
// dispatcher. The database queue stays the source of truth: a message lost
// here is picked up by the dispatcher's poll.
type MessageBroker interface {
	PublishMessage(ctx context.Context, message model.Message) error
	ConsumeMessages(ctx context.Context) (<-chan model.Message, error)

	Close()
}
