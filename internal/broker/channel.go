package broker

import (
	"context"
	"fmt"
	"sync"

	"webhookd/internal/model"
)

var _ MessageBroker = &Channel{}

// Channel is the in-process broker for single-binary deployments, where the
// listener and the dispatcher share one process.
type Channel struct {
	messages chan model.Message
	closed   chan struct{}
	once     sync.Once
}

func NewChannel() *Channel {
	return &Channel{
		messages: make(chan model.Message, 64),
		closed:   make(chan struct{}),
	}
}

func (c *Channel) PublishMessage(ctx context.Context, message model.Message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return fmt.Errorf("broker is closed")
	case c.messages <- message:
		return nil
	}
}

func (c *Channel) ConsumeMessages(_ context.Context) (<-chan model.Message, error) {
	return c.messages, nil
}

func (c *Channel) Close() {
	c.once.Do(func() {
		close(c.closed)
	})
}
