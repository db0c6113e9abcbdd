package broker

import (
	"context"
	"testing"
	"time"

	"webhookd/internal/model"
)

func TestChannelPublishConsume(t *testing.T) {
	c := NewChannel()
	defer c.Close()

	messages, err := c.ConsumeMessages(context.Background())
	if err != nil {
		t.Fatalf("ConsumeMessages: %v", err)
	}

	want := model.Message{Id: 7, Platform: model.PlatformTelegram, Body: "ping"}
	if err := c.PublishMessage(context.Background(), want); err != nil {
		t.Fatalf("PublishMessage: %v", err)
	}

	select {
	case got := <-messages:
		if got.Id != want.Id || got.Body != want.Body {
			t.Errorf("got %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestChannelPublishAfterClose(t *testing.T) {
	c := NewChannel()
	c.Close()

	err := c.PublishMessage(context.Background(), model.Message{Id: 1})
	if err == nil {
		t.Fatal("expected error publishing to a closed broker")
	}
}

func TestChannelPublishCanceledContext(t *testing.T) {
	c := NewChannel()
	defer c.Close()

	// fill the buffer so publish would block
	ctx := context.Background()
	for i := 0; i < cap(c.messages); i++ {
		if err := c.PublishMessage(ctx, model.Message{Id: int64(i)}); err != nil {
			t.Fatalf("PublishMessage: %v", err)
		}
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.PublishMessage(canceled, model.Message{Id: 999}); err == nil {
		t.Fatal("expected error publishing with canceled context")
	}
}
