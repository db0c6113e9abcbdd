package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webhookd/internal/config"
	"webhookd/internal/model"
)

func TestNotifySendsMessage(t *testing.T) {
	var gotPath, gotAuth, gotContent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		gotContent = payload["content"]

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer ts.Close()

	n := New(config.DiscordConfig{
		ApiUrl:    ts.URL,
		BotToken:  "token123",
		ChannelId: "chat123",
	})

	err := n.Notify(context.Background(), model.Message{
		Platform: model.PlatformDiscord,
		Body:     "device_joined",
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if gotPath != "/channels/chat123/messages" {
		t.Errorf("path = %q, want /channels/chat123/messages", gotPath)
	}
	if gotAuth != "Bot token123" {
		t.Errorf("authorization = %q, want Bot token123", gotAuth)
	}
	if gotContent != "device_joined" {
		t.Errorf("content = %q, want device_joined", gotContent)
	}
}

func TestNotifyUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	n := New(config.DiscordConfig{ApiUrl: ts.URL, BotToken: "t", ChannelId: "c"})

	if err := n.Notify(context.Background(), model.Message{Body: "x"}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
