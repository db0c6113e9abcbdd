package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"webhookd/internal/config"
	"webhookd/internal/model"
)

// Notifier posts messages to a Discord channel through the REST API.
type Notifier struct {
	client    *http.Client
	apiUrl    string
	token     string
	channelId string
}

func New(config config.DiscordConfig) *Notifier {
	return &Notifier{
		client:    &http.Client{Timeout: 30 * time.Second},
		apiUrl:    config.ApiUrl,
		token:     config.BotToken,
		channelId: config.ChannelId,
	}
}

func (n *Notifier) Platform() string {
	return model.PlatformDiscord
}

func (n *Notifier) Notify(ctx context.Context, message model.Message) error {
	body, err := json.Marshal(map[string]string{"content": message.Body})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/channels/%s/messages", n.apiUrl, n.channelId)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message to channel: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord api returned status %d", resp.StatusCode)
	}
	return nil
}
