package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v4"

	"webhookd/internal/config"
	"webhookd/internal/model"
)

// Notifier is a send-only Telegram client, no poller attached. Creating it
// validates the token against the API.
type Notifier struct {
	bot    *telebot.Bot
	chatId int64
}

func New(config config.TelegramConfig) (*Notifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  config.ApiKey,
		URL:    config.ApiUrl,
		Client: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &Notifier{
		bot:    bot,
		chatId: config.ChatId,
	}, nil
}

func (n *Notifier) Platform() string {
	return model.PlatformTelegram
}

func (n *Notifier) Notify(_ context.Context, message model.Message) error {
	_, err := n.bot.Send(
		telebot.ChatID(n.chatId),
		message.Body,
		telebot.ModeMarkdown,
		telebot.NoPreview,
	)
	if err != nil {
		return fmt.Errorf("failed to send message to chat: %w", err)
	}
	return nil
}
