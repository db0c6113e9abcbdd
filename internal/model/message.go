package model

import "time"

const (
	PlatformTelegram = "telegram"
	PlatformDiscord  = "discord"
)

// Message is a rendered notification queued for delivery to one platform.
type Message struct {
	Id         int64     `json:"id"`
	Platform   string    `json:"platform"`
	Body       string    `json:"body"`
	Attempts   int       `json:"attempts"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
