package notifier

import (
	"context"

	"webhookd/internal/model"
)

type Notifier interface {
	Platform() string
	Notify(ctx context.Context, message model.Message) error
}
