package sl

import (
	"log/slog"
	"webhookd/internal/model"
)

func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

func Message(message model.Message) slog.Attr {
	return slog.Group("message",
		slog.Int64("id", message.Id),
		slog.String("platform", message.Platform),
		slog.Int("attempts", message.Attempts),
	)
}

func Event(event model.Event) slog.Attr {
	return slog.Group("event",
		slog.String("site", event.Site),
		slog.String("description", event.Description),
		slog.String("controller", event.Controller),
		slog.Int64("timestamp", event.Timestamp),
	)
}
