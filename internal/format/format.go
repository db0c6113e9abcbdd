// Package format renders controller events into per-platform message bodies.
package format

import (
	"fmt"
	"strings"
	"time"

	"webhookd/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

// Render builds the chat message body for an event. Telegram gets Markdown
// with underscores escaped, Discord gets double-asterisk bold markers.
func Render(event model.Event, platform string) string {
	parts := []string{
		line(platform, "Site", escape(orNA(event.Site), platform)),
		line(platform, "Description", escape(orNA(event.Description), platform)),
		line(platform, "Controller", escape(orNA(event.Controller), platform)),
		line(platform, "Timestamp", escape(renderTimestamp(event.Timestamp), platform)),
	}

	if len(event.Text) > 0 {
		parts = append(parts, bold(platform, "Events:"))
		for _, l := range event.Text {
			parts = append(parts, "- "+escape(l, platform))
		}
	}

	return strings.Join(parts, "\n")
}

// line pads labels so values align under the longest one ("Description").
func line(platform, label, value string) string {
	width := len(bold(platform, "Description")) + 2
	return fmt.Sprintf("%-*s%s", width, bold(platform, label)+":", value)
}

func bold(platform, s string) string {
	if platform == model.PlatformDiscord {
		return "**" + s + "**"
	}
	return "*" + s + "*"
}

// escape protects Telegram Markdown from underscores in event text such as
// device names. Discord handles Markdown differently and needs no escaping.
func escape(s, platform string) string {
	if platform == model.PlatformTelegram {
		return strings.ReplaceAll(s, "_", `\_`)
	}
	return s
}

func renderTimestamp(millis int64) string {
	if millis == 0 {
		return "N/A"
	}
	return time.UnixMilli(millis).UTC().Format(timestampLayout)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
