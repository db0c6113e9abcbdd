// Package dispatcher drains the message queue and delivers each message to
// its chat platform, retrying and raising email alerts on failure.
package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"webhookd/internal/broker"
	"webhookd/internal/config"
	"webhookd/internal/lib/sl"
	"webhookd/internal/metrics"
	"webhookd/internal/model"
	"webhookd/internal/notifier"
	"webhookd/internal/service"
)

const listBatchSize = 100

// Alerter is the channel of last resort for undeliverable messages.
type Alerter interface {
	Alert(subject, body string) error
}

type Dispatcher struct {
	broker    broker.MessageBroker
	messages  *service.MessagesService
	notifiers map[string]notifier.Notifier
	alerter   Alerter
	config    config.RetryConfig
}

func New(
	broker broker.MessageBroker,
	messages *service.MessagesService,
	notifiers []notifier.Notifier,
	alerter Alerter,
	config config.RetryConfig,
) (*Dispatcher, error) {
	if config.SendRetryNum < 1 {
		return nil, fmt.Errorf("number of send retries must be at least 1")
	}
	if len(notifiers) == 0 {
		return nil, fmt.Errorf("at least one notifier is required")
	}

	byPlatform := make(map[string]notifier.Notifier, len(notifiers))
	for _, n := range notifiers {
		byPlatform[n.Platform()] = n
	}

	return &Dispatcher{
		broker:    broker,
		messages:  messages,
		notifiers: byPlatform,
		alerter:   alerter,
		config:    config,
	}, nil
}

// Run blocks until ctx is canceled. Messages arrive over the broker right
// after they are enqueued; the poll ticker re-scans the queue so messages
// survive a crash or a lost broker wake-up.
func (d *Dispatcher) Run(ctx context.Context) error {
	messages, err := d.broker.ConsumeMessages(ctx)
	if err != nil {
		return fmt.Errorf("failed to register a consumer for messages: %w", err)
	}

	ticker := time.NewTicker(time.Duration(d.config.PollInterval))
	defer ticker.Stop()

	// deliver whatever a previous run left queued
	if err := d.deliverPending(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case message, ok := <-messages:
			if !ok {
				return fmt.Errorf("queue with messages was closed")
			}
			pending, err := d.messages.GetPending(ctx, message.Id)
			if err != nil {
				return fmt.Errorf("failed to get pending message: %w", err)
			}
			if pending == nil {
				// already delivered by a poll pass
				continue
			}
			if err := d.deliver(ctx, *pending); err != nil {
				return err
			}
		case <-ticker.C:
			if err := d.deliverPending(ctx); err != nil {
				return err
			}
		}
	}
}

func (d *Dispatcher) deliverPending(ctx context.Context) error {
	pending, err := d.messages.ListPending(ctx, listBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending messages: %w", err)
	}

	for _, message := range pending {
		if err := d.deliver(ctx, message); err != nil {
			return err
		}
	}
	return nil
}

// deliver tries a message up to SendRetryNum times. On success the message
// moves to the sent archive; on exhaustion an email alert goes out and the
// message stays queued for the next poll pass.
func (d *Dispatcher) deliver(ctx context.Context, message model.Message) error {
	notif, exists := d.notifiers[message.Platform]
	if !exists {
		slog.Error("no notifier for platform, dropping message", sl.Message(message))
		return d.messages.Delete(ctx, message.Id)
	}

	for attempt := 1; attempt <= d.config.SendRetryNum; attempt++ {
		err := notif.Notify(ctx, message)
		if err == nil {
			if err := d.messages.MarkSent(ctx, message.Id); err != nil {
				return fmt.Errorf("failed to mark message as sent: %w", err)
			}
			metrics.SentMessages.WithLabelValues(message.Platform).Inc()
			slog.Info("message delivered", sl.Message(message))
			return nil
		}

		metrics.FailedSends.WithLabelValues(message.Platform).Inc()
		slog.Error(
			"failed to deliver message",
			sl.Message(message),
			slog.Int("attempt", attempt),
			sl.Error(err),
		)

		if attempt < d.config.SendRetryNum {
			if err := sleep(ctx, time.Duration(d.config.SendRetrySleep)); err != nil {
				return err
			}
		}
	}

	if err := d.messages.IncrementAttempts(ctx, message.Id); err != nil {
		return fmt.Errorf("failed to increment message attempts: %w", err)
	}

	metrics.UndeliverableMessages.WithLabelValues(message.Platform).Inc()
	if err := d.alerter.Alert(
		"Message Delivery Failed",
		fmt.Sprintf("Failed to send %s message %d:\n\n%s",
			message.Platform, message.Id, message.Body),
	); err != nil {
		slog.Error("failed to send email alert", sl.Error(err))
	}

	// the upstream API is likely down, back off before the next message
	return sleep(ctx, time.Duration(d.config.SendRetryWait))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
