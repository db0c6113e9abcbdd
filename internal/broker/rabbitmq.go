package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"webhookd/internal/lib/sl"
	"webhookd/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ MessageBroker = &RabbitMQ{}

// RabbitMQ carries queued message ids between a listener and a dispatcher
// running as separate processes.
type RabbitMQ struct {
	wg        sync.WaitGroup
	conn      *amqp.Connection
	ch        *amqp.Channel
	messagesQ amqp.Queue
	closed    chan struct{}
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	messagesQ, err := declareQueue(ch, "messages")
	if err != nil {
		return nil, fmt.Errorf("failed to declare a messages queue: %w", err)
	}

	return &RabbitMQ{
		conn:      conn,
		ch:        ch,
		messagesQ: messagesQ,
		closed:    make(chan struct{}),
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

func (r *RabbitMQ) PublishMessage(ctx context.Context, message model.Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}
	return r.ch.PublishWithContext(ctx, "", r.messagesQ.Name, false, false, msg)
}

func (r *RabbitMQ) ConsumeMessages(ctx context.Context) (<-chan model.Message, error) {
	msgs, err := r.consumeDeliveries(ctx, r.messagesQ.Name)
	if err != nil {
		return nil, err
	}

	messages := make(chan model.Message)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(messages)
		for msg := range msgs {
			var message model.Message
			if err := json.Unmarshal(msg.Body, &message); err != nil {
				slog.Error("failed to parse message body", sl.Error(err))
				continue
			}
			select {
			case <-r.closed:
				return
			case messages <- message:
			}
		}
	}()

	return messages, nil
}

func (r *RabbitMQ) consumeDeliveries(
	ctx context.Context,
	queue string,
) (<-chan amqp.Delivery, error) {
	return r.ch.ConsumeWithContext(
		ctx,
		queue, // queue
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
}

func (r *RabbitMQ) Close() {
	close(r.closed)
	r.ch.Close()
	r.conn.Close()
	r.wg.Wait()
}
