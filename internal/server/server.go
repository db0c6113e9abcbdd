package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webhookd/internal/broker"
	"webhookd/internal/config"
	"webhookd/internal/format"
	"webhookd/internal/lib/sl"
	"webhookd/internal/metrics"
	"webhookd/internal/model"
	"webhookd/internal/server/middleware"
	"webhookd/internal/server/request"
	"webhookd/internal/server/response"
	"webhookd/internal/service"
)

type Server struct {
	server   *http.Server
	messages *service.MessagesService
	broker   broker.MessageBroker
}

// New wires the webhook routes. Platform routes are only registered for
// platforms enabled in the config, so a disabled platform answers 404.
func New(
	messages *service.MessagesService,
	broker broker.MessageBroker,
	config *config.Config,
	address string,
) *Server {
	router := http.NewServeMux()

	s := &Server{
		server: &http.Server{
			Addr:    address,
			Handler: middleware.Logging(router),
		},
		messages: messages,
		broker:   broker,
	}

	auth := func(handler http.HandlerFunc) http.Handler {
		return middleware.Auth(config.WebhookSecret, handler)
	}

	if config.Telegram.Enable {
		router.Handle("POST /tg_msg", auth(s.queueTelegram))
	}
	if config.Discord.Enable {
		router.Handle("POST /discord_msg", auth(s.queueDiscord))
	}
	router.Handle("POST /webhook", auth(s.debugWebhook))
	router.HandleFunc("GET /{$}", s.health)
	router.Handle("GET /metrics", promhttp.Handler())

	return s
}

func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) queueTelegram(w http.ResponseWriter, r *http.Request) {
	s.queueMessage(w, r, model.PlatformTelegram)
}

func (s *Server) queueDiscord(w http.ResponseWriter, r *http.Request) {
	s.queueMessage(w, r, model.PlatformDiscord)
}

func (s *Server) queueMessage(w http.ResponseWriter, r *http.Request, platform string) {
	var event model.Event
	if err := request.ReadJSON(r, &event); err != nil {
		slog.Error("invalid event payload", sl.Error(err))
		response.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid event payload"))
		return
	}
	event.StripSecret()

	slog.Debug("received event", slog.String("platform", platform), sl.Event(event))

	message := model.Message{
		Platform:   platform,
		Body:       format.Render(event, platform),
		EnqueuedAt: time.Now().UTC(),
	}

	message, err := s.messages.Enqueue(r.Context(), message)
	if err != nil {
		slog.Error("failed to enqueue message", sl.Error(err))
		response.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.ReceivedMessages.WithLabelValues(platform).Inc()

	if err := s.broker.PublishMessage(r.Context(), message); err != nil {
		// the poll loop picks the message up even if the wake-up is lost
		slog.Error("failed to publish message", sl.Message(message), sl.Error(err))
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "queued"})
}

// debugWebhook logs whatever the controller sends, secret stripped. Useful
// when wiring up a new controller notification type.
func (s *Server) debugWebhook(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := request.ReadJSON(r, &body); err != nil {
		slog.Error("invalid webhook payload", sl.Error(err))
		response.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid webhook payload"))
		return
	}
	delete(body, "shardSecret")

	slog.Debug("webhook received",
		slog.Any("headers", r.Header),
		slog.Any("body", body),
	)

	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "received"})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "Webhook server is running"})
}
