package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReceivedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhookd_received_messages_total",
		Help: "Webhook notifications accepted and queued for delivery",
	}, []string{"platform"})

	SentMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhookd_sent_messages_total",
		Help: "Messages delivered to the chat platform",
	}, []string{"platform"})

	FailedSends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhookd_failed_sends_total",
		Help: "Delivery attempts that failed",
	}, []string{"platform"})

	UndeliverableMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhookd_undeliverable_messages_total",
		Help: "Messages that exhausted their retry budget",
	}, []string{"platform"})
)
