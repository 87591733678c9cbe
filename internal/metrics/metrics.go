package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Live channel metrics
var (
	// Subscribers - текущее число подключенных дашбордов
	Subscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rtcc_live_subscribers",
			Help: "Current number of connected live dashboard subscribers",
		},
	)

	// EventsPublished считает опубликованные события по типу
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtcc_events_published_total",
			Help: "Total events published to the live channel by kind",
		},
		[]string{"kind"},
	)

	// DeliveryFailures считает отключения подписчиков по причине
	DeliveryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtcc_delivery_failures_total",
			Help: "Subscribers dropped during delivery by reason (overflow, write_error, closed)",
		},
		[]string{"reason"},
	)

	MessageWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rtcc_message_write_duration_seconds",
			Help:    "Time spent writing one message to a subscriber connection",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)
)

// Simulator metrics
var (
	SimulatorTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rtcc_simulator_ticks_total",
			Help: "Total background simulator ticks executed",
		},
	)

	// SimulatorErrors считает ошибки хранилища внутри тика по шагу
	SimulatorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtcc_simulator_errors_total",
			Help: "Store errors swallowed by the simulator by tick step",
		},
		[]string{"step"},
	)
)

// Webhook metrics
var (
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rtcc_webhook_deliveries_total",
			Help: "Outbound webhook delivery attempts by result",
		},
		[]string{"result"},
	)
)
