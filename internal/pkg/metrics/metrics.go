package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pullup"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ride_transitions_total", Help: "Ride status transitions"},
		[]string{"from", "to"},
	)
	DispatchPending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "dispatch_pending", Help: "Rides waiting for a simulated driver assignment",
	})
	DriversOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "drivers_online_changes", Help: "Net driver online toggles observed by this instance",
	})
	WebSocketConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Name: "websocket_connections", Help: "Open WebSocket connections"},
		[]string{"feed"},
	)
	WalletTopUpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "wallet_topups_total", Help: "Wallet top-up attempts"},
		[]string{"provider", "result"},
	)
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "events_published_total", Help: "Events published to brokers"},
		[]string{"broker", "subject", "result"},
	)
)

// Handler exposes the default registry for scraping
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// Result renders an error as a metric label
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
