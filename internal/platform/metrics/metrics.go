package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/transport"
)

// Metrics holds the Prometheus collectors of the back-office service.
type Metrics struct {
	gatherer         prometheus.Gatherer
	outcomes         *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	notificationsOut *prometheus.CounterVec
	brokerEvents     *prometheus.CounterVec
}

var (
	_ outcome.Recorder          = (*Metrics)(nil)
	_ transport.LatencyObserver = (*Metrics)(nil)
)

// New registers the collectors on registry. Pass prometheus.NewRegistry()
// in tests to keep registrations isolated.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		gatherer: registry,
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_bff_operation_outcomes_total",
			Help: "Operations executed by the back-office API, by outcome code",
		}, []string{"operation", "code"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracker_bff_upstream_request_seconds",
			Help:    "Latency of calls to the upstream Tracker Mobility API",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
		notificationsOut: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_bff_notifications_total",
			Help: "Notifications pushed to websocket subscribers, by kind",
		}, []string{"kind"}),
		brokerEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_bff_broker_events_total",
			Help: "Upstream change events consumed, by entity",
		}, []string{"entity"}),
	}
}

// Record counts one operation outcome.
func (m *Metrics) Record(operation string, code outcome.Code) {
	m.outcomes.WithLabelValues(operation, string(code)).Inc()
}

// ObserveUpstream records one upstream round-trip. Status 0 means no
// response was received.
func (m *Metrics) ObserveUpstream(method, _ string, status int, elapsed time.Duration) {
	m.upstreamLatency.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) IncNotification(kind string) {
	m.notificationsOut.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncBrokerEvent(entity string) {
	m.brokerEvents.WithLabelValues(entity).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
