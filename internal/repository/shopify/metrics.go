package shopify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records outbound GraphQL calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the upstream collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopify_requests_total",
				Help: "Total number of Shopify GraphQL requests by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopify_request_duration_seconds",
			Help:    "Latency of Shopify GraphQL requests that reached the network.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	if !start.IsZero() {
		m.duration.Observe(time.Since(start).Seconds())
	}
}
