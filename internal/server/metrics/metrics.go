// Package metrics exposes Prometheus counters for ledger activity.
// All recording methods are safe on a nil *Metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spakiosk"

type Metrics struct {
	tokensIssued        prometheus.Counter
	couponsAwarded      prometheus.Counter
	consumeRejections   *prometheus.CounterVec
	redemptions         *prometheus.CounterVec
	rateLimitRejections *prometheus.CounterVec
	abuseWarnings       *prometheus.CounterVec
}

// New registers the ledger collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		tokensIssued: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Coupon tokens issued to kiosks.",
		}),
		couponsAwarded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupons_awarded_total",
			Help:      "Coupons credited to wallets.",
		}),
		consumeRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consume_rejections_total",
			Help:      "Token consumptions that did not award a coupon, by result code.",
		}, []string{"reason"}),
		redemptions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Redemption state changes, by outcome.",
		}, []string{"outcome"}),
		rateLimitRejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Calls blocked by the daily quota, by endpoint.",
		}, []string{"endpoint"}),
		abuseWarnings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "abuse_warnings_total",
			Help:      "Abuse warnings raised for bursts of blocked calls, by endpoint.",
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) TokenIssued() {
	if m == nil {
		return
	}
	m.tokensIssued.Inc()
}

func (m *Metrics) CouponAwarded() {
	if m == nil {
		return
	}
	m.couponsAwarded.Inc()
}

func (m *Metrics) ConsumeRejected(reason string) {
	if m == nil {
		return
	}
	m.consumeRejections.WithLabelValues(reason).Inc()
}

// Redemption counts one redemption outcome: granted, completed, rejected or expired.
func (m *Metrics) Redemption(outcome string) {
	if m == nil {
		return
	}
	m.redemptions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RateLimited(endpoint string) {
	if m == nil {
		return
	}
	m.rateLimitRejections.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) AbuseWarning(endpoint string) {
	if m == nil {
		return
	}
	m.abuseWarnings.WithLabelValues(endpoint).Inc()
}

// Handler serves the collectors gathered by g in the exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
