package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.TokenIssued()
	m.TokenIssued()
	m.CouponAwarded()
	m.ConsumeRejected("EXPIRED_TOKEN")
	m.Redemption("granted")
	m.Redemption("rejected")
	m.RateLimited("consume")
	m.AbuseWarning("consume")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.tokensIssued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.couponsAwarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.consumeRejections.WithLabelValues("EXPIRED_TOKEN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redemptions.WithLabelValues("granted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimitRejections.WithLabelValues("consume")))

	expected := `
# HELP spakiosk_abuse_warnings_total Abuse warnings raised for bursts of blocked calls, by endpoint.
# TYPE spakiosk_abuse_warnings_total counter
spakiosk_abuse_warnings_total{endpoint="consume"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "spakiosk_abuse_warnings_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TokenIssued()
		m.CouponAwarded()
		m.ConsumeRejected("INVALID_TOKEN")
		m.Redemption("completed")
		m.RateLimited("claim")
		m.AbuseWarning("claim")
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).TokenIssued()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spakiosk_tokens_issued_total 1")
}
