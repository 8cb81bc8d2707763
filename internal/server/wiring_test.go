package server

import (
	"context"
	"database/sql"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/inmemory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func TestNewServices(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc, err := NewServices(db, inmemory.NewStore(), testConfig(), nil, logging.Nop())
	require.NoError(t, err)
	assert.NotNil(t, svc.Events)
	assert.NotNil(t, svc.Policy)
	assert.NotNil(t, svc.Coupons)
	assert.NotNil(t, svc.Limits)
	assert.NotNil(t, svc.Archiver)

	p, err := svc.Policy.GetPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, p.RedemptionThreshold)
}

func TestNewServices_BadTimezone(t *testing.T) {
	c := testConfig()
	c.ResetTimezone = "Mars/Olympus"

	_, err := NewServices(nil, inmemory.NewStore(), c, nil, logging.Nop())
	assert.Error(t, err)
}

func TestRunMetricsServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runMetricsServer(ctx, "127.0.0.1:0", prometheus.NewRegistry(), logging.Nop())
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestRunMetricsServer_BadAddress(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := runMetricsServer(ctx, "127.0.0.1:99999", prometheus.NewRegistry(), logging.Nop())
	assert.Error(t, err)
}
