package grpc

import (
	"context"
	"database/sql"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	pb "github.com/dmitrijs2005/spakiosk/internal/proto"
	"github.com/dmitrijs2005/spakiosk/internal/server/auth"
	"github.com/dmitrijs2005/spakiosk/internal/server/config"
	"github.com/dmitrijs2005/spakiosk/internal/server/metrics"
	"github.com/dmitrijs2005/spakiosk/internal/server/repositories/inmemory"
	"github.com/dmitrijs2005/spakiosk/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	_ "modernc.org/sqlite"
)

const (
	testSecret   = "test-secret"
	testPhone    = "905551234567"
	claimsPerDay = 2
)

type testServer struct {
	client pb.CouponLedgerClient
	store  *inmemory.Store
	policy *services.CouponPolicyService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.WhatsAppNumber = "+90 555 000 00 00"

	store := inmemory.NewStore()
	log := logging.Nop()
	met := metrics.New(prometheus.NewRegistry())
	events := services.NewEventLogService(db, store, log, services.WithPhoneHashKey("test-key"))
	policy := services.NewCouponPolicyService(db, store, events, log, time.Minute)
	coupons := services.NewCouponService(db, store, policy, events, met, log, cfg)
	limits := services.NewRateLimitService(db, store, time.UTC, nil, events, met, log)

	srv := NewGRPCServer("bufnet", log, coupons, policy, limits, claimsPerDay, testSecret)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return &testServer{client: pb.NewCouponLedgerClient(conn), store: store, policy: policy}
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.GenerateAdminToken("reception-1", []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return tok
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), nil, nil, nil, claimsPerDay, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), nil, nil, nil, claimsPerDay, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
