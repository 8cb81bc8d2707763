package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/spakiosk/internal/logging"
	pb "github.com/dmitrijs2005/spakiosk/internal/proto"
	"github.com/dmitrijs2005/spakiosk/internal/server/services"
	"google.golang.org/grpc"
)

// GRPCServer exposes the coupon ledger to kiosks, the messaging gateway
// and the admin dashboard.
type GRPCServer struct {
	pb.UnimplementedCouponLedgerServer
	address      string
	coupons      *services.CouponService
	policy       *services.CouponPolicyService
	limits       *services.RateLimitService
	claimsPerDay int
	logger       logging.Logger
	jwtSecret    []byte
}

func NewGRPCServer(a string, l logging.Logger, cs *services.CouponService, ps *services.CouponPolicyService,
	rl *services.RateLimitService, claimsPerDay int, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		coupons:      cs,
		policy:       ps,
		limits:       rl,
		claimsPerDay: claimsPerDay,
		jwtSecret:    []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterCouponLedgerServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
