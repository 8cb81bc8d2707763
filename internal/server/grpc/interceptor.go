package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	pb "github.com/dmitrijs2005/spakiosk/internal/proto"
	"github.com/dmitrijs2005/spakiosk/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const actorKey ctxKey = "actor"

// adminMethods require a valid admin token.
var adminMethods = map[string]bool{
	pb.CouponLedger_CompleteRedemption_FullMethodName: true,
	pb.CouponLedger_RejectRedemption_FullMethodName:   true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if adminMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		actor, err := auth.ActorFromToken(accessToken, s.jwtSecret)
		if err != nil {
			s.logger.Warn(ctx, "admin token rejected", "method", info.FullMethod, "error", err)
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, actorKey, actor)

	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

func actorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	return actor, ok && actor != ""
}
