package grpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/phone"
	pb "github.com/dmitrijs2005/spakiosk/internal/proto"
	"github.com/dmitrijs2005/spakiosk/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) IssueToken(ctx context.Context, req *pb.IssueTokenRequest) (*pb.IssueTokenResponse, error) {
	if strings.TrimSpace(req.KioskId) == "" {
		return nil, status.Error(codes.InvalidArgument, "kiosk_id is required")
	}

	it, err := s.coupons.IssueToken(ctx, req.KioskId, req.IssuedFor)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.IssueTokenResponse{
		Token:     it.Token,
		Payload:   it.Payload,
		DeepLink:  it.DeepLink,
		ExpiresAt: timestamppb.New(it.ExpiresAt),
	}, nil
}

func (s *GRPCServer) ConsumeToken(ctx context.Context, req *pb.ConsumeTokenRequest) (*pb.ConsumeTokenResponse, error) {
	identity, err := requirePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Token) == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	limit, err := s.limitFor(ctx, services.EndpointConsume)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if err := s.limits.Enforce(ctx, identity, services.EndpointConsume, limit); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.coupons.ConsumeToken(ctx, identity, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if res.OK && !res.AlreadyUsed {
		s.increment(ctx, identity, services.EndpointConsume)
	}

	return &pb.ConsumeTokenResponse{
		Ok:              res.OK,
		Balance:         int32(res.Balance),
		RemainingToFree: int32(res.RemainingToFree),
		AlreadyUsed:     res.AlreadyUsed,
		Code:            string(res.Code),
	}, nil
}

func (s *GRPCServer) GetWallet(ctx context.Context, req *pb.GetWalletRequest) (*pb.GetWalletResponse, error) {
	identity, err := requirePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	w, err := s.coupons.GetWallet(ctx, identity)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.GetWalletResponse{}
	if w != nil {
		resp.Exists = true
		resp.Balance = int32(w.CouponCount)
		resp.TotalEarned = int32(w.TotalEarned)
		resp.TotalRedeemed = int32(w.TotalRedeemed)
		resp.OptedInMarketing = w.OptedInMarketing
	}

	next, remaining, err := s.policy.RemainingForNextReward(ctx, int(resp.Balance))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	resp.RemainingToNext = int32(remaining)
	if next != nil {
		resp.NextRewardId = next.ID
		resp.NextRewardName = next.Name
	}
	return resp, nil
}

func (s *GRPCServer) ClaimRedemption(ctx context.Context, req *pb.ClaimRedemptionRequest) (*pb.ClaimRedemptionResponse, error) {
	identity, err := requirePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.limits.Enforce(ctx, identity, services.EndpointClaim, s.claimsPerDay); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.coupons.ClaimRedemption(ctx, identity, req.RewardTierId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if res.OK && res.IsNew {
		s.increment(ctx, identity, services.EndpointClaim)
	}

	return &pb.ClaimRedemptionResponse{
		Ok:           res.OK,
		RedemptionId: res.RedemptionID,
		RewardName:   res.RewardName,
		Balance:      int32(res.Balance),
		Needed:       int32(res.Needed),
		Threshold:    int32(res.Threshold),
		IsNew:        res.IsNew,
		Code:         string(res.Code),
	}, nil
}

func (s *GRPCServer) CompleteRedemption(ctx context.Context, req *pb.CompleteRedemptionRequest) (*emptypb.Empty, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	if err := s.coupons.CompleteRedemption(ctx, req.RedemptionId, actor); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RejectRedemption(ctx context.Context, req *pb.RejectRedemptionRequest) (*emptypb.Empty, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	if err := s.coupons.RejectRedemption(ctx, req.RedemptionId, req.Note, actor); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) OptOut(ctx context.Context, req *pb.OptOutRequest) (*emptypb.Empty, error) {
	identity, err := requirePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.coupons.OptOut(ctx, identity); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) CheckLimit(ctx context.Context, req *pb.CheckLimitRequest) (*pb.CheckLimitResponse, error) {
	identity, err := requirePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	limit, err := s.limitFor(ctx, req.Endpoint)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	d, err := s.limits.CheckLimit(ctx, identity, req.Endpoint, limit)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.CheckLimitResponse{Allowed: d.Allowed, Limit: int32(limit)}
	if !d.Allowed {
		resp.RetryAfterSeconds = d.RetryAfterSeconds()
	}
	return resp, nil
}

var errUnknownEndpoint = errors.New("unknown endpoint")

// limitFor returns the daily quota of endpoint: the coupon policy governs
// consumption, the server configuration governs claims.
func (s *GRPCServer) limitFor(ctx context.Context, endpoint string) (int, error) {
	switch endpoint {
	case services.EndpointConsume:
		p, err := s.policy.GetPolicy(ctx)
		if err != nil {
			return 0, err
		}
		return p.MaxCouponsPerDay, nil
	case services.EndpointClaim:
		return s.claimsPerDay, nil
	default:
		return 0, errUnknownEndpoint
	}
}

// increment records a successful operation. The operation already
// committed, so a counter failure is logged and not reported.
func (s *GRPCServer) increment(ctx context.Context, identity, endpoint string) {
	if _, err := s.limits.IncrementCounter(ctx, identity, endpoint); err != nil {
		s.logger.Error(ctx, "error incrementing rate limit counter", "endpoint", endpoint, "phone", phone.Mask(identity), "error", err)
	}
}

func requirePhone(raw string) (string, error) {
	p := phone.Normalize(raw)
	if p == "" {
		return "", status.Error(codes.InvalidArgument, "phone is required")
	}
	return p, nil
}

// toStatus maps service errors to gRPC status errors. Rate-limited calls
// carry the retry-after seconds in a trailer.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var rle *common.RateLimitError
	switch {
	case errors.As(err, &rle):
		md := metadata.Pairs(common.RetryAfterHeaderName, strconv.FormatInt(rle.RetryAfterSeconds(), 10))
		if terr := grpc.SetTrailer(ctx, md); terr != nil {
			s.logger.Warn(ctx, "error setting trailer", "error", terr)
		}
		return status.Error(codes.ResourceExhausted, rle.Error())
	case errors.Is(err, common.ErrRedemptionNotFound),
		errors.Is(err, common.ErrRewardTierNotFound),
		errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrRejectionNoteRequired),
		errors.Is(err, common.ErrInvalidSetting),
		errors.Is(err, common.ErrUnknownSetting),
		errors.Is(err, errUnknownEndpoint):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrRedemptionFinalized):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
