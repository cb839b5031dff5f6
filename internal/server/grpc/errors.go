package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. Unexpected errors are logged
// and replaced with a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrRecipientKeyMissing):
		return status.Error(codes.FailedPrecondition, common.ErrRecipientKeyMissing.Error())
	default:
		s.logger.Error(ctx, "request failed", "op", op, "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
