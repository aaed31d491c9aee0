package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// loggingInterceptor logs every unary call with its duration and outcome.
// Logging is best-effort and never affects the response.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Warn(ctx, "call failed", "method", info.FullMethod, "duration", time.Since(start).String(), "error", err.Error())
	} else {
		s.logger.Info(ctx, "call handled", "method", info.FullMethod, "duration", time.Since(start).String())
	}

	return resp, err
}
