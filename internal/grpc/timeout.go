package grpchelper

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

const DefaultTimeout = 3 * time.Second

// CallWithTimeout executes a gRPC call bounded by timeout, or DefaultTimeout
// when timeout is not positive. An earlier deadline on ctx still wins.
func CallWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context, opts ...grpc.CallOption) (T, error), opts ...grpc.CallOption) (T, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx, opts...)
}
