package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tipout/pkg/metrics"
)

// MetricsInterceptor records the procedure, status code and latency of each
// RPC on m.
func MetricsInterceptor(m *metrics.Manager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.RecordRPC(req.Spec().Procedure, code, time.Since(start))
			return resp, err
		}
	}
}
