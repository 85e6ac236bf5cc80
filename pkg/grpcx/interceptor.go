// Package grpcx mounts the fault boundary on a gRPC server and converts
// faults to and from gRPC statuses.
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/service-lib/pkg/boundary"
	"github.com/Goden-Gun/service-lib/pkg/config"
	"github.com/Goden-Gun/service-lib/pkg/errkind"
	"github.com/Goden-Gun/service-lib/pkg/headers"
	"github.com/Goden-Gun/service-lib/pkg/journal"
	"github.com/Goden-Gun/service-lib/pkg/tracing"
)

// ServerOptions configures the interceptors.
type ServerOptions struct {
	// Domain is the ErrorInfo domain, usually the service's DNS name.
	Domain string
	// Headers enables correlation metadata validation; nil disables it.
	// SkipPrefixes are matched against the full method name.
	Headers *config.HeaderConfig
}

type server struct {
	b    *boundary.Boundary
	opts ServerOptions
}

// UnaryServerInterceptor recovers panics, validates correlation metadata and
// turns handler errors into statuses built by ToStatus.
func UnaryServerInterceptor(b *boundary.Boundary, opts ServerOptions) grpc.UnaryServerInterceptor {
	s := server{b: b, opts: opts}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if v := recover(); v != nil {
				resp, err = nil, s.fail(ctx, info.FullMethod, errkind.Recovered(v))
			}
		}()
		if f := s.validate(ctx, info.FullMethod); f != nil {
			return nil, s.fail(ctx, info.FullMethod, f)
		}
		resp, err = handler(ctx, req)
		if err != nil {
			return nil, s.fail(ctx, info.FullMethod, err)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func StreamServerInterceptor(b *boundary.Boundary, opts ServerOptions) grpc.StreamServerInterceptor {
	s := server{b: b, opts: opts}
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		ctx := ss.Context()
		defer func() {
			if v := recover(); v != nil {
				err = s.fail(ctx, info.FullMethod, errkind.Recovered(v))
			}
		}()
		if f := s.validate(ctx, info.FullMethod); f != nil {
			return s.fail(ctx, info.FullMethod, f)
		}
		if err = handler(srv, ss); err != nil {
			return s.fail(ctx, info.FullMethod, err)
		}
		return nil
	}
}

func (s server) validate(ctx context.Context, method string) error {
	if s.opts.Headers == nil || s.opts.Headers.Skips(method) {
		return nil
	}
	md, _ := metadata.FromIncomingContext(ctx)
	if f := headers.FromMetadata(md).Validate(s.opts.Headers.RequireUserInfo); f != nil {
		return f
	}
	return nil
}

func (s server) fail(ctx context.Context, method string, err error) error {
	b := s.b
	if b == nil {
		b = boundary.New(boundary.Options{})
	}
	id := tracing.CorrelationID(ctx)
	f := b.Handle(ctx, err, id, boundary.Site{Transport: journal.TransportGRPC, Method: method})
	if id != "" {
		// 没有 transport stream 时（如单元测试）返回错误，忽略
		_ = grpc.SetHeader(ctx, metadata.Pairs(headers.TransactionID, id))
	}
	return ToStatus(f, s.opts.Domain).Err()
}
