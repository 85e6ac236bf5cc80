package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/service-lib/pkg/fault"
	"github.com/Goden-Gun/service-lib/pkg/headers"
)

const traceMetadataKey = "x-trace-id"

// Span attribute keys set by RecordFault.
const (
	AttrFaultCode     = attribute.Key("fault.code")
	AttrFaultCodeName = attribute.Key("fault.code_name")
	AttrCorrelationID = attribute.Key("fault.correlation_id")
)

var propagator = propagation.TraceContext{}

// metadataCarrier adapts gRPC metadata to propagation.TextMapCarrier. Unlike
// propagation.HeaderCarrier it keeps keys lowercase, as gRPC sends them.
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	if vs := metadata.MD(c).Get(key); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func (c metadataCarrier) Set(key, value string) { metadata.MD(c).Set(key, value) }

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// InjectMetadata injects tracing context into gRPC metadata.
func InjectMetadata(ctx context.Context, md metadata.MD) metadata.MD {
	if md == nil {
		md = metadata.New(nil)
	}
	propagator.Inject(ctx, metadataCarrier(md))
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		md.Set(traceMetadataKey, span.SpanContext().TraceID().String())
	}
	return md
}

// ExtractMetadata extracts tracing context from metadata.
func ExtractMetadata(ctx context.Context, md metadata.MD) context.Context {
	if md == nil {
		return ctx
	}
	ctx = propagator.Extract(ctx, metadataCarrier(md))
	if traceIDs := md.Get(traceMetadataKey); len(traceIDs) > 0 {
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(attribute.String(traceMetadataKey, traceIDs[0]))
	}
	return ctx
}

// CorrelationID returns the transaction id carried by incoming gRPC metadata.
func CorrelationID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return headers.FromMetadata(md).TransactionID()
}

// WithCorrelationID appends the transaction id to outgoing gRPC metadata.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, headers.TransactionID, id)
}

// RecordFault attaches f to the span in ctx as an exception event and marks
// the span failed. Details are not recorded; they may hold stack traces.
func RecordFault(ctx context.Context, f *fault.ServiceFault) {
	if f == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	se := f.ServiceError()
	attrs := []attribute.KeyValue{
		AttrFaultCode.Int(int(se.Code())),
		AttrFaultCodeName.String(se.CodeName()),
	}
	if id := se.CorrelationID(); id != "" {
		attrs = append(attrs, AttrCorrelationID.String(id))
	}
	span.SetAttributes(attrs...)
	span.RecordError(f, trace.WithAttributes(attrs...))
	span.SetStatus(otelcodes.Error, se.CodeName())
}

// Tracer returns named tracer for service components.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
