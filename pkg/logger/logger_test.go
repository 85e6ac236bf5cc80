package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/fault"
)

func TestWithFault(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	f := fault.New(codes.Timeout, "slow", fault.WithCorrelationID("tx-3"))
	WithFault(ctx, f).Error("request failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, int(codes.Timeout), entry.Data[FieldCode])
	assert.Equal(t, "Timeout", entry.Data[FieldCodeName])
	assert.Equal(t, "tx-3", entry.Data[FieldCorrelationID])
	assert.Equal(t, span.SpanContext().TraceID().String(), entry.Data["trace_id"])
	assert.Same(t, f, entry.Data[ErrorKey])
}

func TestWithFault_Nil(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithFault(context.Background(), nil).Info("nothing")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.NotContains(t, entry.Data, FieldCode)
	assert.NotContains(t, entry.Data, FieldCorrelationID)
}
