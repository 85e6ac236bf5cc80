// Package boundary is the transport-neutral half of a fault boundary: it
// classifies an error, reports it to logs, traces and the journal, and
// returns the fault that may be shown to the caller.
package boundary

import (
	"context"

	"github.com/Goden-Gun/service-lib/pkg/fault"
	"github.com/Goden-Gun/service-lib/pkg/journal"
	log "github.com/Goden-Gun/service-lib/pkg/logger"
	"github.com/Goden-Gun/service-lib/pkg/tracing"
)

// Options configures a Boundary.
type Options struct {
	// Service names the service in journal records.
	Service string
	// Production strips details from the fault returned to callers.
	// Logs, spans and the journal always see the full fault.
	Production bool
	// Sink receives one record per fault; nil disables the journal.
	Sink journal.Sink
}

// Site describes where a fault surfaced.
type Site struct {
	Transport string
	Method    string
	Path      string
}

// Boundary reports faults for one service. It is safe for concurrent use
// and is shared by the HTTP middleware and the gRPC interceptors.
type Boundary struct {
	opts Options
}

// New returns a Boundary configured by opts.
func New(opts Options) *Boundary {
	return &Boundary{opts: opts}
}

// Production reports whether details are stripped.
func (b *Boundary) Production() bool { return b.opts.Production }

// Handle classifies err and reports it. A fault wrapped by err keeps
// its code; it gains correlationID only if it had none. Handle returns nil
// for a nil err.
func (b *Boundary) Handle(ctx context.Context, err error, correlationID string, site Site) *fault.ServiceFault {
	f := fault.Classify(err, correlationID)
	if f == nil {
		return nil
	}
	if se := f.ServiceError(); se.CorrelationID() == "" && correlationID != "" {
		f = fault.FromServiceError(se.WithCorrelationID(correlationID), f.Cause())
	}

	b.log(ctx, f, site)
	tracing.RecordFault(ctx, f)
	b.journal(ctx, f, site)

	if b.opts.Production {
		return f.WithoutDetails()
	}
	return f
}

func (b *Boundary) log(ctx context.Context, f *fault.ServiceFault, site Site) {
	entry := log.WithFault(ctx, f).WithFields(log.Fields{
		"transport": site.Transport,
		"method":    site.Method,
		"path":      site.Path,
	})
	// 协议违规属于调用方错误
	if f.Code().IsProtocolViolation() {
		entry.Warn("request rejected")
		return
	}
	entry.Error("request failed")
}

func (b *Boundary) journal(ctx context.Context, f *fault.ServiceFault, site Site) {
	if b.opts.Sink == nil {
		return
	}
	r := journal.NewRecord(b.opts.Service, site.Transport, f)
	r.Method, r.Path = site.Method, site.Path
	// 请求结束后上下文会被取消，journal 写入不应受影响
	if err := b.opts.Sink.Write(context.WithoutCancel(ctx), r); err != nil {
		log.WithTrace(ctx).WithError(err).WithField("record_id", r.ID).Warn("fault journal write failed")
	}
}
