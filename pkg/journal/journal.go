// Package journal records classified faults outside the request path.
//
// A Record is handed to a Sink by the fault boundary after the response has
// been decided; sink errors are logged by the caller and never change the
// response.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Goden-Gun/service-lib/pkg/fault"
)

// Transport names the boundary that produced a record.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// Record is one fault as seen at a boundary.
type Record struct {
	ID        string             `json:"id"`
	Time      time.Time          `json:"time"`
	Service   string             `json:"service,omitempty"`
	Transport string             `json:"transport,omitempty"`
	Method    string             `json:"method,omitempty"`
	Path      string             `json:"path,omitempty"`
	Fault     fault.ServiceError `json:"fault"`
}

// NewRecord stamps f with a fresh id and the current time. The full fault is
// kept, details included.
func NewRecord(service, transport string, f *fault.ServiceFault) Record {
	r := Record{
		ID:        uuid.NewString(),
		Time:      time.Now().UTC(),
		Service:   service,
		Transport: transport,
	}
	if f != nil {
		r.Fault = f.ServiceError()
	}
	return r
}

// CorrelationID returns the fault's correlation id.
func (r Record) CorrelationID() string { return r.Fault.CorrelationID() }

// key is the correlation id, or the record id when there is none.
func (r Record) key() string {
	if id := r.CorrelationID(); id != "" {
		return id
	}
	return r.ID
}

// Sink receives fault records.
type Sink interface {
	Write(ctx context.Context, r Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, r Record) error

func (f SinkFunc) Write(ctx context.Context, r Record) error { return f(ctx, r) }

// Discard drops every record.
var Discard Sink = SinkFunc(func(context.Context, Record) error { return nil })

// MultiSink writes to every sink and joins their errors.
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, r Record) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Write(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
