package grpcx

import (
	"maps"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/fault"
)

// ErrorInfo metadata keys carrying the ServiceError fields. Detail keys are
// capitalized, so these never collide.
const (
	MetaCode          = "code"
	MetaCorrelationID = "correlationId"
)

// ToStatus renders f as a gRPC status. The status code follows
// codes.GRPCCode, except that an unclassified fault from an upstream status
// keeps the upstream code; an ErrorInfo with Reason set to the code name carries the
// code, correlation id and details.
func ToStatus(f *fault.ServiceFault, domain string) *status.Status {
	if f == nil {
		return status.New(grpccodes.OK, "")
	}
	se := f.ServiceError()
	st := status.New(statusCode(se), se.Message())

	md := se.Details()
	if md == nil {
		md = make(map[string]string, 2)
	}
	md[MetaCode] = strconv.Itoa(int(se.Code()))
	if id := se.CorrelationID(); id != "" {
		md[MetaCorrelationID] = id
	}
	withInfo, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   se.CodeName(),
		Domain:   domain,
		Metadata: md,
	})
	if err != nil {
		return st
	}
	return withInfo
}

// FromError rebuilds the fault a server boundary sent. Errors without an
// ErrorInfo are classified locally instead. nil in, nil out.
func FromError(err error) *fault.ServiceFault {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fault.Classify(err, "")
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		code, ok := codeOf(info)
		if !ok {
			continue
		}
		details := maps.Clone(info.GetMetadata())
		correlationID := details[MetaCorrelationID]
		delete(details, MetaCode)
		delete(details, MetaCorrelationID)
		se := fault.NewServiceError(code, st.Message(), details, correlationID)
		return fault.FromServiceError(se, err)
	}
	return fault.Classify(err, "")
}

func codeOf(info *errdetails.ErrorInfo) (codes.ErrorCode, bool) {
	if raw, ok := info.GetMetadata()[MetaCode]; ok {
		if n, err := strconv.Atoi(raw); err == nil && codes.ErrorCode(n).Defined() {
			return codes.ErrorCode(n), true
		}
	}
	return codes.Parse(info.GetReason())
}

// statusCode passes through the GrpcCode detail of an unclassified fault.
func statusCode(se fault.ServiceError) grpccodes.Code {
	if se.Code() == codes.None {
		if name, ok := se.Detail(fault.DetailGrpcCode); ok {
			for c := grpccodes.OK; c <= grpccodes.Unauthenticated; c++ {
				if c.String() == name && c != grpccodes.OK {
					return c
				}
			}
		}
	}
	return codes.GRPCCode(se.Code())
}
