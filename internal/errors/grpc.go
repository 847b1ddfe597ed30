package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCode   = "code"
	detailReason = "reason"
	detailMeta   = "meta"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if detail := toDetail(customErr); detail != nil {
		if withDetails, detailErr := st.WithDetails(detail); detailErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		fields, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		values := fields.AsMap()
		if reason, ok := values[detailReason].(string); ok {
			customErr.Reason = Reason(reason)
		}
		if meta, ok := values[detailMeta].(map[string]any); ok && len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// toDetail packs code, reason and meta into a Struct. Meta values that
// structpb cannot represent are stringified.
func toDetail(e *Error) *structpb.Struct {
	if e.Reason == "" && len(e.Meta) == 0 {
		return nil
	}

	meta := make(map[string]any, len(e.Meta))
	for k, v := range e.Meta {
		if _, err := structpb.NewValue(v); err != nil {
			meta[k] = fmt.Sprint(v)
			continue
		}
		meta[k] = v
	}

	detail, err := structpb.NewStruct(map[string]any{
		detailCode:   string(e.Code),
		detailReason: string(e.Reason),
		detailMeta:   meta,
	})
	if err != nil {
		return nil
	}
	return detail
}
