package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

const reasonTest errors.Reason = "TEST_REASON"

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *errors.Error
		expected string
	}{
		{
			name:     "code only",
			err:      errors.NotFound("weapon not found"),
			expected: "NOT_FOUND: weapon not found",
		},
		{
			name:     "code and reason",
			err:      errors.Internal("no curve").WithReason(reasonTest),
			expected: "INTERNAL(TEST_REASON): no curve",
		},
		{
			name:     "with cause",
			err:      errors.Wrap(fmt.Errorf("boom"), "lookup failed"),
			expected: "INTERNAL: lookup failed: boom",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	base := errors.InvalidArgument("bad obstacle").WithReason(reasonTest).WithMeta("obstacle", "Glass")
	wrapped := errors.Wrapf(base, "resolving %s", "Sparks LRR")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal(reasonTest, wrapped.Reason)
	s.Equal("resolving Sparks LRR", wrapped.Message)
	s.Equal("Glass", wrapped.Meta["obstacle"])
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCodeDropsReason() {
	base := errors.InvalidArgument("bad").WithReason(reasonTest).WithMeta("k", "v")
	wrapped := errors.WrapWithCode(base, errors.CodeInternal, "reinterpreted")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Empty(wrapped.Reason)
	s.Equal("v", wrapped.Meta["k"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	plain := errors.Internal("x")
	tagged := errors.Internal("x").WithReason(reasonTest)

	s.True(errors.Is(tagged, errors.Internal("any")))
	s.True(errors.Is(tagged, errors.Internal("any").WithReason(reasonTest)))
	s.False(errors.Is(plain, errors.Internal("any").WithReason(reasonTest)))
	s.False(errors.Is(tagged, errors.InvalidArgument("any")))
}

func (s *ErrorsTestSuite) TestHasReasonWalksChain() {
	inner := errors.FailedPrecondition("no head modifier").WithReason(reasonTest)
	outer := errors.WrapWithCode(inner, errors.CodeInternal, "search failed")

	s.True(errors.HasReason(outer, reasonTest))
	s.Empty(errors.GetReason(outer))
	s.False(errors.HasReason(fmt.Errorf("plain"), reasonTest))
	s.False(errors.HasReason(nil, reasonTest))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("user friendly message").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("value", errors.GetMeta(wrapped)["key"])
	s.Nil(errors.GetMeta(stdErr))

	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestTypeHelpers() {
	s.True(errors.IsNotFound(errors.NotFoundf("weapon %q", "x")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("distance %v", -1)))
	s.True(errors.IsFailedPrecondition(errors.FailedPreconditionf("head %s", "Shotgun")))
	s.True(errors.IsInternal(errors.Internalf("curve %s", "Long")))
	s.True(errors.IsUnavailable(errors.Unavailable("redis down")))
	s.False(errors.IsNotFound(errors.Unimplemented("nope")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("unknown obstacle").
		WithReason(reasonTest).
		WithMeta("obstacle", "Glass").
		WithMeta("fields", map[string][]string{"obstacle": {"is invalid"}})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("unknown obstacle", st.Message())
	s.Len(st.Details(), 1)

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(back))
	s.Equal(reasonTest, errors.GetReason(back))
	s.Equal("Glass", errors.GetMeta(back)["obstacle"])
	s.IsType("", errors.GetMeta(back)["fields"])
}

func (s *ErrorsTestSuite) TestGRPCConversionEdges() {
	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))

	already := status.Error(codes.NotFound, "gone")
	s.Equal(already, errors.ToGRPCError(already))

	plain := errors.ToGRPCError(fmt.Errorf("boom"))
	s.Equal(codes.Internal, status.Code(plain))

	noDetails := errors.ToGRPCError(errors.NotFound("missing"))
	st := status.Convert(noDetails)
	s.Empty(st.Details())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.CodeUnimplemented, codes.Unimplemented},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
