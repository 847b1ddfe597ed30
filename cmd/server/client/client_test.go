package client

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestCallErrorRestoresDetails() {
	sent := errors.InvalidArgumentf("unknown obstacle category %q", "Glass").
		WithReason(hunt.ReasonInvalidObstacleCategory).
		WithMeta("obstacle", "Glass")

	err := callError("failed to search", errors.ToGRPCError(sent))

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(hunt.ReasonInvalidObstacleCategory, errors.GetReason(err))
	s.Equal(
		`INVALID_ARGUMENT(INVALID_OBSTACLE_CATEGORY): failed to search: unknown obstacle category "Glass" obstacle=Glass`,
		err.Error(),
	)
}

func (s *ClientTestSuite) TestCallErrorWithoutDetails() {
	err := callError("failed to get weapon", errors.ToGRPCError(errors.NotFound("weapon not found")))

	s.True(errors.IsNotFound(err))
	s.Empty(errors.GetReason(err))
	s.Equal("NOT_FOUND: failed to get weapon: weapon not found", err.Error())
}

func (s *ClientTestSuite) TestCallErrorPlainError() {
	cause := stderrors.New("connection refused")

	err := callError("failed to list weapons", cause)

	s.ErrorIs(err, cause)
	s.Equal("failed to list weapons: connection refused", err.Error())
}
