package errors_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("weapon", "is required")
	ve.AddFieldError("distance", "must be >= 0")

	s.True(ve.HasErrors())
	s.Equal("validation failed: distance: must be >= 0; weapon: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("weapon", "is required").
		Fieldf("health", "must be between %d and %d", 1, 1000).
		RequiredField("bodypart").
		Fieldf("obstacle", "is invalid: %s", "not a known obstacle")

	err := vb.Build()
	s.Require().NotNil(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Len(fields, 4)
	s.Equal([]string{"is invalid: not a known obstacle"}, fields["obstacle"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Sparks LRR", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("weapon", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	testCases := []struct {
		name      string
		value     float64
		shouldErr bool
	}{
		{"zero", 0, false},
		{"positive", 125.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateNonNegative("distance", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("health", 0, 1, 1000, vb)
	errors.ValidateRange("max_shots", 2, 1, 10, vb)
	errors.ValidateEnum("bodypart", "Neck", []string{"Head", "Gut"}, vb)
	errors.ValidateEnum("obstacle", "None", []string{"None", "Small Tree"}, vb)

	err := vb.Build()
	s.Require().Error(err)

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(fields["health"][0], "must be between 1 and 1000")
	s.Contains(fields["bodypart"][0], "must be one of: Head, Gut")
	s.NotContains(fields, "max_shots")
	s.NotContains(fields, "obstacle")
}
