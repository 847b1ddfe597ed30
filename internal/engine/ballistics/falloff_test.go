package ballistics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

type FalloffTestSuite struct {
	suite.Suite
}

func TestFalloffSuite(t *testing.T) {
	suite.Run(t, new(FalloffTestSuite))
}

func (s *FalloffTestSuite) multiplier(ammoType hunt.AmmoType, distance float64) float64 {
	m, err := ballistics.DamageMultiplier(ammoType, distance)
	s.Require().NoError(err, "%s at %v", ammoType, distance)
	return m
}

func (s *FalloffTestSuite) TestFullRetentionAtMuzzle() {
	for _, ammoType := range hunt.AmmoTypes() {
		s.Equal(1.0, s.multiplier(ammoType, 0), string(ammoType))
	}
}

func (s *FalloffTestSuite) TestWithinUnitInterval() {
	for _, ammoType := range hunt.AmmoTypes() {
		for d := 0.0; d <= 2000; d += 2.5 {
			m := s.multiplier(ammoType, d)
			s.GreaterOrEqual(m, 0.0, "%s at %v", ammoType, d)
			s.LessOrEqual(m, 1.0, "%s at %v", ammoType, d)
		}
	}
}

// A few curves carry sub-1e-3 steps at their breakpoints in the source data.
// Compact Silenced Pistol is authored with real upward steps at 30 m and 50 m
// and is covered separately below.
func (s *FalloffTestSuite) TestNonIncreasing() {
	const tolerance = 1e-3

	for _, ammoType := range hunt.AmmoTypes() {
		if ammoType == hunt.AmmoTypeCompactPistolSilenced {
			continue
		}
		prev := s.multiplier(ammoType, 0)
		for d := 0.25; d <= 1000; d += 0.25 {
			m := s.multiplier(ammoType, d)
			s.LessOrEqual(m, prev+tolerance, "%s at %v", ammoType, d)
			prev = m
		}
	}
}

func (s *FalloffTestSuite) TestCompactSilencedPistolAuthoredSteps() {
	s.InDelta(0.693333, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 30), 1e-6)
	s.InDelta(0.263333, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 50), 1e-6)
	s.InDelta(0.3845, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 51), 1e-9)
	s.InDelta(0.2275, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 100), 1e-9)
	s.InDelta(0.20993, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 101), 1e-9)
	s.InDelta(0.1925, s.multiplier(hunt.AmmoTypeCompactPistolSilenced, 350), 1e-9)
}

func (s *FalloffTestSuite) TestFloorsAreExact() {
	floors := []hunt.AmmoType{
		hunt.AmmoTypeCompact,
		hunt.AmmoTypeCompactSilenced,
		hunt.AmmoTypeCompactSilencedFMJ,
		hunt.AmmoTypeCompactPistol,
		hunt.AmmoTypeCompactPistolFMJ,
		hunt.AmmoTypeNitro,
	}
	for _, ammoType := range floors {
		for _, d := range []float64{250.5, 300, 1000, 1e9} {
			s.Equal(0.1, s.multiplier(ammoType, d), "%s at %v", ammoType, d)
		}
	}

	s.Equal(0.2, s.multiplier(hunt.AmmoTypeNitro, 100.5))
	s.Equal(0.2, s.multiplier(hunt.AmmoTypeNitro, 250))
}

func (s *FalloffTestSuite) TestOpenEndedCurvesKeepFalling() {
	testCases := []struct {
		ammoType hunt.AmmoType
		distance float64
		expected float64
	}{
		{hunt.AmmoTypeMedium, 350, 0.2},
		{hunt.AmmoTypeMedium, 400, 0.166},
		{hunt.AmmoTypeLong, 500, 0.148},
		{hunt.AmmoTypeLong, 600, 0.03},
		{hunt.AmmoTypeCompactFMJ, 300, 0.2474},
		{hunt.AmmoTypeCompactFMJ, 2000, 0},
	}
	for _, tc := range testCases {
		s.InDelta(tc.expected, s.multiplier(tc.ammoType, tc.distance), 1e-9, "%s at %v", tc.ammoType, tc.distance)
	}
}

func (s *FalloffTestSuite) TestSegmentValues() {
	testCases := []struct {
		ammoType hunt.AmmoType
		distance float64
		expected float64
	}{
		{hunt.AmmoTypeMedium, 20, 1},
		{hunt.AmmoTypeMedium, 25, 0.95},
		{hunt.AmmoTypeMedium, 60, 0.64},
		{hunt.AmmoTypeMediumFMJ, 40, 1},
		{hunt.AmmoTypeCompact, 50, 0.58},
		{hunt.AmmoTypeLongSpitzer, 270, 0.5095},
		// the last segment uses an offset of 100 while starting at 110
		{hunt.AmmoTypeMediumPistolFMJ, 120, 0.2692},
	}
	for _, tc := range testCases {
		s.InDelta(tc.expected, s.multiplier(tc.ammoType, tc.distance), 1e-9, "%s at %v", tc.ammoType, tc.distance)
	}
}

func (s *FalloffTestSuite) TestShotgun() {
	testCases := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"muzzle", 0, 1},
		{"end of full damage", 5, 1},
		{"control point", 10, 0.87},
		{"between points", 12.5, 0.8125},
		{"twenty", 20, 0.5},
		{"last counted meter", 40, 0.05},
		{"just past range", 40.01, 0},
		{"past range", 41, 0},
		{"last control point", 45, 0},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.InDelta(tc.expected, s.multiplier(hunt.AmmoTypeShotgun, tc.distance), 1e-9)
		})
	}
}

func (s *FalloffTestSuite) TestUnreachableRange() {
	for _, ammoType := range []hunt.AmmoType{hunt.AmmoTypeMedium, hunt.AmmoTypeShotgun} {
		_, err := ballistics.DamageMultiplier(ammoType, math.NaN())
		s.Require().Error(err)
		s.True(errors.HasReason(err, hunt.ReasonUnreachableRange))
	}
}

func (s *FalloffTestSuite) TestUnknownAmmoType() {
	_, err := ballistics.DamageMultiplier("Medium Spitzer", 10)
	s.Require().Error(err)
	s.True(errors.HasReason(err, hunt.ReasonUnknownAmmunitionType))
}
