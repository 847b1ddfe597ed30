package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine"
	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
	"github.com/KirkDiggler/hunt-ballistics/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	engine  engine.Engine
	ctx     context.Context
	catalog []*hunt.Weapon
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
	s.catalog = testutils.CatalogWeapons()
}

func (s *EngineTestSuite) weapon(name string) *hunt.Weapon {
	for _, w := range s.catalog {
		if w.Name == name {
			return w
		}
	}
	s.FailNow("weapon not in catalog", name)
	return nil
}

func (s *EngineTestSuite) TestNewRequiresConfig() {
	_, err := engine.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestResolveDamage() {
	out, err := s.engine.ResolveDamage(s.ctx, &engine.ResolveDamageInput{
		Weapon:   s.weapon("Drilling"),
		Active:   hunt.AmmoFlagFMJ,
		Distance: 0,
		Bodypart: hunt.BodypartUpperChest,
		Obstacle: hunt.ObstacleThreeWooden,
	})
	s.Require().NoError(err)
	s.Equal(hunt.AmmoTypeMediumFMJ, out.AmmoType)
	s.Equal(1.0, out.FalloffMultiplier)
	s.Equal(1.0, out.BodypartModifier)
	s.InDelta(0.89, out.PenetrationFactor, 1e-12)
	s.Equal(107, out.Damage)
}

func (s *EngineTestSuite) TestResolveDamagePassesRuleErrors() {
	_, err := s.engine.ResolveDamage(s.ctx, &engine.ResolveDamageInput{
		Weapon:   s.weapon("Nitro Express Rifle"),
		Bodypart: hunt.BodypartHead,
	})
	s.True(errors.HasReason(err, hunt.ReasonUndefinedHeadshotModifier))

	_, err = s.engine.ResolveDamage(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.ResolveDamage(s.ctx, &engine.ResolveDamageInput{
		Weapon:   s.weapon("Springfield 1866"),
		Bodypart: hunt.BodypartUpperChest,
		Obstacle: hunt.Obstacle("Concrete Bunker"),
	})
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.HasReason(err, hunt.ReasonInvalidObstacleCategory))

	_, err = s.engine.FindLethalCombinations(s.ctx, &engine.FindLethalCombinationsInput{
		Weapons: s.catalog,
		Query: ballistics.LethalityQuery{
			TargetHealth: 100,
			Bodypart:     hunt.BodypartUpperChest,
			Obstacle:     hunt.Obstacle("Concrete Bunker"),
		},
	})
	s.True(errors.HasReason(err, hunt.ReasonInvalidObstacleCategory))
}

func (s *EngineTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.engine.FindLethalCombinations(ctx, &engine.FindLethalCombinationsInput{
		Weapons: s.catalog,
		Query:   ballistics.LethalityQuery{TargetHealth: 150, Bodypart: hunt.BodypartUpperChest},
	})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *EngineTestSuite) TestDamageProfile() {
	out, err := s.engine.DamageProfile(s.ctx, &engine.DamageProfileInput{
		Weapon:   s.weapon("Specter 1882"),
		Bodypart: hunt.BodypartGut,
	})
	s.Require().NoError(err)
	s.Equal(hunt.AmmoTypeShotgun, out.AmmoType)
	s.Equal(1.0, out.Interval)
	s.Len(out.Samples, 41)
	s.Equal(162, out.Samples[0].Damage) // 210 * 0.77 = 161.7
}

func (s *EngineTestSuite) TestFindLethalCombinationsNeverNil() {
	out, err := s.engine.FindLethalCombinations(s.ctx, &engine.FindLethalCombinationsInput{
		Weapons: s.catalog,
		Query:   ballistics.LethalityQuery{TargetHealth: 5000, Bodypart: hunt.BodypartLegs},
	})
	s.Require().NoError(err)
	s.NotNil(out.Matches)
	s.Empty(out.Matches)
}

func (s *EngineTestSuite) TestSelectableBodyparts() {
	s.Len(s.engine.SelectableBodyparts(hunt.AmmoFlagCompact|hunt.AmmoFlagPistol), 5)
	s.Len(s.engine.SelectableBodyparts(hunt.AmmoFlagShotgun), 4)
}
