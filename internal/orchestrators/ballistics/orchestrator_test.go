package ballistics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine"
	balengine "github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	enginemock "github.com/KirkDiggler/hunt-ballistics/internal/engine/mock"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
	"github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality"
	lethalitymock "github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality/mock"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons"
	weaponsmock "github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons/mock"
)

const testVersion = "9f1c"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *enginemock.MockEngine
	mockWeapons  *weaponsmock.MockRepository
	mockCache    *lethalitymock.MockRepository
	orchestrator ballistics.Service
	ctx          context.Context

	sparks  *hunt.Weapon
	auto5   *hunt.Weapon
	catalog []*hunt.Weapon
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockWeapons = weaponsmock.NewMockRepository(s.ctrl)
	s.mockCache = lethalitymock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orch, err := ballistics.NewOrchestrator(&ballistics.Config{
		Engine:         s.mockEngine,
		WeaponRepo:     s.mockWeapons,
		LethalityCache: s.mockCache,
		CacheTTL:       time.Minute,
		Meter:          noop.NewMeterProvider().Meter("test"),
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.sparks = &hunt.Weapon{
		Name:     "Sparks LRR",
		Damage:   149,
		Flags:    hunt.AmmoFlagLong,
		Variants: hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ,
	}
	s.auto5 = &hunt.Weapon{
		Name:   "Crown & King Auto-5",
		Damage: 190,
		Flags:  hunt.AmmoFlagShotgun,
	}
	s.catalog = []*hunt.Weapon{s.sparks, s.auto5}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectGet(w *hunt.Weapon) {
	s.mockWeapons.EXPECT().
		Get(s.ctx, &weapons.GetInput{Name: w.Name}).
		Return(&weapons.GetOutput{Weapon: w, Version: testVersion}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := ballistics.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = ballistics.NewOrchestrator(&ballistics.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")

	_, err = ballistics.NewOrchestrator(&ballistics.Config{
		Engine:     s.mockEngine,
		WeaponRepo: s.mockWeapons,
		CacheTTL:   -time.Second,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListWeapons() {
	s.mockWeapons.EXPECT().
		List(s.ctx, &weapons.ListInput{}).
		Return(&weapons.ListOutput{Weapons: s.catalog, Version: testVersion}, nil)
	s.mockEngine.EXPECT().SelectableBodyparts(hunt.AmmoFlagLong).Return(hunt.Bodyparts())
	s.mockEngine.EXPECT().SelectableBodyparts(hunt.AmmoFlagShotgun).Return(hunt.Bodyparts()[1:])

	out, err := s.orchestrator.ListWeapons(s.ctx, &ballistics.ListWeaponsInput{})
	s.Require().NoError(err)
	s.Equal(testVersion, out.CatalogVersion)
	s.Require().Len(out.Weapons, 2)

	sparks := out.Weapons[0]
	s.Equal([]string{"Silenced", "FMJ"}, sparks.Variants)
	s.Equal([]hunt.AmmoType{
		hunt.AmmoTypeLong,
		hunt.AmmoTypeLongSilenced,
		hunt.AmmoTypeLongFMJ,
		hunt.AmmoTypeLongSilencedFMJ,
	}, sparks.AmmoTypes)
	s.Len(sparks.Bodyparts, 5)

	auto5 := out.Weapons[1]
	s.Empty(auto5.Variants)
	s.Equal([]hunt.AmmoType{hunt.AmmoTypeShotgun}, auto5.AmmoTypes)
	s.NotContains(auto5.Bodyparts, hunt.BodypartHead)
}

func (s *OrchestratorTestSuite) TestListWeaponsByCaliber() {
	s.mockWeapons.EXPECT().
		List(s.ctx, &weapons.ListInput{Caliber: hunt.AmmoFlagShotgun}).
		Return(&weapons.ListOutput{Weapons: []*hunt.Weapon{s.auto5}, Version: testVersion}, nil)
	s.mockEngine.EXPECT().SelectableBodyparts(hunt.AmmoFlagShotgun).Return(hunt.Bodyparts()[1:])

	out, err := s.orchestrator.ListWeapons(s.ctx, &ballistics.ListWeaponsInput{Caliber: "shotgun"})
	s.Require().NoError(err)
	s.Len(out.Weapons, 1)
}

func (s *OrchestratorTestSuite) TestListWeaponsRejectsModifierAsCaliber() {
	_, err := s.orchestrator.ListWeapons(s.ctx, &ballistics.ListWeaponsInput{Caliber: "FMJ"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListWeapons(s.ctx, &ballistics.ListWeaponsInput{Caliber: "Rimfire"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetWeaponNotFound() {
	s.mockWeapons.EXPECT().
		Get(s.ctx, &weapons.GetInput{Name: "Nagant Sniper"}).
		Return(nil, errors.NotFound("weapon not found").WithReason(hunt.ReasonUnknownWeapon))

	_, err := s.orchestrator.GetWeapon(s.ctx, &ballistics.GetWeaponInput{Name: "Nagant Sniper"})
	s.True(errors.IsNotFound(err))
	s.True(errors.HasReason(err, hunt.ReasonUnknownWeapon))
}

func (s *OrchestratorTestSuite) TestGetWeaponRequiresName() {
	_, err := s.orchestrator.GetWeapon(s.ctx, &ballistics.GetWeaponInput{Name: "  "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetWeapon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListObstacles() {
	out, err := s.orchestrator.ListObstacles(s.ctx, &ballistics.ListObstaclesInput{})
	s.Require().NoError(err)
	s.Len(out.Obstacles, 15)
	s.Equal(hunt.ObstacleNone, out.Obstacles[0])
}

func (s *OrchestratorTestSuite) TestListBodyparts() {
	out, err := s.orchestrator.ListBodyparts(s.ctx, &ballistics.ListBodypartsInput{})
	s.Require().NoError(err)
	s.Equal(hunt.Bodyparts(), out.Bodyparts)

	s.expectGet(s.sparks)
	s.mockEngine.EXPECT().
		SelectableBodyparts(hunt.AmmoFlagLong | hunt.AmmoFlagFMJ).
		Return(hunt.Bodyparts())

	out, err = s.orchestrator.ListBodyparts(s.ctx, &ballistics.ListBodypartsInput{
		WeaponName: s.sparks.Name,
		Variants:   []string{"fmj"},
	})
	s.Require().NoError(err)
	s.Len(out.Bodyparts, 5)
}

func (s *OrchestratorTestSuite) TestCalculateDamage() {
	s.expectGet(s.sparks)
	s.mockEngine.EXPECT().
		ResolveDamage(s.ctx, &engine.ResolveDamageInput{
			Weapon:   s.sparks,
			Active:   hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ,
			Distance: 30,
			Bodypart: hunt.BodypartGut,
			Obstacle: hunt.ObstacleNone,
		}).
		Return(&engine.ResolveDamageOutput{
			AmmoType:          hunt.AmmoTypeLongSilencedFMJ,
			Flags:             hunt.AmmoFlagLong | hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ,
			FalloffMultiplier: 1,
			BodypartModifier:  balengine.GutModifier,
			PenetrationFactor: 1,
			Damage:            115,
		}, nil)

	out, err := s.orchestrator.CalculateDamage(s.ctx, &ballistics.CalculateDamageInput{
		WeaponName:   s.sparks.Name,
		Variants:     []string{"Silenced", "FMJ"},
		Distance:     30,
		Bodypart:     "Gut",
		TargetHealth: 150,
	})
	s.Require().NoError(err)
	s.Equal(s.sparks.Name, out.WeaponName)
	s.Equal(hunt.AmmoTypeLongSilencedFMJ, out.AmmoType)
	s.Equal(115, out.Damage)
	s.Equal(2, out.ShotsToKill)
}

func (s *OrchestratorTestSuite) TestCalculateDamageRejectsUndeclaredVariant() {
	s.expectGet(s.auto5)

	_, err := s.orchestrator.CalculateDamage(s.ctx, &ballistics.CalculateDamageInput{
		WeaponName: s.auto5.Name,
		Variants:   []string{"Silenced"},
		Distance:   5,
		Bodypart:   "Gut",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCalculateDamageInvalidTarget() {
	_, err := s.orchestrator.CalculateDamage(s.ctx, &ballistics.CalculateDamageInput{WeaponName: s.sparks.Name})
	s.True(errors.IsInvalidArgument(err))

	s.expectGet(s.sparks)
	_, err = s.orchestrator.CalculateDamage(s.ctx, &ballistics.CalculateDamageInput{
		WeaponName: s.sparks.Name,
		Bodypart:   "Gut",
		Obstacle:   "Concrete",
	})
	s.True(errors.HasReason(err, hunt.ReasonInvalidObstacleCategory))
}

func (s *OrchestratorTestSuite) TestCalculateDamagePropagatesEngineErrors() {
	s.expectGet(s.auto5)
	s.mockEngine.EXPECT().
		ResolveDamage(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("no headshot modifier").
			WithReason(hunt.ReasonUndefinedHeadshotModifier))

	_, err := s.orchestrator.CalculateDamage(s.ctx, &ballistics.CalculateDamageInput{
		WeaponName: s.auto5.Name,
		Distance:   5,
		Bodypart:   "Head",
	})
	s.True(errors.IsFailedPrecondition(err))
	s.True(errors.HasReason(err, hunt.ReasonUndefinedHeadshotModifier))
}

func (s *OrchestratorTestSuite) TestGetDamageProfile() {
	s.expectGet(s.auto5)
	s.mockEngine.EXPECT().
		DamageProfile(s.ctx, &engine.DamageProfileInput{
			Weapon:   s.auto5,
			Bodypart: hunt.BodypartUpperChest,
			Obstacle: hunt.ObstacleSmallTree,
		}).
		Return(&engine.DamageProfileOutput{
			AmmoType:    hunt.AmmoTypeShotgun,
			Interval:    1,
			MaxDistance: 40,
			Samples:     []balengine.Sample{{Distance: 0, Damage: 190}},
		}, nil)

	out, err := s.orchestrator.GetDamageProfile(s.ctx, &ballistics.GetDamageProfileInput{
		WeaponName: s.auto5.Name,
		Bodypart:   "Upper Chest",
		Obstacle:   "Small Tree",
	})
	s.Require().NoError(err)
	s.Equal(s.auto5.Name, out.WeaponName)
	s.Equal(40.0, out.MaxDistance)
	s.Len(out.Samples, 1)
}

func (s *OrchestratorTestSuite) searchInput() *ballistics.FindLethalCombinationsInput {
	return &ballistics.FindLethalCombinationsInput{
		Distance:     10,
		TargetHealth: 125,
		Bodypart:     "Upper Chest",
	}
}

func (s *OrchestratorTestSuite) searchQuery() balengine.LethalityQuery {
	return balengine.LethalityQuery{
		Distance:     10,
		TargetHealth: 125,
		Bodypart:     hunt.BodypartUpperChest,
		Obstacle:     hunt.ObstacleNone,
		MaxShots:     1,
	}
}

func (s *OrchestratorTestSuite) TestFindLethalCombinationsCacheMiss() {
	matches := []balengine.Lethality{
		{WeaponName: s.auto5.Name, AmmoType: hunt.AmmoTypeShotgun, Damage: 169, ShotsToKill: 1},
	}

	s.mockWeapons.EXPECT().
		List(s.ctx, &weapons.ListInput{}).
		Return(&weapons.ListOutput{Weapons: s.catalog, Version: testVersion}, nil)
	s.mockCache.EXPECT().
		Get(s.ctx, lethality.GetInput{CatalogVersion: testVersion, Query: s.searchQuery()}).
		Return(nil, errors.NotFound("cache miss"))
	s.mockEngine.EXPECT().
		FindLethalCombinations(s.ctx, &engine.FindLethalCombinationsInput{
			Weapons: s.catalog,
			Query:   s.searchQuery(),
		}).
		Return(&engine.FindLethalCombinationsOutput{Matches: matches}, nil)
	s.mockCache.EXPECT().
		Put(s.ctx, lethality.PutInput{
			CatalogVersion: testVersion,
			Query:          s.searchQuery(),
			Matches:        matches,
			TTL:            time.Minute,
		}).
		Return(&lethality.PutOutput{}, nil)

	out, err := s.orchestrator.FindLethalCombinations(s.ctx, s.searchInput())
	s.Require().NoError(err)
	s.False(out.Cached)
	s.Equal(testVersion, out.CatalogVersion)
	s.Equal(matches, out.Matches)
}

func (s *OrchestratorTestSuite) TestFindLethalCombinationsCacheHit() {
	matches := []balengine.Lethality{
		{WeaponName: s.sparks.Name, AmmoType: hunt.AmmoTypeLong, Damage: 149, ShotsToKill: 1},
	}

	s.mockWeapons.EXPECT().
		List(s.ctx, &weapons.ListInput{}).
		Return(&weapons.ListOutput{Weapons: s.catalog, Version: testVersion}, nil)
	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&lethality.GetOutput{Entry: &lethality.Entry{
			CatalogVersion: testVersion,
			Query:          s.searchQuery(),
			Matches:        matches,
		}}, nil)

	out, err := s.orchestrator.FindLethalCombinations(s.ctx, s.searchInput())
	s.Require().NoError(err)
	s.True(out.Cached)
	s.Equal(matches, out.Matches)
}

func (s *OrchestratorTestSuite) TestFindLethalCombinationsIgnoresCacheFailures() {
	s.mockWeapons.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(&weapons.ListOutput{Weapons: s.catalog, Version: testVersion}, nil)
	s.mockCache.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))
	s.mockEngine.EXPECT().
		FindLethalCombinations(s.ctx, gomock.Any()).
		Return(&engine.FindLethalCombinationsOutput{Matches: []balengine.Lethality{}}, nil)
	s.mockCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.orchestrator.FindLethalCombinations(s.ctx, s.searchInput())
	s.Require().NoError(err)
	s.NotNil(out.Matches)
	s.Empty(out.Matches)
}

func (s *OrchestratorTestSuite) TestFindLethalCombinationsWithoutCache() {
	orch, err := ballistics.NewOrchestrator(&ballistics.Config{
		Engine:     s.mockEngine,
		WeaponRepo: s.mockWeapons,
		Meter:      noop.NewMeterProvider().Meter("test"),
	})
	s.Require().NoError(err)

	s.mockWeapons.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(&weapons.ListOutput{Weapons: s.catalog, Version: testVersion}, nil)
	s.mockEngine.EXPECT().
		FindLethalCombinations(s.ctx, gomock.Any()).
		Return(&engine.FindLethalCombinationsOutput{Matches: []balengine.Lethality{}}, nil)

	out, err := orch.FindLethalCombinations(s.ctx, s.searchInput())
	s.Require().NoError(err)
	s.False(out.Cached)
}

func (s *OrchestratorTestSuite) TestFindLethalCombinationsInvalidQuery() {
	input := s.searchInput()
	input.TargetHealth = 0
	_, err := s.orchestrator.FindLethalCombinations(s.ctx, input)
	s.True(errors.IsInvalidArgument(err))

	input = s.searchInput()
	input.Bodypart = "Torso"
	_, err = s.orchestrator.FindLethalCombinations(s.ctx, input)
	s.True(errors.HasReason(err, hunt.ReasonInvalidBodypart))

	input = s.searchInput()
	input.Distance = -1
	_, err = s.orchestrator.FindLethalCombinations(s.ctx, input)
	s.True(errors.IsInvalidArgument(err))
}
