package hunt_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

type WeaponTestSuite struct {
	suite.Suite
	sparks   *hunt.Weapon
	rival    *hunt.Weapon
	bornheim *hunt.Weapon
}

func TestWeaponSuite(t *testing.T) {
	suite.Run(t, new(WeaponTestSuite))
}

func (s *WeaponTestSuite) SetupTest() {
	s.sparks = &hunt.Weapon{
		Name:     "Sparks LRR",
		Damage:   149,
		Flags:    hunt.AmmoFlagLong,
		Variants: hunt.AmmoFlagFMJ | hunt.AmmoFlagSilenced,
	}
	s.rival = &hunt.Weapon{
		Name:   "Caldwell Rival 78",
		Damage: 190,
		Flags:  hunt.AmmoFlagShotgun,
	}
	s.bornheim = &hunt.Weapon{
		Name:     "Bornheim No. 3",
		Damage:   74,
		Flags:    hunt.AmmoFlagCompact | hunt.AmmoFlagPistol,
		Variants: hunt.AmmoFlagSilenced,
	}
}

func (s *WeaponTestSuite) TestCanEnableVariant() {
	s.True(hunt.CanEnableVariant(s.sparks, hunt.AmmoFlagFMJ))
	s.True(hunt.CanEnableVariant(s.sparks, hunt.AmmoFlagSilenced))
	s.True(hunt.CanEnableVariant(s.sparks, hunt.AmmoFlagFMJ|hunt.AmmoFlagSilenced))
	s.False(hunt.CanEnableVariant(s.sparks, hunt.AmmoFlagSpitzer))
	s.False(hunt.CanEnableVariant(s.sparks, hunt.AmmoFlagFMJ|hunt.AmmoFlagSpitzer))
	s.False(hunt.CanEnableVariant(nil, hunt.AmmoFlagFMJ))
}

func (s *WeaponTestSuite) TestCanEnableVariantWithoutVariants() {
	for _, bit := range (hunt.AmmoFlagCaliberMask | hunt.AmmoFlagModifierMask).Bits() {
		s.False(hunt.CanEnableVariant(s.rival, bit), bit.String())
	}
	s.False(hunt.CanEnableVariant(s.rival, 0))
}

func (s *WeaponTestSuite) TestVariantCombinationsOrder() {
	s.Equal([]hunt.AmmoFlag{
		hunt.AmmoFlagLong,
		hunt.AmmoFlagLong | hunt.AmmoFlagSilenced,
		hunt.AmmoFlagLong | hunt.AmmoFlagFMJ,
		hunt.AmmoFlagLong | hunt.AmmoFlagSilenced | hunt.AmmoFlagFMJ,
	}, s.sparks.VariantCombinations())

	s.Equal([]hunt.AmmoFlag{hunt.AmmoFlagShotgun}, s.rival.VariantCombinations())
	s.Len(s.bornheim.VariantCombinations(), 2)
}

func (s *WeaponTestSuite) TestEffectiveFlags() {
	flags, err := s.sparks.EffectiveFlags(hunt.AmmoFlagFMJ)
	s.Require().NoError(err)
	s.Equal(hunt.AmmoFlagLong|hunt.AmmoFlagFMJ, flags)

	flags, err = s.sparks.EffectiveFlags(hunt.AmmoFlagLong | hunt.AmmoFlagSilenced)
	s.Require().NoError(err)
	s.Equal(hunt.AmmoFlagLong|hunt.AmmoFlagSilenced, flags)

	_, err = s.sparks.EffectiveFlags(hunt.AmmoFlagSpitzer)
	s.True(errors.IsInvalidArgument(err))
}

func (s *WeaponTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		weapon  *hunt.Weapon
		wantErr bool
	}{
		{"valid rifle", s.sparks, false},
		{"valid shotgun", s.rival, false},
		{"valid pistol", s.bornheim, false},
		{
			name:    "missing name",
			weapon:  &hunt.Weapon{Damage: 10, Flags: hunt.AmmoFlagMedium},
			wantErr: true,
		},
		{
			name:    "zero damage",
			weapon:  &hunt.Weapon{Name: "x", Flags: hunt.AmmoFlagMedium},
			wantErr: true,
		},
		{
			name:    "two calibers",
			weapon:  &hunt.Weapon{Name: "x", Damage: 1, Flags: hunt.AmmoFlagMedium | hunt.AmmoFlagLong},
			wantErr: true,
		},
		{
			name:    "caliber as variant",
			weapon:  &hunt.Weapon{Name: "x", Damage: 1, Flags: hunt.AmmoFlagMedium, Variants: hunt.AmmoFlagLong},
			wantErr: true,
		},
		{
			name: "unregistered combination",
			weapon: &hunt.Weapon{
				Name:     "Medium Pistol Silencer",
				Damage:   1,
				Flags:    hunt.AmmoFlagMedium | hunt.AmmoFlagPistol,
				Variants: hunt.AmmoFlagSilenced,
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.weapon.Validate()
			if !tc.wantErr {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.True(errors.HasReason(err, hunt.ReasonInvalidWeapon))
		})
	}
}

func (s *WeaponTestSuite) TestEntity() {
	s.Equal("Sparks LRR", s.sparks.GetID())
	s.Equal(hunt.EntityTypeWeapon, s.sparks.GetType())
	s.True(s.rival.IsShotgun())
	s.False(s.rival.HasVariants())
	s.Equal([]hunt.AmmoFlag{hunt.AmmoFlagSilenced, hunt.AmmoFlagFMJ}, s.sparks.EnabledVariants())
}
