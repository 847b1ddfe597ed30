// Package hunt holds the static data model of the ballistics engine:
// ammunition flags and types, body parts, obstacles and weapons.
package hunt

import (
	"math/bits"
	"strings"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// Reasons reported by this package and the engine built on top of it.
const (
	ReasonUnknownAmmunitionCombination errors.Reason = "UNKNOWN_AMMUNITION_COMBINATION"
	ReasonUnknownAmmunitionType        errors.Reason = "UNKNOWN_AMMUNITION_TYPE"
	ReasonUnreachableRange             errors.Reason = "UNREACHABLE_RANGE"
	ReasonInvalidObstacleCategory      errors.Reason = "INVALID_OBSTACLE_CATEGORY"
	ReasonInvalidBodypart              errors.Reason = "INVALID_BODYPART"
	ReasonUndefinedHeadshotModifier    errors.Reason = "UNDEFINED_HEADSHOT_MODIFIER"
	ReasonInvalidWeapon                errors.Reason = "INVALID_WEAPON"
	ReasonUnknownWeapon                errors.Reason = "UNKNOWN_WEAPON"
)

// AmmoFlag is a set of independent ammunition properties.
type AmmoFlag uint16

// Caliber classes. Exactly one of these is present in a valid configuration.
const (
	AmmoFlagCompact AmmoFlag = 1 << iota
	AmmoFlagMedium
	AmmoFlagLong
	AmmoFlagShotgun
	AmmoFlagNitro

	// Modifiers
	AmmoFlagSilenced
	AmmoFlagFMJ
	AmmoFlagSpitzer
	AmmoFlagPistol
)

// AmmoFlagCaliberMask covers the five caliber bits.
const AmmoFlagCaliberMask = AmmoFlagCompact | AmmoFlagMedium | AmmoFlagLong | AmmoFlagShotgun | AmmoFlagNitro

// AmmoFlagModifierMask covers the bits a weapon may declare as variants.
const AmmoFlagModifierMask = AmmoFlagSilenced | AmmoFlagFMJ | AmmoFlagSpitzer | AmmoFlagPistol

var ammoFlagNames = map[AmmoFlag]string{
	AmmoFlagCompact:  "Compact",
	AmmoFlagMedium:   "Medium",
	AmmoFlagLong:     "Long",
	AmmoFlagShotgun:  "Shotgun",
	AmmoFlagNitro:    "Nitro",
	AmmoFlagSilenced: "Silenced",
	AmmoFlagFMJ:      "FMJ",
	AmmoFlagSpitzer:  "Spitzer",
	AmmoFlagPistol:   "Pistol",
}

// Has reports whether every bit of other is set in f.
func (f AmmoFlag) Has(other AmmoFlag) bool {
	return f&other == other
}

// Caliber returns only the caliber bits of f.
func (f AmmoFlag) Caliber() AmmoFlag {
	return f & AmmoFlagCaliberMask
}

// Bits returns the individual bits of f in increasing order.
func (f AmmoFlag) Bits() []AmmoFlag {
	out := make([]AmmoFlag, 0, bits.OnesCount16(uint16(f)))
	for bit := AmmoFlag(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// String renders f as its bit names joined by "|".
func (f AmmoFlag) String() string {
	if f == 0 {
		return "None"
	}
	names := make([]string, 0, 4)
	for _, bit := range f.Bits() {
		name, ok := ammoFlagNames[bit]
		if !ok {
			name = "Unknown"
		}
		names = append(names, name)
	}
	return strings.Join(names, "|")
}

// ParseAmmoFlag maps any single flag name to its bit, ignoring case.
func ParseAmmoFlag(name string) (AmmoFlag, error) {
	for bit, bitName := range ammoFlagNames {
		if strings.EqualFold(bitName, name) {
			return bit, nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown ammunition flag %q", name).WithMeta("flag", name)
}

// ParseVariantFlag maps a modifier name ("Silenced", "FMJ", "Spitzer",
// "Pistol") to its bit. Caliber names are not variants and are rejected.
func ParseVariantFlag(name string) (AmmoFlag, error) {
	for bit, bitName := range ammoFlagNames {
		if bit&AmmoFlagModifierMask != 0 && strings.EqualFold(bitName, name) {
			return bit, nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown variant %q", name).WithMeta("variant", name)
}

// AmmoType is the registered name of a flag combination a weapon fires.
type AmmoType string

// Registered ammunition types.
const (
	AmmoTypeCompact               AmmoType = "Compact"
	AmmoTypeCompactFMJ            AmmoType = "Compact FMJ"
	AmmoTypeCompactSilenced       AmmoType = "Compact Silenced"
	AmmoTypeCompactSilencedFMJ    AmmoType = "Compact Silenced FMJ"
	AmmoTypeCompactPistol         AmmoType = "Compact Pistol"
	AmmoTypeCompactPistolFMJ      AmmoType = "Compact Pistol FMJ"
	AmmoTypeCompactPistolSilenced AmmoType = "Compact Silenced Pistol"

	AmmoTypeMedium            AmmoType = "Medium"
	AmmoTypeMediumFMJ         AmmoType = "Medium FMJ"
	AmmoTypeMediumSilenced    AmmoType = "Medium Silenced"
	AmmoTypeMediumSilencedFMJ AmmoType = "Medium Silenced FMJ"
	AmmoTypeMediumPistol      AmmoType = "Medium Pistol"
	AmmoTypeMediumPistolFMJ   AmmoType = "Medium Pistol FMJ"

	AmmoTypeLong            AmmoType = "Long"
	AmmoTypeLongFMJ         AmmoType = "Long FMJ"
	AmmoTypeLongSilenced    AmmoType = "Long Silenced"
	AmmoTypeLongSilencedFMJ AmmoType = "Long Silenced FMJ"
	AmmoTypeLongPistol      AmmoType = "Long Pistol"
	AmmoTypeLongPistolFMJ   AmmoType = "Long Pistol FMJ"
	AmmoTypeLongSpitzer     AmmoType = "Long Spitzer"

	AmmoTypeNitro   AmmoType = "Nitro"
	AmmoTypeShotgun AmmoType = "Shotgun"
)

type ammoRegistration struct {
	ammoType AmmoType
	flags    AmmoFlag
}

// ammoRegistry is the bijection between names and flag sets, in declaration order.
var ammoRegistry = []ammoRegistration{
	{AmmoTypeCompact, AmmoFlagCompact},
	{AmmoTypeCompactFMJ, AmmoFlagCompact | AmmoFlagFMJ},
	{AmmoTypeCompactSilenced, AmmoFlagCompact | AmmoFlagSilenced},
	{AmmoTypeCompactSilencedFMJ, AmmoFlagCompact | AmmoFlagSilenced | AmmoFlagFMJ},
	{AmmoTypeCompactPistol, AmmoFlagCompact | AmmoFlagPistol},
	{AmmoTypeCompactPistolFMJ, AmmoFlagCompact | AmmoFlagPistol | AmmoFlagFMJ},
	{AmmoTypeCompactPistolSilenced, AmmoFlagCompact | AmmoFlagPistol | AmmoFlagSilenced},

	{AmmoTypeMedium, AmmoFlagMedium},
	{AmmoTypeMediumFMJ, AmmoFlagMedium | AmmoFlagFMJ},
	{AmmoTypeMediumSilenced, AmmoFlagMedium | AmmoFlagSilenced},
	{AmmoTypeMediumSilencedFMJ, AmmoFlagMedium | AmmoFlagSilenced | AmmoFlagFMJ},
	{AmmoTypeMediumPistol, AmmoFlagMedium | AmmoFlagPistol},
	{AmmoTypeMediumPistolFMJ, AmmoFlagMedium | AmmoFlagPistol | AmmoFlagFMJ},

	{AmmoTypeLong, AmmoFlagLong},
	{AmmoTypeLongFMJ, AmmoFlagLong | AmmoFlagFMJ},
	{AmmoTypeLongSilenced, AmmoFlagLong | AmmoFlagSilenced},
	{AmmoTypeLongSilencedFMJ, AmmoFlagLong | AmmoFlagSilenced | AmmoFlagFMJ},
	{AmmoTypeLongPistol, AmmoFlagLong | AmmoFlagPistol},
	{AmmoTypeLongPistolFMJ, AmmoFlagLong | AmmoFlagPistol | AmmoFlagFMJ},
	{AmmoTypeLongSpitzer, AmmoFlagLong | AmmoFlagSpitzer},

	{AmmoTypeNitro, AmmoFlagNitro},
	{AmmoTypeShotgun, AmmoFlagShotgun},
}

var (
	typeToFlags = make(map[AmmoType]AmmoFlag, len(ammoRegistry))
	flagsToType = make(map[AmmoFlag]AmmoType, len(ammoRegistry))
)

func init() {
	for _, r := range ammoRegistry {
		if _, dup := typeToFlags[r.ammoType]; dup {
			panic("hunt: duplicate ammo type " + string(r.ammoType))
		}
		if _, dup := flagsToType[r.flags]; dup {
			panic("hunt: duplicate ammo flags for " + string(r.ammoType))
		}
		typeToFlags[r.ammoType] = r.flags
		flagsToType[r.flags] = r.ammoType
	}
}

// AmmoTypes returns every registered type in declaration order.
func AmmoTypes() []AmmoType {
	out := make([]AmmoType, len(ammoRegistry))
	for i, r := range ammoRegistry {
		out[i] = r.ammoType
	}
	return out
}

// FlagsForType returns the flag composition of a registered type. Unregistered
// values return 0.
func FlagsForType(t AmmoType) AmmoFlag {
	return typeToFlags[t]
}

// TypeForFlags returns the type registered for exactly flags. There is no
// closest match: an unregistered set is a data error.
func TypeForFlags(flags AmmoFlag) (AmmoType, error) {
	t, ok := flagsToType[flags]
	if !ok {
		return "", errors.Internalf("no ammunition type registered for %s", flags).
			WithReason(ReasonUnknownAmmunitionCombination).
			WithMeta("flags", flags.String())
	}
	return t, nil
}

// ParseAmmoType validates a human readable ammunition type name.
func ParseAmmoType(name string) (AmmoType, error) {
	t := AmmoType(name)
	if _, ok := typeToFlags[t]; !ok {
		return "", errors.InvalidArgumentf("unknown ammunition type %q", name).
			WithReason(ReasonUnknownAmmunitionType)
	}
	return t, nil
}

// Flags is shorthand for FlagsForType(t).
func (t AmmoType) Flags() AmmoFlag {
	return FlagsForType(t)
}

// IsShotgun reports whether t fires shotgun shells.
func (t AmmoType) IsShotgun() bool {
	return t.Flags().Has(AmmoFlagShotgun)
}
