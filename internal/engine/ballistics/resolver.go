package ballistics

import (
	"math"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// Hit describes one shot to resolve.
type Hit struct {
	Weapon   *hunt.Weapon
	Active   hunt.AmmoFlag // selected variant bits, may repeat base bits
	Distance float64
	Bodypart hunt.Bodypart
	Obstacle hunt.Obstacle
}

// Result is a resolved hit with the factors that produced it.
type Result struct {
	AmmoType    hunt.AmmoType
	Flags       hunt.AmmoFlag
	Falloff     float64
	Bodypart    float64
	Penetration float64
	Damage      int

	// Unobstructed is the rounded damage before the penetration factor.
	Unobstructed int
}

// ResolveHit computes the damage of hit and keeps the intermediate factors.
func ResolveHit(hit Hit) (*Result, error) {
	if hit.Weapon == nil {
		return nil, errors.InvalidArgument("weapon is required")
	}
	flags, err := hit.Weapon.EffectiveFlags(hit.Active)
	if err != nil {
		return nil, err
	}
	modifier, err := BodypartModifier(hit.Bodypart, flags)
	if err != nil {
		return nil, err
	}
	return resolve(hit.Weapon, flags, hit.Distance, modifier, hit.Obstacle)
}

// Resolve returns the rounded damage of a single hit.
func Resolve(
	weapon *hunt.Weapon,
	active hunt.AmmoFlag,
	distance float64,
	bodypart hunt.Bodypart,
	obstacle hunt.Obstacle,
) (int, error) {
	result, err := ResolveHit(Hit{
		Weapon:   weapon,
		Active:   active,
		Distance: distance,
		Bodypart: bodypart,
		Obstacle: obstacle,
	})
	if err != nil {
		return 0, err
	}
	return result.Damage, nil
}

// ResolveWithModifier is Resolve with the body part multiplier supplied
// directly, for callers that have already looked it up.
func ResolveWithModifier(
	weapon *hunt.Weapon,
	active hunt.AmmoFlag,
	distance float64,
	modifier float64,
	obstacle hunt.Obstacle,
) (int, error) {
	if weapon == nil {
		return 0, errors.InvalidArgument("weapon is required")
	}
	flags, err := weapon.EffectiveFlags(active)
	if err != nil {
		return 0, err
	}
	result, err := resolve(weapon, flags, distance, modifier, obstacle)
	if err != nil {
		return 0, err
	}
	return result.Damage, nil
}

func resolve(
	weapon *hunt.Weapon,
	flags hunt.AmmoFlag,
	distance float64,
	modifier float64,
	obstacle hunt.Obstacle,
) (*Result, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("distance", distance, vb)
	if math.IsNaN(modifier) || modifier < 0 {
		vb.Fieldf("bodypart_modifier", "must be >= 0, got %v", modifier)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ammoType, err := hunt.TypeForFlags(flags)
	if err != nil {
		return nil, errors.Wrapf(err, "weapon %q", weapon.Name)
	}
	penetration, err := PenetrationFactor(obstacle, flags)
	if err != nil {
		return nil, err
	}
	falloff, err := DamageMultiplier(ammoType, distance)
	if err != nil {
		return nil, err
	}

	raw := float64(weapon.Damage) * falloff * modifier
	return &Result{
		AmmoType:     ammoType,
		Flags:        flags,
		Falloff:      falloff,
		Bodypart:     modifier,
		Penetration:  penetration,
		Damage:       RoundHalfUp(raw * penetration),
		Unobstructed: RoundHalfUp(raw),
	}, nil
}

// RoundHalfUp rounds to the nearest integer with halves going up, which for
// the non-negative values seen here is the usual "round half away from zero".
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
