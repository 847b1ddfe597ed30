package engine

import (
	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// ResolveDamageInput describes one hit
type ResolveDamageInput struct {
	Weapon   *hunt.Weapon
	Active   hunt.AmmoFlag
	Distance float64
	Bodypart hunt.Bodypart
	Obstacle hunt.Obstacle
}

// ResolveDamageOutput contains the damage and the factors behind it
type ResolveDamageOutput struct {
	AmmoType          hunt.AmmoType
	Flags             hunt.AmmoFlag
	FalloffMultiplier float64
	BodypartModifier  float64
	PenetrationFactor float64
	Damage            int
}

// DamageProfileInput describes a sampled damage curve
type DamageProfileInput struct {
	Weapon      *hunt.Weapon
	Active      hunt.AmmoFlag
	MaxDistance float64
	Bodypart    hunt.Bodypart
	Obstacle    hunt.Obstacle
}

// DamageProfileOutput contains the samples and health band spans
type DamageProfileOutput struct {
	AmmoType    hunt.AmmoType
	Interval    float64
	MaxDistance float64
	Samples     []ballistics.Sample
	Bands       []ballistics.BandRange
}

// FindLethalCombinationsInput contains the catalog to search and the target
type FindLethalCombinationsInput struct {
	Weapons []*hunt.Weapon
	Query   ballistics.LethalityQuery
}

// FindLethalCombinationsOutput contains matches in catalog order
type FindLethalCombinationsOutput struct {
	Matches []ballistics.Lethality
}
