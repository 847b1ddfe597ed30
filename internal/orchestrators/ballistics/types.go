package ballistics

import (
	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// WeaponInfo is a catalog weapon plus what a client may select for it
type WeaponInfo struct {
	Weapon *hunt.Weapon

	// Variants lists the toggleable flag names, e.g. "Silenced", "FMJ"
	Variants []string

	// AmmoTypes lists the ammunition of every variant combination in
	// generation order; the first entry is the base ammunition
	AmmoTypes []hunt.AmmoType

	// Bodyparts that have a multiplier for this weapon's caliber
	Bodyparts []hunt.Bodypart
}

// ListWeaponsInput defines the request for listing weapons
type ListWeaponsInput struct {
	// Optional caliber name filter: Compact, Medium, Long, Shotgun or Nitro
	Caliber string
}

// ListWeaponsOutput defines the response for listing weapons
type ListWeaponsOutput struct {
	Weapons        []*WeaponInfo
	CatalogVersion string
}

// GetWeaponInput defines the request for a single weapon
type GetWeaponInput struct {
	Name string
}

// GetWeaponOutput defines the response for a single weapon
type GetWeaponOutput struct {
	Weapon *WeaponInfo
}

// ListObstaclesInput defines the request for listing obstacles
type ListObstaclesInput struct{}

// ListObstaclesOutput lists obstacles in menu order, None first
type ListObstaclesOutput struct {
	Obstacles []hunt.Obstacle
}

// ListBodypartsInput defines the request for listing body parts
type ListBodypartsInput struct {
	// Optional weapon and variants to restrict the list to parts with a
	// multiplier for that ammunition
	WeaponName string
	Variants   []string
}

// ListBodypartsOutput lists body parts in menu order
type ListBodypartsOutput struct {
	Bodyparts []hunt.Bodypart
}

// CalculateDamageInput defines the request for a single hit
type CalculateDamageInput struct {
	WeaponName string
	Variants   []string
	Distance   float64
	Bodypart   string
	Obstacle   string // empty means no obstacle

	// Optional; when set the output reports hits needed to kill
	TargetHealth int
}

// CalculateDamageOutput defines the response for a single hit
type CalculateDamageOutput struct {
	WeaponName        string
	AmmoType          hunt.AmmoType
	Flags             hunt.AmmoFlag
	FalloffMultiplier float64
	BodypartModifier  float64
	PenetrationFactor float64
	Damage            int
	ShotsToKill       int
}

// GetDamageProfileInput defines the request for a damage over distance curve
type GetDamageProfileInput struct {
	WeaponName  string
	Variants    []string
	MaxDistance float64 // zero picks 40 m for shotguns, 100 m otherwise
	Bodypart    string
	Obstacle    string
}

// GetDamageProfileOutput defines the response for a damage profile
type GetDamageProfileOutput struct {
	WeaponName  string
	AmmoType    hunt.AmmoType
	Interval    float64
	MaxDistance float64
	Samples     []ballistics.Sample
	Bands       []ballistics.BandRange
}

// FindLethalCombinationsInput defines the lethality search request
type FindLethalCombinationsInput struct {
	Distance     float64
	TargetHealth int
	Bodypart     string
	Obstacle     string
	MaxShots     int // zero means one shot
}

// FindLethalCombinationsOutput defines the lethality search response
type FindLethalCombinationsOutput struct {
	Matches        []ballistics.Lethality
	CatalogVersion string
	Cached         bool
}
