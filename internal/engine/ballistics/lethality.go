package ballistics

import (
	"math"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// DefaultMaxShots is used when a query leaves MaxShots at zero.
const DefaultMaxShots = 1

// LethalityQuery describes the target and conditions of a lethality search.
type LethalityQuery struct {
	Distance     float64       `json:"distance"`
	TargetHealth int           `json:"target_health"`
	Bodypart     hunt.Bodypart `json:"bodypart"`
	Obstacle     hunt.Obstacle `json:"obstacle"`
	MaxShots     int           `json:"max_shots"`
}

// Lethality is one weapon and ammunition pairing that kills the target
// within the allowed number of shots. Damage is the rounded hit before the
// obstacle; PenetratedDamage is that value scaled by the penetration factor
// and is left unrounded.
type Lethality struct {
	WeaponName       string        `json:"weapon_name"`
	AmmoType         hunt.AmmoType `json:"ammo_type"`
	Damage           int           `json:"damage"`
	PenetratedDamage float64       `json:"penetrated_damage"`
	ShotsToKill      int           `json:"shots_to_kill"`
}

// Validate checks the query and fills in defaults.
func (q *LethalityQuery) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("distance", q.Distance, vb)
	if q.TargetHealth <= 0 {
		vb.Fieldf("target_health", "must be positive, got %d", q.TargetHealth)
	}
	if q.MaxShots < 0 {
		vb.Fieldf("max_shots", "must be >= 0, got %d", q.MaxShots)
	}
	if err := vb.Build(); err != nil {
		return err
	}
	obstacle, err := hunt.ParseObstacle(string(q.Obstacle))
	if err != nil {
		return err
	}
	q.Obstacle = obstacle
	if q.MaxShots == 0 {
		q.MaxShots = DefaultMaxShots
	}
	return nil
}

// FindLethalCombinations returns every weapon and variant combination whose
// damage kills the target in at most query.MaxShots hits. Results follow
// catalog order, then variant generation order.
//
// The hit is rounded before the obstacle is applied and the kill test uses
// the unrounded penetrated value, so 63.7 never kills 64 health.
//
// Combinations with no multiplier for the requested body part, such as head
// shots with shotgun or nitro rounds, are skipped. Any other failure aborts
// the search since it points at bad catalog data.
func FindLethalCombinations(weapons []*hunt.Weapon, query LethalityQuery) ([]Lethality, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var matches []Lethality
	for _, weapon := range weapons {
		if weapon == nil {
			continue
		}
		for _, flags := range weapon.VariantCombinations() {
			modifier, err := BodypartModifier(query.Bodypart, flags)
			if err != nil {
				if errors.HasReason(err, hunt.ReasonUndefinedHeadshotModifier) {
					continue
				}
				return nil, err
			}

			result, err := resolve(weapon, flags, query.Distance, modifier, query.Obstacle)
			if err != nil {
				return nil, err
			}

			penetrated := float64(result.Unobstructed) * result.Penetration
			shots := shotsToKill(query.TargetHealth, penetrated)
			if shots == 0 || shots > query.MaxShots {
				continue
			}
			matches = append(matches, Lethality{
				WeaponName:       weapon.Name,
				AmmoType:         result.AmmoType,
				Damage:           result.Unobstructed,
				PenetratedDamage: penetrated,
				ShotsToKill:      shots,
			})
		}
	}
	return matches, nil
}

// ShotsToKill returns how many hits of damage bring health to zero, or 0
// when damage is not positive.
func ShotsToKill(health, damage int) int {
	return shotsToKill(health, float64(damage))
}

func shotsToKill(health int, damage float64) int {
	if !(damage > 0) {
		return 0
	}
	if health <= 0 {
		return 1
	}
	return int(math.Ceil(float64(health) / damage))
}
