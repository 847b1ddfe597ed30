package ballistics

import (
	"math"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// Profile sampling defaults.
const (
	DefaultMaxDistance        = 100.0
	DefaultShotgunMaxDistance = ShotgunMaxRange
	SampleInterval            = 5.0
	ShotgunSampleInterval     = 1.0

	// MaxProfileSamples bounds the work done for one profile request.
	MaxProfileSamples = 2001
)

// Sample is the damage of one hit at Distance.
type Sample struct {
	Distance float64 `json:"distance"`
	Damage   int     `json:"damage"`
}

// ProfileRequest describes a damage over distance curve.
type ProfileRequest struct {
	Weapon      *hunt.Weapon
	Active      hunt.AmmoFlag
	MaxDistance float64 // zero picks the caliber default
	Bodypart    hunt.Bodypart
	Obstacle    hunt.Obstacle
}

// Profile is the sampled curve of a ProfileRequest.
type Profile struct {
	AmmoType    hunt.AmmoType
	Interval    float64
	MaxDistance float64
	Samples     []Sample
	Bands       []BandRange
}

// SampleIntervalFor returns the sampling step for a flag set.
func SampleIntervalFor(flags hunt.AmmoFlag) float64 {
	if flags.Has(hunt.AmmoFlagShotgun) {
		return ShotgunSampleInterval
	}
	return SampleInterval
}

// DefaultMaxDistanceFor returns the default chart range for a flag set.
func DefaultMaxDistanceFor(flags hunt.AmmoFlag) float64 {
	if flags.Has(hunt.AmmoFlagShotgun) {
		return DefaultShotgunMaxDistance
	}
	return DefaultMaxDistance
}

// DamageProfile samples the damage of a weapon from 0 to the maximum distance
// inclusive.
func DamageProfile(req ProfileRequest) (*Profile, error) {
	if req.Weapon == nil {
		return nil, errors.InvalidArgument("weapon is required")
	}
	flags, err := req.Weapon.EffectiveFlags(req.Active)
	if err != nil {
		return nil, err
	}
	modifier, err := BodypartModifier(req.Bodypart, flags)
	if err != nil {
		return nil, err
	}

	maxDistance := req.MaxDistance
	if maxDistance == 0 {
		maxDistance = DefaultMaxDistanceFor(flags)
	}
	interval := SampleIntervalFor(flags)

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("max_distance", maxDistance, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	count := int(math.Floor(maxDistance/interval)) + 1
	if count > MaxProfileSamples {
		return nil, errors.InvalidArgumentf("max_distance %v needs %d samples, limit is %d",
			maxDistance, count, MaxProfileSamples)
	}

	profile := &Profile{
		Interval:    interval,
		MaxDistance: maxDistance,
		Samples:     make([]Sample, 0, count),
	}
	for i := 0; i < count; i++ {
		distance := float64(i) * interval
		result, err := resolve(req.Weapon, flags, distance, modifier, req.Obstacle)
		if err != nil {
			return nil, err
		}
		profile.AmmoType = result.AmmoType
		profile.Samples = append(profile.Samples, Sample{Distance: distance, Damage: result.Damage})
	}
	profile.Bands = BandRanges(profile.Samples)

	return profile, nil
}

// HealthBand is a damage bracket. A sample belongs to the band when
// Low <= damage <= High.
type HealthBand struct {
	Name  string `json:"name"`
	High  int    `json:"high"`
	Low   int    `json:"low"`
	Color string `json:"color"`
}

var healthBands = []HealthBand{
	{Name: "red", High: 1000, Low: 150, Color: "rgba(255, 0, 0, 0.2)"},
	{Name: "orange", High: 149, Low: 125, Color: "rgba(255, 140, 0, 0.2)"},
	{Name: "yellow", High: 124, Low: 75, Color: "rgba(255, 255, 0, 0.2)"},
	{Name: "green", High: 74, Low: 0, Color: "rgba(0, 255, 0, 0.2)"},
}

// HealthBands returns the bands from most to least damaging.
func HealthBands() []HealthBand {
	out := make([]HealthBand, len(healthBands))
	copy(out, healthBands)
	return out
}

// BandFor returns the band damage falls into. Damage above the top band is
// reported as the top band.
func BandFor(damage int) HealthBand {
	for _, b := range healthBands {
		if damage >= b.Low {
			return b
		}
	}
	return healthBands[len(healthBands)-1]
}

// BandRange is the span of samples a band covers.
type BandRange struct {
	Band       HealthBand `json:"band"`
	StartIndex int        `json:"start_index"`
	EndIndex   int        `json:"end_index"`
	From       float64    `json:"from"`
	To         float64    `json:"to"`
}

// BandRanges locates each band on a profile that is expected to fall off with
// distance. For each band the scan skips samples above its high mark, then
// extends while samples stay above its low mark. The end is the first sample
// at or below the low mark, capped at the last sample. Bands the curve never
// reaches are omitted.
func BandRanges(samples []Sample) []BandRange {
	n := len(samples)
	if n == 0 {
		return nil
	}

	var ranges []BandRange
	for _, band := range healthBands {
		start := 0
		for start < n && samples[start].Damage > band.High {
			start++
		}
		if start == n || samples[start].Damage < band.Low {
			continue
		}
		end := start
		for end < n-1 && samples[end].Damage > band.Low {
			end++
		}
		ranges = append(ranges, BandRange{
			Band:       band,
			StartIndex: start,
			EndIndex:   end,
			From:       samples[start].Distance,
			To:         samples[end].Distance,
		})
	}
	return ranges
}
