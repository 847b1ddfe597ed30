package ballistics

import (
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// penetrationTable holds the percentage of damage that passes each obstacle,
// keyed by the exact flag set of the round. Rows follow hunt.Obstacles order.
var penetrationTable = map[hunt.AmmoFlag][15]float64{
	hunt.AmmoFlagShotgun: {100, 100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	hunt.AmmoFlagCompact: {100, 100, 40, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	hunt.AmmoFlagCompact | hunt.AmmoFlagFMJ: {
		100, 100, 100, 49, 100, 49, 49, 34, 0, 0, 0, 100, 0, 100, 0,
	},
	hunt.AmmoFlagMedium: {100, 100, 80, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	hunt.AmmoFlagMedium | hunt.AmmoFlagFMJ: {
		100, 100, 100, 89, 100, 90, 89, 65, 0, 0, 0, 100, 0, 100, 0,
	},
	hunt.AmmoFlagLong: {100, 100, 90, 49, 100, 0, 0, 0, 0, 0, 0, 100, 0, 100, 0},
	hunt.AmmoFlagLong | hunt.AmmoFlagFMJ: {
		100, 100, 100, 90, 100, 90, 90, 64, 50, 0, 0, 100, 0, 100, 0,
	},
	hunt.AmmoFlagLong | hunt.AmmoFlagSpitzer: {
		100, 100, 100, 94, 100, 94, 94, 79, 64, 0, 0, 100, 0, 100, 0,
	},
	hunt.AmmoFlagNitro: {100, 100, 100, 100, 48, 24, 43, 43, 21, 19, 9, 100, 100, 100, 100},
}

// PenetrationFactor returns the fraction of damage that survives obstacle.
//
// Flag sets without a row (pistol and silenced rounds among them) are not
// attenuated at all and get 1.0. Obstacles outside hunt.Obstacles are a
// caller error.
func PenetrationFactor(obstacle hunt.Obstacle, flags hunt.AmmoFlag) (float64, error) {
	if _, err := hunt.ParseObstacle(string(obstacle)); err != nil {
		return 0, err
	}
	row, ok := penetrationTable[flags]
	if !ok {
		return 1, nil
	}
	return row[obstacle.Index()] / 100, nil
}

// HasPenetrationData reports whether flags has its own penetration row.
func HasPenetrationData(flags hunt.AmmoFlag) bool {
	_, ok := penetrationTable[flags]
	return ok
}
