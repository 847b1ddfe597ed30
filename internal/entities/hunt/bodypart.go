package hunt

import "github.com/KirkDiggler/hunt-ballistics/internal/errors"

// Bodypart is the region of the target that was struck.
type Bodypart string

// Selectable body parts, in menu order.
const (
	BodypartHead       Bodypart = "Head"
	BodypartUpperChest Bodypart = "Upper Chest"
	BodypartGut        Bodypart = "Gut"
	BodypartLegs       Bodypart = "Legs"
	BodypartArms       Bodypart = "Arms"
)

var bodyparts = []Bodypart{
	BodypartHead,
	BodypartUpperChest,
	BodypartGut,
	BodypartLegs,
	BodypartArms,
}

// Bodyparts returns every body part in menu order.
func Bodyparts() []Bodypart {
	out := make([]Bodypart, len(bodyparts))
	copy(out, bodyparts)
	return out
}

// ParseBodypart rejects names outside the fixed set.
func ParseBodypart(name string) (Bodypart, error) {
	for _, b := range bodyparts {
		if string(b) == name {
			return b, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown bodypart %q", name).
		WithReason(ReasonInvalidBodypart).
		WithMeta("bodypart", name)
}
