package ballistics

import (
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// Body part multipliers.
const (
	HeadCompactModifier = 4.62
	HeadMediumModifier  = 3.85
	HeadLongModifier    = 3.08
	UpperChestModifier  = 1.0
	GutModifier         = 0.77
	ArmsModifier        = 0.615
	LegsModifier        = 0.538
)

// BodypartModifier returns the multiplier for a hit on bodypart with
// ammunition carrying flags. Head multipliers exist only for the Compact,
// Medium and Long calibers, checked in that order.
func BodypartModifier(bodypart hunt.Bodypart, flags hunt.AmmoFlag) (float64, error) {
	switch bodypart {
	case hunt.BodypartHead:
		switch {
		case flags.Has(hunt.AmmoFlagCompact):
			return HeadCompactModifier, nil
		case flags.Has(hunt.AmmoFlagMedium):
			return HeadMediumModifier, nil
		case flags.Has(hunt.AmmoFlagLong):
			return HeadLongModifier, nil
		}
		return 0, errors.FailedPreconditionf("no head multiplier for %s", flags).
			WithReason(hunt.ReasonUndefinedHeadshotModifier).
			WithMeta("flags", flags.String())
	case hunt.BodypartUpperChest:
		return UpperChestModifier, nil
	case hunt.BodypartGut:
		return GutModifier, nil
	case hunt.BodypartArms:
		return ArmsModifier, nil
	case hunt.BodypartLegs:
		return LegsModifier, nil
	}

	return 0, errors.InvalidArgumentf("unknown body part %q", bodypart).
		WithReason(hunt.ReasonInvalidBodypart)
}

// SelectableBodyparts lists the body parts a hit with flags can be resolved
// against, in menu order. Head is left out when it has no multiplier.
func SelectableBodyparts(flags hunt.AmmoFlag) []hunt.Bodypart {
	out := make([]hunt.Bodypart, 0, 5)
	for _, b := range hunt.Bodyparts() {
		if _, err := BodypartModifier(b, flags); err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}
