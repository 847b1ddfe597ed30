package v1alpha1

import (
	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics"
)

func convertWeaponToProto(info *ballistics.WeaponInfo) *apiv1alpha1.Weapon {
	if info == nil || info.Weapon == nil {
		return nil
	}

	ammoTypes := make([]string, len(info.AmmoTypes))
	for i, t := range info.AmmoTypes {
		ammoTypes[i] = string(t)
	}

	return &apiv1alpha1.Weapon{
		Name:      info.Weapon.Name,
		Damage:    int32(info.Weapon.Damage),
		Flags:     info.Weapon.Flags.String(),
		Variants:  info.Variants,
		AmmoTypes: ammoTypes,
		Bodyparts: convertBodypartsToProto(info.Bodyparts),
	}
}

func convertBodypartsToProto(parts []hunt.Bodypart) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}

func convertProfileToProto(output *ballistics.GetDamageProfileOutput) *apiv1alpha1.GetDamageProfileResponse {
	samples := make([]*apiv1alpha1.DamageSample, len(output.Samples))
	for i, sample := range output.Samples {
		samples[i] = &apiv1alpha1.DamageSample{
			Distance: sample.Distance,
			Damage:   int32(sample.Damage),
		}
	}

	bands := make([]*apiv1alpha1.HealthBandRange, len(output.Bands))
	for i, r := range output.Bands {
		bands[i] = &apiv1alpha1.HealthBandRange{
			Name:         r.Band.Name,
			Color:        r.Band.Color,
			High:         int32(r.Band.High),
			Low:          int32(r.Band.Low),
			StartIndex:   int32(r.StartIndex),
			EndIndex:     int32(r.EndIndex),
			FromDistance: r.From,
			ToDistance:   r.To,
		}
	}

	return &apiv1alpha1.GetDamageProfileResponse{
		WeaponName:  output.WeaponName,
		AmmoType:    string(output.AmmoType),
		Interval:    output.Interval,
		MaxDistance: output.MaxDistance,
		Samples:     samples,
		Bands:       bands,
	}
}
