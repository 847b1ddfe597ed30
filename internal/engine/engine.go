package engine

import (
	"context"
	stderrors "errors"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

type engine struct {
}

// Config holds engine options. The rules tables are static so there are none yet.
type Config struct {
}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	return nil
}

// New creates the ballistics engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) ResolveDamage(ctx context.Context, input *ResolveDamageInput) (*ResolveDamageOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "resolve damage")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := ballistics.ResolveHit(ballistics.Hit{
		Weapon:   input.Weapon,
		Active:   input.Active,
		Distance: input.Distance,
		Bodypart: input.Bodypart,
		Obstacle: input.Obstacle,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveDamageOutput{
		AmmoType:          result.AmmoType,
		Flags:             result.Flags,
		FalloffMultiplier: result.Falloff,
		BodypartModifier:  result.Bodypart,
		PenetrationFactor: result.Penetration,
		Damage:            result.Damage,
	}, nil
}

func (e *engine) DamageProfile(ctx context.Context, input *DamageProfileInput) (*DamageProfileOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "damage profile")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	profile, err := ballistics.DamageProfile(ballistics.ProfileRequest{
		Weapon:      input.Weapon,
		Active:      input.Active,
		MaxDistance: input.MaxDistance,
		Bodypart:    input.Bodypart,
		Obstacle:    input.Obstacle,
	})
	if err != nil {
		return nil, err
	}

	return &DamageProfileOutput{
		AmmoType:    profile.AmmoType,
		Interval:    profile.Interval,
		MaxDistance: profile.MaxDistance,
		Samples:     profile.Samples,
		Bands:       profile.Bands,
	}, nil
}

func (e *engine) FindLethalCombinations(
	ctx context.Context,
	input *FindLethalCombinationsInput,
) (*FindLethalCombinationsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "find lethal combinations")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	matches, err := ballistics.FindLethalCombinations(input.Weapons, input.Query)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []ballistics.Lethality{}
	}

	return &FindLethalCombinationsOutput{Matches: matches}, nil
}

func (e *engine) SelectableBodyparts(flags hunt.AmmoFlag) []hunt.Bodypart {
	return ballistics.SelectableBodyparts(flags)
}

func contextError(err error, op string) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, op)
	}
	return errors.WrapWithCode(err, errors.CodeCanceled, op)
}
