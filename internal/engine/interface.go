// Package engine exposes the ballistics rules behind a context aware,
// mockable interface for the service layer.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/hunt-ballistics/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// Engine provides damage rules calculations
type Engine interface {
	// Single hit resolution
	ResolveDamage(ctx context.Context, input *ResolveDamageInput) (*ResolveDamageOutput, error)

	// Damage over distance
	DamageProfile(ctx context.Context, input *DamageProfileInput) (*DamageProfileOutput, error)

	// Catalog wide search
	FindLethalCombinations(
		ctx context.Context,
		input *FindLethalCombinationsInput,
	) (*FindLethalCombinationsOutput, error)

	// Utility methods
	SelectableBodyparts(flags hunt.AmmoFlag) []hunt.Bodypart
}
