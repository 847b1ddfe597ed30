// Package weapons provides the read-only weapon catalog
package weapons

//go:generate mockgen -destination=mock/mock_repository.go -package=weaponsmock github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons Repository

import (
	"context"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
)

// Repository defines the interface for weapon catalog lookups
type Repository interface {
	// List returns every weapon in catalog order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Get returns a single weapon by name
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}

// ListInput contains parameters for listing weapons
type ListInput struct {
	// Optional caliber filter, zero lists everything
	Caliber hunt.AmmoFlag
}

// ListOutput contains the catalog
type ListOutput struct {
	Weapons []*hunt.Weapon

	// Version identifies the catalog content; it changes whenever any entry does
	Version string
}

// GetInput contains parameters for retrieving a weapon
type GetInput struct {
	Name string
}

// GetOutput contains the weapon
type GetOutput struct {
	Weapon  *hunt.Weapon
	Version string
}
