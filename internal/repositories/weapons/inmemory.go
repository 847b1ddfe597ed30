package weapons

import (
	"context"
	"strings"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

// Config selects the catalog source
type Config struct {
	// Path of a catalog YAML file. Empty uses the embedded catalog.
	Path string
}

// InMemoryRepository serves a catalog loaded once at startup
type InMemoryRepository struct {
	weapons []*hunt.Weapon
	byName  map[string]*hunt.Weapon
	byFold  map[string]*hunt.Weapon
	version string
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory loads and validates the configured catalog
func NewInMemory(cfg *Config) (*InMemoryRepository, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	var (
		catalog *Catalog
		err     error
	)
	if cfg.Path == "" {
		catalog, err = ParseCatalog(embeddedCatalog)
	} else {
		catalog, err = ReadCatalogFile(cfg.Path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weapon catalog")
	}

	return NewFromCatalog(catalog), nil
}

// NewFromCatalog serves an already validated catalog
func NewFromCatalog(catalog *Catalog) *InMemoryRepository {
	r := &InMemoryRepository{
		weapons: make([]*hunt.Weapon, len(catalog.Weapons)),
		byName:  make(map[string]*hunt.Weapon, len(catalog.Weapons)),
		byFold:  make(map[string]*hunt.Weapon, len(catalog.Weapons)),
		version: catalog.Version,
	}
	for i, w := range catalog.Weapons {
		c := *w
		r.weapons[i] = &c
		r.byName[c.Name] = &c
		r.byFold[strings.ToLower(c.Name)] = &c
	}
	return r
}

// List returns copies of the catalog weapons in catalog order
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	out := make([]*hunt.Weapon, 0, len(r.weapons))
	for _, w := range r.weapons {
		if input.Caliber != 0 && w.Flags.Caliber() != input.Caliber {
			continue
		}
		c := *w
		out = append(out, &c)
	}

	return &ListOutput{Weapons: out, Version: r.version}, nil
}

// Get finds a weapon by exact name, then case-insensitively
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}

	w, ok := r.byName[input.Name]
	if !ok {
		w, ok = r.byFold[strings.ToLower(strings.TrimSpace(input.Name))]
	}
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", input.Name).
			WithReason(hunt.ReasonUnknownWeapon).
			WithMeta("weapon", input.Name)
	}

	c := *w
	return &GetOutput{Weapon: &c, Version: r.version}, nil
}
