// Package ballistics implements the ballistics orchestrator that serves
// catalog lookups, damage calculations and lethality searches
package ballistics

//go:generate mockgen -destination=mock/mock_service.go -package=ballisticsmock github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics Service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine"
	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons"
)

// Service defines the interface for ballistics operations
type Service interface {
	// Catalog
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)
	GetWeapon(ctx context.Context, input *GetWeaponInput) (*GetWeaponOutput, error)
	ListObstacles(ctx context.Context, input *ListObstaclesInput) (*ListObstaclesOutput, error)
	ListBodyparts(ctx context.Context, input *ListBodypartsInput) (*ListBodypartsOutput, error)

	// Damage rules
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)
	GetDamageProfile(ctx context.Context, input *GetDamageProfileInput) (*GetDamageProfileOutput, error)
	FindLethalCombinations(
		ctx context.Context,
		input *FindLethalCombinationsInput,
	) (*FindLethalCombinationsOutput, error)
}

// Config holds the dependencies for the ballistics orchestrator
type Config struct {
	Engine     engine.Engine
	WeaponRepo weapons.Repository

	// Optional; searches are recomputed every time without it
	LethalityCache lethality.Repository
	CacheTTL       time.Duration

	// Optional; defaults to a no-op logger and the global meter provider
	Logger *zerolog.Logger
	Meter  metric.Meter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.WeaponRepo == nil {
		vb.RequiredField("WeaponRepo")
	}
	if c.CacheTTL < 0 {
		vb.Fieldf("CacheTTL", "must not be negative, got %s", c.CacheTTL)
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	weaponRepo weapons.Repository
	cache      lethality.Repository
	cacheTTL   time.Duration
	logger     zerolog.Logger
	metrics    *instruments
}

// NewOrchestrator creates a new ballistics orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "ballistics").Logger()
	}

	metrics, err := newInstruments(cfg.Meter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create instruments")
	}

	return &orchestrator{
		engine:     cfg.Engine,
		weaponRepo: cfg.WeaponRepo,
		cache:      cfg.LethalityCache,
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// ListWeapons returns the catalog in catalog order, optionally filtered by caliber
func (o *orchestrator) ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var caliber hunt.AmmoFlag
	if input.Caliber != "" {
		parsed, err := parseCaliber(input.Caliber)
		if err != nil {
			return nil, err
		}
		caliber = parsed
	}

	listed, err := o.weaponRepo.List(ctx, &weapons.ListInput{Caliber: caliber})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weapons")
	}

	infos := make([]*WeaponInfo, 0, len(listed.Weapons))
	for _, w := range listed.Weapons {
		infos = append(infos, o.describe(w))
	}

	return &ListWeaponsOutput{
		Weapons:        infos,
		CatalogVersion: listed.Version,
	}, nil
}

// GetWeapon returns a single weapon with its selectable options
func (o *orchestrator) GetWeapon(ctx context.Context, input *GetWeaponInput) (*GetWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	w, err := o.getWeapon(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	return &GetWeaponOutput{Weapon: o.describe(w)}, nil
}

// ListObstacles returns every obstacle in menu order
func (o *orchestrator) ListObstacles(_ context.Context, input *ListObstaclesInput) (*ListObstaclesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &ListObstaclesOutput{Obstacles: hunt.Obstacles()}, nil
}

// ListBodyparts returns every body part, or those valid for a weapon configuration
func (o *orchestrator) ListBodyparts(ctx context.Context, input *ListBodypartsInput) (*ListBodypartsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.WeaponName == "" {
		return &ListBodypartsOutput{Bodyparts: hunt.Bodyparts()}, nil
	}

	w, err := o.getWeapon(ctx, input.WeaponName)
	if err != nil {
		return nil, err
	}
	active, err := parseVariants(w, input.Variants)
	if err != nil {
		return nil, err
	}

	return &ListBodypartsOutput{Bodyparts: o.engine.SelectableBodyparts(w.Flags | active)}, nil
}

// CalculateDamage resolves one hit for a named weapon
func (o *orchestrator) CalculateDamage(
	ctx context.Context,
	input *CalculateDamageInput,
) (*CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("weapon_name", input.WeaponName, vb)
	errors.ValidateRequired("bodypart", input.Bodypart, vb)
	if input.TargetHealth < 0 {
		vb.Fieldf("target_health", "must not be negative, got %d", input.TargetHealth)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	w, err := o.getWeapon(ctx, input.WeaponName)
	if err != nil {
		return nil, err
	}
	active, err := parseVariants(w, input.Variants)
	if err != nil {
		return nil, err
	}
	bodypart, obstacle, err := parseTarget(input.Bodypart, input.Obstacle)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveDamage(ctx, &engine.ResolveDamageInput{
		Weapon:   w,
		Active:   active,
		Distance: input.Distance,
		Bodypart: bodypart,
		Obstacle: obstacle,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve damage for %s", w.Name)
	}

	o.metrics.resolved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("ammo_type", string(resolved.AmmoType)),
		attribute.String("bodypart", string(bodypart)),
	))

	output := &CalculateDamageOutput{
		WeaponName:        w.Name,
		AmmoType:          resolved.AmmoType,
		Flags:             resolved.Flags,
		FalloffMultiplier: resolved.FalloffMultiplier,
		BodypartModifier:  resolved.BodypartModifier,
		PenetrationFactor: resolved.PenetrationFactor,
		Damage:            resolved.Damage,
	}
	if input.TargetHealth > 0 {
		output.ShotsToKill = ballistics.ShotsToKill(input.TargetHealth, resolved.Damage)
	}

	o.logger.Debug().
		Str("weapon", w.Name).
		Str("ammo_type", string(resolved.AmmoType)).
		Float64("distance", input.Distance).
		Int("damage", resolved.Damage).
		Msg("resolved damage")

	return output, nil
}

// GetDamageProfile samples damage over distance for a named weapon
func (o *orchestrator) GetDamageProfile(
	ctx context.Context,
	input *GetDamageProfileInput,
) (*GetDamageProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("weapon_name", input.WeaponName, vb)
	errors.ValidateRequired("bodypart", input.Bodypart, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	w, err := o.getWeapon(ctx, input.WeaponName)
	if err != nil {
		return nil, err
	}
	active, err := parseVariants(w, input.Variants)
	if err != nil {
		return nil, err
	}
	bodypart, obstacle, err := parseTarget(input.Bodypart, input.Obstacle)
	if err != nil {
		return nil, err
	}

	profile, err := o.engine.DamageProfile(ctx, &engine.DamageProfileInput{
		Weapon:      w,
		Active:      active,
		MaxDistance: input.MaxDistance,
		Bodypart:    bodypart,
		Obstacle:    obstacle,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build damage profile for %s", w.Name)
	}

	return &GetDamageProfileOutput{
		WeaponName:  w.Name,
		AmmoType:    profile.AmmoType,
		Interval:    profile.Interval,
		MaxDistance: profile.MaxDistance,
		Samples:     profile.Samples,
		Bands:       profile.Bands,
	}, nil
}

// FindLethalCombinations searches the whole catalog. Results are cached per
// catalog version when a cache is configured; cache failures only cost a
// recomputation.
func (o *orchestrator) FindLethalCombinations(
	ctx context.Context,
	input *FindLethalCombinationsInput,
) (*FindLethalCombinationsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("bodypart", input.Bodypart, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	bodypart, obstacle, err := parseTarget(input.Bodypart, input.Obstacle)
	if err != nil {
		return nil, err
	}

	query := ballistics.LethalityQuery{
		Distance:     input.Distance,
		TargetHealth: input.TargetHealth,
		Bodypart:     bodypart,
		Obstacle:     obstacle,
		MaxShots:     input.MaxShots,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listed, err := o.weaponRepo.List(ctx, &weapons.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weapons")
	}

	if cached, ok := o.cachedMatches(ctx, listed.Version, query); ok {
		o.metrics.cacheHits.Add(ctx, 1)
		o.recordSearch(ctx, query, len(cached), true)
		return &FindLethalCombinationsOutput{
			Matches:        cached,
			CatalogVersion: listed.Version,
			Cached:         true,
		}, nil
	}

	found, err := o.engine.FindLethalCombinations(ctx, &engine.FindLethalCombinationsInput{
		Weapons: listed.Weapons,
		Query:   query,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search lethal combinations")
	}

	o.storeMatches(ctx, listed.Version, query, found.Matches)
	o.recordSearch(ctx, query, len(found.Matches), false)

	return &FindLethalCombinationsOutput{
		Matches:        found.Matches,
		CatalogVersion: listed.Version,
	}, nil
}

func (o *orchestrator) cachedMatches(
	ctx context.Context,
	version string,
	query ballistics.LethalityQuery,
) ([]ballistics.Lethality, bool) {
	if o.cache == nil {
		return nil, false
	}

	got, err := o.cache.Get(ctx, lethality.GetInput{CatalogVersion: version, Query: query})
	if err != nil {
		if !errors.IsNotFound(err) {
			o.logger.Warn().Err(err).Msg("lethality cache read failed")
		}
		return nil, false
	}

	matches := got.Entry.Matches
	if matches == nil {
		matches = []ballistics.Lethality{}
	}
	return matches, true
}

func (o *orchestrator) storeMatches(
	ctx context.Context,
	version string,
	query ballistics.LethalityQuery,
	matches []ballistics.Lethality,
) {
	if o.cache == nil {
		return
	}

	_, err := o.cache.Put(ctx, lethality.PutInput{
		CatalogVersion: version,
		Query:          query,
		Matches:        matches,
		TTL:            o.cacheTTL,
	})
	if err != nil {
		o.logger.Warn().Err(err).Msg("lethality cache write failed")
	}
}

func (o *orchestrator) recordSearch(ctx context.Context, query ballistics.LethalityQuery, matches int, cached bool) {
	attrs := metric.WithAttributes(
		attribute.String("bodypart", string(query.Bodypart)),
		attribute.Bool("cached", cached),
	)
	o.metrics.searches.Add(ctx, 1, attrs)
	o.metrics.matches.Record(ctx, int64(matches), attrs)

	o.logger.Info().
		Float64("distance", query.Distance).
		Int("target_health", query.TargetHealth).
		Str("bodypart", string(query.Bodypart)).
		Str("obstacle", string(query.Obstacle)).
		Int("max_shots", query.MaxShots).
		Int("matches", matches).
		Bool("cached", cached).
		Msg("lethality search")
}

func (o *orchestrator) getWeapon(ctx context.Context, name string) (*hunt.Weapon, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}

	got, err := o.weaponRepo.Get(ctx, &weapons.GetInput{Name: name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get weapon %q", name)
	}
	return got.Weapon, nil
}

func (o *orchestrator) describe(w *hunt.Weapon) *WeaponInfo {
	info := &WeaponInfo{
		Weapon:    w,
		Variants:  make([]string, 0, len(w.EnabledVariants())),
		Bodyparts: o.engine.SelectableBodyparts(w.Flags),
	}
	for _, bit := range w.EnabledVariants() {
		info.Variants = append(info.Variants, bit.String())
	}
	for _, combination := range w.VariantCombinations() {
		if ammoType, err := hunt.TypeForFlags(combination); err == nil {
			info.AmmoTypes = append(info.AmmoTypes, ammoType)
		}
	}
	return info
}

// parseVariants turns variant names into an active selection the weapon supports
func parseVariants(w *hunt.Weapon, names []string) (hunt.AmmoFlag, error) {
	var active hunt.AmmoFlag
	for _, name := range names {
		bit, err := hunt.ParseVariantFlag(strings.TrimSpace(name))
		if err != nil {
			return 0, err
		}
		if !hunt.CanEnableVariant(w, bit) {
			return 0, errors.InvalidArgumentf("%s does not support %s", w.Name, bit).
				WithMeta("weapon", w.Name).
				WithMeta("variant", bit.String())
		}
		active |= bit
	}
	return active, nil
}

func parseTarget(bodypartName, obstacleName string) (hunt.Bodypart, hunt.Obstacle, error) {
	bodypart, err := hunt.ParseBodypart(bodypartName)
	if err != nil {
		return "", "", err
	}
	obstacle, err := hunt.ParseObstacle(obstacleName)
	if err != nil {
		return "", "", err
	}
	return bodypart, obstacle, nil
}

func parseCaliber(name string) (hunt.AmmoFlag, error) {
	flag, err := hunt.ParseAmmoFlag(strings.TrimSpace(name))
	if err != nil || flag.Caliber() != flag {
		return 0, errors.InvalidArgumentf("unknown caliber %q", name).WithMeta("caliber", name)
	}
	return flag, nil
}
