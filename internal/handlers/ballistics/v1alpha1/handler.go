// Package v1alpha1 handles the ballistics grpc service interface
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
	"github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BallisticsService ballistics.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.BallisticsService == nil {
		return errors.InvalidArgument("ballistics service is required")
	}
	return nil
}

// Handler implements the ballistics gRPC service
type Handler struct {
	apiv1alpha1.UnimplementedBallisticsServiceServer
	service ballistics.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.BallisticsService,
	}, nil
}

// ListWeapons returns the catalog
func (h *Handler) ListWeapons(
	ctx context.Context,
	req *apiv1alpha1.ListWeaponsRequest,
) (*apiv1alpha1.ListWeaponsResponse, error) {
	if req == nil {
		req = &apiv1alpha1.ListWeaponsRequest{}
	}

	output, err := h.service.ListWeapons(ctx, &ballistics.ListWeaponsInput{
		Caliber: req.Caliber,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	weapons := make([]*apiv1alpha1.Weapon, 0, len(output.Weapons))
	for _, info := range output.Weapons {
		weapons = append(weapons, convertWeaponToProto(info))
	}

	return &apiv1alpha1.ListWeaponsResponse{
		Weapons:        weapons,
		CatalogVersion: output.CatalogVersion,
	}, nil
}

// GetWeapon returns one catalog entry
func (h *Handler) GetWeapon(
	ctx context.Context,
	req *apiv1alpha1.GetWeaponRequest,
) (*apiv1alpha1.GetWeaponResponse, error) {
	if req.GetName() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.service.GetWeapon(ctx, &ballistics.GetWeaponInput{Name: req.GetName()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetWeaponResponse{
		Weapon: convertWeaponToProto(output.Weapon),
	}, nil
}

// ListObstacles returns the penetration categories in menu order
func (h *Handler) ListObstacles(
	ctx context.Context,
	_ *apiv1alpha1.ListObstaclesRequest,
) (*apiv1alpha1.ListObstaclesResponse, error) {
	output, err := h.service.ListObstacles(ctx, &ballistics.ListObstaclesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	obstacles := make([]string, len(output.Obstacles))
	for i, o := range output.Obstacles {
		obstacles[i] = string(o)
	}

	return &apiv1alpha1.ListObstaclesResponse{Obstacles: obstacles}, nil
}

// ListBodyparts returns the selectable body parts
func (h *Handler) ListBodyparts(
	ctx context.Context,
	req *apiv1alpha1.ListBodypartsRequest,
) (*apiv1alpha1.ListBodypartsResponse, error) {
	if req == nil {
		req = &apiv1alpha1.ListBodypartsRequest{}
	}

	output, err := h.service.ListBodyparts(ctx, &ballistics.ListBodypartsInput{
		WeaponName: req.WeaponName,
		Variants:   req.Variants,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.ListBodypartsResponse{
		Bodyparts: convertBodypartsToProto(output.Bodyparts),
	}, nil
}

// CalculateDamage resolves a single hit
func (h *Handler) CalculateDamage(
	ctx context.Context,
	req *apiv1alpha1.CalculateDamageRequest,
) (*apiv1alpha1.CalculateDamageResponse, error) {
	if req.GetWeaponName() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_name is required"))
	}
	if req.GetBodypart() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("bodypart is required"))
	}

	output, err := h.service.CalculateDamage(ctx, &ballistics.CalculateDamageInput{
		WeaponName:   req.WeaponName,
		Variants:     req.Variants,
		Distance:     req.Distance,
		Bodypart:     req.Bodypart,
		Obstacle:     req.Obstacle,
		TargetHealth: int(req.TargetHealth),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.CalculateDamageResponse{
		WeaponName:        output.WeaponName,
		AmmoType:          string(output.AmmoType),
		Flags:             output.Flags.String(),
		FalloffMultiplier: output.FalloffMultiplier,
		BodypartModifier:  output.BodypartModifier,
		PenetrationFactor: output.PenetrationFactor,
		Damage:            int32(output.Damage),
		ShotsToKill:       int32(output.ShotsToKill),
	}, nil
}

// GetDamageProfile samples damage over distance
func (h *Handler) GetDamageProfile(
	ctx context.Context,
	req *apiv1alpha1.GetDamageProfileRequest,
) (*apiv1alpha1.GetDamageProfileResponse, error) {
	if req.GetWeaponName() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_name is required"))
	}
	if req.GetBodypart() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("bodypart is required"))
	}

	output, err := h.service.GetDamageProfile(ctx, &ballistics.GetDamageProfileInput{
		WeaponName:  req.WeaponName,
		Variants:    req.Variants,
		MaxDistance: req.MaxDistance,
		Bodypart:    req.Bodypart,
		Obstacle:    req.Obstacle,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertProfileToProto(output), nil
}

// FindLethalCombinations searches the catalog for weapons that kill the target
func (h *Handler) FindLethalCombinations(
	ctx context.Context,
	req *apiv1alpha1.FindLethalCombinationsRequest,
) (*apiv1alpha1.FindLethalCombinationsResponse, error) {
	if req.GetBodypart() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("bodypart is required"))
	}
	if req.TargetHealth <= 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("target_health must be positive"))
	}

	output, err := h.service.FindLethalCombinations(ctx, &ballistics.FindLethalCombinationsInput{
		Distance:     req.Distance,
		TargetHealth: int(req.TargetHealth),
		Bodypart:     req.Bodypart,
		Obstacle:     req.Obstacle,
		MaxShots:     int(req.MaxShots),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	matches := make([]*apiv1alpha1.LethalCombination, 0, len(output.Matches))
	for _, m := range output.Matches {
		matches = append(matches, &apiv1alpha1.LethalCombination{
			WeaponName:       m.WeaponName,
			AmmoType:         string(m.AmmoType),
			Damage:           int32(m.Damage),
			PenetratedDamage: m.PenetratedDamage,
			ShotsToKill:      int32(m.ShotsToKill),
		})
	}

	return &apiv1alpha1.FindLethalCombinationsResponse{
		Matches:        matches,
		CatalogVersion: output.CatalogVersion,
		Cached:         output.Cached,
	}, nil
}
