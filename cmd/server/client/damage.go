package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
)

var (
	variants     []string
	distance     float64
	bodypart     string
	obstacle     string
	targetHealth int32
)

var damageCmd = &cobra.Command{
	Use:   "damage WEAPON",
	Short: "Calculate the damage of a single hit",
	Long:  `Resolve one hit for a catalog weapon and print the multipliers behind the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDamage,
}

func init() {
	damageCmd.Flags().StringSliceVar(&variants, "variant", nil, "Variant to enable (Silenced, FMJ, Spitzer, Pistol); repeatable")
	damageCmd.Flags().Float64Var(&distance, "distance", 0, "Distance to target in meters")
	damageCmd.Flags().StringVar(&bodypart, "bodypart", "Upper Chest", "Body part hit")
	damageCmd.Flags().StringVar(&obstacle, "obstacle", "None", "Obstacle the round passes through")
	damageCmd.Flags().Int32Var(&targetHealth, "health", 150, "Target health for shots to kill, 0 to skip")
}

func runDamage(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.CalculateDamage(ctx, &apiv1alpha1.CalculateDamageRequest{
		WeaponName:   args[0],
		Variants:     variants,
		Distance:     distance,
		Bodypart:     bodypart,
		Obstacle:     obstacle,
		TargetHealth: targetHealth,
	})
	if err != nil {
		return callError("failed to calculate damage", err)
	}

	fmt.Printf("%s (%s) at %gm, %s through %s\n", resp.WeaponName, resp.AmmoType, distance, bodypart, obstacle)
	fmt.Printf("   Falloff:     %.4f\n", resp.FalloffMultiplier)
	fmt.Printf("   Body part:   %.3f\n", resp.BodypartModifier)
	fmt.Printf("   Penetration: %.2f\n", resp.PenetrationFactor)
	fmt.Printf("   Damage:      %d\n", resp.Damage)
	if resp.ShotsToKill > 0 {
		fmt.Printf("   Shots to kill %d health: %d\n", targetHealth, resp.ShotsToKill)
	}
	return nil
}
