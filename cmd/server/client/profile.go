package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
)

var maxDistance float64

var profileCmd = &cobra.Command{
	Use:   "profile WEAPON",
	Short: "Print damage over distance",
	Long:  `Sample the damage of a weapon configuration over distance and print the health bands it crosses.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringSliceVar(&variants, "variant", nil, "Variant to enable; repeatable")
	profileCmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Last sampled distance, 0 for the caliber default")
	profileCmd.Flags().StringVar(&bodypart, "bodypart", "Upper Chest", "Body part hit")
	profileCmd.Flags().StringVar(&obstacle, "obstacle", "None", "Obstacle the round passes through")
}

func runProfile(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetDamageProfile(ctx, &apiv1alpha1.GetDamageProfileRequest{
		WeaponName:  args[0],
		Variants:    variants,
		MaxDistance: maxDistance,
		Bodypart:    bodypart,
		Obstacle:    obstacle,
	})
	if err != nil {
		return callError("failed to get damage profile", err)
	}

	fmt.Printf("%s (%s), every %gm up to %gm\n\n", resp.WeaponName, resp.AmmoType, resp.Interval, resp.MaxDistance)
	for _, sample := range resp.Samples {
		fmt.Printf("%6.0fm %4d\n", sample.Distance, sample.Damage)
	}

	if len(resp.Bands) > 0 {
		fmt.Println()
		for _, band := range resp.Bands {
			fmt.Printf("%-7s %d-%d health: %gm to %gm\n", band.Name, band.Low, band.High, band.FromDistance, band.ToDistance)
		}
	}
	return nil
}
