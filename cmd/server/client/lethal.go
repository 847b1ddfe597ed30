package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
)

var maxShots int32

var lethalCmd = &cobra.Command{
	Use:   "lethal",
	Short: "Find weapons that kill a target",
	Long:  `Search the whole catalog for weapon and ammunition combinations that kill the target within the allowed number of hits.`,
	RunE:  runLethal,
}

func init() {
	lethalCmd.Flags().Float64Var(&distance, "distance", 0, "Distance to target in meters")
	lethalCmd.Flags().Int32Var(&targetHealth, "health", 150, "Target health")
	lethalCmd.Flags().StringVar(&bodypart, "bodypart", "Upper Chest", "Body part hit")
	lethalCmd.Flags().StringVar(&obstacle, "obstacle", "None", "Obstacle the round passes through")
	lethalCmd.Flags().Int32Var(&maxShots, "max-shots", 1, "Maximum hits allowed")
}

func runLethal(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.FindLethalCombinations(ctx, &apiv1alpha1.FindLethalCombinationsRequest{
		Distance:     distance,
		TargetHealth: targetHealth,
		Bodypart:     bodypart,
		Obstacle:     obstacle,
		MaxShots:     maxShots,
	})
	if err != nil {
		return callError("failed to search", err)
	}

	source := "computed"
	if resp.Cached {
		source = "cached"
	}
	fmt.Printf("%d combinations (%s, catalog %s):\n\n", len(resp.Matches), source, resp.CatalogVersion)
	for _, m := range resp.Matches {
		fmt.Printf("%-40s %-24s %4d (%6.1f)  %d shot(s)\n",
			m.WeaponName, m.AmmoType, m.Damage, m.PenetratedDamage, m.ShotsToKill)
	}
	return nil
}
