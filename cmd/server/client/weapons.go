package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
)

var caliber string

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List the weapon catalog",
	Long:  `List every catalog weapon with its base damage, caliber flags and toggleable variants.`,
	RunE:  runWeapons,
}

var weaponCmd = &cobra.Command{
	Use:   "weapon NAME",
	Short: "Show one weapon",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeapon,
}

var obstaclesCmd = &cobra.Command{
	Use:   "obstacles",
	Short: "List obstacle categories",
	RunE:  runObstacles,
}

func init() {
	weaponsCmd.Flags().StringVar(&caliber, "caliber", "", "Only list one caliber (Compact, Medium, Long, Shotgun, Nitro)")
}

func runWeapons(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ListWeapons(ctx, &apiv1alpha1.ListWeaponsRequest{Caliber: caliber})
	if err != nil {
		return callError("failed to list weapons", err)
	}

	fmt.Printf("Catalog %s, %d weapons:\n\n", resp.CatalogVersion, len(resp.Weapons))
	for _, w := range resp.Weapons {
		printWeapon(w)
	}
	return nil
}

func runWeapon(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetWeapon(ctx, &apiv1alpha1.GetWeaponRequest{Name: args[0]})
	if err != nil {
		return callError("failed to get weapon", err)
	}

	printWeapon(resp.Weapon)
	fmt.Printf("   Ammunition: %s\n", strings.Join(resp.Weapon.AmmoTypes, ", "))
	fmt.Printf("   Body parts: %s\n", strings.Join(resp.Weapon.Bodyparts, ", "))
	return nil
}

func runObstacles(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBallisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ListObstacles(ctx, &apiv1alpha1.ListObstaclesRequest{})
	if err != nil {
		return callError("failed to list obstacles", err)
	}

	for _, o := range resp.Obstacles {
		fmt.Println(o)
	}
	return nil
}

func printWeapon(w *apiv1alpha1.Weapon) {
	fmt.Printf("%-40s %4d  %s", w.Name, w.Damage, w.Flags)
	if len(w.Variants) > 0 {
		fmt.Printf("  [%s]", strings.Join(w.Variants, ", "))
	}
	fmt.Println()
}
