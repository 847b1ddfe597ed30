// Package main is the entry point for the ballistics gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hunt-ballistics/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "hunt-ballistics",
	Short: "Hunt: Showdown ballistics gRPC server",
	Long: `hunt-ballistics serves weapon damage calculations: range falloff, obstacle penetration,
body part multipliers, damage profiles and catalog wide lethality searches.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
