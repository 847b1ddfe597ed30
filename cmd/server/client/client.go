// Package client provides test commands for the ballistics gRPC service
package client

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/hunt-ballistics/internal/api/ballistics/v1alpha1"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the ballistics service",
	Long:  `Client commands allow you to query a running ballistics server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Catalog
	ClientCmd.AddCommand(weaponsCmd)
	ClientCmd.AddCommand(weaponCmd)
	ClientCmd.AddCommand(obstaclesCmd)

	// Damage rules
	ClientCmd.AddCommand(damageCmd)
	ClientCmd.AddCommand(profileCmd)
	ClientCmd.AddCommand(lethalCmd)
}

// createBallisticsClient creates a ballistics service client
func createBallisticsClient() (apiv1alpha1.BallisticsServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewBallisticsServiceClient(conn), cleanup, nil
}

// callError restores the server's error details so the reason and metadata
// reach the terminal along with the message.
func callError(action string, err error) error {
	var apiErr *errors.Error
	if !errors.As(errors.FromGRPCError(err), &apiErr) {
		return fmt.Errorf("%s: %w", action, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", action, errors.GetMessage(apiErr))
	meta := errors.GetMeta(apiErr)
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, meta[k])
	}
	return errors.New(apiErr.Code, b.String()).WithReason(errors.GetReason(apiErr))
}
