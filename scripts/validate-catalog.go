package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/hunt-ballistics/internal/entities/hunt"
	"github.com/KirkDiggler/hunt-ballistics/internal/pkg/clock"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality"
	"github.com/KirkDiggler/hunt-ballistics/internal/repositories/weapons"
)

// Validates a weapon catalog and optionally purges cached lethality results
// computed from other catalog versions.
//
//	go run scripts/validate-catalog.go [catalog.yaml]
//	PURGE=1 REDIS_URL=redis://localhost:6379 go run scripts/validate-catalog.go
func main() {
	var (
		catalog *weapons.Catalog
		err     error
		source  = "embedded catalog"
	)

	if len(os.Args) > 1 {
		source = os.Args[1]
		catalog, err = weapons.ReadCatalogFile(source)
	} else {
		catalog, err = weapons.ParseCatalog(weapons.EmbeddedCatalog())
	}
	if err != nil {
		log.Fatalf("✗ %s is invalid: %v", source, err)
	}

	fmt.Printf("✓ %s: %d weapons, version %s\n\n", source, len(catalog.Weapons), catalog.Version)

	perCaliber := make(map[hunt.AmmoFlag]int)
	perType := make(map[hunt.AmmoType]int)
	for _, w := range catalog.Weapons {
		perCaliber[w.Flags.Caliber()]++
		for _, flags := range w.VariantCombinations() {
			t, err := hunt.TypeForFlags(flags)
			if err != nil {
				log.Fatalf("✗ %s: %v", w.Name, err)
			}
			perType[t]++
		}
	}

	for _, c := range []hunt.AmmoFlag{
		hunt.AmmoFlagCompact, hunt.AmmoFlagMedium, hunt.AmmoFlagLong, hunt.AmmoFlagShotgun, hunt.AmmoFlagNitro,
	} {
		fmt.Printf("  %-8s %d\n", c, perCaliber[c])
	}

	var unused []hunt.AmmoType
	for _, t := range hunt.AmmoTypes() {
		if perType[t] == 0 {
			unused = append(unused, t)
		}
	}
	if len(unused) > 0 {
		fmt.Printf("\nAmmunition types no weapon fires: %v\n", unused)
	}

	if os.Getenv("PURGE") == "" {
		return
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	defer func() {
		_ = client.Close()
	}()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Printf("\nPurge cached lethality results not computed from %s on %s? (yes/no): ", catalog.Version, redisURL)
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	repo, err := lethality.NewRedisRepository(&lethality.Config{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create cache repository:", err)
	}

	out, err := repo.PurgeStale(ctx, lethality.PurgeStaleInput{KeepVersion: catalog.Version})
	if err != nil {
		log.Fatal("Purge failed:", err)
	}
	fmt.Printf("Scanned %d entries, deleted %d\n", out.Scanned, out.Deleted)
}
