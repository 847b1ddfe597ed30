// Package lethality caches lethality search results
package lethality

//go:generate mockgen -destination=mock/mock_repository.go -package=lethalitymock github.com/KirkDiggler/hunt-ballistics/internal/repositories/lethality Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
)

// Entry is a cached search result. Entries are only valid for the catalog
// version they were computed from.
type Entry struct {
	CatalogVersion string                    `json:"catalog_version"`
	Query          ballistics.LethalityQuery `json:"query"`
	Matches        []ballistics.Lethality    `json:"matches"`
	CreatedAt      time.Time                 `json:"created_at"`
	ExpiresAt      time.Time                 `json:"expires_at"`
}

// GetInput identifies a cached search
type GetInput struct {
	CatalogVersion string
	Query          ballistics.LethalityQuery
}

// GetOutput contains the cached search
type GetOutput struct {
	Entry *Entry
}

// PutInput contains a search result to cache
type PutInput struct {
	CatalogVersion string
	Query          ballistics.LethalityQuery
	Matches        []ballistics.Lethality
	TTL            time.Duration // zero uses the repository default
}

// PutOutput contains the stored entry
type PutOutput struct {
	Entry *Entry
}

// DeleteInput identifies a cached search
type DeleteInput struct {
	CatalogVersion string
	Query          ballistics.LethalityQuery
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// PurgeStaleInput names the catalog version whose entries survive
type PurgeStaleInput struct {
	KeepVersion string
}

// PurgeStaleOutput reports what was scanned and removed
type PurgeStaleOutput struct {
	Scanned int
	Deleted int
}

// Repository defines the interface for the lethality result cache
type Repository interface {
	// Get returns errors.NotFound on a miss or an expired entry
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a result, replacing any previous entry for the same query
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes a cached result
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// PurgeStale removes entries computed from any other catalog version
	PurgeStale(ctx context.Context, input PurgeStaleInput) (*PurgeStaleOutput, error)
}
