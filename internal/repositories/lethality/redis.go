package lethality

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/hunt-ballistics/internal/engine/ballistics"
	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
	"github.com/KirkDiggler/hunt-ballistics/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/hunt-ballistics/internal/redis"
)

const (
	// Key pattern: lethality:{catalog_version}:{distance}:{health}:{bodypart}:{obstacle}:{max_shots}
	keyPrefix = "lethality:"

	// DefaultTTL applies when neither the config nor the call sets one
	DefaultTTL = 10 * time.Minute

	errVersionEmpty = "catalog version cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis backed lethality cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CatalogVersion == "" {
		return nil, errors.InvalidArgument(errVersionEmpty)
	}

	key := buildKey(input.CatalogVersion, input.Query)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("lethality result not cached")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read lethality cache")
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal lethality entry")
	}

	if r.clock.Now().After(entry.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("lethality result has expired")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.CatalogVersion == "" {
		return nil, errors.InvalidArgument(errVersionEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}
	matches := input.Matches
	if matches == nil {
		matches = []ballistics.Lethality{}
	}

	now := r.clock.Now()
	entry := &Entry{
		CatalogVersion: input.CatalogVersion,
		Query:          input.Query,
		Matches:        matches,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal lethality entry")
	}

	key := buildKey(input.CatalogVersion, input.Query)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write lethality cache")
	}

	return &PutOutput{Entry: entry}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CatalogVersion == "" {
		return nil, errors.InvalidArgument(errVersionEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.CatalogVersion, input.Query)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete lethality entry")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

// purgeBatchSize bounds both the SCAN hint and each DEL call
const purgeBatchSize = 100

func (r *redisRepository) PurgeStale(ctx context.Context, input PurgeStaleInput) (*PurgeStaleOutput, error) {
	if input.KeepVersion == "" {
		return nil, errors.InvalidArgument(errVersionEmpty)
	}

	keep := keyPrefix + input.KeepVersion + ":"
	out := &PurgeStaleOutput{}
	stale := make([]string, 0, purgeBatchSize)

	flush := func() error {
		if len(stale) == 0 {
			return nil
		}
		n, err := r.client.Del(ctx, stale...).Result()
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete stale lethality entries")
		}
		out.Deleted += int(n)
		stale = stale[:0]
		return nil
	}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", purgeBatchSize).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Scanned++
		if strings.HasPrefix(key, keep) {
			continue
		}
		stale = append(stale, key)
		if len(stale) == purgeBatchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan lethality cache")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return out, nil
}

// buildKey normalizes the query so equivalent searches share an entry
func buildKey(version string, q ballistics.LethalityQuery) string {
	maxShots := q.MaxShots
	if maxShots == 0 {
		maxShots = ballistics.DefaultMaxShots
	}
	obstacle := string(q.Obstacle)
	if obstacle == "" {
		obstacle = "None"
	}

	return fmt.Sprintf("%s%s:%s:%d:%s:%s:%d",
		keyPrefix,
		version,
		strconv.FormatFloat(q.Distance, 'g', -1, 64),
		q.TargetHealth,
		keyPart(string(q.Bodypart)),
		keyPart(obstacle),
		maxShots,
	)
}

func keyPart(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
