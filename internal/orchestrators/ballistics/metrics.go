package ballistics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/hunt-ballistics/internal/errors"
)

const instrumentationName = "github.com/KirkDiggler/hunt-ballistics/internal/orchestrators/ballistics"

type instruments struct {
	resolved  metric.Int64Counter
	searches  metric.Int64Counter
	cacheHits metric.Int64Counter
	matches   metric.Int64Histogram
}

func newInstruments(m metric.Meter) (*instruments, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	var (
		inst instruments
		err  error
	)

	inst.resolved, err = m.Int64Counter(
		"ballistics.damage.resolved",
		metric.WithDescription("Single hit damage calculations"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating resolved counter")
	}

	inst.searches, err = m.Int64Counter(
		"ballistics.lethality.searches",
		metric.WithDescription("Lethality searches served"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating searches counter")
	}

	inst.cacheHits, err = m.Int64Counter(
		"ballistics.lethality.cache_hits",
		metric.WithDescription("Lethality searches answered from the cache"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating cache hit counter")
	}

	inst.matches, err = m.Int64Histogram(
		"ballistics.lethality.matches",
		metric.WithDescription("Combinations returned per lethality search"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating matches histogram")
	}

	return &inst, nil
}
