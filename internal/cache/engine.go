package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/domain"
)

const keyPrefix = "pensiongap:projection:"

// CachedEngine memoizes projections in a Repository. Domain errors are
// returned as-is and never stored. Cache failures are logged and the
// projection is computed instead.
type CachedEngine struct {
	engine *calculation.ProjectionEngine
	repo   Repository
	salt   uint64
	logger calculation.Logger
}

// NewCachedEngine wraps engine. The engine's calibration is part of every key,
// so engines with different tables can share a repository.
func NewCachedEngine(engine *calculation.ProjectionEngine, repo Repository) (*CachedEngine, error) {
	cal, err := json.Marshal(engine.Calibration)
	if err != nil {
		return nil, fmt.Errorf("failed to encode calibration: %w", err)
	}
	logger := engine.Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &CachedEngine{
		engine: engine,
		repo:   repo,
		salt:   xxhash.Sum64(cal),
		logger: logger,
	}, nil
}

type keyInput struct {
	Salt        uint64                     `json:"salt"`
	AsOf        string                     `json:"as_of"`
	Personal    domain.PersonalInputs      `json:"personal"`
	Assumptions domain.EconomicAssumptions `json:"assumptions"`
}

// Key returns the cache key for a projection request. Inputs that normalize
// to the same values share a key.
func (ce *CachedEngine) Key(asOf time.Time, personal domain.PersonalInputs, assumptions domain.EconomicAssumptions) (string, error) {
	data, err := json.Marshal(keyInput{
		Salt:        ce.salt,
		AsOf:        asOf.Format("2006-01-02"),
		Personal:    personal.Normalized(),
		Assumptions: assumptions.Clamped(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	return keyPrefix + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// Project returns the cached projection when present and computes and stores
// it otherwise. hit reports whether the result came from the cache.
func (ce *CachedEngine) Project(ctx context.Context, asOf time.Time, personal domain.PersonalInputs, assumptions domain.EconomicAssumptions) (result *domain.ProjectionResult, hit bool, err error) {
	key, err := ce.Key(asOf, personal, assumptions)
	if err != nil {
		return nil, false, err
	}

	if cached, ok, err := ce.repo.Get(ctx, key); err != nil {
		ce.logger.Warnf("cache get %s: %v", key, err)
	} else if ok {
		var r domain.ProjectionResult
		if err := json.Unmarshal([]byte(cached), &r); err == nil {
			return &r, true, nil
		}
		ce.logger.Warnf("cache entry %s is corrupt, recomputing", key)
	}

	result, err = ce.engine.Project(asOf, personal, assumptions)
	if err != nil {
		return nil, false, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode result: %w", err)
	}
	if err := ce.repo.Set(ctx, key, string(data)); err != nil {
		ce.logger.Warnf("cache set %s: %v", key, err)
	}
	return result, false, nil
}
