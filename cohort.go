// Package cohort groups records described by fixed-length numeric feature
// vectors into similarity clusters, using deterministic single-linkage
// hierarchical clustering rather than a trained model.
package cohort

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashiwatari/cohort/internal/linkage"
	"github.com/ashiwatari/cohort/internal/scale"
	"github.com/ashiwatari/cohort/stats"
	"go.uber.org/zap"
)

var (
	ErrNoRecords      = errors.New("no records to cluster")
	ErrRaggedFeatures = errors.New("records disagree on feature vector length")

	// Stage sentinels, surfaced here so callers can match them with
	// errors.Is without reaching into internal packages.
	ErrDegenerateFeature = scale.ErrDegenerateFeature
	ErrMissingStats      = scale.ErrMissingStats
	ErrInvalidGroupCount = linkage.ErrInvalidTarget
)

// Record pairs an identity with its raw feature vector. Every record in a
// working set must carry the same number of features.
type Record struct {
	ID       string
	Features []float64
}

// Group is one cluster of the final partition. Members hold record
// identities in merge order.
type Group struct {
	Index   int
	Members []string
}

// Result carries the per-dimension statistics computed before scaling and
// the final named groups.
type Result struct {
	FeatureStats map[int]stats.Numeric
	Groups       []Group
}

// Cluster scales the records onto a comparable footing, builds the
// single-linkage merge sequence over the scaled vectors, and cuts it at the
// configured group count (default 3, see WithGroups).
//
// The caller keeps ownership of records; nothing is retained after the
// call returns, and repeated calls on the same input produce the same
// partition.
func Cluster(ctx context.Context, records []Record, opts ...Option) (*Result, error) {
	var cfg config
	if err := cfg.init(opts...); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	dims := len(records[0].Features)
	features := make([][]float64, len(records))
	for i, rec := range records {
		if len(rec.Features) != dims {
			return nil, fmt.Errorf("%w: record %q has %d features, want %d",
				ErrRaggedFeatures, rec.ID, len(rec.Features), dims)
		}
		features[i] = rec.Features
	}

	var (
		byDim  map[int]stats.Numeric
		points = features
		err    error
	)
	if cfg.scaling {
		byDim, points, err = scale.Fit(features)
	} else {
		byDim, err = scale.Stats(features)
	}
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("prepared feature vectors",
		zap.Int("records", len(records)),
		zap.Int("features", dims),
		zap.Bool("scaled", cfg.scaling))

	levels, err := linkage.Levels(ctx, points, cfg.groups)
	if err != nil {
		return nil, err
	}
	final := levels[len(levels)-1]
	cfg.logger.Debug("built merge sequence",
		zap.Int("levels", len(levels)),
		zap.Int("groups", len(final.Clusters)))

	return &Result{
		FeatureStats: byDim,
		Groups:       cut(final, records),
	}, nil
}
