package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/aevon-lab/basket/internal/core/mining"
	"github.com/aevon-lab/basket/internal/core/storage"
	"github.com/aevon-lab/basket/internal/report"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid analysis query")

// Thresholds are the defaults applied when a request omits a value.
type Thresholds struct {
	MinSupport    float64
	MinConfidence float64
}

// Request asks for the frequent itemsets and rules of one dataset.
type Request struct {
	Dataset       string
	MinSupport    float64
	MinConfidence float64
}

// Service loads a dataset, mines it and derives rules.
// Every run starts from the stored transactions; results are not cached.
type Service struct {
	store    storage.TransactionStore
	defaults Thresholds
	group    singleflight.Group
	runIDFn  func() string
	nowFn    func() time.Time
}

// NewService creates a new analysis service.
func NewService(store storage.TransactionStore, defaults Thresholds) *Service {
	if store == nil {
		panic("analysis: store must not be nil")
	}
	return &Service{
		store:    store,
		defaults: defaults,
		runIDFn:  uuid.NewString,
		nowFn:    time.Now,
	}
}

// Defaults returns the thresholds used for omitted request values.
func (s *Service) Defaults() Thresholds {
	return s.defaults
}

// Analyze runs one mining pass over req.Dataset.
//
// Identical requests that arrive while a run is in flight wait for and share
// that run's report.
func (s *Service) Analyze(ctx context.Context, req Request) (*report.Report, error) {
	if err := validate(req); err != nil {
		analysisRunsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	key := req.Dataset + "|" +
		strconv.FormatFloat(req.MinSupport, 'g', -1, 64) + "|" +
		strconv.FormatFloat(req.MinConfidence, 'g', -1, 64)

	// The shared run must outlive the caller that started it; followers
	// would otherwise inherit that caller's cancellation.
	runCtx := context.WithoutCancel(ctx)

	leader := false
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		leader = true
		return s.run(runCtx, req)
	})
	if shared && !leader {
		analysisShared.Inc()
	}
	if err != nil {
		return nil, err
	}
	return v.(*report.Report), nil
}

func (s *Service) run(ctx context.Context, req Request) (*report.Report, error) {
	start := s.nowFn()

	ts, err := s.store.LoadTransactions(ctx, req.Dataset)
	if err != nil {
		if errors.Is(err, storage.ErrDatasetNotFound) {
			analysisRunsTotal.WithLabelValues("not_found").Inc()
			return nil, err
		}
		analysisRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	table := mining.Mine(ts, req.MinSupport)
	rules := mining.DeriveRules(table, req.MinConfidence)

	r := report.Build(report.Meta{
		RunID:         s.runIDFn(),
		Dataset:       req.Dataset,
		MinSupport:    req.MinSupport,
		MinConfidence: req.MinConfidence,
		Transactions:  len(ts),
	}, table, rules)

	elapsed := s.nowFn().Sub(start)
	analysisRunsTotal.WithLabelValues("ok").Inc()
	analysisDuration.Observe(elapsed.Seconds())
	analysisItemsets.Observe(float64(r.ItemsetCount()))
	analysisRules.Observe(float64(len(rules)))

	slog.Info("[Analysis] Run complete",
		"run_id", r.RunID,
		"dataset", req.Dataset,
		"transactions", len(ts),
		"min_support", req.MinSupport,
		"min_confidence", req.MinConfidence,
		"last_level", r.LastLevel,
		"itemsets", r.ItemsetCount(),
		"rules", len(rules),
		"duration", elapsed,
	)
	return r, nil
}

// validate rejects requests the miner cannot interpret. Thresholds are
// otherwise taken literally, so a confidence above 1 is allowed and simply
// yields no rules.
func validate(req Request) error {
	if req.Dataset == "" {
		return invalidQueryf("dataset is required")
	}
	if math.IsNaN(req.MinSupport) || math.IsInf(req.MinSupport, 0) {
		return invalidQueryf("min_support must be a finite number")
	}
	if req.MinSupport < 0 {
		return invalidQueryf("min_support must be >= 0")
	}
	if math.IsNaN(req.MinConfidence) || math.IsInf(req.MinConfidence, 0) {
		return invalidQueryf("min_confidence must be a finite number")
	}
	return nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
