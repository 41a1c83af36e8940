package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/cache"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/engine"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/logging"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/metrics"
)

const (
	defaultListLimit        = 20
	maxListLimit            = 100
	defaultBatchConcurrency = 8
)

type Recommender interface {
	Recommend(ctx context.Context, raw domain.RawAssessment) *domain.RecommendationResult
}

type ResultCache interface {
	Get(ctx context.Context, fingerprint string) (*domain.RecommendationResult, error)
	Set(ctx context.Context, fingerprint string, res *domain.RecommendationResult) error
}

type ResultStore interface {
	SaveResult(ctx context.Context, fingerprint string, res *domain.RecommendationResult) error
	GetResultByID(ctx context.Context, id string) (*domain.RecommendationResult, error)
	ListRecentResults(ctx context.Context, limit int) ([]domain.StoredResult, error)
	CountResults(ctx context.Context) (int, error)
}

type Service struct {
	engine           Recommender
	cache            ResultCache
	store            ResultStore
	batchConcurrency int
}

// NewService wires the pipeline to its cache and store. A non-positive
// batchConcurrency uses the default.
func NewService(eng Recommender, cache ResultCache, store ResultStore, batchConcurrency int) *Service {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &Service{
		engine:           eng,
		cache:            cache,
		store:            store,
		batchConcurrency: batchConcurrency,
	}
}

// GetRecommendations returns the result for one assessment and whether it
// came from the cache.
func (s *Service) GetRecommendations(ctx context.Context, raw domain.RawAssessment) (*domain.RecommendationResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	log := logging.Ctx(ctx)

	fingerprint, err := cache.Fingerprint(engine.Normalize(raw))
	if err != nil {
		return nil, false, err
	}

	// Check Cache
	cached, err := s.cache.Get(ctx, fingerprint)
	if err != nil {
		log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("cache get failed")
	}
	metrics.RecordCacheLookup(cached != nil)
	if cached != nil {
		return cached, true, nil
	}

	// Cache miss -> run the pipeline
	res := s.engine.Recommend(ctx, raw)

	res.ID = uuid.NewString()
	if err := s.store.SaveResult(ctx, fingerprint, res); err != nil {
		log.Warn().Err(err).Str("result_id", res.ID).Msg("persist result failed")
		res.ID = ""
	}

	// Fallback results are never cached so the next request retries the pipeline.
	if !res.Fallback {
		if err := s.cache.Set(ctx, fingerprint, res); err != nil {
			log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("cache set failed")
		}
	}
	return res, false, nil
}

// GetBatchRecommendations runs every assessment with bounded concurrency.
// Results keep the input order; one failing item never fails the batch.
func (s *Service) GetBatchRecommendations(ctx context.Context, raws []domain.RawAssessment) *domain.BatchResponse {
	start := time.Now()

	results := make([]domain.BatchItemResult, len(raws))
	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)
	for i, raw := range raws {
		g.Go(func() error {
			results[i] = s.processBatchItem(ctx, i, raw)
			return nil
		})
	}
	_ = g.Wait()

	summary := domain.BatchSummary{}
	for _, r := range results {
		if r.Status != domain.StatusSuccess {
			summary.FailedCount++
			continue
		}
		summary.SuccessCount++
		if r.Result.Fallback {
			summary.FallbackCount++
		}
	}
	summary.ProcessingTimeMs = time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Results: results,
		Summary: summary,
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func (s *Service) processBatchItem(ctx context.Context, idx int, raw domain.RawAssessment) domain.BatchItemResult {
	res, hit, err := s.GetRecommendations(ctx, raw)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("index", idx).Msg("batch item failed")
		code, msg := categorizeError(err)
		return domain.BatchItemResult{
			Index:   idx,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}
	return domain.BatchItemResult{
		Index:    idx,
		Result:   res,
		CacheHit: hit,
		Status:   domain.StatusSuccess,
	}
}

// GetResult loads a stored result.
func (s *Service) GetResult(ctx context.Context, id string) (*domain.RecommendationResult, error) {
	return s.store.GetResultByID(ctx, id)
}

// ListRecent returns the newest stored results and the total stored.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.StoredResult, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	} else if limit > maxListLimit {
		limit = maxListLimit
	}
	items, err := s.store.ListRecentResults(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountResults(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Handle batch item error
func categorizeError(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "request timed out before the assessment was processed"
	}
	return "internal_error", "an unexpected error occurred"
}
