package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/domain"
	"github.com/tasnim001/Ai-Job-Search/internal/metrics"
)

// Config bounds the per-query work.
type Config struct {
	MaxVectorResults     int
	MaxStructuredResults int
	MaxFinalResults      int
	ChannelTimeout       time.Duration
}

// Service orchestrates one search query: parse, fan out embedding plus the
// two retrieval channels, then fuse. It holds no per-query state, so any
// number of queries may run concurrently.
//
// The service degrades instead of failing: a dead channel contributes an
// empty candidate list, a failing LLM parser falls back to the rule parser,
// and the response is well-formed even when both channels are down.
type Service struct {
	embed      domain.Embedder
	vectors    VectorRetriever
	structured StructuredRetriever
	rules      RuleParser
	nlp        QueryParser // optional, may be nil
	cfg        Config
	logger     *zap.Logger
}

// New creates a search orchestrator. nlp may be nil; the rule parser then
// handles every query directly.
func New(
	embed domain.Embedder,
	vectors VectorRetriever,
	structured StructuredRetriever,
	rules RuleParser,
	nlp QueryParser,
	cfg Config,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		embed:      embed,
		vectors:    vectors,
		structured: structured,
		rules:      rules,
		nlp:        nlp,
		cfg:        cfg,
		logger:     log,
	}
}

// Search answers one free-text query. The only error it returns is
// domain.ErrEmptyQuery for blank input; every dependency failure is
// absorbed into a degraded but well-formed response.
func (s *Service) Search(ctx context.Context, query string) (domain.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return domain.SearchResponse{}, domain.ErrEmptyQuery
	}

	start := time.Now()
	log := s.logger

	filters := s.parseFilters(ctx, query)

	// The two retrieval channels have no data dependency on each other;
	// run them concurrently and join before fusion. Each one degrades to
	// an empty slice on error or timeout.
	var (
		wg             sync.WaitGroup
		vectorHits     []domain.VectorCandidate
		structuredHits []domain.Job
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vectorHits = s.vectorChannel(ctx, query, log)
	}()
	go func() {
		defer wg.Done()
		structuredHits = s.structuredChannel(ctx, filters, log)
	}()
	wg.Wait()

	results := fuseResults(vectorHits, structuredHits, filters, s.cfg.MaxFinalResults)

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResultsReturned.Observe(float64(len(results)))

	log.Info("search completed",
		zap.String("query", query),
		zap.Int("vector_candidates", len(vectorHits)),
		zap.Int("structured_candidates", len(structuredHits)),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(start)),
	)

	return domain.SearchResponse{
		Query:         query,
		ParsedFilters: filters,
		Results:       results,
	}, nil
}

// parseFilters tries the LLM parser when configured and silently falls
// back to the rule-based parser on any failure. Callers never observe an
// LLM parsing error.
func (s *Service) parseFilters(ctx context.Context, query string) domain.ParsedFilters {
	if s.nlp == nil {
		return s.rules.Parse(query)
	}

	nlpCtx, cancel := context.WithTimeout(ctx, s.cfg.ChannelTimeout)
	defer cancel()

	filters, err := s.nlp.Parse(nlpCtx, query)
	if err != nil {
		metrics.ParserFallbacksTotal.Inc()
		s.logger.Debug("nlp parser failed, using rule-based parser",
			zap.String("query", query), zap.Error(err))
		return s.rules.Parse(query)
	}

	normalizeFilters(&filters, query)
	return filters
}

// normalizeFilters pins the fields the LLM is not allowed to vary.
func normalizeFilters(f *domain.ParsedFilters, query string) {
	f.Intent = domain.IntentJobSearch
	if f.Status == "" {
		f.Status = domain.StatusActive
	}
	if f.OriginalQuery == "" {
		f.OriginalQuery = query
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	if len(f.Keywords) > 5 {
		f.Keywords = f.Keywords[:5]
	}
	if f.Skills == nil {
		f.Skills = []string{}
	}
}

func (s *Service) vectorChannel(ctx context.Context, query string, log *zap.Logger) []domain.VectorCandidate {
	chCtx, cancel := context.WithTimeout(ctx, s.cfg.ChannelTimeout)
	defer cancel()

	vec, err := s.embed.Embed(chCtx, query)
	if err != nil {
		metrics.SearchChannelDegradations.WithLabelValues("vector").Inc()
		log.Warn("embedding failed, vector channel degraded", zap.Error(err))
		return nil
	}

	hits, err := s.vectors.Search(chCtx, vec, s.cfg.MaxVectorResults)
	if err != nil {
		metrics.SearchChannelDegradations.WithLabelValues("vector").Inc()
		log.Warn("vector retrieval failed, channel degraded", zap.Error(err))
		return nil
	}
	return hits
}

func (s *Service) structuredChannel(ctx context.Context, filters domain.ParsedFilters, log *zap.Logger) []domain.Job {
	chCtx, cancel := context.WithTimeout(ctx, s.cfg.ChannelTimeout)
	defer cancel()

	jobs, err := s.structured.Filter(chCtx, filters, s.cfg.MaxStructuredResults)
	if err != nil {
		metrics.SearchChannelDegradations.WithLabelValues("structured").Inc()
		log.Warn("structured retrieval failed, channel degraded", zap.Error(err))
		return nil
	}
	return jobs
}
