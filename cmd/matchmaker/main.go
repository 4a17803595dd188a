package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tasnim001/Ai-Job-Search/internal/config"
	dbRedis "github.com/tasnim001/Ai-Job-Search/internal/db/redis"
	"github.com/tasnim001/Ai-Job-Search/internal/domain"
	"github.com/tasnim001/Ai-Job-Search/internal/embedding"
	logpkg "github.com/tasnim001/Ai-Job-Search/internal/logger"
	"github.com/tasnim001/Ai-Job-Search/internal/metrics"
	"github.com/tasnim001/Ai-Job-Search/internal/parser"
	"github.com/tasnim001/Ai-Job-Search/internal/repository/embcache"
	jobsrepo "github.com/tasnim001/Ai-Job-Search/internal/repository/jobs"
	vectorrepo "github.com/tasnim001/Ai-Job-Search/internal/repository/vector"
	"github.com/tasnim001/Ai-Job-Search/internal/transport/chihttp"
	geminiTransport "github.com/tasnim001/Ai-Job-Search/internal/transport/gemini"
	openaiEmb "github.com/tasnim001/Ai-Job-Search/internal/transport/openai"
	healthuc "github.com/tasnim001/Ai-Job-Search/internal/usecase/health"
	ingestuc "github.com/tasnim001/Ai-Job-Search/internal/usecase/ingest"
	searchuc "github.com/tasnim001/Ai-Job-Search/internal/usecase/search"
	"github.com/tasnim001/Ai-Job-Search/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting matchmaker API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("redis_addrs", cfg.Database.Addrs),
		zap.String("embedding_provider", cfg.Embedding.Provider),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create redis store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Redis not ready", zap.Error(err))
	}
	logger.Info("Connected to redis")

	// Register metrics explicitly (no init())
	metrics.RegisterSearchMetrics()
	metrics.RegisterEmbeddingMetrics()

	embedder, nlpParser, err := buildProviders(ctx, &cfg, store, logger)
	if err != nil {
		logger.Fatal("Failed to build embedding provider", zap.Error(err))
	}
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	jobsRepo := jobsrepo.New(store, cfg.Embedding.Dimensions, logger)
	vectorRepo := vectorrepo.New(store)

	ingestSvc, err := ingestuc.New(jobsRepo, embedder, cfg.Ingest.BatchWorkers, logger)
	if err != nil {
		logger.Fatal("Failed to create ingest service", zap.Error(err))
	}
	defer ingestSvc.Close()

	if err := ingestSvc.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure search index", zap.Error(err))
	}

	searchSvc := searchuc.New(embedder, vectorRepo, jobsRepo, parser.New(), nlpParser, searchuc.Config{
		MaxVectorResults:     cfg.Search.MaxVectorResults,
		MaxStructuredResults: cfg.Search.MaxStructuredResults,
		MaxFinalResults:      cfg.Search.MaxFinalResults,
		ChannelTimeout:       time.Duration(cfg.Search.ChannelTimeoutMs) * time.Millisecond,
	}, logger)

	healthSvc := healthuc.New(store, newEmbeddingHealthChecker(embedder))

	server := chihttp.NewServer(searchSvc, ingestSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chihttp.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildProviders assembles the embedder chain and the optional LLM parser:
// provider -> cache -> offline failover. The offline embedder alone needs
// neither cache nor failover.
func buildProviders(
	ctx context.Context,
	cfg *config.Config,
	store *dbRedis.Store,
	logger *zap.Logger,
) (domain.Embedder, searchuc.QueryParser, error) {
	offline := embedding.NewOffline(cfg.Embedding.Dimensions)

	var geminiClient *geminiTransport.Client
	if cfg.Embedding.Gemini.APIKey != "" {
		var err error
		geminiClient, err = geminiTransport.NewClient(ctx, cfg.Embedding.Gemini.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("create gemini client: %w", err)
		}
	}

	var nlpParser searchuc.QueryParser
	if cfg.Parser.Enabled && geminiClient != nil {
		nlpParser = geminiTransport.NewParser(geminiClient, cfg.Parser.Model, logger)
	}

	var primary domain.Embedder
	switch cfg.Embedding.Provider {
	case "offline":
		return offline, nlpParser, nil
	case "gemini":
		primary = geminiTransport.NewEmbedder(geminiClient, cfg.Embedding.Model, cfg.Embedding.Dimensions)
	case "openai":
		primary = openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.OpenAI.APIKey,
			BaseURL:    cfg.Embedding.OpenAI.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})
	default:
		return nil, nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}

	cached := embcache.New(primary, store, metrics.EmbeddingCacheTotal, logger)
	failover := embedding.NewFailover(cached, offline, cfg.Embedding.Provider, logger)

	return failover, nlpParser, nil
}

// embeddingHealthChecker adapts domain.Embedder to health.EmbeddingChecker.
type embeddingHealthChecker struct {
	embedder domain.Embedder
}

func newEmbeddingHealthChecker(embedder domain.Embedder) *embeddingHealthChecker {
	return &embeddingHealthChecker{embedder: embedder}
}

func (h *embeddingHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.embedder.(domain.EmbedderHealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("embedding health check: %w", err)
		}
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
