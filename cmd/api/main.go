package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"golang.org/x/sync/errgroup"

	"backbar/internal/common/pagination"
	"backbar/internal/infra/adapter/content/sanity"
	"backbar/internal/observability/logging"
	"backbar/internal/observability/tracing"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"

	hhttp "backbar/internal/handler/http"
	harticle "backbar/internal/handler/http/article"
	"backbar/internal/handler/http/middleware"
	"backbar/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	storeCfg, err := sanity.LoadConfigFromEnv()
	if err != nil {
		logger.Error("content store configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	geoCfg := middleware.LoadGeoConfigFromEnv()
	if err := geoCfg.Validate(); err != nil {
		logger.Error("geo gate configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}

	client := sanity.NewClient(storeCfg)
	repo := sanity.NewArticleRepo(client)

	svc := &artUC.Service{
		Repo:       repo,
		Pagination: pagination.LoadFromEnv(),
	}
	seoBuilder := seo.NewBuilder(seo.LoadConfigFromEnv())

	mux := setupRoutes(logger, svc, seoBuilder, repo, client, getVersion())
	handler := applyMiddleware(logger, mux, geoCfg)

	logger.Info("geo gate enabled",
		slog.String("country_header", geoCfg.CountryHeader),
		slog.Int("blocked_countries", geoCfg.BlockedCount()))

	runServer(logger, handler)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupRoutes registers the public read surface and the operational endpoints.
func setupRoutes(
	logger *slog.Logger,
	svc *artUC.Service,
	seoBuilder *seo.Builder,
	repo *sanity.ArticleRepo,
	client *sanity.Client,
	version string,
) *http.ServeMux {
	mux := http.NewServeMux()

	harticle.Register(mux, svc, seoBuilder, logger)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Store:        repo,
		Version:      version,
		BreakerState: client.BreakerState,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: repo})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Geo Gate → Recovery →
// Logging → Timeout → Body Limit → Metrics. The geo gate sits before any
// handler so a restricted request never reaches the content store.
func applyMiddleware(logger *slog.Logger, handler http.Handler, geoCfg middleware.GeoConfig) http.Handler {
	geoGate := middleware.NewGeoGate(geoCfg)

	chain := handler

	// Apply in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Timeout(15 * time.Second)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = geoGate.Middleware()(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and blocks until a shutdown signal.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
