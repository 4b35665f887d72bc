package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const appName = "gw-currency-converter"

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Currency rates, conversion and rate history gateway
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		fxBase, fxCacheTTL, convertMode,
		upstreamLatestURL, upstreamHistoryURL, upstreamTimeout, upstreamRPS,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExp,
		gwHost, gwPort,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		fxBase, fxCacheTTL, convertMode,
		upstreamLatestURL, upstreamHistoryURL, upstreamTimeout, upstreamRPS,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExp,
		gwHost, gwPort,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, FX, upstream, Redis, gRPC and Kafka configuration.
// An empty Redis host selects the in-memory cache; an empty exchanger
// host or Kafka broker list disables that integration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	fxBase string, fxCacheTTLSecond int, convertMode string,
	upstreamLatestURL, upstreamHistoryURL string, upstreamTimeoutSecond int, upstreamRPS float64,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	gwHost, gwPort string,
	kafkaBrokers, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// FX config
	fxBase = strings.ToUpper(getEnv("FX_BASE_CURRENCY", "USD"))
	if fxCacheTTLSecond, err = strconv.Atoi(getEnv("FX_CACHE_TTL_SECOND", "600")); err != nil {
		return
	}
	convertMode = getEnv("FX_CONVERT_MODE", "table")

	// Upstream config
	upstreamLatestURL = getEnv("UPSTREAM_LATEST_URL", "https://api.frankfurter.dev/v1/latest")
	upstreamHistoryURL = getEnv("UPSTREAM_HISTORY_URL", "https://api.frankfurter.app")
	if upstreamTimeoutSecond, err = strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECOND", "15")); err != nil {
		return
	}
	if upstreamRPS, err = strconv.ParseFloat(getEnv("UPSTREAM_RPS", "5"), 64); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "86400")); err != nil {
		return
	}

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Kafka config
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "fx-rate-snapshots")

	return
}

// run initializes the logger, caches, upstream clients and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	fxBase string, fxCacheTTLSecond int, convertMode string,
	upstreamLatestURL, upstreamHistoryURL string, upstreamTimeoutSecond int, upstreamRPS float64,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	gwHost, gwPort string,
	kafkaBrokers, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	base := models.NormalizeCode(fxBase)
	if !base.Valid() {
		return fmt.Errorf("invalid base currency %q", fxBase)
	}

	m := metrics.NewMetrics()
	retention := time.Duration(redisExpSecond) * time.Second

	// Payload cache: Redis when configured, in-memory otherwise
	var (
		cache services.PayloadCache
		mem   *repositories.MemoryPayloadCache
	)
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewPayloadCacheRepository(rdb, retention)
		logger.Log.Infow("Using Redis payload cache", "addr", rdb.Options().Addr)
	} else {
		mem = repositories.NewMemoryPayloadCache(retention)
		cache = mem
		logger.Log.Info("Redis not configured, using in-memory payload cache")
	}

	// Upstreams
	upstreamTimeout := time.Duration(upstreamTimeoutSecond) * time.Second
	frankfurter := facades.NewFrankfurterFacade(upstreamLatestURL, upstreamHistoryURL, upstreamTimeout, upstreamRPS)

	var (
		latest       services.UpstreamRates = frankfurter
		latestSource                        = frankfurter.SourceName()
		opts         []services.GatewayOption
	)
	if gwHost != "" {
		grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()

		exchanger := facades.NewExchangerGRPCFacade(pb.NewExchangeServiceClient(conn), base)
		latest = exchanger
		latestSource = "grpc://" + grpcAddr
		if convertMode == "direct" {
			opts = append(opts, services.WithDirectConversion(exchanger))
		}
		logger.Log.Infow("Using gRPC exchanger for latest rates", "addr", grpcAddr, "convert_mode", convertMode)
	} else if convertMode == "direct" {
		logger.Log.Warn("direct conversion needs the gRPC exchanger, falling back to table mode")
	}

	// Kafka snapshot publisher
	var writer services.KafkaWriter
	if kafkaBrokers != "" {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		writer = kw
	}

	svc := services.NewGatewayService(
		services.GatewayConfig{
			Base:          base,
			Currencies:    models.DefaultCurrencies,
			CacheTTL:      time.Duration(fxCacheTTLSecond) * time.Second,
			LatestSource:  latestSource,
			HistorySource: frankfurter.HistorySourceName(),
		},
		latest, frankfurter, cache, writer, m, opts...,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(m))

	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler())
	handlers.RegisterVersionHandler(r, handlers.NewVersionHandler(models.VersionResponse{
		App:          appName,
		Base:         base,
		BuildTag:     buildVersion,
		GitSHA:       buildCommit,
		BuildTimeUTC: buildDate,
	}))
	handlers.RegisterCurrenciesHandler(r, handlers.NewCurrenciesHandler(svc))
	handlers.RegisterRatesHandler(r, handlers.NewRatesHandler(svc))
	handlers.RegisterConvertHandler(r, handlers.NewConvertHandler(svc))
	handlers.RegisterTimeseriesHandler(r, handlers.NewTimeseriesHandler(svc))

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	var wg sync.WaitGroup
	defer wg.Wait()
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if mem != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clearExpiredLoop(ctxShutdown, mem, time.Minute)
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// clearExpiredLoop evicts expired in-memory payloads until ctx is done.
func clearExpiredLoop(ctx context.Context, cache *repositories.MemoryPayloadCache, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cache.ClearExpired(ctx)
		}
	}
}
