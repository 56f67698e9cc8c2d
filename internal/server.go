package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gearfitness/internal/auth"
	"github.com/2beens/gearfitness/internal/cache"
	"github.com/2beens/gearfitness/internal/config"
	"github.com/2beens/gearfitness/internal/db"
	"github.com/2beens/gearfitness/internal/follows"
	"github.com/2beens/gearfitness/internal/middleware"
	"github.com/2beens/gearfitness/internal/social"
	"github.com/2beens/gearfitness/internal/stats"
	"github.com/2beens/gearfitness/internal/telemetry/metrics"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/internal/users"
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	dbPool        *pgxpool.Pool
	redisClient   *redis.Client
	sessions      *auth.SessionStore
	exerciseCache *cache.FreeCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
	MigrateSchema           bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if _, err := stats.ParseWeekday(params.Config.WeekStartDay); err != nil {
		return nil, fmt.Errorf("config week start day: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if params.MigrateSchema {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
		log.Debugln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "gear", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gearfitness-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:   rdb,
		sessions:      auth.NewSessionStore(params.Config.SessionTTL(), rdb),
		exerciseCache: cache.NewFreeCache(params.Config.ExerciseCacheSizeMB, params.Config.ExerciseCacheTTLSecs),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	weekStart, err := stats.ParseWeekday(s.config.WeekStartDay)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gear-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsService := workouts.NewService(
		workoutsRepo,
		workouts.NewCatalog(workoutsRepo, s.exerciseCache),
		s.metricsManager,
	)
	workouts.NewHandler(workoutsService).SetupRoutes(r)

	statsRepo := stats.NewRepo(s.dbPool)
	analyzer := stats.NewAnalyzer(workoutsRepo, statsRepo, s.config.TrackedLifts, weekStart)
	stats.NewHandler(analyzer).SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	socialRepo := social.NewRepo(s.dbPool)
	socialHandler := social.NewHandler(
		social.NewFeedComposer(
			socialRepo,
			social.NewMetricsLoader(socialRepo),
			s.config.FeedMaxPageSize,
			s.metricsManager,
		),
		social.NewInteractions(socialRepo, s.config.FeedMaxPageSize, s.metricsManager),
		s.config.FeedDefaultPageSize,
	)
	socialHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LikeRateLimitPerMin)

	followsHandler := follows.NewHandler(
		follows.NewService(follows.NewRepo(s.dbPool), s.metricsManager),
	)
	followsHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.FollowRateLimitPerMin)

	users.NewHandler(
		users.NewService(users.NewRepo(s.dbPool), statsRepo),
	).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.sessions)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) error {
	router, err := s.routerSetup()
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the pools go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
