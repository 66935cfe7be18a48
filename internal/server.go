package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/tutostrucoscode/GymMetrics/internal/auth"
	"github.com/tutostrucoscode/GymMetrics/internal/config"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/drafts"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/editor"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/logs"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"
	"github.com/tutostrucoscode/GymMetrics/internal/middleware"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/metrics"
	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"
	"github.com/tutostrucoscode/GymMetrics/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	docStore       *OpenedDocStore
	historyLoc     *time.Location
	redisClient    *redis.Client
	rateLimiter    middleware.RequestRateLimiter
	loginChecker   *auth.LoginChecker
	authService    *auth.Service
	draftsStore    *drafts.Store
	routineService *routines.Service
	historyRepo    *history.Repo

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config        *config.Config
	VersionInfo   string
	IdpSecretHash string
	RedisPassword string
	DBPassword    string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	historyLoc, err := time.LoadLocation(cfg.HistoryTimezone)
	if err != nil {
		return nil, fmt.Errorf("load history timezone %s: %w", cfg.HistoryTimezone, err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// set up tracing before the db pool, so the pool tracer exports somewhere
	otelShutdown, err := tracing.HoneycombSetup(cfg.OtelEnabled, "gymmetrics-backend", rdb)
	if err != nil {
		return nil, err
	}

	docStore, err := OpenDocStore(ctx, cfg, params.DBPassword, cfg.OtelEnabled)
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("open doc store: %w", err)
	}

	var collectors []prometheus.Collector
	if docStore.Collector != nil {
		collectors = append(collectors, docStore.Collector)
	}
	promRegistry := metrics.NewRegistry(params.VersionInfo, collectors...)
	metricsManager := metrics.NewManager("backend", "gymmetrics", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var draftCache drafts.LocalCache
	switch cfg.DraftCache {
	case config.DraftCacheRedis:
		draftCache = drafts.NewRedisCache(rdb)
	default:
		draftCache = drafts.NewMemoryCache(cfg.DraftCacheSizeMB)
	}
	log.Debugf("using [%s] draft cache", cfg.DraftCache)

	authService := auth.NewAuthService(params.IdpSecretHash, auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	return &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		docStore:       docStore,
		historyLoc:     historyLoc,
		redisClient:    rdb,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		authService:    authService,
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		draftsStore:    drafts.NewStore(draftCache, metricsManager),
		routineService: routines.NewService(routines.NewRepo(docStore.Store)),
		historyRepo:    history.NewRepo(docStore.Store),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := s.rateLimiter

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	authHandler := auth.NewHandler(s.authService)
	loginSubrouter := r.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", authHandler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", authHandler.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")
	loginSubrouter.Use(middleware.RateLimit(reqRateLimiter, "login", s.config.LoginRateLimitPerMin, s.metricsManager))

	routinesHandler := routines.NewHandler(s.routineService)
	r.HandleFunc("/gymstats/routines", routinesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/gymstats/routines", routinesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/gymstats/routines/{routineId}", routinesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/gymstats/catalog", routinesHandler.HandleCatalogList).Methods("GET", "OPTIONS").Name("list-catalog")
	r.HandleFunc("/gymstats/catalog", routinesHandler.HandleCatalogAdd).Methods("POST", "OPTIONS").Name("new-catalog-exercise")
	r.HandleFunc("/gymstats/catalog/{exerciseId}", routinesHandler.HandleCatalogUpdate).Methods("PUT", "OPTIONS").Name("update-catalog-exercise")

	committer := history.NewCommitter(s.historyRepo, s.draftsStore, s.metricsManager, s.historyLoc)
	draftsHandler := editor.NewHandler(s.draftsStore, committer, s.routineService, s.routineService)
	draftPath := "/gymstats/drafts/{routineId}/{exerciseId}"
	r.HandleFunc(draftPath, draftsHandler.HandleOpen).Methods("GET", "OPTIONS").Name("open-draft")
	r.HandleFunc(draftPath, draftsHandler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-draft")
	r.HandleFunc(draftPath+"/sets", draftsHandler.HandleAddEntry).Methods("POST", "OPTIONS").Name("add-draft-set")
	r.HandleFunc(draftPath+"/sets/{index}", draftsHandler.HandleUpdateField).Methods("PUT", "OPTIONS").Name("update-draft-set")
	r.HandleFunc(draftPath+"/sets/{index}", draftsHandler.HandleRemoveEntry).Methods("DELETE", "OPTIONS").Name("remove-draft-set")
	r.HandleFunc(draftPath+"/trend", draftsHandler.HandleTrends).Methods("GET", "OPTIONS").Name("draft-trends")
	r.Handle(
		draftPath+"/commit",
		middleware.RateLimit(reqRateLimiter, "commit", s.config.CommitRateLimitPerMin, s.metricsManager)(
			http.HandlerFunc(draftsHandler.HandleCommit),
		),
	).Methods("POST", "OPTIONS").Name("commit-draft")

	logsService := logs.NewService(
		s.routineService,
		s.historyRepo,
		s.draftsStore,
		logs.NewAggregator(s.historyRepo, s.config.WeekdayLocale, s.metricsManager),
		s.metricsManager,
	)
	logsHandler := logs.NewHandler(logsService)
	r.HandleFunc("/gymstats/routines/{routineId}/logs", logsHandler.HandleLogs).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/gymstats/routines/{routineId}/logs/{logId}", logsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/gymstats/routines/{routineId}/logs/{logId}/edit", logsHandler.HandleEdit).Methods("GET", "OPTIONS").Name("edit-log")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.MaxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	s.docStore.Close()

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
