package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"salesboard/internal/api"
	"salesboard/internal/auth"
	"salesboard/internal/calculator"
	"salesboard/internal/config"
	"salesboard/internal/importer"
	"salesboard/internal/metrics"
	"salesboard/internal/parser"
	"salesboard/internal/service/roster"
	"salesboard/internal/store"
	"salesboard/internal/summary"
)

// Server HTTP server
type Server struct {
	router  *gin.Engine
	backend store.Backend
	roster  *roster.Service
	metrics *metrics.Registry
}

// NewServer builds the storage backend, services and routes from cfg
func NewServer(cfg *config.AppConfig) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	backend, sqliteStore, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	loginVerifier, err := auth.NewBcryptVerifier(cfg.Auth.Users)
	if err != nil {
		backend.Close()
		return nil, err
	}
	settingsVerifier, err := auth.NewBcryptVerifier(map[string]string{auth.SettingsID: cfg.Auth.SettingsHash})
	if err != nil {
		backend.Close()
		return nil, err
	}

	var opts []roster.Option
	if !cfg.Data.Seed {
		opts = append(opts, roster.WithSeed(nil))
	}
	rosterService := roster.NewService(backend, opts...)

	reg := metrics.NewRegistry()
	people, err := rosterService.Load()
	if err != nil {
		backend.Close()
		return nil, err
	}
	reg.Salespeople.Set(float64(len(people)))

	deps := api.Deps{
		Roster:    rosterService,
		Gate:      auth.NewGate(loginVerifier, settingsVerifier),
		Summaries: summary.NewService(newSummarizer(cfg), reg.ObserveSummary),
		Merge:     calculator.MergePartial,
		Observe:   func(n int) { reg.Salespeople.Set(float64(n)) },
	}
	if cfg.Dashboard.MergeAllFields {
		deps.Merge = calculator.MergeFull
	}
	// avoid typed-nil interfaces when sqlite is not the backend
	if sqliteStore != nil {
		deps.Importer = importer.NewCoordinator(rosterService, parser.NewRecordParser(), sqliteStore, reg)
		deps.Logs = sqliteStore
	} else {
		deps.Importer = importer.NewCoordinator(rosterService, parser.NewRecordParser(), nil, reg)
	}

	s := &Server{
		router:  gin.New(),
		backend: backend,
		roster:  rosterService,
		metrics: reg,
	}
	s.setupRoutes(api.NewHandler(deps), devMode)

	log.Info().
		Str("backend", cfg.Data.Backend).
		Int("salespeople", len(people)).
		Bool("ai", cfg.AI.APIKey != "").
		Msg("server initialized")
	return s, nil
}

func openBackend(cfg *config.AppConfig) (store.Backend, *store.Store, error) {
	if cfg.Data.Backend == config.BackendMemory {
		return store.NewMemoryStore(), nil, nil
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	switch cfg.Data.Backend {
	case config.BackendFile:
		fs, err := store.NewFileStore(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, nil, nil
	case config.BackendSQLite, "":
		sqliteStore, err := store.New(filepath.Join(dataDir, "salesboard.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqliteStore, sqliteStore, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Data.Backend)
	}
}

func newSummarizer(cfg *config.AppConfig) summary.Summarizer {
	if cfg.AI.APIKey == "" {
		return nil
	}
	gemini := summary.NewGeminiSummarizer(cfg.AI.APIKey, cfg.AI.Model)
	return summary.NewBreakerSummarizer(gemini, 2*time.Minute)
}

// setupRoutes registers middleware and routes
func (s *Server) setupRoutes(h *api.Handler, devMode bool) {
	s.router.Use(gin.Recovery(), s.requestLogger)

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-Token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	h.RegisterRoutes(s.router.Group("/api"))
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	if devMode {
		// dev: the frontend runs on its own dev server
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, api.Response{Code: api.CodeNotFound, Message: "not found"})
		})
	}
}

// requestLogger logs one line per request and feeds the duration histogram
func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	elapsed := time.Since(start)
	s.metrics.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())

	log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", elapsed).
		Msg("request")
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the storage backend
func (s *Server) Close() error {
	return s.backend.Close()
}
