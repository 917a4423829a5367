package server

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentRunner runs the extraction pipeline for one PDF in the bucket.
type DocumentRunner interface {
	ProcessDocument(ctx context.Context, pdfName string) (uuid.UUID, error)
}

// WorkbookExporter produces the XLSX workbook of persisted extractions.
type WorkbookExporter interface {
	ExportWorkbookXLSX(ctx context.Context, from, to *time.Time) ([]byte, error)
}

// Config carries the HTTP surface settings: listen address, the single
// basic-auth credential pair, and allowed CORS origins.
type Config struct {
	Addr           string
	Username       string
	Password       string
	AllowedOrigins []string
}

type Server struct {
	cfg       Config
	engine    *gin.Engine
	logger    *zap.Logger
	runner    DocumentRunner
	exporter  WorkbookExporter
	dbHealthy func(ctx context.Context) error
}

// New wires the gin engine with all routes. dbHealthy is called by /readyz
// and may be nil when the server runs without a database.
func New(cfg Config, runner DocumentRunner, exporter WorkbookExporter, dbHealthy func(ctx context.Context) error, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:       cfg,
		engine:    engine,
		logger:    logger,
		runner:    runner,
		exporter:  exporter,
		dbHealthy: dbHealthy,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.Use(s.corsMiddleware())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/readyz", s.handleReadyz)

	api := s.engine.Group("/api", s.basicAuth())
	api.POST("/run-processing", s.handleRunProcessing)
	api.GET("/export.xlsx", s.handleExportXLSX)
}

// Engine exposes the router for tests and for embedding in an http.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run blocks serving HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http serving", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// authUserKey is where basicAuth stores the authenticated username in the
// request context.
const authUserKey = "auth_user"

func (s *Server) basicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.cfg.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.Password)) == 1
		if !ok || !userOK || !passOK {
			c.Header("WWW-Authenticate", `Basic realm="po-tracker"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(authUserKey, user)
		c.Next()
	}
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, o := range s.cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}
	_, allowAll := allowed["*"]

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok || allowAll {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
