// Package server exposes deck generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/balintv/txt2ppt/deck"
)

type Server struct {
	engine *gin.Engine
	cfg    Config
	log    *slog.Logger
}

func NewServer(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	opts := deck.DefaultOptions()
	opts.Logger = logger

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))
	// multipart overhead on top of the file itself
	engine.Use(MaxBodySize(cfg.MaxUploadBytes + 1<<20))
	engine.Use(CORS(cfg.CORSOrigins))

	api := NewAPI(cfg, opts, logger)
	registerRoutes(engine, api)

	return &Server{engine: engine, cfg: cfg, log: logger}, nil
}

// Handler returns the HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
