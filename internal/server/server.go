// Package server exposes a Store over the REST contract the remote client speaks.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/notes/internal/store"
)

type Options struct {
	CORSOrigins []string
}

type Server struct {
	store  store.Store
	log    logrus.FieldLogger
	engine *gin.Engine
}

// notePayload is the request body for create and update. updatedAt is
// accepted but ignored: the store stamps its own time.
type notePayload struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"`
}

func New(s store.Store, log logrus.FieldLogger, opt Options) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	// Match on the escaped path so ids containing "/" reach :id intact.
	engine.UseRawPath = true
	engine.UnescapePathValues = true

	srv := &Server{store: s, log: log, engine: engine}

	engine.Use(gin.Recovery())
	engine.Use(srv.requestLogger())
	engine.Use(cors.New(corsConfig(opt.CORSOrigins)))

	engine.GET("/notes", srv.list)
	engine.POST("/notes", srv.create)
	engine.PUT("/notes/:id", srv.update)
	engine.DELETE("/notes/:id", srv.delete)
	return srv
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"status":    c.Writer.Status(),
			"latency":   time.Since(start),
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"error":     c.Errors.String(),
		}).Info("HTTP Request")
	}
}

// Handler is the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("notes service listening")
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	var re *store.RequestError
	if errors.As(err, &re) {
		c.String(re.StatusCode, re.Body)
		return
	}
	c.String(http.StatusInternalServerError, err.Error())
}

func (s *Server) list(c *gin.Context) {
	notes, err := s.store.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (s *Server) create(c *gin.Context) {
	var in notePayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid note: "+err.Error())
		return
	}
	n, err := s.store.Create(c.Request.Context(), in.Title, in.Content)
	if err != nil {
		s.fail(c, err)
		return
	}
	if n == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) update(c *gin.Context) {
	var in notePayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid note: "+err.Error())
		return
	}
	n, err := s.store.Update(c.Request.Context(), c.Param("id"), in.Title, in.Content)
	if err != nil {
		s.fail(c, err)
		return
	}
	if n == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) delete(c *gin.Context) {
	if err := s.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
