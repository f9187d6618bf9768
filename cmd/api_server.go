package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rm-hull/png-transform/internal"
	"github.com/rm-hull/png-transform/internal/png"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

const DefaultMaxBody int64 = 32 << 20

func ApiServer(port int, debug bool, maxBody int64) error {
	internal.ShowVersion()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r, err := newRouter(registry, debug, maxBody)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP API Server failed to start on port %d: %w", port, err)
	}
	return nil
}

func newRouter(registry *prometheus.Registry, debug bool, maxBody int64) (*gin.Engine, error) {
	r := gin.New()

	metrics := ginprom.New(
		ginprom.Engine(r),
		ginprom.Registry(registry),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		metrics.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	if err := registerRoutes(r, maxBody); err != nil {
		return nil, err
	}
	return r, nil
}

func registerRoutes(r *gin.Engine, maxBody int64) error {
	if err := healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{}); err != nil {
		return fmt.Errorf("failed to initialize healthcheck: %w", err)
	}

	r.POST("/v1/transform/:operation", transformHandler(maxBody))
	return nil
}

func transformHandler(maxBody int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		op, err := internal.ParseOperation(c.Param("operation"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var angle float64
		if s := c.Query("angle"); s != "" {
			angle, err = strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid angle %q", s)})
				return
			}
		}

		if c.Request.ContentLength > maxBody {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}

		img, err := png.NewPngFromReader(http.MaxBytesReader(c.Writer, c.Request.Body, maxBody))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := op.Apply(img, angle); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		if err := img.Write(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}
