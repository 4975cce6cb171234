// Package server exposes the formatting pipeline and its sidecar tools
// over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teachkit/teachkit/internal/config"
	"github.com/teachkit/teachkit/internal/log"
	"github.com/teachkit/teachkit/internal/pipeline"
	"github.com/teachkit/teachkit/internal/speech"
	"github.com/teachkit/teachkit/internal/video"
	"github.com/teachkit/teachkit/internal/vision"
)

// DocumentFormatter runs the end-to-end formatting pipeline.
type DocumentFormatter interface {
	FormatDocument(ctx context.Context, source, reference []byte) ([]byte, pipeline.Stats, error)
}

// TableExtractor pulls tabular data out of an image.
type TableExtractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*vision.Table, error)
}

// VideoFetcher resolves a video URL to a direct download.
type VideoFetcher interface {
	Fetch(ctx context.Context, url string) (*video.Result, error)
}

// Deps carries the capabilities the routes need. Any nil capability
// disables its routes with 503 rather than panicking.
type Deps struct {
	Formatter DocumentFormatter
	Tables    TableExtractor
	Speech    speech.Backend
	Video     VideoFetcher
}

type Server struct {
	deps     Deps
	settings *config.Settings
	engine   *gin.Engine
}

func New(settings *config.Settings, deps Deps) *Server {
	if settings.DebugLevel == 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{deps: deps, settings: settings}
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.POST("/format-doc", s.formatDoc)
	api.POST("/scan-headers", s.scanHeaders)
	api.POST("/extract-data", s.extractData)
	api.POST("/process-file", s.processFile)
	api.POST("/tts", s.textToSpeech)
	api.POST("/ytdl", s.fetchVideo)

	s.engine = engine
	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run() error {
	log.Logf(log.Basic, "listening on %s", s.settings.Addr)
	return s.engine.Run(s.settings.Addr)
}

// requestID tags each request with a uuid so concurrent request logs can
// be told apart.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("requestID", id)
		log.Logf(log.Detailed, "[%s] %s %s", id, c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}

func fail(c *gin.Context, status int, err error) {
	if id, ok := c.Get("requestID"); ok {
		log.Logf(log.Basic, "[%v] request failed: %v", id, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// readUpload loads one multipart file, enforcing the configured size cap.
// A zero or negative cap means unlimited.
func (s *Server) readUpload(c *gin.Context, field string) ([]byte, *multipart.FileHeader, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return nil, nil, false
	}
	if s.settings.MaxUploadBytes > 0 && header.Size > s.settings.MaxUploadBytes {
		fail(c, http.StatusRequestEntityTooLarge,
			errTooLarge(field, s.settings.MaxUploadBytes))
		return nil, nil, false
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return nil, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("read %s: %w", field, err))
		return nil, nil, false
	}
	return data, header, true
}

func errTooLarge(field string, limit int64) error {
	return fmt.Errorf("%s exceeds the %d MB upload limit", field, limit>>20)
}

// upstreamStatus maps oracle transport failures onto response codes.
// Rate limit errors surface as 429 so clients can back off.
func upstreamStatus(err error) int {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") {
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}
