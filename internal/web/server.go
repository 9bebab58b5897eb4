package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"logview/internal/logging"
	"logview/internal/logs"
)

//go:embed all:web
var webFS embed.FS

// Fetcher is the subset of *logs.Fetcher the handlers need.
type Fetcher interface {
	Fetch(ctx context.Context, overrideDir string) logs.Result
	Directory() string
}

// Server holds the gin engine and the fetcher behind it.
type Server struct {
	engine  *gin.Engine
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates the web handler for the given fetcher.
func New(fetcher Fetcher, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = true

	s := &Server{
		engine:  engine,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "web"),
	}
	engine.Use(s.requestID(), s.accessLog())

	templates := template.Must(template.New("").ParseFS(webFS, "web/templates/*.html"))
	engine.SetHTMLTemplate(templates)

	s.setupRoutes()
	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// serveEmbedded reads a file from the embedded FS and writes it with the given content type.
func serveEmbedded(content fs.FS, name string, contentType string) gin.HandlerFunc {
	data, err := fs.ReadFile(content, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	static, _ := fs.Sub(webFS, "web/static")

	s.engine.GET("/", s.handleHome)
	s.engine.GET("/logs", s.handleLogsPage)

	s.engine.GET("/api/logs", s.handleLogs)
	s.engine.POST("/api/logs", s.handleLogs)
	s.engine.GET("/ws/logs", s.handleLogsSocket)
	s.engine.GET("/healthz", s.handleHealth)

	s.engine.GET("/pkg/logview.css", serveEmbedded(static, "logview.css", "text/css; charset=utf-8"))
	s.engine.GET("/pkg/home.js", serveEmbedded(static, "home.js", "application/javascript; charset=utf-8"))
	s.engine.GET("/pkg/logs.js", serveEmbedded(static, "logs.js", "application/javascript; charset=utf-8"))

	s.engine.NoRoute(s.handleNotFound)
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
}
