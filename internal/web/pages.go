package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logview/internal/api"
)

const siteTitle = "Welcome to logview"

type pageData struct {
	Title string
	Logs  api.LogsResponse
}

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", pageData{Title: siteTitle})
}

func (s *Server) handleLogsPage(c *gin.Context) {
	result := s.fetcher.Fetch(c.Request.Context(), "")
	c.HTML(http.StatusOK, "logs.html", pageData{
		Title: siteTitle,
		Logs:  result.Response(requestIDOf(c)),
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", pageData{Title: siteTitle})
}
