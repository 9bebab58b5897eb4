package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logview/internal/api"
	"logview/internal/logs"
	"logview/internal/preflight"
)

// handleLogs is the fetch endpoint. The directory override is not exposed
// over HTTP; clients always see the configured directory.
func (s *Server) handleLogs(c *gin.Context) {
	result := s.fetcher.Fetch(c.Request.Context(), "")
	c.JSON(statusFor(result), result.Response(requestIDOf(c)))
}

func statusFor(result logs.Result) int {
	if result.Status == logs.StatusError {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func (s *Server) handleHealth(c *gin.Context) {
	dir := s.fetcher.Directory()
	check := preflight.CheckDirectoryAccess("Log directory", dir, preflight.AccessRead)
	resp := api.HealthResponse{
		Status:         "ok",
		LogDir:         dir,
		LogDirReadable: check.Passed,
	}
	if !check.Passed {
		resp.Status = "degraded"
		resp.Detail = check.Detail
	}
	c.JSON(http.StatusOK, resp)
}
