package api

// DateTimeFormat is used for RFC3339 timestamps in API payloads.
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// LogsResponse is the payload of GET/POST /api/logs and of each websocket reply.
type LogsResponse struct {
	Status    string     `json:"status"`
	Directory string     `json:"directory"`
	File      *LogFile   `json:"file,omitempty"`
	Lines     []string   `json:"lines"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// LogFile describes the file a fetch selected.
type LogFile struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modifiedAt"`
}

// ErrorInfo classifies a failed fetch.
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	Status         string `json:"status"`
	LogDir         string `json:"logDir"`
	LogDirReadable bool   `json:"logDirReadable"`
	Detail         string `json:"detail,omitempty"`
}

// OK reports whether the response carries a successful (ok or empty) fetch.
func (r LogsResponse) OK() bool {
	return r.Status == "ok" || r.Status == "empty"
}
