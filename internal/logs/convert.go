package logs

import "logview/internal/api"

// Response converts the result to its API representation.
func (r Result) Response(requestID string) api.LogsResponse {
	resp := api.LogsResponse{
		Status:    string(r.Status),
		Directory: r.Directory,
		Lines:     r.Lines,
		RequestID: requestID,
	}
	if resp.Lines == nil {
		resp.Lines = []string{}
	}
	if r.File != nil {
		resp.File = EntryFile(*r.File)
	}
	if r.Status == StatusError {
		info := &api.ErrorInfo{Kind: string(r.Kind())}
		if r.Err != nil {
			info.Message = r.Err.Error()
		}
		resp.Error = info
		resp.Lines = []string{}
	}
	return resp
}

// EntryFile converts a scanned entry to its API representation.
func EntryFile(entry Entry) *api.LogFile {
	return &api.LogFile{
		Name:       entry.Name,
		Path:       entry.Path,
		Size:       entry.Size,
		ModifiedAt: entry.ModTime.UTC().Format(api.DateTimeFormat),
	}
}
