package summarize

import (
	"context"
	"net/http"
)

// FallbackText is rendered when the backend returns neither a summary nor an error.
const FallbackText = "No summary returned"

// EndpointPath is the only route the handler talks to.
const EndpointPath = "/api/index"

// Config configures the request handler.
type Config struct {
	BaseURL string
}

// RequestPayload is the body sent to the summarization endpoint.
type RequestPayload struct {
	Text string `json:"text"`
}

// ResponsePayload is the body returned by the summarization endpoint.
// Both fields are optional and may appear together.
type ResponsePayload struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// InputReader supplies the text to summarize.
type InputReader interface {
	ReadText(ctx context.Context) (string, error)
}

// OutputWriter displays the selected output, replacing what was there.
type OutputWriter interface {
	WriteText(ctx context.Context, text string) error
}

// Doer issues a single HTTP exchange. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// SelectOutput picks the text to display: summary, then error, then the fallback.
func SelectOutput(resp ResponsePayload) string {
	if resp.Summary != "" {
		return resp.Summary
	}
	if resp.Error != "" {
		return resp.Error
	}
	return FallbackText
}
