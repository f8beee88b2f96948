package api

import (
	"net/http"
	"time"

	"github.com/kedare/wordsmith/internal/logger"
)

type loggingTransport struct {
	base http.RoundTripper
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Log.Debugf("solver HTTP %s %s failed after %s: %v", req.Method, req.URL.String(), elapsed, err)

		return nil, err
	}

	logger.Log.Debugf("solver HTTP %s %s -> %d (%s)", req.Method, req.URL.String(), resp.StatusCode, elapsed)

	return resp, nil
}

// withLogging returns a shallow copy of client whose transport logs every round trip.
func withLogging(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}

	wrapped := *client
	wrapped.Transport = loggingTransport{base: client.Transport}

	return &wrapped
}
