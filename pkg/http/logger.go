package http

import "time"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (2xx HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration)

	// LogResponseError is called when the request fails at transport level or returns an error HTTP status.
	// httpStatus is zero when no response was received.
	LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, int, string, time.Duration) {}

func (noopLogger) LogResponseError(string, string, int, string, time.Duration, error) {}
