package log

import (
	"time"

	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

// HTTPLogger writes outbound HTTP traffic to the package logger at debug level.
// Failures are logged at warn.
type HTTPLogger struct {
	// MaxBodyLength truncates logged response bodies. Zero keeps the default of 512 bytes.
	MaxBodyLength int
}

// NewHTTPLogger returns an HTTPLogger with default truncation.
func NewHTTPLogger() *HTTPLogger {
	return &HTTPLogger{}
}

func (l *HTTPLogger) LogRequest(method, url string, headers map[string]string) {
	Debug(msg.GetMessage("http.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers),
	)
}

func (l *HTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration) {
	Debug(msg.GetMessage("http.response", method, url, httpStatus),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.String("body", l.truncate(responseBody)),
	)
}

func (l *HTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error) {
	Warn(msg.GetMessage("http.request-fail", method, url, httpStatus),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.String("body", l.truncate(responseBody)),
		zap.Error(err),
	)
}

func (l *HTTPLogger) truncate(body string) string {
	limit := l.MaxBodyLength
	if limit <= 0 {
		limit = 512
	}
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
