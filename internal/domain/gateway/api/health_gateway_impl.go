package api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

type upstreamHealthGateway struct {
	name       string
	httpClient *http.Client
}

// NewUpstreamHealthGateway probes baseUrl with a bare GET. Any answer below 500 counts
// as reachable, since API roots commonly reply 404 or 400 to a request without parameters.
func NewUpstreamHealthGateway(name string, baseUrl string, clientOptions http.ClientOptions) HealthGateway {
	return &upstreamHealthGateway{
		name:       name,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

func (g *upstreamHealthGateway) Name() string {
	return g.name
}

func (g *upstreamHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	start := time.Now()
	_, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/").
		Execute()

	details := map[string]string{
		"url":        g.httpClient.BaseURL(),
		"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	}
	if status != 0 {
		details["http_status"] = strconv.Itoa(status)
	}

	var statusErr *http.StatusError
	switch {
	case err == nil:
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	case errors.As(err, &statusErr) && statusErr.StatusCode < 500:
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	default:
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
}
