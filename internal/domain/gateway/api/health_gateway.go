package api

import (
	"context"

	"go-weather/internal/domain/model"
)

// HealthGateway probes one upstream API.
type HealthGateway interface {
	Name() string
	Health(ctx context.Context) model.ComponentHealthStatus
}
