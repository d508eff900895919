package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// ForecastGateway fetches current conditions for a coordinate
type ForecastGateway interface {
	// FetchCurrent returns the decoded conditions together with the verbatim payload
	FetchCurrent(ctx context.Context, latitude, longitude float64) (*entity.Conditions, []byte, error)
}
