package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// WttrGateway fetches location and current conditions from wttr.in in a single call
type WttrGateway interface {
	// FetchCurrent returns the nearest area and its current conditions.
	// Provider is left empty for the caller to fill in.
	FetchCurrent(ctx context.Context, city string) (*entity.Observation, error)
}
