package api

import (
	"context"

	"go-weather/internal/domain/entity"
)

// GeocodingGateway resolves free-text place names to coordinates
type GeocodingGateway interface {
	// Resolve returns the first match for city.
	// A nil location with a nil error means the service knows no such place.
	Resolve(ctx context.Context, city string) (*entity.Location, error)
}
