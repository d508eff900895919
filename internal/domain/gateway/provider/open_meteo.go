package provider

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
)

// openMeteoProvider geocodes the city first, then asks for the forecast at its coordinates.
type openMeteoProvider struct {
	geocoding api.GeocodingGateway
	forecast  api.ForecastGateway
}

func NewOpenMeteoProvider(geocoding api.GeocodingGateway, forecast api.ForecastGateway) Provider {
	return &openMeteoProvider{geocoding: geocoding, forecast: forecast}
}

func (p *openMeteoProvider) Name() string {
	return OpenMeteo
}

// Fetch returns the forecast payload as the observation's raw body.
func (p *openMeteoProvider) Fetch(ctx context.Context, city string) (*entity.Observation, error) {
	location, err := p.geocoding.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, &model.NotFoundError{City: city}
	}

	conditions, raw, err := p.forecast.FetchCurrent(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return nil, err
	}

	return &entity.Observation{
		Provider:   OpenMeteo,
		Location:   *location,
		Conditions: *conditions,
		Raw:        raw,
	}, nil
}
