package api

import (
	"context"
	"encoding/json"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const geocodingService = "Geocoding"

// geocodingGatewayImpl implements GeocodingGateway against the Open-Meteo search API
type geocodingGatewayImpl struct {
	httpClient *http.Client
	language   string
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, language string, clientOptions http.ClientOptions) GeocodingGateway {
	if language == "" {
		language = "en"
	}

	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		language:   language,
	}
}

// Resolve searches for the city and keeps the first result
func (g *geocodingGatewayImpl) Resolve(ctx context.Context, city string) (*entity.Location, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParam("name", city).
		WithQueryParam("count", "1").
		WithQueryParam("language", g.language).
		WithQueryParam("format", "json").
		WithSuccessResp(&json.RawMessage{}).
		Execute()
	if err != nil {
		return nil, toDomainError(geocodingService, err)
	}

	var response external.GeocodingResponse
	if err := json.Unmarshal(*successResp.(*json.RawMessage), &response); err != nil {
		return nil, g.decodeError(err)
	}

	if len(response.Results) == 0 {
		return nil, nil
	}

	result := response.Results[0]
	if result.Latitude == nil || result.Longitude == nil {
		return nil, g.decodeError(fmt.Errorf("result %q has no coordinates", result.Name))
	}

	return &entity.Location{
		Name:      result.Name,
		Region:    result.Admin1,
		Country:   result.Country,
		Latitude:  *result.Latitude,
		Longitude: *result.Longitude,
	}, nil
}

func (g *geocodingGatewayImpl) decodeError(err error) error {
	return toDomainError(geocodingService, &http.DecodeError{URL: g.httpClient.BaseURL(), ContentType: "application/json", Err: err})
}
