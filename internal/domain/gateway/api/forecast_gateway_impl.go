package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const (
	forecastService = "Weather"

	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,wind_direction_10m"

	defaultWindSpeedUnit = "km/h"
)

// forecastGatewayImpl implements ForecastGateway against the Open-Meteo forecast API
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// FetchCurrent requests the current block for the coordinate
func (f *forecastGatewayImpl) FetchCurrent(ctx context.Context, latitude, longitude float64) (*entity.Conditions, []byte, error) {
	successResp, _, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParam("latitude", formatCoordinate(latitude)).
		WithQueryParam("longitude", formatCoordinate(longitude)).
		WithQueryParam("current", currentFields).
		WithSuccessResp(&json.RawMessage{}).
		Execute()
	if err != nil {
		return nil, nil, toDomainError(forecastService, err)
	}

	raw := []byte(*successResp.(*json.RawMessage))

	var response external.ForecastResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, nil, f.decodeError(err)
	}
	if response.Current == nil {
		return nil, nil, f.decodeError(errors.New("missing current block"))
	}

	current := response.Current
	if field := current.MissingField(); field != "" {
		return nil, nil, f.decodeError(fmt.Errorf("missing current.%s", field))
	}

	code := *current.WeatherCode
	description, _ := entity.DescribeWeatherCode(code)

	windUnit := response.CurrentUnits.WindSpeed10m
	if windUnit == "" {
		windUnit = defaultWindSpeedUnit
	}

	return &entity.Conditions{
		ObservedAt:    current.Time,
		TemperatureC:  *current.Temperature2m,
		FeelsLikeC:    *current.ApparentTemperature,
		Humidity:      *current.RelativeHumidity2m,
		WeatherCode:   &code,
		Description:   description,
		WindSpeed:     *current.WindSpeed10m,
		WindSpeedUnit: windUnit,
		WindDirection: *current.WindDirection10m,
	}, raw, nil
}

func (f *forecastGatewayImpl) decodeError(err error) error {
	return toDomainError(forecastService, &http.DecodeError{URL: f.httpClient.BaseURL(), ContentType: "application/json", Err: err})
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
