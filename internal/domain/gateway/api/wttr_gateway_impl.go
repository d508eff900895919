package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const wttrService = "wttr.in"

// wttrGatewayImpl implements WttrGateway
type wttrGatewayImpl struct {
	httpClient *http.Client
}

// NewWttrGateway creates a new instance of WttrGateway with HTTP client
func NewWttrGateway(baseUrl string, clientOptions http.ClientOptions) WttrGateway {
	return &wttrGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// FetchCurrent calls /<city>?format=j1 and keeps the first entry of each list
func (w *wttrGatewayImpl) FetchCurrent(ctx context.Context, city string) (*entity.Observation, error) {
	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/" + url.PathEscape(city)).
		WithQueryParam("format", "j1").
		WithSuccessResp(&json.RawMessage{}).
		Execute()
	if err != nil {
		return nil, toDomainError(wttrService, err)
	}

	raw := []byte(*successResp.(*json.RawMessage))

	var response external.WttrResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, w.decodeError(err)
	}
	if len(response.CurrentCondition) == 0 || len(response.NearestArea) == 0 {
		return nil, &model.NotFoundError{City: city}
	}

	location, err := toLocation(response.NearestArea[0])
	if err != nil {
		return nil, w.decodeError(err)
	}
	conditions, err := toConditions(response.CurrentCondition[0])
	if err != nil {
		return nil, w.decodeError(err)
	}

	return &entity.Observation{
		Location:   *location,
		Conditions: *conditions,
		Raw:        raw,
	}, nil
}

func (w *wttrGatewayImpl) decodeError(err error) error {
	return toDomainError(wttrService, &http.DecodeError{URL: w.httpClient.BaseURL(), ContentType: "application/json", Err: err})
}

func toLocation(area external.WttrNearestArea) (*entity.Location, error) {
	var p numberParser
	location := &entity.Location{
		Name:      external.First(area.AreaName),
		Region:    strings.TrimSpace(external.First(area.Region)),
		Country:   external.First(area.Country),
		Latitude:  p.optional("latitude", area.Latitude),
		Longitude: p.optional("longitude", area.Longitude),
	}
	if p.err != nil {
		return nil, p.err
	}
	return location, nil
}

func toConditions(current external.WttrCurrentCondition) (*entity.Conditions, error) {
	var p numberParser
	conditions := &entity.Conditions{
		ObservedAt:    firstNonEmpty(current.LocalObsDateTime, current.ObservationTime),
		TemperatureC:  p.required("temp_C", current.TempC),
		FeelsLikeC:    p.required("FeelsLikeC", current.FeelsLikeC),
		Humidity:      p.required("humidity", current.Humidity),
		Description:   strings.TrimSpace(external.First(current.WeatherDesc)),
		WindSpeed:     p.required("windspeedKmph", current.WindspeedKmph),
		WindSpeedUnit: defaultWindSpeedUnit,
		WindDirection: p.required("winddirDegree", current.WinddirDegree),
	}
	if strings.TrimSpace(current.UVIndex) != "" {
		uv := p.required("uvIndex", current.UVIndex)
		conditions.UVIndex = &uv
	}
	if p.err != nil {
		return nil, p.err
	}

	if conditions.Description == "" {
		conditions.Description = entity.UnknownDescription
	}
	return conditions, nil
}

// numberParser parses wttr.in's string-encoded numbers and keeps the first failure.
type numberParser struct {
	err error
}

func (p *numberParser) required(field, value string) float64 {
	if p.err != nil {
		return 0
	}
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		p.err = fmt.Errorf("field %s: %q is not a number", field, value)
		return 0
	}
	return number
}

func (p *numberParser) optional(field, value string) float64 {
	if strings.TrimSpace(value) == "" {
		return 0
	}
	return p.required(field, value)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
