package controller

import (
	"errors"
	"net/http"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/provider"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/report"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

const (
	formatJSON = "json"
	formatRaw  = "raw"
	formatText = "text"
)

type WeatherController struct {
	api          *echo.Group
	useCase      weather.UseCase
	defaultUnits string
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultUnits string) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, defaultUnits: defaultUnits}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/:city", controller.GetCurrentWeather)
}

// GetCurrentWeather godoc
// @Summary Get current weather for a city
// @Description Resolve the city with the selected provider and return its current conditions
// @Tags weather
// @Produce json
// @Produce plain
// @Param city path string true "City name"
// @Param units query string false "celsius or fahrenheit"
// @Param provider query string false "open-meteo or wttr"
// @Param format query string false "json, raw or text" default(json)
// @Success 200 {object} model.WeatherReportDTO "Current conditions"
// @Failure 400 {object} map[string]string "Invalid units, provider or format"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 429 {object} map[string]string "Rate limit wait aborted"
// @Failure 502 {object} map[string]string "Upstream API error"
// @Failure 504 {object} map[string]string "Upstream API unreachable"
// @Router /weather/{city} [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	unitsParam := c.QueryParam("units")
	if unitsParam == "" {
		unitsParam = controller.defaultUnits
	}
	units, err := entity.ParseUnits(unitsParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(msg.GetMessage("weather.invalid-units", unitsParam)))
	}

	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = formatJSON
	}

	// raw and json still render JSON, so a malformed payload fails before anything is written
	var render report.Format
	switch format {
	case formatText:
		render = report.FormatText
	case formatRaw, formatJSON:
		render = report.FormatJSON
	default:
		return c.JSON(http.StatusBadRequest, errorBody(msg.GetMessage("weather.invalid-format", format)))
	}

	result, err := controller.useCase.Report(c.Request().Context(), weather.Query{
		City:      c.Param("city"),
		Provider:  c.QueryParam("provider"),
		Units:     units,
		Format:    render,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
	if err != nil {
		return c.JSON(statusFor(err), errorBody(errorMessage(err)))
	}

	switch format {
	case formatText:
		return c.String(http.StatusOK, result.Output)
	case formatRaw:
		return c.JSONBlob(http.StatusOK, result.Observation.Raw)
	default:
		return c.JSON(http.StatusOK, report.BuildDTO(result.Observation, units))
	}
}

// statusFor maps pipeline failures onto HTTP statuses.
func statusFor(err error) int {
	var (
		notFound *model.NotFoundError
		upstream *model.UpstreamError
		decode   *model.DecodeError
		network  *model.NetworkError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, provider.ErrUnknownProvider), errors.Is(err, weather.ErrEmptyCity):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &upstream), errors.As(err, &decode):
		return http.StatusBadGateway
	case errors.As(err, &network):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return msg.GetMessage("weather.not-found", notFound.City)
	}
	return err.Error()
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
