package report

import (
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// BuildDTO converts an observation into the structured HTTP report with
// temperatures in the requested units.
func BuildDTO(observation *entity.Observation, units entity.Units) model.WeatherReportDTO {
	conditions := observation.Conditions
	temperature, label := entity.ToDisplayUnits(conditions.TemperatureC, units)
	feelsLike, _ := entity.ToDisplayUnits(conditions.FeelsLikeC, units)

	return model.WeatherReportDTO{
		Provider: observation.Provider,
		Units:    string(units),
		Location: model.LocationDTO{
			Name:        observation.Location.Name,
			Region:      observation.Location.Region,
			Country:     observation.Location.Country,
			DisplayName: observation.Location.DisplayName(),
			Latitude:    observation.Location.Latitude,
			Longitude:   observation.Location.Longitude,
		},
		Conditions: model.ConditionsDTO{
			ObservedAt:      conditions.ObservedAt,
			Description:     conditions.Description,
			Emoji:           Emoji(conditions),
			WeatherCode:     conditions.WeatherCode,
			Temperature:     temperature,
			FeelsLike:       feelsLike,
			TemperatureUnit: label,
			Humidity:        conditions.Humidity,
			WindSpeed:       conditions.WindSpeed,
			WindSpeedUnit:   conditions.WindSpeedUnit,
			WindDirection:   conditions.WindDirection,
			WindCompass:     entity.ToCompass(conditions.WindDirection),
			UVIndex:         conditions.UVIndex,
		},
	}
}
