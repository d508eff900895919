package model

// WeatherReportDTO is the structured report served by the HTTP API.
// Temperatures are already converted to the requested units.
type WeatherReportDTO struct {
	Provider   string        `json:"provider"`
	Location   LocationDTO   `json:"location"`
	Conditions ConditionsDTO `json:"conditions"`
	Units      string        `json:"units"`
}

type LocationDTO struct {
	Name        string  `json:"name"`
	Region      string  `json:"region,omitempty"`
	Country     string  `json:"country"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type ConditionsDTO struct {
	ObservedAt      string   `json:"observedAt"`
	Description     string   `json:"description"`
	Emoji           string   `json:"emoji"`
	WeatherCode     *int     `json:"weatherCode,omitempty"`
	Temperature     float64  `json:"temperature"`
	FeelsLike       float64  `json:"feelsLike"`
	TemperatureUnit string   `json:"temperatureUnit"`
	Humidity        float64  `json:"humidity"`
	WindSpeed       float64  `json:"windSpeed"`
	WindSpeedUnit   string   `json:"windSpeedUnit"`
	WindDirection   float64  `json:"windDirection"`
	WindCompass     string   `json:"windCompass"`
	UVIndex         *float64 `json:"uvIndex,omitempty"`
}
