package entity

// Conditions holds the current atmospheric measurements for a location.
// Temperatures are always stored in Celsius; conversion happens at render time.
type Conditions struct {
	ObservedAt    string   `json:"observedAt"`
	TemperatureC  float64  `json:"temperatureC"`
	FeelsLikeC    float64  `json:"feelsLikeC"`
	Humidity      float64  `json:"humidity"`
	WeatherCode   *int     `json:"weatherCode,omitempty"`
	Description   string   `json:"description"`
	WindSpeed     float64  `json:"windSpeed"`
	WindSpeedUnit string   `json:"windSpeedUnit"`
	WindDirection float64  `json:"windDirection"`
	UVIndex       *float64 `json:"uvIndex,omitempty"`
}

// Observation is one provider answer: where, what, and the payload it came from.
type Observation struct {
	Provider   string     `json:"provider"`
	Location   Location   `json:"location"`
	Conditions Conditions `json:"conditions"`
	Raw        []byte     `json:"-"`
}
