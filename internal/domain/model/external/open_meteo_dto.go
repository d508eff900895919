package external

// GeocodingResponse represents the response from the Open-Meteo geocoding search API
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult represents a single place match. Coordinates are pointers so a
// result without them can be told apart from (0, 0).
type GeocodingResult struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
	Admin1    string   `json:"admin1,omitempty"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API when
// only current conditions are requested
type ForecastResponse struct {
	Current      *ForecastCurrent `json:"current"`
	CurrentUnits ForecastUnits    `json:"current_units"`
}

// ForecastCurrent represents the current conditions block. Measurements are
// pointers so absent keys are detectable.
type ForecastCurrent struct {
	Time                string   `json:"time"`
	Temperature2m       *float64 `json:"temperature_2m"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed10m        *float64 `json:"wind_speed_10m"`
	WindDirection10m    *float64 `json:"wind_direction_10m"`
}

// MissingField returns the name of the first requested measurement absent from
// the block, or "" when all are present.
func (c *ForecastCurrent) MissingField() string {
	switch {
	case c.Temperature2m == nil:
		return "temperature_2m"
	case c.RelativeHumidity2m == nil:
		return "relative_humidity_2m"
	case c.ApparentTemperature == nil:
		return "apparent_temperature"
	case c.WeatherCode == nil:
		return "weather_code"
	case c.WindSpeed10m == nil:
		return "wind_speed_10m"
	case c.WindDirection10m == nil:
		return "wind_direction_10m"
	default:
		return ""
	}
}

// ForecastUnits represents the units reported for each current field
type ForecastUnits struct {
	Temperature2m       string `json:"temperature_2m"`
	RelativeHumidity2m  string `json:"relative_humidity_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	WindSpeed10m        string `json:"wind_speed_10m"`
	WindDirection10m    string `json:"wind_direction_10m"`
}

// OpenMeteoErrorResponse represents error bodies returned by Open-Meteo
type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
