package external

// WttrResponse represents the wttr.in j1 payload. Numbers arrive as strings.
type WttrResponse struct {
	CurrentCondition []WttrCurrentCondition `json:"current_condition"`
	NearestArea      []WttrNearestArea      `json:"nearest_area"`
}

// WttrCurrentCondition represents one current_condition entry
type WttrCurrentCondition struct {
	LocalObsDateTime string      `json:"localObsDateTime"`
	ObservationTime  string      `json:"observation_time"`
	TempC            string      `json:"temp_C"`
	TempF            string      `json:"temp_F"`
	FeelsLikeC       string      `json:"FeelsLikeC"`
	FeelsLikeF       string      `json:"FeelsLikeF"`
	Humidity         string      `json:"humidity"`
	WeatherCode      string      `json:"weatherCode"`
	WeatherDesc      []WttrValue `json:"weatherDesc"`
	WindspeedKmph    string      `json:"windspeedKmph"`
	WinddirDegree    string      `json:"winddirDegree"`
	Winddir16Point   string      `json:"winddir16Point"`
	UVIndex          string      `json:"uvIndex"`
}

// WttrNearestArea represents one nearest_area entry
type WttrNearestArea struct {
	AreaName  []WttrValue `json:"areaName"`
	Country   []WttrValue `json:"country"`
	Region    []WttrValue `json:"region"`
	Latitude  string      `json:"latitude"`
	Longitude string      `json:"longitude"`
}

// WttrValue is the {"value": "..."} wrapper wttr.in uses for text fields
type WttrValue struct {
	Value string `json:"value"`
}

// First returns the first value of a wrapper list, or empty.
func First(values []WttrValue) string {
	if len(values) == 0 {
		return ""
	}
	return values[0].Value
}
