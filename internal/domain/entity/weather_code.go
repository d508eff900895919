package entity

// WMO weather interpretation codes as used by Open-Meteo.
var weatherCodeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

const (
	UnknownDescription = "Unknown"
	FallbackEmoji      = "🌡️"
)

// weatherCategories are lower bounds in ascending order. A code belongs to the
// last bucket whose bound it reaches, so undefined codes inside the table
// (4-44, 58-60, 87-94) share the category of the defined code below them.
var weatherCategories = []struct {
	from  int
	emoji string
}{
	{0, "☀️"},
	{1, "⛅"},
	{45, "🌫️"},
	{51, "🌧️"},
	{61, "🌧️"},
	{71, "❄️"},
	{80, "🌦️"},
	{85, "🌨️"},
	{95, "⛈️"},
}

const maxWeatherCode = 99

// DescribeWeatherCode returns the text description and emoji for a WMO code.
// It is defined for every int; codes missing from the table yield "Unknown".
func DescribeWeatherCode(code int) (string, string) {
	description, ok := weatherCodeDescriptions[code]
	if !ok {
		description = UnknownDescription
	}
	return description, WeatherEmoji(code)
}

// WeatherEmoji returns the category emoji for a WMO code, or FallbackEmoji
// outside 0..99.
func WeatherEmoji(code int) string {
	if code < 0 || code > maxWeatherCode {
		return FallbackEmoji
	}
	emoji := FallbackEmoji
	for _, category := range weatherCategories {
		if code < category.from {
			break
		}
		emoji = category.emoji
	}
	return emoji
}
