package api

const geocodingLondon = `{
  "results": [
    {"id": 2643743, "name": "London", "latitude": 51.50853, "longitude": -0.12574,
     "country": "United Kingdom", "admin1": "England"}
  ],
  "generationtime_ms": 0.5
}`

const forecastLondon = `{
  "latitude": 51.5,
  "longitude": -0.120000124,
  "current_units": {
    "time": "iso8601",
    "interval": "seconds",
    "temperature_2m": "°C",
    "relative_humidity_2m": "%",
    "apparent_temperature": "°C",
    "weather_code": "wmo code",
    "wind_speed_10m": "km/h",
    "wind_direction_10m": "°"
  },
  "current": {
    "time": "2026-10-19T12:00",
    "interval": 900,
    "temperature_2m": 12.4,
    "relative_humidity_2m": 81,
    "apparent_temperature": 10.9,
    "weather_code": 2,
    "wind_speed_10m": 14.8,
    "wind_direction_10m": 247
  }
}`

const wttrTokyo = `{
  "current_condition": [
    {
      "FeelsLikeC": "18", "FeelsLikeF": "64", "humidity": "72",
      "localObsDateTime": "2026-10-19 09:00 PM", "observation_time": "12:00 PM",
      "temp_C": "19", "temp_F": "66", "uvIndex": "0",
      "weatherCode": "116", "weatherDesc": [{"value": "Partly cloudy"}],
      "winddir16Point": "NNE", "winddirDegree": "20", "windspeedKmph": "11"
    }
  ],
  "nearest_area": [
    {
      "areaName": [{"value": "Tokyo"}], "country": [{"value": "Japan"}],
      "region": [{"value": "Tokyo"}], "latitude": "35.690", "longitude": "139.692"
    }
  ]
}`
