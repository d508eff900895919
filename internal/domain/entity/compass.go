package entity

import "math"

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// ToCompass maps a bearing in degrees to one of the 16 compass points.
// Any finite value is accepted; it is wrapped into [0, 360) first.
func ToCompass(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return compassPoints[0]
	}

	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}

	index := int(math.Round(normalized/22.5)) % len(compassPoints)
	return compassPoints[index]
}
