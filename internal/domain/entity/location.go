package entity

import "strings"

// Location is a resolved place. Coordinates are WGS84 degrees as reported upstream.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DisplayName joins name, region and country, skipping the empty parts.
func (l Location) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{l.Name, l.Region, l.Country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
