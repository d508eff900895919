package entity

import (
	"fmt"
	"strings"
)

// Units selects how temperatures are displayed.
type Units string

const (
	Celsius    Units = "celsius"
	Fahrenheit Units = "fahrenheit"
)

// ParseUnits accepts celsius, c, fahrenheit or f in any case. Empty means Celsius.
func ParseUnits(value string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "celsius", "c":
		return Celsius, nil
	case "fahrenheit", "f":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("invalid units %q: expected celsius or fahrenheit", value)
	}
}

// Label returns the degree symbol for the unit.
func (u Units) Label() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// ToDisplayUnits converts a Celsius value into the requested units.
func ToDisplayUnits(celsius float64, units Units) (float64, string) {
	if units == Fahrenheit {
		return celsius*9/5 + 32, units.Label()
	}
	return celsius, Celsius.Label()
}
