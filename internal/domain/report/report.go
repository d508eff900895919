// Package report renders observations for people (a framed text block) or for
// machines (the upstream JSON, re-indented but otherwise untouched).
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"

	"github.com/mattn/go-runewidth"
)

// Format selects the rendering mode.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	minBoxWidth = 40
	boxPadding  = 4
)

// Render formats the observation. Only JSON mode can fail, when the stored payload
// is not valid JSON.
func Render(observation *entity.Observation, units entity.Units, format Format) (string, error) {
	if observation == nil {
		return "", errors.New("nothing to render")
	}

	switch format {
	case FormatJSON:
		return RenderJSON(observation)
	case FormatText, "":
		return RenderText(observation, units), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// RenderJSON returns the upstream payload indented with two spaces. Keys, order and
// values are preserved.
func RenderJSON(observation *entity.Observation) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, observation.Raw, "", "  "); err != nil {
		return "", &model.DecodeError{Service: observation.Provider, Err: err}
	}
	return buf.String(), nil
}

// RenderText returns the framed report.
func RenderText(observation *entity.Observation, units entity.Units) string {
	header := "Weather for " + observation.Location.DisplayName()
	return frame(header, Lines(observation, units))
}

// Lines returns the report body in display order, without the frame.
func Lines(observation *entity.Observation, units entity.Units) []string {
	conditions := observation.Conditions

	temperature, label := entity.ToDisplayUnits(conditions.TemperatureC, units)
	feelsLike, _ := entity.ToDisplayUnits(conditions.FeelsLikeC, units)

	lines := []string{
		"  Condition:   " + Emoji(conditions) + " " + conditions.Description,
		fmt.Sprintf("  Temperature: %.1f%s (feels like %.1f%s)", temperature, label, feelsLike, label),
		"  Humidity:    " + formatNumber(conditions.Humidity) + "%",
		fmt.Sprintf("  Wind:        %s %s %s",
			formatNumber(conditions.WindSpeed), conditions.WindSpeedUnit, entity.ToCompass(conditions.WindDirection)),
	}
	if conditions.UVIndex != nil {
		lines = append(lines, "  UV Index:    "+formatNumber(*conditions.UVIndex))
	}
	return lines
}

// Emoji picks the category emoji, falling back when the provider sent no code.
func Emoji(conditions entity.Conditions) string {
	if conditions.WeatherCode == nil {
		return entity.FallbackEmoji
	}
	return entity.WeatherEmoji(*conditions.WeatherCode)
}

func frame(header string, body []string) string {
	width := runewidth.StringWidth(header)
	for _, line := range body {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	width += boxPadding
	if width < minBoxWidth {
		width = minBoxWidth
	}

	horizontal := strings.Repeat("─", width-2)

	var sb strings.Builder
	sb.WriteString("┌" + horizontal + "┐\n")
	sb.WriteString(boxLine(header, width) + "\n")
	sb.WriteString("├" + horizontal + "┤\n")
	for _, line := range body {
		sb.WriteString(boxLine(line, width) + "\n")
	}
	sb.WriteString("└" + horizontal + "┘")
	return sb.String()
}

func boxLine(line string, width int) string {
	return "│ " + runewidth.FillRight(line, width-boxPadding) + " │"
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
