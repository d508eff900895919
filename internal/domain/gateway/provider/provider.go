package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/pkg/http"
)

const (
	OpenMeteo = "open-meteo"
	Wttr      = "wttr"
)

// ErrUnknownProvider is returned by New for names other than OpenMeteo and Wttr.
var ErrUnknownProvider = errors.New("unknown provider")

// Provider turns a city query into an observation.
type Provider interface {
	// Name identifies the provider in reports and logs
	Name() string

	// Fetch resolves the city and returns its current conditions.
	// An unknown city yields *model.NotFoundError.
	Fetch(ctx context.Context, city string) (*entity.Observation, error)
}

// Config holds everything needed to build any provider.
type Config struct {
	Name      string
	OpenMeteo OpenMeteoConfig
	WttrURL   string
	HTTP      http.ClientOptions
	RateLimit RateLimitConfig
}

type OpenMeteoConfig struct {
	GeocodingURL string
	ForecastURL  string
	Language     string
}

// RateLimitConfig bounds upstream calls per process. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Names lists the supported provider names.
func Names() []string {
	return []string{OpenMeteo, Wttr}
}

// New builds the provider selected by cfg.Name, wrapped in a rate limiter when configured.
func New(cfg Config) (Provider, error) {
	var p Provider

	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "", OpenMeteo:
		p = NewOpenMeteoProvider(
			api.NewGeocodingGateway(cfg.OpenMeteo.GeocodingURL, cfg.OpenMeteo.Language, cfg.HTTP),
			api.NewForecastGateway(cfg.OpenMeteo.ForecastURL, cfg.HTTP),
		)
	case Wttr:
		p = NewWttrProvider(api.NewWttrGateway(cfg.WttrURL, cfg.HTTP))
	default:
		return nil, fmt.Errorf("%w %q: expected %s", ErrUnknownProvider, cfg.Name, strings.Join(Names(), " or "))
	}

	if cfg.RateLimit.RPS > 0 {
		return NewRateLimitedProvider(p, cfg.RateLimit.RPS, cfg.RateLimit.Burst), nil
	}
	return p, nil
}
