// Package settings turns the loaded properties into typed configuration.
package settings

import (
	"fmt"

	"go-weather/configs"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/provider"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

// Load reads application properties and messages, preferring the files named in
// the environment and falling back to the embedded defaults.
func Load(env *configs.EnvConfig) error {
	if err := resource.Init(env.PropertiesFilePath, configs.Application); err != nil {
		return err
	}
	if err := msg.Init(env.MessagesFilePath, configs.Messages); err != nil {
		return err
	}
	return nil
}

// HTTPClientOptions builds the outbound client options shared by every gateway.
func HTTPClientOptions() http.ClientOptions {
	opts := http.ClientOptions{
		FollowRedirect:    true,
		ConnectionTimeout: resource.GetDuration("weather.http.connection-timeout"),
		ReadTimeout:       resource.GetDuration("weather.http.read-timeout"),
		Logger:            log.NewHTTPLogger(),
	}
	if agent := resource.GetString("weather.http.user-agent"); agent != "" {
		opts.DefaultHeaders = map[string]string{"User-Agent": agent}
	}
	return opts
}

// ProviderConfig builds the configuration for the named provider. An empty name
// selects weather.provider.
func ProviderConfig(name string) provider.Config {
	if name == "" {
		name = resource.GetString("weather.provider")
	}

	return provider.Config{
		Name: name,
		OpenMeteo: provider.OpenMeteoConfig{
			GeocodingURL: resource.GetString("weather.open-meteo.geocoding-url"),
			ForecastURL:  resource.GetString("weather.open-meteo.forecast-url"),
			Language:     resource.GetString("weather.open-meteo.language"),
		},
		WttrURL: resource.GetString("weather.wttr.url"),
		HTTP:    HTTPClientOptions(),
		RateLimit: provider.RateLimitConfig{
			RPS:   resource.GetFloat64("weather.rate-limit.rps"),
			Burst: resource.GetInt("weather.rate-limit.burst"),
		},
	}
}

// NewUseCase builds a use case whose default provider is name (or weather.provider),
// with the remaining providers registered after it.
func NewUseCase(name string) (weather.UseCase, error) {
	primary, err := provider.New(ProviderConfig(name))
	if err != nil {
		return nil, err
	}

	providers := []provider.Provider{primary}
	for _, other := range provider.Names() {
		if other == primary.Name() {
			continue
		}
		p, err := provider.New(ProviderConfig(other))
		if err != nil {
			return nil, fmt.Errorf("failed to build provider %s: %w", other, err)
		}
		providers = append(providers, p)
	}

	return weather.NewWeatherUseCase(providers...), nil
}

// HealthGateways builds one probe per upstream base URL.
func HealthGateways() []api.HealthGateway {
	cfg := ProviderConfig(provider.OpenMeteo)
	return []api.HealthGateway{
		api.NewUpstreamHealthGateway("open-meteo-geocoding", cfg.OpenMeteo.GeocodingURL, cfg.HTTP),
		api.NewUpstreamHealthGateway("open-meteo-forecast", cfg.OpenMeteo.ForecastURL, cfg.HTTP),
		api.NewUpstreamHealthGateway(provider.Wttr, cfg.WttrURL, cfg.HTTP),
	}
}
