package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/provider"
	"go-weather/internal/domain/report"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyCity is returned for blank queries.
var ErrEmptyCity = errors.New("city is required")

type weatherUseCase struct {
	providers       map[string]provider.Provider
	defaultProvider string
}

// NewWeatherUseCase registers the providers; the first one is the default.
func NewWeatherUseCase(providers ...provider.Provider) UseCase {
	uc := &weatherUseCase{providers: make(map[string]provider.Provider, len(providers))}
	for _, p := range providers {
		if uc.defaultProvider == "" {
			uc.defaultProvider = p.Name()
		}
		uc.providers[p.Name()] = p
	}
	return uc
}

// Providers returns the registered provider names, default first
func (uc *weatherUseCase) Providers() []string {
	names := []string{uc.defaultProvider}
	for _, name := range provider.Names() {
		if _, ok := uc.providers[name]; ok && name != uc.defaultProvider {
			names = append(names, name)
		}
	}
	return names
}

// Observe resolves the city with the selected provider without rendering
func (uc *weatherUseCase) Observe(ctx context.Context, query Query) (*entity.Observation, error) {
	result, err := uc.run(ctx, query, false)
	if err != nil {
		return nil, err
	}
	return result.Observation, nil
}

// Report resolves the city and renders it in the requested format
func (uc *weatherUseCase) Report(ctx context.Context, query Query) (*Result, error) {
	return uc.run(ctx, query, true)
}

func (uc *weatherUseCase) run(ctx context.Context, query Query, render bool) (*Result, error) {
	requestID := query.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	start := time.Now()

	log.Debug(msg.GetMessage("weather.run-start"),
		zap.String("request_id", requestID),
		zap.String("city", query.City),
		zap.String("provider", query.Provider),
		zap.String("units", string(query.Units)),
		zap.String("format", string(query.Format)))

	observation, err := uc.fetch(ctx, query)
	if err != nil {
		uc.logFailure(requestID, query, start, err)
		return nil, err
	}

	var output string
	if render {
		output, err = report.Render(observation, query.Units, query.Format)
		if err != nil {
			uc.logFailure(requestID, query, start, err)
			return nil, err
		}
	}

	log.Debug(msg.GetMessage("weather.run-end"),
		zap.String("request_id", requestID),
		zap.String("provider", observation.Provider),
		zap.String("location", observation.Location.DisplayName()),
		zap.Duration("latency", time.Since(start)))

	return &Result{
		RequestID:   requestID,
		Observation: observation,
		Output:      output,
	}, nil
}

func (uc *weatherUseCase) fetch(ctx context.Context, query Query) (*entity.Observation, error) {
	city := strings.TrimSpace(query.City)
	if city == "" {
		return nil, ErrEmptyCity
	}

	p, err := uc.selectProvider(query.Provider)
	if err != nil {
		return nil, err
	}

	return p.Fetch(ctx, city)
}

func (uc *weatherUseCase) selectProvider(name string) (provider.Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = uc.defaultProvider
	}

	p, ok := uc.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q: expected %s", provider.ErrUnknownProvider, name, strings.Join(uc.Providers(), " or "))
	}
	return p, nil
}

func (uc *weatherUseCase) logFailure(requestID string, query Query, start time.Time, err error) {
	log.Warn(msg.GetMessage("weather.run-fail"),
		zap.String("request_id", requestID),
		zap.String("city", query.City),
		zap.String("provider", query.Provider),
		zap.Duration("latency", time.Since(start)),
		zap.Error(err))
}
