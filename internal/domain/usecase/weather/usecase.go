package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/report"
)

// Query is one report request.
type Query struct {
	City string
	// Provider selects a registered provider; empty uses the default one
	Provider string
	Units    entity.Units
	Format   report.Format
	// RequestID tags the run's logs; empty generates a new uuid
	RequestID string
}

// Result is a rendered report and the observation behind it.
type Result struct {
	RequestID   string
	Observation *entity.Observation
	Output      string
}

type UseCase interface {
	// Observe resolves the city with the selected provider without rendering.
	// It logs the run like Report does
	Observe(ctx context.Context, query Query) (*entity.Observation, error)

	// Report resolves the city and renders it in the requested format
	Report(ctx context.Context, query Query) (*Result, error)

	// Providers returns the registered provider names, default first
	Providers() []string
}
