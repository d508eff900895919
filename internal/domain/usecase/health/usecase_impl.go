package health

import (
	"context"
	"sync"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	gateways []api.HealthGateway
}

func NewHealthUseCase(gateways ...api.HealthGateway) UseCase {
	return &healthUseCase{gateways: gateways}
}

// CheckHealth probes every upstream concurrently. The service is DOWN when any upstream is.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	results := make([]model.ComponentHealthStatus, len(useCase.gateways))

	var wg sync.WaitGroup
	for i, gateway := range useCase.gateways {
		wg.Add(1)
		go func(i int, gateway api.HealthGateway) {
			defer wg.Done()
			results[i] = gateway.Health(ctx)
		}(i, gateway)
	}
	wg.Wait()

	overallStatus := model.StatusUp
	if len(useCase.gateways) == 0 {
		overallStatus = model.StatusUnknown
	}

	providers := make(map[string]model.ComponentHealthStatus, len(results))
	for i, gateway := range useCase.gateways {
		providers[gateway.Name()] = results[i]
		if results[i].Status != model.StatusUp {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Providers: providers,
	}
}
