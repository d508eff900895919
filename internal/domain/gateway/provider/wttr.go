package provider

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
)

type wttrProvider struct {
	gateway api.WttrGateway
}

func NewWttrProvider(gateway api.WttrGateway) Provider {
	return &wttrProvider{gateway: gateway}
}

func (p *wttrProvider) Name() string {
	return Wttr
}

func (p *wttrProvider) Fetch(ctx context.Context, city string) (*entity.Observation, error) {
	observation, err := p.gateway.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	observation.Provider = Wttr
	return observation, nil
}
