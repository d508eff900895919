package api

import (
	"errors"

	"go-weather/internal/domain/model"
	"go-weather/pkg/http"
)

// toDomainError translates client failures into the weather error taxonomy.
func toDomainError(service string, err error) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return &model.UpstreamError{Service: service, StatusCode: statusErr.StatusCode, Status: statusErr.Status}
	}

	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return &model.DecodeError{Service: service, Err: decodeErr.Err}
	}

	return &model.NetworkError{Service: service, Err: err}
}
