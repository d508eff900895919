package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go-weather/configs"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/provider"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func TestMain(m *testing.M) {
	if err := msg.Init("", configs.Messages); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeProvider struct {
	name string
	err  error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Fetch(_ context.Context, city string) (*entity.Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if city != "London" {
		return nil, &model.NotFoundError{City: city}
	}
	code := 61
	return &entity.Observation{
		Provider: f.name,
		Location: entity.Location{Name: "London", Region: "England", Country: "United Kingdom", Latitude: 51.5, Longitude: -0.12},
		Conditions: entity.Conditions{
			TemperatureC: 10, FeelsLikeC: 8, Humidity: 90, WeatherCode: &code,
			Description: "Slight rain", WindSpeed: 20, WindSpeedUnit: "km/h", WindDirection: 180,
		},
		Raw: []byte(`{"current":{"temperature_2m":10}}`),
	}, nil
}

func newWeatherServer(providers ...provider.Provider) *echo.Echo {
	e := echo.New()
	api := e.Group("/weather-api")
	NewWeatherController(api, weather.NewWeatherUseCase(providers...), "celsius").InitWeatherRoutes()
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetCurrentWeatherJSON(t *testing.T) {
	e := newWeatherServer(&fakeProvider{name: provider.OpenMeteo})

	rec := serve(e, "/weather-api/weather/London?units=fahrenheit")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var dto model.WeatherReportDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.Conditions.Temperature != 50 || dto.Conditions.TemperatureUnit != "°F" {
		t.Errorf("unexpected temperature %v%s", dto.Conditions.Temperature, dto.Conditions.TemperatureUnit)
	}
	if dto.Conditions.WindCompass != "S" || dto.Conditions.Emoji != "🌧️" {
		t.Errorf("unexpected conditions %+v", dto.Conditions)
	}
	if dto.Location.DisplayName != "London, England, United Kingdom" || dto.Units != "fahrenheit" {
		t.Errorf("unexpected report %+v", dto)
	}
}

func TestGetCurrentWeatherRawAndText(t *testing.T) {
	e := newWeatherServer(&fakeProvider{name: provider.OpenMeteo})

	rec := serve(e, "/weather-api/weather/London?format=raw")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"current":{"temperature_2m":10}}` {
		t.Errorf("unexpected raw response %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		t.Errorf("unexpected content type %q", ct)
	}

	rec = serve(e, "/weather-api/weather/London?format=text")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Temperature: 10.0°C (feels like 8.0°C)") {
		t.Errorf("unexpected text response %d\n%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextPlain) {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestGetCurrentWeatherErrors(t *testing.T) {
	cases := []struct {
		name     string
		provider *fakeProvider
		target   string
		status   int
		message  string
	}{
		{"unknown city", &fakeProvider{name: provider.OpenMeteo}, "/weather-api/weather/Atlantis", http.StatusNotFound, "Could not find city: Atlantis"},
		{"invalid units", &fakeProvider{name: provider.OpenMeteo}, "/weather-api/weather/London?units=kelvin", http.StatusBadRequest, "invalid units kelvin"},
		{"invalid format", &fakeProvider{name: provider.OpenMeteo}, "/weather-api/weather/London?format=xml", http.StatusBadRequest, "unknown format xml"},
		{"unknown provider", &fakeProvider{name: provider.OpenMeteo}, "/weather-api/weather/London?provider=met-office", http.StatusBadRequest, "unknown provider"},
		{"upstream failure", &fakeProvider{name: provider.OpenMeteo, err: &model.UpstreamError{Service: "Weather", StatusCode: 500}}, "/weather-api/weather/London", http.StatusBadGateway, "Weather API error"},
		{"bad payload", &fakeProvider{name: provider.OpenMeteo, err: &model.DecodeError{Service: "Weather", Err: errors.New("no current block")}}, "/weather-api/weather/London", http.StatusBadGateway, "unexpected response"},
		{"unreachable", &fakeProvider{name: provider.OpenMeteo, err: &model.NetworkError{Service: "Weather", Err: context.DeadlineExceeded}}, "/weather-api/weather/London", http.StatusGatewayTimeout, "unreachable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(newWeatherServer(tc.provider), tc.target)
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %s", rec.Body.String())
			}
			if !strings.Contains(body["error"], tc.message) {
				t.Errorf("error = %q, want it to contain %q", body["error"], tc.message)
			}
		})
	}
}

func TestGetCurrentWeatherSelectsProvider(t *testing.T) {
	e := newWeatherServer(&fakeProvider{name: provider.OpenMeteo}, &fakeProvider{name: provider.Wttr})

	rec := serve(e, "/weather-api/weather/London?provider=wttr")
	var dto model.WeatherReportDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatal(err)
	}
	if dto.Provider != provider.Wttr {
		t.Errorf("expected wttr, got %q", dto.Provider)
	}
}

func TestEveryFormatLogsTheRequestID(t *testing.T) {
	var out bytes.Buffer
	log.Configure("debug", &out)
	t.Cleanup(func() { log.Configure("warn", os.Stderr) })

	e := echo.New()
	e.Use(echomw.RequestID())
	api := e.Group("/weather-api")
	NewWeatherController(api, weather.NewWeatherUseCase(&fakeProvider{name: provider.OpenMeteo}), "celsius").InitWeatherRoutes()

	for _, format := range []string{"json", "raw", "text"} {
		out.Reset()
		rec := serve(e, "/weather-api/weather/London?format="+format)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", format, rec.Code)
		}

		id := rec.Header().Get(echo.HeaderXRequestID)
		if id == "" {
			t.Fatalf("%s: missing request id", format)
		}
		if got := strings.Count(out.String(), `"request_id":"`+id+`"`); got != 2 {
			t.Errorf("%s: expected start and end entries for %s, got %d:\n%s", format, id, got, out.String())
		}
	}
}

func TestGetCurrentWeatherRateLimited(t *testing.T) {
	limited := provider.NewRateLimitedProvider(&fakeProvider{name: provider.OpenMeteo}, 0.001, 1)
	e := newWeatherServer(limited)

	if rec := serve(e, "/weather-api/weather/London"); rec.Code != http.StatusOK {
		t.Fatalf("first request uses the burst token, got %d", rec.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/weather-api/weather/London", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d (%s)", rec.Code, http.StatusTooManyRequests, rec.Body.String())
	}
}

type fakeHealthGateway struct {
	name   string
	status model.HealthStatus
}

func (f fakeHealthGateway) Name() string { return f.name }

func (f fakeHealthGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

func TestCheckHealth(t *testing.T) {
	cases := []struct {
		name   string
		status model.HealthStatus
		code   int
	}{
		{"up", model.StatusUp, http.StatusOK},
		{"down", model.StatusDown, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			api := e.Group("/weather-api")
			NewHealthController(api, health.NewHealthUseCase(fakeHealthGateway{provider.Wttr, tc.status})).InitHealthRoutes()

			rec := serve(e, "/weather-api/health")
			if rec.Code != tc.code {
				t.Errorf("status = %d, want %d", rec.Code, tc.code)
			}

			var response model.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatal(err)
			}
			if response.Status != tc.status || response.Providers[provider.Wttr].Status != tc.status {
				t.Errorf("unexpected health %+v", response)
			}
		})
	}
}
