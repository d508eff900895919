package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"go-weather/configs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/settings"
	"go-weather/internal/domain/usecase/health"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

func main() {
	if err := settings.Load(configs.Env); err != nil {
		log.Fatal(err.Error())
	}
	log.Configure(resource.GetString("app.server.log-level"), os.Stdout)
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init UseCase
	weatherUseCase, err := settings.NewUseCase("")
	if err != nil {
		log.Fatal(err.Error())
	}
	healthUseCase := health.NewHealthUseCase(settings.HealthGateways()...)

	// Init Controller
	weatherController := controller.NewWeatherController(api, weatherUseCase, resource.GetString("weather.units"))
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
	log.Info(msg.GetMessage("app.stopped"))
}
