package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-weather/configs"
	"go-weather/internal/application/cli"
	"go-weather/internal/application/settings"
	"go-weather/pkg/log"
	"go-weather/pkg/resource"
)

func main() {
	if err := settings.Load(configs.Env); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	log.Configure(resource.GetString("app.log.level"), os.Stderr)

	// Ctrl-C aborts in-flight requests instead of waiting for the read timeout
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewWeatherCommand(settings.NewUseCase, cli.Defaults{
		Units:    resource.GetString("weather.units"),
		Provider: resource.GetString("weather.provider"),
		Version:  resource.GetString("app.version"),
	})
	code := cli.Execute(ctx, cmd, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	log.Sync()
	os.Exit(code)
}
