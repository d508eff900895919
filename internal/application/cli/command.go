package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/report"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/spf13/cobra"
)

// UseCaseFactory builds the use case for a provider name. Empty means the configured default.
type UseCaseFactory func(providerName string) (weather.UseCase, error)

// Defaults are the flag defaults, normally taken from the application properties.
type Defaults struct {
	Units    string
	Provider string
	Version  string
}

type options struct {
	units      string
	fahrenheit bool
	json       bool
	provider   string
	verbose    bool
}

// NewWeatherCommand creates the root `weather` command.
func NewWeatherCommand(newUseCase UseCaseFactory, defaults Defaults) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "weather <city>",
		Short: "Fetch and display current weather for a city",
		Long: "Fetch and display current weather for a city.\n\n" +
			"Providers: open-meteo (geocoding + forecast) and wttr (wttr.in).",
		Example: strings.Join([]string{
			"  weather London",
			`  weather "New York" --units fahrenheit`,
			"  weather Tokyo -u celsius -p wttr",
			"  weather Paris --json",
		}, "\n"),
		Version:       defaults.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New(msg.GetMessage("cli.usage-city"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), newUseCase, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.units, "units", "u", defaults.Units, "Temperature units (celsius or fahrenheit)")
	flags.BoolVarP(&opts.fahrenheit, "fahrenheit", "f", false, "Display temperature in Fahrenheit")
	flags.BoolVarP(&opts.json, "json", "j", false, "Output the raw JSON returned by the provider")
	flags.StringVarP(&opts.provider, "provider", "p", defaults.Provider, "Weather provider (open-meteo or wttr)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug logs to stderr")

	_ = flags.MarkDeprecated("fahrenheit", msg.GetMessage("cli.deprecated-fahrenheit"))
	cmd.MarkFlagsMutuallyExclusive("units", "fahrenheit")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, newUseCase UseCaseFactory, opts *options, args []string) error {
	if opts.verbose {
		log.Configure("debug", stderr)
	}

	city := strings.TrimSpace(strings.Join(args, " "))

	units, err := entity.ParseUnits(opts.units)
	if err != nil {
		return err
	}
	if opts.fahrenheit {
		units = entity.Fahrenheit
	}

	format := report.FormatText
	if opts.json {
		format = report.FormatJSON
	}

	useCase, err := newUseCase(opts.provider)
	if err != nil {
		return err
	}

	if format == report.FormatText {
		fmt.Fprintln(stdout, msg.GetMessage("cli.fetching", city))
	}

	result, err := useCase.Report(ctx, weather.Query{
		City:     city,
		Provider: opts.provider,
		Units:    units,
		Format:   format,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, result.Output)
	return nil
}

// Execute runs the command with args and returns the process exit code.
// Failures are printed to stderr as "Error: <message>".
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, msg.GetMessage("cli.error", describe(err)))
	}
	return model.ExitCode(err)
}

// describe turns pipeline errors into the user-facing message.
func describe(err error) string {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		return msg.GetMessage("weather.not-found", notFound.City)
	}
	return err.Error()
}
