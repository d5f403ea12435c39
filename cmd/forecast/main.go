// Command forecast looks up a city on MetaWeather and prints its
// multi-day forecast.
//
// Usage:
//
//	forecast [flags] city name
//
// When the search matches several locations the candidates are listed and
// one is read from stdin.
//
// Examples:
//
//	forecast London
//	forecast -debug San
//	forecast -base-url http://localhost:8080 Paris
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	applog "github.com/cwbudde/algo-toolbox/internal/log"
	"github.com/cwbudde/algo-toolbox/weather"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	baseURL := flag.String("base-url", weather.DefaultBaseURL, "MetaWeather base URL")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: forecast [flags] city name\n\n")
		fmt.Fprintf(os.Stderr, "Prints the MetaWeather forecast for a city.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := applog.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := weather.New(
		weather.WithBaseURL(*baseURL),
		weather.WithLogger(logger),
		weather.WithSelector(weather.PromptSelector{In: os.Stdin, Out: os.Stdout}),
	)

	if err := run(ctx, os.Stdout, client, query); err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			fmt.Fprintf(os.Stderr, "no city matches %q\n", query)
			os.Exit(1)
		}
		logger.Error("forecast failed", zap.String("query", query), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, client *weather.Client, query string) error {
	city, days, err := client.ForecastForCity(ctx, query)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (woeid %d)\n", city.Title, city.WOEID)
	fmt.Fprintf(tw, "Date\tState\tTemp [C]\n")
	fmt.Fprintf(tw, "----\t-----\t--------\n")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\n", d.ApplicableDate, d.WeatherStateName, d.TheTemp)
	}

	return tw.Flush()
}
