package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/sbilibin2017/gw-currency-converter/internal/uistate"
)

// options are the command-line settings of fxcli.
type options struct {
	server   string
	base     string
	amount   float64
	from     string
	to       string
	trend    string
	days     int
	mode     string
	timeout  time.Duration
	ttl      time.Duration
	repeat   int
	width    int
	logLevel string
	noColor  bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, opts); err != nil {
		os.Exit(1)
	}
}

// parseFlags parses args into options.
func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("fxcli", flag.ContinueOnError)
	fs.StringVar(&o.server, "server", "http://localhost:8080/api", "Rates API root")
	fs.StringVar(&o.base, "base", "USD", "Base currency of the API")
	fs.Float64Var(&o.amount, "amount", 0, "Amount to convert")
	fs.StringVar(&o.from, "from", "", "Source currency")
	fs.StringVar(&o.to, "to", "", "Target currency")
	fs.StringVar(&o.trend, "trend", "", "Currency to chart against the base")
	fs.IntVar(&o.days, "days", services.DefaultTrendDays, "Trend window in days")
	fs.StringVar(&o.mode, "mode", "table", "Conversion mode: table or direct")
	fs.DurationVar(&o.timeout, "timeout", uistate.DefaultActionTimeout, "Timeout of one action")
	fs.DurationVar(&o.ttl, "ttl", repositories.DefaultRateTTL, "Rate table cache TTL")
	fs.IntVar(&o.repeat, "repeat", 1, "Number of times to run the conversion")
	fs.IntVar(&o.width, "width", 60, "Maximum chart width")
	fs.StringVar(&o.logLevel, "log-level", "warn", "Log level")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.mode != "table" && o.mode != "direct" {
		return o, fmt.Errorf("unknown mode %q", o.mode)
	}
	if o.from == "" && o.to == "" && o.trend == "" {
		return o, errors.New("nothing to do: pass -from/-to/-amount or -trend")
	}
	return o, nil
}

// run performs the requested actions and prints each resulting view.
// It returns the first action error.
func run(ctx context.Context, out io.Writer, o options) error {
	if err := logger.InitializeWithEncoding(o.logLevel, "console"); err != nil {
		return err
	}
	defer logger.Sync()

	color.NoColor = color.NoColor || o.noColor
	base := models.NormalizeCode(o.base)

	var converter *services.Converter
	switch o.mode {
	case "direct":
		converter = services.NewDirectConverter(facades.NewConvertHTTPFacade(o.server, o.timeout))
	default:
		cache := repositories.NewRateCache(
			facades.NewRatesHTTPFacade(o.server, base, o.timeout),
			repositories.WithFetchTimeout(o.timeout),
		)
		converter = services.NewTableConverter(cache, o.ttl)
	}

	trends := services.NewTrendService(facades.NewTimeseriesHTTPFacade(o.server, o.timeout), base)
	controller := uistate.NewController(converter, trends, newSparklineSink(out, o.width), o.timeout)

	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if o.from != "" || o.to != "" {
		for i := 0; i < max(o.repeat, 1); i++ {
			view, err := controller.RequestConversion(ctx, models.ConversionRequest{Amount: o.amount, From: o.from, To: o.to})
			printView(out, "convert", view)
			keep(err)
			if err != nil {
				break
			}
		}
	}

	if o.trend != "" {
		view, err := controller.RequestTrend(ctx, o.trend, o.days)
		printView(out, "trend", view)
		keep(err)
	}

	return firstErr
}

func printView(w io.Writer, label string, v uistate.View) {
	valueColor := color.New(color.FgGreen, color.Bold)
	if v.Status == uistate.Err {
		valueColor = color.New(color.FgRed, color.Bold)
	}
	hintColor := color.New(color.Faint)

	_, _ = fmt.Fprintf(w, "%-8s %s\n", label, valueColor.Sprint(v.Value))
	if v.Hint != "" {
		_, _ = fmt.Fprintf(w, "%-8s %s\n", "", hintColor.Sprint(v.Hint))
	}
}
