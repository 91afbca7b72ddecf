// Command calc computes a single margin P/L from flags and prints the
// margin and result lines.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rovshanmuradov/marginal/internal/config"
	"github.com/rovshanmuradov/marginal/internal/logger"
	"github.com/rovshanmuradov/marginal/internal/margin"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "configs/config.json", "Path to config file")
	buy := fs.String("buy", "", "Buy price")
	sell := fs.String("sell", "", "Sell price")
	lot := fs.String("lot", "", "Lot size (0.01-500.00)")
	order := fs.String("order", "", "Order type: buy or sell (default from config)")
	leverage := fs.String("leverage", "", "Leverage ratio, e.g. 1/100 (default from config)")
	debug := fs.Bool("debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.New(stderr, "", 0).Printf("Failed to load config: %v", err)
		return 2
	}

	appLogger := logger.NewPrettyLogger(stderr, *debug || cfg.DebugLogging)
	defer func() {
		_ = appLogger.Sync()
	}()

	form := cfg.InitialForm()
	form.BuyPrice, form.SellPrice, form.LotSize = *buy, *sell, *lot

	res, err := evaluate(form, *order, *leverage)
	disp := margin.Render(res, err)

	fmt.Fprintln(stdout, disp.MarginLabel())
	fmt.Fprintln(stdout, disp.ResultLabel())

	if err != nil {
		appLogger.Debug("Calculation rejected", zap.Error(err))
		return 1
	}
	if res == nil {
		appLogger.Debug("Incomplete input, nothing to calculate")
		return 0
	}
	appLogger.Debug("Calculated",
		zap.Stringer("order_type", res.Order),
		zap.Stringer("leverage", res.Leverage),
		zap.String("result", disp.Result))
	return 0
}

// evaluate applies the -order and -leverage overrides and runs the
// calculation. A bad override is reported like any other validation error.
func evaluate(form margin.Form, order, leverage string) (*margin.Result, error) {
	var err error
	if order != "" {
		if form.Order, err = margin.ParseOrderType(order); err != nil {
			return nil, err
		}
	}
	if leverage != "" {
		if form.Leverage, err = margin.ParseLeverage(leverage); err != nil {
			return nil, err
		}
	}
	return margin.Evaluate(form)
}
