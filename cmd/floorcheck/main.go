package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/wfm-tools/wfmarket-data/internal/config"
	"github.com/wfm-tools/wfmarket-data/internal/tool"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when omitted)")
	count := flag.Int("count", 0, "number of floor prices per item (0 = configured default)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: floorcheck [-config file] [-count n] item [item ...]")
		os.Exit(2)
	}

	godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx := context.Background()

	t := tool.New(tool.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestLimit:      cfg.API.RequestLimit,
		RequestWindow:     cfg.API.RequestWindow,
		RetryBackoff:      cfg.API.RetryBackoff,
		DefaultFloorCount: cfg.Tool.DefaultFloorCount,
	}, logger)

	if err := t.Initialize(ctx); err != nil {
		logger.Error("failed to initialize tool", "error", err)
		os.Exit(1)
	}
	defer t.Shutdown()

	failed := false
	for _, item := range flag.Args() {
		result, err := t.FloorPrices(ctx, item, *count)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", item, err)
			failed = true
			continue
		}
		fmt.Printf("%s bottom %d floor prices: %v\n", result.ItemName, len(result.Prices), result.Prices)
	}

	if failed {
		os.Exit(1)
	}
}
