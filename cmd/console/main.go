package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sethvargo/go-envconfig"

	"github.com/inc-inventory/inventory-system/internal/console/apiclient"
	"github.com/inc-inventory/inventory-system/internal/console/app"
	"github.com/inc-inventory/inventory-system/internal/console/session"
	"github.com/inc-inventory/inventory-system/internal/console/storage"
	"github.com/inc-inventory/inventory-system/internal/pkg/config"
	"github.com/inc-inventory/inventory-system/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg, err := config.LoadConsole(ctx, envconfig.OsLookuper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
		Output: os.Stderr,
	})

	path := cfg.StatePath
	if path == "" {
		if path, err = storage.DefaultPath(); err != nil {
			log.Error().Err(err).Msg("state path")
			return 1
		}
	}
	st, err := storage.OpenBolt(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("open state")
		return 1
	}
	defer st.Close()

	store := session.NewStore()
	client, err := apiclient.New(cfg.APIURL,
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		apiclient.WithTokenSource(func() string { return store.Get().Token }),
		apiclient.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("api client")
		return 1
	}

	a := app.New(store, st, client, app.Options{
		In:  os.Stdin,
		Out: os.Stdout,
		Log: log,
		WriteFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
	})
	if err := a.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
