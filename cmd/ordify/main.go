package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ordify/internal/app"
	"ordify/internal/common/config"
	"ordify/internal/common/logger"
)

func main() {
	mode := flag.String("mode", "server", "server | notification-subscriber")
	port := flag.Int("port", 0, "override the configured HTTP port")
	cfgPath := flag.String("config", "config.yaml", "path to config file (empty for defaults)")
	flag.Parse()

	lg := logger.New("bootstrap")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": *cfgPath})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "server":
		lg.Info("service_started", map[string]any{"service": "server", "port": cfg.Server.Port})
		if err := app.RunServer(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		if err := app.RunSubscriber(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be: server | notification-subscriber")
		os.Exit(2)
	}
}
