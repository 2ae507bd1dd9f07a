package app

import (
	"context"
	"strconv"

	"ordify/internal/common/config"
	"ordify/internal/common/httpx"
	"ordify/internal/common/logger"
	"ordify/internal/common/mq"
	"ordify/internal/handlers"
	"ordify/internal/notify"
	"ordify/internal/repository"
	"ordify/internal/service"
)

// RunServer wires store -> services -> handlers and serves the API
// until ctx is cancelled. Event publishing is enabled only when
// RabbitMQ is configured; the core never depends on it.
func RunServer(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("ordify-server")

	var pub notify.PublisherInterface = notify.Nop{}
	if cfg.RabbitMQ.Enabled() {
		client, err := mq.Dial(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.DeclareAll(); err != nil {
			return err
		}
		pub = notify.NewAMQP(client, lg)
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
	}

	store := repository.NewMemory()
	svc := service.New(store, pub)
	h := handlers.New(svc, lg)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	srv := httpx.New(addr, handlers.RequestLogger(lg, handlers.Router(h)))
	lg.Info("service_started", map[string]any{"addr": addr})
	return srv.Run(ctx)
}
