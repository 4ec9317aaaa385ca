// Package main wires the HTTP server for the mentoring appointment service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dacaceros97/mentorias-backend/config"
	"github.com/dacaceros97/mentorias-backend/internal/notification"
	"github.com/dacaceros97/mentorias-backend/internal/repository"
	"github.com/dacaceros97/mentorias-backend/internal/transport/http/server"
	"github.com/dacaceros97/mentorias-backend/internal/usecase"
	"github.com/dacaceros97/mentorias-backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var sender notification.Sender = notification.NewLogSender(log)
	if cfg.Mail.Enabled {
		smtp, err := notification.NewSMTPSender(cfg.Mail)
		if err != nil {
			log.Errorw("mail sender initialization error", "error", err)
			return
		}
		sender = smtp
	}

	dispatcher := notification.NewDispatcher(log, repo, notification.NewComposer(cfg.Mail.Subject), sender,
		notification.Options{
			Workers:       cfg.Mail.Workers,
			QueueSize:     cfg.Mail.QueueSize,
			RatePerSecond: cfg.Mail.RatePerSecond,
			SendTimeout:   cfg.Mail.SendTimeout,
		})
	if err := dispatcher.OnStart(ctx); err != nil {
		log.Errorw("notification dispatcher start error", "error", err)
		return
	}

	uc := usecase.New(log, repo, dispatcher, cfg.HTTP.RequestTimeout)
	serv := server.New(cfg.HTTP, log, uc, repo.Ping)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
	if err := dispatcher.OnStop(shutdownCtx); err != nil {
		log.Warnw("notification dispatcher stopped with pending work", "error", err)
	}
}
