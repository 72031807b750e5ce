package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/seliv-dev/tic-tac-toe/internal/config"
	"github.com/seliv-dev/tic-tac-toe/internal/transport/ws"
	"github.com/seliv-dev/tic-tac-toe/internal/usecase/hub"
	"github.com/seliv-dev/tic-tac-toe/internal/usecase/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	cfgPath := flag.String("config", "./config.yml", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	var (
		sess     = session.New(logger)
		gamesHub = hub.New(sess, logger)
		server   = ws.New(cfg.Server.Addr(), gamesHub, logger)
	)
	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		s := <-sigChan
		return errors.Errorf("captured signal: %v", s)
	})
	go func() {
		if err := server.ListenAndServe(); err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	}()
	if err := errGroup.Wait(); err != nil {
		logger.Info("gracefully shutting down the server: " + err.Error())
	}
	gamesHub.Close()
	logger.Info("games started since boot", zap.Int64("count", gamesHub.GamesStarted()))
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Info("failed to shutdown http server: " + err.Error())
	}
}
