package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/infrastructure/email"
	"github.com/cragbase/cragbase/internal/shared/constants"
	"github.com/cragbase/cragbase/internal/shared/goroutine"
	"github.com/cragbase/cragbase/internal/shared/logger"
)

func main() {
	// Parse environment from command line or env variable
	env := constants.EnvDevelopment
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, "")
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting mail delivery worker", "environment", env)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	transport, err := email.NewTransport(ctx, cfg.Mailer, log)
	if err != nil {
		log.Fatalw("failed to create mail transport", "error", err)
	}

	worker := email.NewWorker(
		email.NewQueue(redisClient, cfg.Mailer.Queue.Key),
		transport,
		cfg.Mailer.Queue.MaxAttempts,
		log,
	)
	done := goroutine.SafeGo(log, "mail-worker", func() {
		worker.Run(ctx)
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)
	cancel()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		log.Warnw("mail worker did not stop in time")
	}
}
