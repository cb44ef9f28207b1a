package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-matrix-system.com/task-matrix/internal/configs"
	httpapi "task-matrix-system.com/task-matrix/internal/http"
	"task-matrix-system.com/task-matrix/internal/quota"
	repository "task-matrix-system.com/task-matrix/internal/repositories"
	"task-matrix-system.com/task-matrix/internal/services"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the Eisenhower task matrix HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			log.Fatalf("invalid TIME_ZONE %q: %v", cfg.TimeZone, err)
		}

		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		var locker quota.Locker
		if cfg.QuotaLock == config.QuotaLockRedis {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			locker = quota.NewRedisLocker(
				redisClient,
				cfg.RedisLockPrefix,
				time.Duration(cfg.LockTTLSeconds)*time.Second,
			)
		} else {
			locker = quota.NewLocalLocker()
		}

		guard := quota.NewGuard(locker, taskRepo, int64(cfg.MaxPerQuadrant))
		taskService := services.NewTaskService(taskRepo, guard, loc)

		e := echo.New()

		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
