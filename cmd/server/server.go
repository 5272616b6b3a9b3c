package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
	"github.com/rollrogue/rollrogue-api/internal/orchestrators/game"
	"github.com/rollrogue/rollrogue-api/internal/pkg/clock"
	"github.com/rollrogue/rollrogue-api/internal/pkg/idgen"
	"github.com/rollrogue/rollrogue-api/internal/redis"
	"github.com/rollrogue/rollrogue-api/internal/repositories/gamestate"
)

var (
	httpPort      int
	redisEndpoint string
	memoryStore   bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the rollrogue API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "localhost:6379", "Redis endpoint for run state")
	serverCmd.Flags().BoolVar(&memoryStore, "memory", false, "Keep run state in memory instead of Redis")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	var stateRepo gamestate.Repository
	if memoryStore {
		stateRepo = gamestate.NewInMemory(clock.New())
	} else {
		redisClient, err := redis.NewClient(redisEndpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}

		stateRepo, err = gamestate.NewRedisRepository(&gamestate.Config{
			Client: redisClient,
			Clock:  clock.New(),
		})
		if err != nil {
			return fmt.Errorf("failed to create state repository: %w", err)
		}
	}

	gameService, err := game.NewOrchestrator(&game.Config{
		StateRepo:   stateRepo,
		EventBus:    events.NewBus(),
		Roller:      &dice.CryptoRoller{},
		IDGenerator: idgen.NewUUID("run"),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	gameHandler, err := v1alpha1.NewGameHandler(&v1alpha1.GameHandlerConfig{
		GameService: gameService,
	})
	if err != nil {
		return fmt.Errorf("failed to create game handler: %w", err)
	}

	mux := http.NewServeMux()
	gameHandler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("HTTP server starting on port %d...", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("Graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		} else {
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
