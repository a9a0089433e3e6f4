package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lumora-app/intake/internal/logging"
	"github.com/lumora-app/intake/pkg/adapters/httpapi"
	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/adapters/profileapi"
	redisadapter "github.com/lumora-app/intake/pkg/adapters/redis"
	"github.com/lumora-app/intake/pkg/observability"
	"github.com/lumora-app/intake/pkg/persistence/middleware"
	"github.com/lumora-app/intake/pkg/ports"
	"github.com/lumora-app/intake/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session-backed HTTP server",
	Long:  `Starts the questionnaire engine in server mode, exposing a JSON API over HTTP with persistent sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		configPath, _ := cmd.Flags().GetString("config")
		addrFlag, _ := cmd.Flags().GetString("addr")

		logger := logging.New(logging.ParseLevel(levelName))

		cfg := DefaultServeConfig()
		if configPath != "" {
			loaded, err := LoadServeConfig(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addrFlag
		}

		// Session store: Redis when configured, in-memory otherwise.
		var store ports.StateStore
		var sessionOpts []session.Option
		if cfg.Redis.Addr != "" {
			ttl, err := cfg.sessionTTL()
			if err != nil {
				fmt.Printf("Error in config: %v\n", err)
				os.Exit(1)
			}
			rstore := redisadapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redisadapter.WithTTL(ttl))
			defer rstore.Close()
			store = rstore
			sessionOpts = append(sessionOpts, session.WithLocker(redisadapter.NewLocker(rstore.Client(), "intake:lock:")))
			logger.Info("using redis session store", "addr", cfg.Redis.Addr)
		} else {
			store = memory.NewStore()
			logger.Info("using in-memory session store")
		}

		if keys, err := cfg.encryptionKeys(); err != nil {
			fmt.Printf("Error in config: %v\n", err)
			os.Exit(1)
		} else if keys != nil {
			store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
				ActiveKey:    keys[0],
				FallbackKeys: keys[1:],
			})(store)
		}
		if cfg.Security.MaskPII {
			store = middleware.NewPIIMiddleware()(store)
		}

		sessionOpts = append(sessionOpts, session.WithLogger(logger))
		sessions := session.NewManager(store, sessionOpts...)

		var svc ports.ProfileService
		if cfg.Profile.DryRun || cfg.Profile.BaseURL == "" {
			svc = memory.NewProfileRecorder()
			logger.Warn("profile submissions run dry, configure profile.base_url for real submissions")
		} else {
			svc = profileapi.New(cfg.Profile.BaseURL, profileapi.WithAuthToken(cfg.Profile.AuthToken))
		}

		apiOpts := []httpapi.Option{httpapi.WithLogger(logger)}
		router := chi.NewRouter()
		if cfg.Metrics.Enabled {
			metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
			apiOpts = append(apiOpts, httpapi.WithLifecycleHooks(metrics.Hooks()))
			router.Handle("/metrics", promhttp.Handler())
		}
		router.Mount("/", httpapi.NewServer(sessions, svc, apiOpts...).Handler())

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting intake server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("intake server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
