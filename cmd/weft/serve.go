package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/cli"
	fileAdapter "github.com/aretw0/weft/pkg/adapters/file"
	httpAdapter "github.com/aretw0/weft/pkg/adapters/http"
	"github.com/aretw0/weft/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/weft/pkg/adapters/redis"
	"github.com/aretw0/weft/pkg/observability"
	"github.com/aretw0/weft/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render server",
	Long:  `Starts the weft engine in server mode, exposing rendering as a JSON API with Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		templatesDir, _ := cmd.Flags().GetString("templates")
		redisAddr, _ := cmd.Flags().GetString("redis")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := cli.CreateLogger(debug)

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		engine := weft.New(
			weft.WithLogger(logger),
			weft.WithHooks(metrics.Hooks()),
		)

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		}

		if templatesDir != "" {
			loader, err := fileAdapter.NewLoader(templatesDir)
			if err != nil {
				fmt.Printf("Error loading templates: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, httpAdapter.WithLoader(loader))
		}

		var store ports.ContextStore
		if redisAddr != "" {
			redisStore := redisAdapter.New(redisAddr, "", 0)
			defer redisStore.Close()
			store = redisStore
		} else {
			store = memory.NewStore()
		}
		opts = append(opts, httpAdapter.WithContextStore(store))

		srv := &http.Server{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(engine, opts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting weft server on %s\n", srv.Addr)
			if templatesDir != "" {
				fmt.Printf("Serving templates from: %s\n", templatesDir)
			}
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
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("weft server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("templates", "", "Directory of YAML template documents")
	serveCmd.Flags().String("redis", "", "Redis address for the context store (in-memory when empty)")
}
