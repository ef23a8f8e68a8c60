package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hasib2k/portfolio/internal/server"
)

var (
	port    int
	address string
	baseURL string
)

// NewServerCmd creates the server command.
func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  "Start the HTTP server that renders the project pages on request.",
		RunE:  runServer,
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "server port (default 8080)")
	cmd.Flags().StringVar(&address, "address", "", "listen address")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public base URL for canonical links")

	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Override with command line flags
	if port != 0 {
		cfg.Server.Port = port
	}
	if address != "" {
		cfg.Server.Address = address
	}
	if baseURL != "" {
		cfg.Site.BaseURL = baseURL
	}

	log.Info().
		Int("port", cfg.Server.Port).
		Str("base_url", cfg.Site.BaseURL).
		Msg("Starting portfolio server")

	srv := server.New(cfg)

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		return srv.Shutdown()
	}
}
