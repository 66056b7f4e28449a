// Package cli defines the maestro command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quorumlabs/maestro/internal/config"
	"github.com/quorumlabs/maestro/internal/logging"
	"github.com/quorumlabs/maestro/internal/server"
	"github.com/quorumlabs/maestro/internal/svc"
)

// Version is stamped by the build.
var Version = "dev"

// SetupRootCmd builds the command tree around the loaded configuration.
// Running with no subcommand starts the server.
func SetupRootCmd(c *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "maestro",
		Short:        "Conversational orchestration service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(c)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(c)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("maestro", Version)
		},
	}

	root.AddCommand(serveCmd, versionCmd)
	return root
}

func runServe(c *config.Config) error {
	log := logging.New(c.Log.Level, c.Log.Pretty)

	svcCtx, err := svc.NewServiceContext(*c, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}()

	return server.Run(ctx, svcCtx)
}
