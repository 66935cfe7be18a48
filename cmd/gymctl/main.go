package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tutostrucoscode/GymMetrics/internal"
	"github.com/tutostrucoscode/GymMetrics/internal/config"
	"github.com/tutostrucoscode/GymMetrics/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	env        string
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gymctl",
		Short:         "GymMetrics admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.LoggerSetupParams{
				LogToStdout: true,
				LogLevel:    logLevel,
				Environment: env,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "config section [dev | development | prod | production]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(logsCmd())
	rootCmd.AddCommand(backupCmd())
	rootCmd.AddCommand(hashSecretCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore loads the config and opens the document store the service uses.
func openStore(ctx context.Context) (*internal.OpenedDocStore, *config.Config, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DocStoreDriver == config.DocStoreMemory {
		log.Warnln("memory doc store configured, changes are lost when gymctl exits")
	}

	opened, err := internal.OpenDocStore(ctx, cfg, os.Getenv("GYMMETRICS_DB_PASS"), false)
	if err != nil {
		return nil, nil, err
	}
	return opened, cfg, nil
}
