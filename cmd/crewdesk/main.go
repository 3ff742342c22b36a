// Package main provides the crewdesk CLI entry point.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crewdesk/internal/config"
	"crewdesk/internal/gang"
	"crewdesk/internal/logging"
	"crewdesk/internal/store"
)

const version = "0.3.0"

var (
	// Global flags
	storageBackend string
	storagePath    string

	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "crewdesk",
	Short: "CrewDesk - console de gestion pour équipe role-play",
	Long: `CrewDesk is a single-user terminal console for a role-play crew:
members, treasury transactions, vehicles, weapon stock, territories and
missions, all persisted locally with a full write-through on every change.

Run without arguments to start the interactive console.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger = logging.NewOrNop(cfg)
		gang.SetAmountFormat(
			cfg.Currency.Fraction,
			cfg.Currency.Decimal,
			cfg.Currency.Thousand,
			cfg.Currency.Grapheme,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the crewdesk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("crewdesk " + version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "Storage backend: sqlite, file or memory (default from config)")
	rootCmd.PersistentFlags().StringVar(&storagePath, "db", "", "Storage location (default under the data directory)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file, environment and command-line flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !os.IsNotExist(err) {
		// A broken config file falls back to defaults; keep going.
		cfg = config.Default()
	}
	if storageBackend != "" {
		cfg.Storage.Backend = storageBackend
	}
	if storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	return cfg, nil
}

// openStore builds the configured persistence backend.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "", "sqlite":
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		return store.OpenSQLite(path)
	case "file":
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		return store.OpenFile(path)
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func runConsole() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	state, err := gang.Open(st, logger)
	if err != nil {
		return fmt.Errorf("failed to hydrate state: %w", err)
	}

	model := newConsoleModel(cfg, state, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// The file backend can report external edits; forward them so the
	// console re-hydrates without a restart.
	if fs, ok := st.(*store.FileStore); ok {
		if events, err := fs.Watch(); err == nil {
			go func() {
				for key := range events {
					program.Send(storeChangedMsg{key: key})
				}
			}()
		} else {
			logger.Warn("store watcher unavailable", zap.Error(err))
		}
	}

	logger.Info("console started",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("version", version),
	)
	_, err = program.Run()
	return err
}
