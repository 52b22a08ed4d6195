// Package main is the entry point for the moodpet server and CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rogers-f/moodpet/internal/api"
	"github.com/rogers-f/moodpet/internal/config"
	"github.com/rogers-f/moodpet/internal/domain"
	"github.com/rogers-f/moodpet/internal/pet"
	"github.com/rogers-f/moodpet/internal/store"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "moodpet",
		Short:         "A virtual pet whose mood drifts with time",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file (JSON or YAML)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(actCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pet HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			ctx := context.Background()
			p, closeStore, err := openPet(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := api.NewServer(&api.Handler{Pet: p}, cfg.ListenAddr)

			// Graceful shutdown on interrupt.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				<-sigCh
				log.Println("shutting down...")

				ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					log.Printf("server shutdown: %v", err)
				}
			}()

			log.Printf("moodpet %q listening on %s (store=%s)", p.Snapshot().Name, cfg.ListenAddr, cfg.Store)

			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides listen_addr)")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the pet's current status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			p, closeStore, err := openPet(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			view, err := p.Status(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, api.NewStatusResponse(view))
		},
	}
}

func actCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "act <feed|pet|heal|hit|shake>",
		Short:     "Perform an action on the pet",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"feed", "pet", "heal", "hit", "shake"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := domain.ParseAction(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			p, closeStore, err := openPet(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			out, err := p.Perform(ctx, action)
			if err != nil {
				return err
			}
			return printJSON(cmd, api.NewActionResponse(out))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moodpet %s (commit=%s, built=%s)\n", version, commit, date)
		},
	}
}

// loadConfig resolves the config path: --config flag > MOODPET_CONFIG env >
// auto-discover next to exe. With no file anywhere the defaults are used.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("MOODPET_CONFIG")
	}
	if path == "" {
		path = discoverConfig()
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// discoverConfig looks for config.json or config.yaml next to the executable,
// then in the cwd.
func discoverConfig() string {
	names := []string{"config.json", "config.yaml", "config.yml"}

	if exe, err := os.Executable(); err == nil {
		for _, name := range names {
			candidate := filepath.Join(filepath.Dir(exe), name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// openPet wires the configured store to a new pet. The returned func releases
// the store.
func openPet(ctx context.Context, cfg *config.Config) (*pet.Pet, func(), error) {
	var st pet.Store
	release := func() {}

	switch cfg.Store {
	case config.StoreSQLite:
		db, err := store.NewDB(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		st = store.NewSQLiteStore(db)
		release = func() { db.Close() }
	default:
		st = store.NewFileStore(cfg.StatePath)
	}

	p, err := pet.New(ctx, cfg.PetName, st)
	if err != nil {
		release()
		return nil, nil, err
	}
	return p, release, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
