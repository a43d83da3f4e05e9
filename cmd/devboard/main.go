package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/config"
	"github.com/emilianohg/devboard/internal/db"
	"github.com/emilianohg/devboard/internal/logging"
	"github.com/emilianohg/devboard/internal/repository"
	"github.com/emilianohg/devboard/internal/seed"
	"github.com/emilianohg/devboard/internal/settings"
	"github.com/emilianohg/devboard/internal/tui"
	"github.com/emilianohg/devboard/internal/workspace"
)

// app is everything a command needs once config and storage are open.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *catalog.Registry
	ws       *workspace.Workspace
	profile  *settings.Store
	cleanup  func()
}

func (a *app) Close() {
	a.log.Sync()
	db.Close()
	a.cleanup()
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, cleanup := logging.Fallback(cfg)

	database, err := db.Open()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Bring a fresh or older database up to the latest schema
	if err := db.EnsureSchema(); err != nil {
		db.Close()
		cleanup()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	profile, err := settings.NewStore(repository.NewProfileRepo(repository.NewSlotStore(database, log)), log)
	if err != nil {
		db.Close()
		cleanup()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		registry: catalog.NewRegistry(cfg.ExtraCategories, cfg.ExtraTechTags),
		ws:       workspace.New(database, log),
		profile:  profile,
		cleanup:  cleanup,
	}, nil
}

// run opens the app, hands it to fn and exits 1 on any error.
func run(fn func(a *app) error) {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	err = fn(a)
	if err != nil {
		a.log.Error("command failed", zap.Error(err))
	}
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devboard",
	Short: "Project showcase and team task board",
	Long:  `Devboard keeps a catalog of your coding projects and a task board for team projects.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			// First launch starts with the sample catalog
			if _, err := seed.Apply(a.ws.ProjectRepo(), a.ws.TeamRepo(), false); err != nil {
				return err
			}
			a.log.Info("tui started")
			return tui.Run(a.ws, a.profile, a.registry, a.cfg)
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			if err := db.RunMigrations(); err != nil {
				return err
			}
			status, err := db.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Printf("Schema version: %d of %d\n", status.CurrentVersion, status.LatestVersion)
			if status.Dirty {
				fmt.Println("Warning: database is marked dirty.")
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample projects and team projects",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		run(func(a *app) error {
			result, err := seed.Apply(a.ws.ProjectRepo(), a.ws.TeamRepo(), force)
			if err != nil {
				return err
			}
			if result.Projects == 0 && result.TeamProjects == 0 {
				fmt.Println("Data already present. Use --force to replace it.")
				return nil
			}
			fmt.Printf("Seeded %d projects and %d team projects.\n", result.Projects, result.TeamProjects)
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().BoolP("force", "f", false, "Replace existing data")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(teamCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
