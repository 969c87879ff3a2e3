package cmd

import (
	"os"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Execute() {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	db.Path = cfg.DBPath

	rootCmd := createRootCmd(cfg)
	initializeDatabase()
	defer closeDatabase()

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Show help for a command")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed.")
		os.Exit(1)
	}
}

func createRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rentadmin",
		Short: "Back-office administration for the car-rental marketplace",
	}

	rootCmd.AddCommand(
		loginCmd(cfg),
		logoutCmd(cfg),
		whoamiCmd(cfg),
		statsCmd(cfg),
		usersCmd(cfg),
		carsCmd(cfg),
		bookingsCmd(cfg),
		reportCmd(cfg),
		versionCmd(),
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})

	return rootCmd
}

func initializeDatabase() {
	if err := db.InitDB(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize database")
		os.Exit(1)
	}
}

func closeDatabase() {
	if err := db.CloseDB(); err != nil {
		log.Error().Err(err).Msg("Failed to close the database.")
		os.Exit(1)
	}
}
