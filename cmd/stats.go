package cmd

import (
	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// statsCmd fetches the marketplace's headline figures.
func statsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show marketplace headline figures",
		Run: func(cmd *cobra.Command, args []string) {
			api, _, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for stats")
				return
			}

			dashboard, err := api.FetchDashboard(cmd.Context())
			if err != nil {
				cmd.PrintErrln("Error: Unable to fetch marketplace figures. Please check the logs for details.")
				log.Error().Err(err).Msg("Failed to fetch dashboard")
				return
			}

			cmd.Printf("Users:    %d\n", dashboard.Users)
			cmd.Printf("Cars:     %d\n", dashboard.Cars)
			cmd.Printf("Bookings: %d\n", dashboard.Bookings)
			cmd.Printf("Revenue:  %.2f %s\n", dashboard.Revenue, dashboard.Currency)
		},
	}
}
