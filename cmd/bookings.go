package cmd

import (
	"fmt"
	"os"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/pkg/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// bookingsCmd lists reservations, optionally filtered by status.
func bookingsCmd(cfg *config.Config) *cobra.Command {
	var page int
	var status string

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List rental reservations",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validation.ValidatePage(page); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}
			if err := validation.ValidateBookingStatus(status); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			api, _, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for bookings")
				return
			}

			result, err := api.ListBookings(cmd.Context(), page, status)
			if err != nil {
				cmd.PrintErrln("Error: Unable to list bookings. Please check the logs for details.")
				log.Error().Err(err).Msg("Failed to fetch bookings")
				return
			}
			if len(result.Items) == 0 {
				cmd.Println("No bookings found on this page.")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Car", "Renter", "From", "To", "Status", "Total"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetRowLine(false)

			for _, booking := range result.Items {
				table.Append([]string{
					booking.ID,
					booking.CarID,
					booking.Renter,
					booking.From,
					booking.To,
					booking.Status,
					fmt.Sprintf("%.2f %s", booking.Total, booking.Currency),
				})
			}
			table.Render()

			cmd.Printf("Page %d, %d bookings total.\n", result.Page, result.Total)
			log.Info().Msgf("Successfully listed %d bookings.", len(result.Items))
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page of results to show")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by booking status (pending, confirmed, active, completed, cancelled)")

	return cmd
}
