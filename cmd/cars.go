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

// carsCmd lists vehicle listings page by page.
func carsCmd(cfg *config.Config) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "cars",
		Short: "List vehicle listings",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validation.ValidatePage(page); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			api, _, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for cars")
				return
			}

			result, err := api.ListCars(cmd.Context(), page)
			if err != nil {
				cmd.PrintErrln("Error: Unable to list cars. Please check the logs for details.")
				log.Error().Err(err).Msg("Failed to fetch cars")
				return
			}
			if len(result.Items) == 0 {
				cmd.Println("No cars found on this page.")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Make", "Model", "Year", "City", "Daily Price", "Status"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetRowLine(false)

			for _, car := range result.Items {
				table.Append([]string{
					car.ID,
					car.Make,
					car.Model,
					fmt.Sprintf("%d", car.Year),
					car.City,
					fmt.Sprintf("%.2f", car.DailyPrice),
					car.Status,
				})
			}
			table.Render()

			cmd.Printf("Page %d, %d cars total.\n", result.Page, result.Total)
			log.Info().Msgf("Successfully listed %d cars.", len(result.Items))
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page of results to show")

	return cmd
}
