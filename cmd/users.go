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

// usersCmd lists marketplace accounts page by page.
func usersCmd(cfg *config.Config) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List marketplace accounts",
		Run: func(cmd *cobra.Command, args []string) {
			if err := validation.ValidatePage(page); err != nil {
				cmd.PrintErrln("Error:", err)
				return
			}

			api, _, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for users")
				return
			}

			result, err := api.ListUsers(cmd.Context(), page)
			if err != nil {
				cmd.PrintErrln("Error: Unable to list users. Please check the logs for details.")
				log.Error().Err(err).Msg("Failed to fetch users")
				return
			}
			if len(result.Items) == 0 {
				cmd.Println("No users found on this page.")
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Email", "Role", "Verified"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetRowLine(false)

			for _, user := range result.Items {
				verified := "no"
				if user.Verified {
					verified = "yes"
				}
				table.Append([]string{user.ID, user.Name, user.Email, user.Role, verified})
			}
			table.Render()

			cmd.Printf("Page %d, %d users total.\n", result.Page, result.Total)
			log.Info().Msgf("Successfully listed %d users.", len(result.Items))
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, fmt.Sprintf("Page of results to show (min %d)", validation.MinPage))

	return cmd
}
