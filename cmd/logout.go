package cmd

import (
	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// logoutCmd signs the administrator out, revoking the refresh token on a best
// effort basis and clearing the stored session.
func logoutCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the back office",
		Run: func(cmd *cobra.Command, args []string) {
			_, service, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for logout")
				return
			}

			if !service.Current().Authenticated() {
				cmd.Println("Not signed in.")
				return
			}
			if err := service.Logout(cmd.Context()); err != nil {
				cmd.PrintErrln("Error: Failed to clear the stored session.")
				log.Error().Err(err).Msg("Logout failed")
				return
			}
			cmd.Println("Signed out.")
		},
	}
}
