package cmd

import (
	"time"

	"github.com/YahyaBCR/car-rental-BO-sub000/auth"
	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the restored session without making any network call.
func whoamiCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Run: func(cmd *cobra.Command, args []string) {
			_, service, err := buildClient(cfg, cmd)
			if err != nil {
				cmd.PrintErrln("Error: Failed to initialize the API client.")
				log.Error().Err(err).Msg("Failed to build API client for whoami")
				return
			}

			session := service.Current()
			if !session.Authenticated() {
				cmd.Println("Not signed in. Run 'rentadmin login' to sign in.")
				return
			}

			cmd.Printf("User:  %s <%s>\n", session.User.Name, session.User.Email)
			cmd.Printf("Role:  %s\n", session.User.Role)

			if expiry, err := auth.TokenExpiry(session.AccessToken); err == nil {
				if time.Now().After(expiry) {
					cmd.Printf("Token: expired %s (will be renewed on the next request)\n", expiry.Format(time.RFC3339))
				} else {
					cmd.Printf("Token: valid until %s\n", expiry.Format(time.RFC3339))
				}
			}
		},
	}
}
