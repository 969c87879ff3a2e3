package cmd

import (
	"github.com/YahyaBCR/car-rental-BO-sub000/auth"
	"github.com/YahyaBCR/car-rental-BO-sub000/client"
	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/db"
	"github.com/spf13/cobra"
)

// buildClient wires the credential store and the API client together for one
// command invocation and restores any persisted session.
func buildClient(cfg *config.Config, cmd *cobra.Command) (*client.Client, *auth.Service, error) {
	timeout, err := cfg.HTTPTimeout()
	if err != nil {
		return nil, nil, err
	}

	service := auth.NewService(db.NewCredentialRepository(db.Db))
	api := client.New(cfg.APIURL, service, &consoleNotifier{cmd: cmd}, timeout)
	// The client revokes refresh tokens on logout; it needs the service and
	// the service needs it, so the revoker is attached after construction.
	service.SetRevoker(api)

	if _, err := service.Restore(cmd.Context()); err != nil {
		return nil, nil, err
	}
	return api, service, nil
}

// consoleNotifier prints the pipeline's once-per-event messages on the
// command's error stream.
type consoleNotifier struct{ cmd *cobra.Command }

func (n *consoleNotifier) SessionExpired() {
	n.cmd.PrintErrln("Your session has expired. Please run 'rentadmin login' to sign in again.")
}

func (n *consoleNotifier) PermissionDenied() {
	n.cmd.PrintErrln("Error: You do not have permission to perform this action.")
}

func (n *consoleNotifier) ServerError() {
	n.cmd.PrintErrln("Error: The server failed to process the request. Please try again later.")
}
