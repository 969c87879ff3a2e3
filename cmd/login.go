package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/pkg/validation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd creates a new cobra.Command for signing in to the back office.
func loginCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in to the back office",
		Long:  "Sign in to the back office using your administrator email and password",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Please enter your administrator credentials.")
			email := promptForInput("Email: ")
			password := promptForPassword("Password: ")
			runLogin(cmd, cfg, email, password)
		},
	}
}

// runLogin validates the entered credentials and performs the sign-in.
func runLogin(cmd *cobra.Command, cfg *config.Config, email, password string) {
	if err := validation.ValidateNonEmptyString("email", email); err != nil {
		cmd.PrintErrln("Error:", err)
		return
	}
	if err := validation.ValidateNonEmptyString("password", password); err != nil {
		cmd.PrintErrln("Error:", err)
		return
	}

	api, service, err := buildClient(cfg, cmd)
	if err != nil {
		cmd.PrintErrln("Error: Failed to initialize the API client.")
		log.Error().Err(err).Msg("Failed to build API client for login")
		return
	}

	session, err := api.Login(cmd.Context(), email, password)
	if err != nil {
		cmd.PrintErrln("Error: Failed to sign in. Please check your credentials.")
		log.Error().Err(err).Msg("Login request failed")
		return
	}
	if err := service.Login(cmd.Context(), session.User, session.AccessToken, session.RefreshToken); err != nil {
		cmd.PrintErrln("Error: Failed to store the session.")
		log.Error().Err(err).Msg("Failed to persist session after login")
		return
	}

	cmd.Printf("Signed in as %s (%s).\n", session.User.Name, session.User.Email)
}

// promptForInput prompts the user for input and returns the trimmed string.
func promptForInput(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("Error: Failed to read input.")
		os.Exit(1)
	}
	return strings.TrimSpace(input)
}

// promptForPassword prompts the user for a password securely and returns the trimmed string.
func promptForPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Println("Error: Failed to read password.")
		os.Exit(1)
	}
	fmt.Println()
	return strings.TrimSpace(string(password))
}
