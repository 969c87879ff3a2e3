package main

import (
	"os"
	"os/signal"

	"github.com/YahyaBCR/car-rental-BO-sub000/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the entry point of the application. It sets up logging based on the
// DEBUG_RENTADMIN environment variable, starts a goroutine to listen for
// interrupt signals, and executes the root command.
func main() {
	configureLogLevelFromEnv()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	cmd.Execute()
}

// configureLogLevelFromEnv enables debug logging when DEBUG_RENTADMIN is set
// to anything but "false"/"0"; otherwise logging is disabled entirely, since
// this is an interactive CLI.
func configureLogLevelFromEnv() {
	switch os.Getenv("DEBUG_RENTADMIN") {
	case "", "false", "0":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// listenForInterrupt exits the program when an interrupt signal is received.
func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("Interrupt signal received. Exiting...")
}
