package cmd

import (
	"path/filepath"
	"testing"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/db"
)

// TestCreateRootCmd checks that createRootCmd returns a root command
// with the expected use string, subcommands, and a replaced help command.
func TestCreateRootCmd(t *testing.T) {
	rootCmd := createRootCmd(&config.Config{})
	if rootCmd.Use != "rentadmin" {
		t.Errorf("expected root command use to be 'rentadmin', got: %s", rootCmd.Use)
	}

	subCommands := rootCmd.Commands()
	if len(subCommands) == 0 {
		t.Error("expected root command to have subcommands, got none")
	}

	expected := map[string]bool{
		"login": false, "logout": false, "whoami": false, "stats": false,
		"users": false, "cars": false, "bookings": false, "report": false,
		"version": false,
	}
	for _, cmd := range subCommands {
		if cmd.Use == "help" {
			t.Error("expected help command to be replaced, but found a subcommand with use 'help'")
		}
		if _, ok := expected[cmd.Use]; ok {
			expected[cmd.Use] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

// TestInitializeAndCloseDatabase sets a temporary DB path and calls
// initializeDatabase and closeDatabase. If no os.Exit occurs, the test passes.
func TestInitializeAndCloseDatabase(t *testing.T) {
	db.Path = filepath.Join(t.TempDir(), "rentadmin.db")
	initializeDatabase()
	closeDatabase()
}
