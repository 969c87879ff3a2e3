package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
)

// TestRunLogin_ReportsWhichFieldIsEmpty checks that validation failures name
// the offending field instead of a combined message.
func TestRunLogin_ReportsWhichFieldIsEmpty(t *testing.T) {
	cfg := &config.Config{APIURL: "http://127.0.0.1:0"}

	cmd := loginCmd(cfg)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	runLogin(cmd, cfg, "", "hunter2")
	if !strings.Contains(buf.String(), "email cannot be empty") {
		t.Fatalf("expected email-specific error, got: %s", buf.String())
	}

	cmd = loginCmd(cfg)
	buf = new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	runLogin(cmd, cfg, "admin@example.com", "")
	if !strings.Contains(buf.String(), "password cannot be empty") {
		t.Fatalf("expected password-specific error, got: %s", buf.String())
	}
}
