package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YahyaBCR/car-rental-BO-sub000/config"
	"github.com/YahyaBCR/car-rental-BO-sub000/pkg/clierr"
	"github.com/YahyaBCR/car-rental-BO-sub000/pkg/validation"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// reportCmd downloads the financial report for a date range as CSV.
func reportCmd(cfg *config.Config) *cobra.Command {
	var from, to, output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download the financial report for a date range",
		Run: func(cmd *cobra.Command, args []string) {
			if err := downloadReport(cmd, cfg, from, to, output); err != nil {
				cmd.PrintErrln("Error:", err)
				log.Error().Err(err).Msg("Report download failed")
			}
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "output", "o", "financial-report.csv", "Destination file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func downloadReport(cmd *cobra.Command, cfg *config.Config, from, to, output string) error {
	if err := validation.ValidateDateRange(from, to); err != nil {
		return clierr.New(clierr.Validation, err.Error(), err)
	}

	api, _, err := buildClient(cfg, cmd)
	if err != nil {
		return clierr.New(clierr.Internal, "failed to initialize the API client", err)
	}

	body, size, err := api.OpenReport(cmd.Context(), from, to)
	if err != nil {
		return clierr.New(clierr.Network, "unable to download the report", err)
	}
	defer body.Close()

	file, err := os.Create(output)
	if err != nil {
		return clierr.New(clierr.Internal, fmt.Sprintf("failed to create %s", output), err)
	}
	defer file.Close()

	bar := progressbar.NewOptions64(
		size, // -1 shows a spinner when the backend sends no length
		progressbar.OptionSetDescription("Downloading report"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetPredictTime(false),
	)

	written, err := io.Copy(io.MultiWriter(file, bar), body)
	if err != nil {
		return clierr.New(clierr.Network, "download interrupted", err)
	}

	cmd.Printf("Saved %d bytes to %s.\n", written, output)
	return nil
}
