package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumora-app/intake"
	"github.com/lumora-app/intake/internal/logging"
	"github.com/lumora-app/intake/internal/presentation/tui"
	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/adapters/profileapi"
	"github.com/lumora-app/intake/pkg/ports"
	"github.com/lumora-app/intake/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive onboarding flow",
	Long:  `Starts the questionnaire in interactive terminal mode and submits the profile when complete.`,
	Run: func(cmd *cobra.Command, args []string) {
		levelName, _ := cmd.Flags().GetString("log-level")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		profileURL, _ := cmd.Flags().GetString("profile-url")
		authToken, _ := cmd.Flags().GetString("auth-token")
		plain, _ := cmd.Flags().GetBool("plain")

		logger := logging.New(logging.ParseLevel(levelName))

		var svc ports.ProfileService
		var recorder *memory.ProfileRecorder
		if dryRun || profileURL == "" {
			recorder = memory.NewProfileRecorder()
			svc = recorder
		} else {
			svc = profileapi.New(profileURL, profileapi.WithAuthToken(authToken))
		}

		flow, err := intake.New(
			intake.WithAutoAdvanceDelay(0),
			intake.WithProfileService(svc),
			intake.WithLogger(logger),
		)
		if err != nil {
			fmt.Printf("Error initializing flow: %v\n", err)
			os.Exit(1)
		}

		opts := []runner.Option{
			runner.WithIO(os.Stdin, os.Stdout),
			runner.WithLogger(logger),
		}
		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		if isTTY && !plain {
			tui.PrintBanner()
			opts = append(opts,
				runner.WithRenderer(tui.NewRenderer()),
				runner.WithOptionFormatter(tui.FormatOption),
				runner.WithProgressFormatter(tui.FormatProgress),
			)
		}

		r := runner.New(flow, opts...)
		if err := r.Run(cmd.Context()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		// A dry run prints what would have been sent.
		if recorder != nil && len(recorder.Calls()) > 0 {
			data, err := json.MarshalIndent(recorder.Calls()[0], "", "  ")
			if err == nil {
				fmt.Println("\nDry run payload:")
				fmt.Println(string(data))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("dry-run", false, "Record the submission locally instead of calling the backend")
	runCmd.Flags().String("profile-url", "", "Base URL of the profile backend")
	runCmd.Flags().String("auth-token", "", "Bearer token for the profile backend")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering and the banner")

	// Running the bare binary starts the flow.
	rootCmd.Run = runCmd.Run
}
