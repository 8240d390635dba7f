package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/codevet/codevet/internal/adapters/outbound/config"
	"github.com/codevet/codevet/internal/adapters/outbound/gitinfo"
	historyAdapter "github.com/codevet/codevet/internal/adapters/outbound/history"
	"github.com/codevet/codevet/internal/adapters/outbound/toolchain"
	"github.com/codevet/codevet/internal/adapters/outbound/tui"
	"github.com/codevet/codevet/internal/application"
	"github.com/codevet/codevet/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		languageFlag string
		jsonOutput   bool
		checkOnly    bool
		noHistory    bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a source file compiles and runs cleanly",
		Long:  "Run the file through its language's toolchain: a syntax/compile check, then execution. The toolchain's output is reported verbatim.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, ok := domain.ParseLanguage(languageFlag)
			if !ok {
				return fmt.Errorf("unknown language %q", languageFlag)
			}

			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			var hist domain.ReportHistory
			if !noHistory {
				hist = historyAdapter.New()
			}

			svc := application.NewValidateService(
				toolchain.New(),
				configAdapter.New(),
				application.NewFlightGuard(),
				hist,
				gitinfo.New(),
			)

			results, err := svc.ValidateAsync(cmd.Context(), domain.Request{
				FilePath:  absPath,
				Language:  lang,
				CheckOnly: checkOnly,
			})
			if err != nil {
				if errors.Is(err, domain.ErrValidationInProgress) {
					return fmt.Errorf("validation already in progress")
				}
				return err
			}
			rep := <-results

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(rep); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(rep))
			}

			// Exit code based on status
			switch rep.Status {
			case domain.StatusFail:
				return fmt.Errorf("validation failed")
			case domain.StatusError:
				return fmt.Errorf("validation error")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language (java, python, php, javascript; default auto-detect)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "Stop after the syntax/compile check without executing")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history file")

	return cmd
}
