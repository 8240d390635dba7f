package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/codevet/codevet/internal/adapters/outbound/config"
	"github.com/codevet/codevet/internal/adapters/outbound/tui"
)

func newLanguagesCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their toolchain commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configAdapter.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLanguages(cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Directory whose .codevet.yaml overrides apply")

	return cmd
}
