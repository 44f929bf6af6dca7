package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/figgy/internal/infra/logger"
)

func fontsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fonts",
		Short: "Inspect available fonts",
	}

	c.AddCommand(fontsListCmd())
	return c
}

func fontsListCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in fonts and fonts found in ./fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), workingDir(), logger.L())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range app.fonts.ListFonts() {
				marker := " "
				if name == app.defaultFont {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}

			if verbose {
				errOut := cmd.ErrOrStderr()
				for _, f := range app.failures {
					rel, rerr := filepath.Rel(app.root, f.Path)
					if rerr != nil {
						rel = f.Path
					}
					fmt.Fprintf(errOut, "skipped %s: %v\n", rel, f.Err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also report font files that could not be loaded")
	return cmd
}
