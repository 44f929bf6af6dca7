package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/figgy/internal/infra/clipboard"
	"github.com/aalvaropc/figgy/internal/infra/logger"
	"github.com/aalvaropc/figgy/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "figgy",
		Short:        "figgy: type text, get FIGlet banners",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := workingDir()

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			warnIfNoLog(cmd.ErrOrStderr())

			app, err := loadApp(cmd.Context(), root, logger.L())
			if err != nil {
				logger.L().Error("startup.failed", "err", err)
				return err
			}

			return tui.Run(tui.Deps{
				Render:           app.render,
				Save:             app.save,
				Clipboard:        clipboard.NewSystem(),
				Fonts:            app.fonts.ListFonts(),
				DefaultFont:      app.defaultFont,
				StatusClearAfter: app.cfg.UI.StatusClearAfter,
				Logger:           logger.L(),
				Debug:            debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .figgy/logs/figgy.log")

	cmd.AddCommand(fontsCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

// warnIfNoLog tells the user when log records are being discarded.
func warnIfNoLog(w io.Writer) {
	if err := logger.IsReady(); err != nil {
		_, _ = fmt.Fprintf(w, "figgy: logging disabled (%v)\n", err)
	}
}
