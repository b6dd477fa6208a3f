package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	configPath string
	noColor    bool
	app        *app
}

// newRootCmd returns the command tree and a cleanup that releases whatever the
// command opened, whether or not it succeeded.
func newRootCmd() (*cobra.Command, func()) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "fundlens",
		Short:         "Venture fund metrics and estimation practice",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts.configPath)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath(), "path to config YAML")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored tier labels")

	root.AddCommand(
		evaluateCmd(opts),
		exportCmd(opts),
		presetsCmd(opts),
		practiceCmd(opts),
		progressCmd(opts),
		daemonCmd(opts),
	)
	cleanup := func() {
		if opts.app != nil {
			opts.app.close()
			opts.app = nil
		}
	}
	return root, cleanup
}

// color reports whether tier labels should be colored on stdout.
func (o *rootOptions) color(cmd *cobra.Command) bool {
	if o.noColor {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
