package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"penplot/internal/plotter"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Report every invalid line of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			ropts := readOptions(cfg)
			ropts.Policy = plotter.CollectAll

			script, err := readScript(cmd, name, ropts)
			if err != nil {
				return err
			}
			logger := opts.logger(cmd.ErrOrStderr())
			for _, e := range script.Errors {
				logger.Print(e)
			}
			if !script.OK() {
				return errInvalidScript
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d commands\n", len(script.Commands))
			return nil
		},
	}
}
