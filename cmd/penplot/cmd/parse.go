package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"penplot/internal/report"
)

var errInvalidScript = errors.New("script contains invalid commands")

func newParseCmd(opts *rootOptions) *cobra.Command {
	var format, policy string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Decode a script and print its commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Output.Format = format
			}
			if policy != "" {
				cfg.Parse.Policy = policy
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			script, err := readScript(cmd, name, readOptions(cfg))
			if err != nil {
				return err
			}

			logger := opts.logger(cmd.ErrOrStderr())
			logger.Printf("decoded %d commands, %d invalid lines", len(script.Commands), len(script.Errors))
			for _, e := range script.Errors {
				logger.Print(e)
			}

			if err := report.Write(cmd.OutOrStdout(), cfg.Output.Format, script); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if !script.OK() {
				return errInvalidScript
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml")
	cmd.Flags().StringVar(&policy, "policy", "", "on invalid lines: stop or collect")
	return cmd
}
