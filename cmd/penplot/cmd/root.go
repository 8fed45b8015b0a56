package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"penplot/internal/config"
	"penplot/internal/plotter"
)

type rootOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the penplot command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "penplot",
		Short: "Decode pen-plotter command scripts",
		Long: `penplot reads scripts written in the pen-plotter command language,
one command per line:

  U          pen up
  D          pen down
  P <n>      select pen n
  N|S|E|W <d> move d units (negative d moves backwards)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newParseCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the penplot command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) config() (*config.Config, error) {
	if o.cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(o.cfgFile)
}

func (o *rootOptions) logger(w io.Writer) *log.Logger {
	if !o.verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "penplot: ", 0)
}

// readScript parses the named file, or stdin when name is empty or "-".
func readScript(cmd *cobra.Command, name string, opts plotter.ReadOptions) (*plotter.Script, error) {
	if name == "" || name == "-" {
		return plotter.ReadScript(cmd.InOrStdin(), opts)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return plotter.ReadScript(f, opts)
}

func readOptions(cfg *config.Config) plotter.ReadOptions {
	opts := plotter.ReadOptions{Policy: plotter.StopAtFirst, SkipBlank: cfg.Parse.SkipBlank}
	if cfg.Parse.Policy == config.PolicyCollect {
		opts.Policy = plotter.CollectAll
	}
	return opts
}
