package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/zephyrtronium/quantity/si"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds flags shared by all commands and the state built from them.
type options struct {
	verbose bool
	defs    string
	given   []string
	lang    string

	log zerolog.Logger
	env *env
	tag language.Tag
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "quantity",
		Short: "Calculate with physical quantities",
		Long: `Evaluate expressions over physical quantities with dimensional checking.

Unit symbols are written inline, as in "9.8 meter/second^2". A {name} in an
expression is replaced by a definition given with --given or --defs, or else
by the SI unit or constant of that name; see the units command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log definitions and evaluations")
	cmd.PersistentFlags().StringVar(&opts.defs, "defs", "", "YAML file of definitions")
	cmd.PersistentFlags().StringArrayVar(&opts.given, "given", nil, "name=expr definition (any number of times)")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "language for grouped output")

	cmd.AddCommand(newEvalCommand(opts))
	cmd.AddCommand(newUnitsCommand(opts))
	return cmd
}

// setup creates the logger and evaluates all definitions. Definitions from
// the file come before those given on the command line.
func (o *options) setup(cmd *cobra.Command) error {
	lvl := zerolog.InfoLevel
	if o.verbose {
		lvl = zerolog.DebugLevel
	}
	o.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()

	tag, err := language.Parse(o.lang)
	if err != nil {
		return fmt.Errorf("bad language %q: %w", o.lang, err)
	}
	o.tag = tag

	o.env = newEnv(o.log)
	if o.defs != "" {
		defs, err := loadDefsFile(o.defs)
		if err != nil {
			return err
		}
		o.log.Debug().Str("file", o.defs).Int("count", len(defs)).Msg("loaded definitions")
		for _, d := range defs {
			if err := o.env.define(d.Name, d.Expr); err != nil {
				return fmt.Errorf("%s: %w", o.defs, err)
			}
		}
	}
	for _, s := range o.given {
		d, err := parseGiven(s)
		if err != nil {
			return err
		}
		if err := o.env.define(d.Name, d.Expr); err != nil {
			return err
		}
	}
	return nil
}

func newUnitsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List SI units, constants, and definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range si.Names() {
				q, _ := si.Lookup(name)
				fmt.Fprintf(out, "%s = %v\n", name, q)
			}
			for _, name := range opts.env.names {
				fmt.Fprintf(out, "%s = %v\n", name, opts.env.defs[name])
			}
			return nil
		},
	}
}
