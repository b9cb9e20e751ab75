package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/zephyrtronium/quantity"
)

type evalOptions struct {
	in    string
	verb  string
	group bool
	prec  int
	lines bool
}

func newEvalCommand(opts *options) *cobra.Command {
	eo := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as an expression and print the result.

With no arguments, expressions are read from --in, or from stdin if --in is
not given or is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, eo, cmd, args)
		},
	}
	cmd.Flags().StringVar(&eo.in, "in", "", "input file (default stdin if no args given)")
	cmd.Flags().StringVar(&eo.verb, "fmt", "%v", "result formatting string")
	cmd.Flags().BoolVarP(&eo.group, "group", "g", false, "group digits of results")
	cmd.Flags().IntVarP(&eo.prec, "precision", "p", 6, "maximum fraction digits of grouped results")
	cmd.Flags().BoolVarP(&eo.lines, "lines", "n", false, "evaluate separate input lines as separate expressions")
	return cmd
}

func runEval(opts *options, eo *evalOptions, cmd *cobra.Command, args []string) error {
	if eo.prec < 0 {
		return fmt.Errorf("precision (%d) must not be negative", eo.prec)
	}
	exprs := args
	if len(args) == 0 || eo.in != "" {
		in, err := readInput(cmd, eo.in, eo.lines)
		if err != nil {
			return err
		}
		exprs = append(in, args...)
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(opts.tag)
	failed := 0
	for _, src := range exprs {
		q, err := opts.env.eval(src)
		if err != nil {
			opts.log.Debug().Str("expr", src).Err(err).Msg("failed")
			fmt.Fprintln(out, err)
			failed++
			continue
		}
		if eo.group {
			fmt.Fprintln(out, grouped(p, q, eo.prec))
			continue
		}
		fmt.Fprintf(out, eo.verb+"\n", q)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// grouped formats q with the digit grouping of p's language.
func grouped(p *message.Printer, q quantity.Quantity, prec int) string {
	s := p.Sprint(number.Decimal(q.Value(), number.MaxFractionDigits(prec)))
	if u := q.UnitString(); u != "" {
		s += " " + u
	}
	return s
}

// readInput reads expressions from the named file, or stdin if the name is
// empty or "-". Without lines, the entire input is one expression. With lines,
// each non-blank line is one.
func readInput(cmd *cobra.Command, name string, lines bool) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	return exprs, sc.Err()
}
