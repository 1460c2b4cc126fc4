package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/yard"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(color.RedString("%v", err))
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		cfgname, inname string
		flags           = defaultConfig()
	)
	cmd := &cobra.Command{
		Use:   "yard [flags] [expression...]",
		Short: "Evaluate infix arithmetic expressions",
		Long: `Yard evaluates arithmetic expressions using + - * / ^, negation, and
parentheses. Tokens are separated by spaces unless --delim or --lex is given:

	yard '( 5 - 4 ) / 3 ^ - 2 + 1 * 10'
	yard --lex '(5-4)/3^-2+1*10'

With no arguments, expressions are read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if cfgname != "" {
				c, err := loadConfig(cfgname)
				if err != nil {
					return err
				}
				cfg = c
			}
			f := cmd.Flags()
			if f.Changed("delim") {
				cfg.Delimiter = flags.Delimiter
			}
			if f.Changed("lex") {
				cfg.Lex = flags.Lex
			}
			if f.Changed("prec") {
				cfg.Prec = flags.Prec
			}
			if f.Changed("fmt") {
				cfg.Format = flags.Format
			}
			if f.Changed("rpn") {
				cfg.RPN = flags.RPN
			}
			if f.Changed("lines") {
				cfg.Lines = flags.Lines
			}

			in, err := infile(inname, len(args) == 0, stdin)
			if err != nil {
				return err
			}
			if in != nil {
				defer in.Close()
			}
			srcs, err := gather(args, in, cfg.Lines)
			if err != nil {
				return err
			}
			calc, err := yard.New(cfg.Delimiter, cfg.options()...)
			if err != nil {
				return err
			}
			r := runner{cfg: cfg, calc: calc, out: stdout, errs: stderr}
			if n := r.run(srcs); n > 0 {
				return fmt.Errorf("%d of %d expressions failed", n, len(srcs))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgname, "config", "", "YAML config file providing defaults for these flags")
	f.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	f.StringVar(&flags.Delimiter, "delim", flags.Delimiter, "regular expression separating tokens")
	f.BoolVar(&flags.Lex, "lex", false, "scan expressions rune by rune instead of splitting on the delimiter")
	f.UintVarP(&flags.Prec, "prec", "p", 0, "precision of calculations in bits (0 for float64)")
	f.StringVar(&flags.Format, "fmt", flags.Format, "result formatting string")
	f.BoolVar(&flags.RPN, "rpn", false, "print expressions in postfix form")
	f.BoolVarP(&flags.Lines, "lines", "n", false, "parse separate input lines as separate expressions")
	return cmd
}

// infile opens the input named by the --in flag, or stdin if std is set and
// no file is named. The result is nil if there is no input to read.
func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}

// gather collects expressions from arguments and input. Blank expressions are
// skipped.
func gather(args []string, in io.Reader, lines bool) ([]string, error) {
	var srcs []string
	if in != nil {
		if lines {
			s := bufio.NewScanner(in)
			for s.Scan() {
				srcs = append(srcs, s.Text())
			}
			if err := s.Err(); err != nil {
				return nil, err
			}
		} else {
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, err
			}
			srcs = append(srcs, string(b))
		}
	}
	srcs = append(srcs, args...)
	r := srcs[:0]
	for _, src := range srcs {
		src = strings.TrimSpace(src)
		if src != "" {
			r = append(r, src)
		}
	}
	return r, nil
}

// runner evaluates expressions and prints their results.
type runner struct {
	cfg  config
	calc *yard.Calculator
	out  io.Writer
	errs io.Writer
}

// run evaluates each expression in order, printing results to out and errors
// to errs. It returns the number of expressions that failed.
func (r *runner) run(srcs []string) int {
	verb := r.cfg.Format + "\n"
	bad := color.New(color.FgRed)
	var ctx *yard.Context
	if r.cfg.Prec > 0 {
		ctx = yard.NewContext(yard.Prec(r.cfg.Prec))
	}
	failed := 0
	for _, src := range srcs {
		p, err := r.calc.Compile(src)
		if err != nil {
			bad.Fprintf(r.errs, "%s: %v\n", src, err)
			failed++
			continue
		}
		if r.cfg.RPN {
			fmt.Fprintf(r.out, "%v : ", p)
		}
		if ctx == nil {
			fmt.Fprintf(r.out, verb, p.Eval())
			continue
		}
		v := ctx.Eval(p)
		if v == nil {
			if r.cfg.RPN {
				fmt.Fprintln(r.out)
			}
			bad.Fprintf(r.errs, "%s: %v\n", src, ctx.Err())
			failed++
			continue
		}
		fmt.Fprintf(r.out, verb, v)
	}
	return failed
}
