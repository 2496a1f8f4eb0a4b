// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/expr"
	"github.com/dalzilio/robdd/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var logger = commonlog.GetLogger("robdd.cmd")

// errStop is used to end the enumeration of cubes after the first one.
var errStop = errors.New("stop")

type options struct {
	config      string
	verbose     int
	dot         string
	stats       bool
	metricsFile string
	witness     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "robdd [flags] <file_expr1> <file_expr2>",
		Short: "Check the equivalence of two Boolean expressions",
		Long: `robdd reads one Boolean expression on the first line of each file and
prints 1 if they denote the same function, and 0 otherwise (a malformed
expression is never equivalent to anything).

Variables are x, X or a digit followed by digits (x1, X12, 42). Operators are
~ (not), ^ (and) and V or v (or). And and Or have the same precedence and are
applied from left to right.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected 2 files, got %d\nusage: %s", len(args), cmd.UseLine())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verbose") {
				opts.verbose = -1
			}
			return run(cmd.Context(), opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "YAML configuration file")
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (can be repeated)")
	flags.StringVar(&opts.dot, "dot", "", "write the diagrams of both expressions in DOT format to `file`")
	flags.BoolVar(&opts.stats, "stats", false, "print statistics about the node table on stderr")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write BDD metrics in the Prometheus textfile format to `file`")
	flags.BoolVar(&opts.witness, "witness", false, "print on stderr an assignment on which the expressions differ")
	return cmd
}

func run(ctx context.Context, opts *options, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.verbose >= 0 {
		cfg.Verbosity = opts.verbose
	}
	commonlog.Configure(cfg.Verbosity, cfg.LogPath())

	lines, err := readExpressions(ctx, args)
	if err != nil {
		return err
	}

	b, err := cfg.NewBDD()
	if err != nil {
		return err
	}
	var roots []robdd.Node
	nodes := make([]robdd.Node, len(lines))
	valid := true
	for k, line := range lines {
		n, err := expr.Compile(b, line)
		switch {
		case errors.Is(err, expr.ErrInvalid):
			return fmt.Errorf("%s: %w", args[k], err)
		case err != nil:
			logger.Infof("%s: %s", args[k], err)
			valid = false
		default:
			roots = append(roots, n)
		}
		nodes[k] = n
	}
	equivalent := valid && nodes[0] == nodes[1]
	if equivalent {
		fmt.Fprintln(stdout, "1")
	} else {
		fmt.Fprintln(stdout, "0")
	}

	if opts.witness && valid && !equivalent {
		if err := printWitness(stderr, b, nodes[0], nodes[1]); err != nil {
			return err
		}
	}
	if opts.dot != "" {
		if err := writeDot(opts.dot, b, roots); err != nil {
			return err
		}
	}
	if opts.stats {
		fmt.Fprintln(stderr, b.Stats())
	}
	if opts.metricsFile != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(robdd.NewCollector(b, nil))
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("cannot write metrics: %w", err)
		}
	}
	return nil
}

// readExpressions returns the first line of every file in paths. Files are
// read concurrently.
func readExpressions(ctx context.Context, paths []string) ([]string, error) {
	lines := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for k, path := range paths {
		k, path := k, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := readFirstLine(path)
			lines[k] = line
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// printWitness prints one assignment of the variables on which n1 and n2
// differ. Variables that are not listed can take any value.
func printWitness(w io.Writer, b *robdd.BDD, n1, n2 robdd.Node) error {
	vars := b.Vars()
	diff := b.Xor(n1, n2)
	var sb strings.Builder
	err := b.Allsat(diff, func(cube []int) error {
		for k, v := range cube {
			if v >= 0 {
				fmt.Fprintf(&sb, " %s=%d", vars[k], v)
			}
		}
		return errStop
	})
	if !errors.Is(err, errStop) {
		if err == nil {
			err = fmt.Errorf("no witness found")
		}
		return err
	}
	if sb.Len() == 0 {
		sb.WriteString(" any assignment")
	}
	fmt.Fprintf(w, "witness:%s\n", sb.String())
	return nil
}

func writeDot(path string, b *robdd.BDD, roots []robdd.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.PrintDot(f, roots...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
