// Command fuzzy-demo builds two fuzzy relations from four sample sets and
// prints them together with the results of the relation operators.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/fuzzy/fuzzyset"
	"github.com/rdeusser/fuzzy/relation"
	"github.com/rdeusser/fuzzy/render"
	"github.com/rdeusser/fuzzy/zappretty"
)

type config struct {
	op        Operation
	broker    relation.BrokerRule
	precision int
	color     bool
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "fuzzy-demo",
		Short: "Print fuzzy relations and the results of their operators",
		Long: `fuzzy-demo builds the relations ARB = A×B and CRD = C×D from four sample
fuzzy sets and prints them as tables, followed by the complement,
intersection, union and max-min composition results.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var level zapcore.Level
			if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.logLevel, err)
			}

			logger := zappretty.NewLogger("fuzzy-demo", cmd.ErrOrStderr(), level)
			defer func() {
				_ = logger.Sync()
			}()

			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.Var(&cfg.op, "op", fmt.Sprintf("operator results to print (%s)", names(OperationList())))
	flags.Var(&cfg.broker, "broker", fmt.Sprintf("composition broker rule (%s)", names(relation.BrokerRuleList())))
	flags.IntVar(&cfg.precision, "precision", 2, "decimal places per degree")
	flags.BoolVar(&cfg.color, "color", !color.NoColor, "color table labels")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func names[T fmt.Stringer](values []T) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return strings.Join(out, "|")
}

// sample pairs each symbol with the degree at the same position.
func sample(symbols string, degrees ...float64) *fuzzyset.Set[rune] {
	s := fuzzyset.NewSized[rune](len(degrees))
	for i, r := range []rune(symbols) {
		s.Add(r, degrees[i])
	}
	return s
}

func run(w io.Writer, cfg *config, logger *zap.Logger) error {
	a := sample("abc", 0.2, 0.7, 0.4)
	b := sample("de", 0.5, 0.6)
	c := sample("ace", 0.6, 0.1, 0.1)
	d := sample("def", 0.9, 0.2, 0.2)

	logger.Debug("sets",
		zap.Stringer("A", a),
		zap.Stringer("B", b),
		zap.Stringer("C", c),
		zap.Stringer("D", d),
	)

	arb := relation.New(a, b)
	crd := relation.New(c, d)

	opts := []relation.Option{
		relation.WithBroker(cfg.broker),
		relation.WithLogger(logger),
	}

	// OperationAll marks the inputs, which are always printed.
	tables := []struct {
		title string
		op    Operation
		build func() *relation.Relation[rune]
	}{
		{"ARB", OperationAll, func() *relation.Relation[rune] { return arb }},
		{"CRD", OperationAll, func() *relation.Relation[rune] { return crd }},
		{"complement(ARB)", OperationComplement, func() *relation.Relation[rune] {
			return relation.Complement(arb, opts...)
		}},
		{"complement(CRD)", OperationComplement, func() *relation.Relation[rune] {
			return relation.Complement(crd, opts...)
		}},
		{"ARB ∩ CRD", OperationIntersection, func() *relation.Relation[rune] {
			return relation.Intersection(arb, crd, opts...)
		}},
		{"ARB ∪ CRD", OperationUnion, func() *relation.Relation[rune] {
			return relation.Union(arb, crd, opts...)
		}},
		{fmt.Sprintf("ARB ∘ CRD (%s broker)", cfg.broker), OperationComposition, func() *relation.Relation[rune] {
			return relation.Composition(arb, crd, opts...)
		}},
	}

	for _, t := range tables {
		if t.op != OperationAll && !cfg.op.includes(t.op) {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", t.title); err != nil {
			return err
		}

		if err := render.Relation(w, t.build(), render.WithPrecision(cfg.precision), render.WithColor(cfg.color)); err != nil {
			return fmt.Errorf("rendering %s: %w", t.title, err)
		}
	}

	logger.Info("done", zap.Stringer("op", cfg.op), zap.Stringer("broker", cfg.broker))

	return nil
}
