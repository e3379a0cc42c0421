package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricker/internal/bricks"
	"github.com/vovakirdan/bricker/internal/config"
)

var (
	flagSamples   int
	flagBehaviors int
	flagExamples  int
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Sample the brick effect generator",
	Long: `Build many effect trees the way a level does and print how often each
root effect appears, how many effects a brick carries and how deeply
doubles nest. Nothing is played; this only inspects the generator.

Examples:
  bricker strategies
  bricker strategies --behaviors 3 --samples 100000 --seed 7
  bricker strategies --examples 10`,
	Args: cobra.NoArgs,
	RunE: runStrategies,
}

func init() {
	strategiesCmd.Flags().IntVar(&flagSamples, "samples", 10000, "Number of trees to build")
	strategiesCmd.Flags().IntVar(&flagBehaviors, "behaviors", 0, "Effects allowed per brick (0 = config value)")
	strategiesCmd.Flags().IntVar(&flagExamples, "examples", 5, "Number of sample trees to print")
	strategiesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// strategyReport summarizes a batch of generated trees.
type strategyReport struct {
	Samples   int
	Behaviors int
	Roots     map[bricks.Kind]int
	Leaves    map[int]int
	Depths    map[int]int
	Examples  []string
}

// sampleStrategies builds samples trees with a seeded factory.
func sampleStrategies(samples, behaviors int, seed int64, examples int) strategyReport {
	env := bricks.NewEnv(nil, nil, nil, nil, bricks.NewRand(seed))
	factory := bricks.NewFactory(env)

	report := strategyReport{
		Samples:   samples,
		Behaviors: behaviors,
		Roots:     make(map[bricks.Kind]int),
		Leaves:    make(map[int]int),
		Depths:    make(map[int]int),
	}
	for i := 0; i < samples; i++ {
		s := factory.Strategy(behaviors)
		report.Roots[s.Kind()]++
		report.Leaves[bricks.Leaves(s)]++
		report.Depths[bricks.Depth(s)]++
		if i < examples {
			report.Examples = append(report.Examples, bricks.Describe(s))
		}
	}
	return report
}

func runStrategies(_ *cobra.Command, _ []string) error {
	if flagSamples <= 0 {
		return fmt.Errorf("--samples must be positive, got %d", flagSamples)
	}

	behaviors := flagBehaviors
	if behaviors <= 0 {
		cfg, err := config.LoadBricker(flagConfig)
		if err != nil {
			return err
		}
		behaviors = cfg.Board.BehaviorsAllowed
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report := sampleStrategies(flagSamples, behaviors, seed, flagExamples)
	fmt.Print(report.String())
	return nil
}

// String renders the report as plain text tables.
func (r strategyReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sampled %d trees, %d behaviors allowed\n\n", r.Samples, r.Behaviors)

	fmt.Fprintf(&b, "  %-14s  %8s  %7s\n", "Root", "Count", "Share")
	fmt.Fprintf(&b, "  %-14s  %8s  %7s\n", "----", "-----", "-----")
	for _, k := range bricks.Kinds {
		n := r.Roots[k]
		fmt.Fprintf(&b, "  %-14s  %8d  %6.2f%%\n", k, n, percent(n, r.Samples))
	}

	writeHistogram(&b, "Effects", r.Leaves, r.Samples)
	writeHistogram(&b, "Depth", r.Depths, r.Samples)

	if len(r.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, e := range r.Examples {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	return b.String()
}

func writeHistogram(b *strings.Builder, title string, counts map[int]int, total int) {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fmt.Fprintf(b, "\n  %-14s  %8s  %7s\n", title, "Count", "Share")
	fmt.Fprintf(b, "  %-14s  %8s  %7s\n", strings.Repeat("-", len(title)), "-----", "-----")
	for _, k := range keys {
		fmt.Fprintf(b, "  %-14d  %8d  %6.2f%%\n", k, counts[k], percent(counts[k], total))
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
