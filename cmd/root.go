package cmd

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netsim-lab/brite-as/topo"
)

var (
	// CLI flags for the AS model
	configPath  string  // YAML model file
	seed        int64   // Master seed for placement and bandwidth streams
	logLevel    string  // Log verbosity level
	numNodes    int     // Requested node count
	scale1      int     // Side of the placement plane
	scale2      int     // Side of a heavy-tailed sub-square
	placement   string  // Placement strategy
	maxAttempts int     // Candidate draws per node before giving up
	bwDist      string  // Bandwidth distribution
	bwMin       float64 // Minimum (constant, uniform, exponential mean) bandwidth
	bwMax       float64 // Maximum (uniform) or scale (heavy-tailed) bandwidth

	outputPath  string // Where to write the topology YAML
	dumpMetrics bool   // Print run metrics to stderr
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "brite-as",
	Short: "AS-level topology model: node placement and link bandwidth",
}

// generateCmd places nodes, attaches configured edges and assigns bandwidth
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one AS-level topology",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := loadConfig(cmd)
		if err != nil {
			logrus.Fatalf("unable to load model config: %v", err)
		}

		out, closeOut, err := openOutput(outputPath)
		if err != nil {
			logrus.Fatalf("unable to open output: %v", err)
		}
		defer closeOut()

		reg := prometheus.NewRegistry()
		if err := runGenerate(cfg, out, reg); err != nil {
			closeOut()
			logrus.Fatalf("generation failed: %v", err)
		}
		if dumpMetrics {
			if err := printMetrics(os.Stderr, reg); err != nil {
				logrus.Warnf("unable to print metrics: %v", err)
			}
		}
		logrus.Info("Generation complete.")
	},
}

// loadConfig reads --config (or the defaults) and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*topo.ModelConfig, error) {
	cfg := topo.DefaultModelConfig()
	if configPath != "" {
		loaded, err := topo.LoadModelConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("n") {
		cfg.N = numNodes
	}
	if flags.Changed("scale1") {
		cfg.Scale1 = scale1
	}
	if flags.Changed("scale2") {
		cfg.Scale2 = scale2
	}
	if flags.Changed("placement") {
		cfg.Placement = placement
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}
	if flags.Changed("bw-dist") {
		cfg.Bandwidth.Distribution = bwDist
	}
	if flags.Changed("bw-min") {
		cfg.Bandwidth.Min = bwMin
	}
	if flags.Changed("bw-max") {
		cfg.Bandwidth.Max = bwMax
	}
	return &cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := topo.DefaultModelConfig()

	generateCmd.Flags().StringVar(&configPath, "config", "", "YAML model file; flags set explicitly override its values")
	generateCmd.Flags().Int64Var(&seed, "seed", def.Seed, "Master seed for placement and bandwidth streams")
	generateCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Placement
	generateCmd.Flags().IntVar(&numNodes, "n", def.N, "Number of AS nodes to place")
	generateCmd.Flags().IntVar(&scale1, "scale1", def.Scale1, "Side of the square placement plane")
	generateCmd.Flags().IntVar(&scale2, "scale2", def.Scale2, "Side of a sub-square for heavy-tailed placement")
	generateCmd.Flags().StringVar(&placement, "placement", def.Placement, "Placement strategy (random, heavy-tailed)")
	generateCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Candidate draws per node before failing (0 = default budget)")

	// Bandwidth
	generateCmd.Flags().StringVar(&bwDist, "bw-dist", def.Bandwidth.Distribution, "Bandwidth distribution (constant, uniform, exponential, heavy-tailed)")
	generateCmd.Flags().Float64Var(&bwMin, "bw-min", def.Bandwidth.Min, "Minimum bandwidth; mean for exponential")
	generateCmd.Flags().Float64Var(&bwMax, "bw-max", def.Bandwidth.Max, "Maximum bandwidth; scale for heavy-tailed")

	// Output
	generateCmd.Flags().StringVar(&outputPath, "output", "-", "Topology YAML destination ('-' for stdout)")
	generateCmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print run metrics to stderr")

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
