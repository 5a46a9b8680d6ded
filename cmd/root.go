package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/branch-sim/branch-sim/sim"
	"github.com/branch-sim/branch-sim/sim/trace"
)

var (
	// CLI flags for the branch configuration
	lambda     float64 // Mean customer arrivals per minute
	tellers    int     // Number of open teller windows
	window     int64   // Minutes the branch door stays open
	serviceMin int64   // Shortest service time in minutes
	serviceMax int64   // Longest service time in minutes
	seed       int64   // Master seed for all random draws
	logLevel   string  // Log verbosity level

	// CLI flags for scenario selection and outputs
	scenarioName string // Named scenario (built-in or from --scenario-file)
	scenarioFile string // YAML file with named scenarios
	reportJSON   string // Path to write the report as JSON
	traceCSV     string // Path to write the minute-by-minute trace as CSV
	replayCSV    string // Recorded trace whose arrivals replace the Poisson draw

	// CLI flags for the compare subcommand
	tellerCounts []int // Staffing levels to replay the same day under
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "branchsim",
	Short: "Discrete-time simulator for bank branch queues",
}

// runCmd executes one simulated day using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulated day and print the report",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()
		cfg := resolveConfig(cmd)

		s, err := newRunSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		var dt *trace.DayTrace
		if traceCSV != "" {
			dt = trace.NewDayTrace()
			s.AttachTrace(dt)
		}

		logrus.Infof("Starting simulation: lambda=%.3f tellers=%d window=%d minutes seed=%d",
			cfg.Lambda, cfg.Tellers, cfg.WindowMinutes, cfg.Seed)

		report := s.Run()
		renderReport(os.Stdout, report)

		if reportJSON != "" {
			if err := writeReportJSON(reportJSON, report); err != nil {
				logrus.Fatalf("Writing JSON report: %v", err)
			}
		}
		if dt != nil {
			if err := trace.WriteCSV(dt, traceCSV); err != nil {
				logrus.Fatalf("Writing trace CSV: %v", err)
			}
			summary := trace.Summarize(dt)
			logrus.Infof("Trace: %d minutes recorded, peak queue %d at minute %d, %d idle minutes",
				summary.Minutes, summary.PeakQueueDepth, summary.PeakQueueMinute, summary.IdleMinutes)
		}
	},
}

// compareCmd replays one day under several staffing levels
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Replay the same day under different teller counts",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()
		cfg := resolveConfig(cmd)

		reports, err := sim.CompareTellerCounts(cfg, tellerCounts)
		if err != nil {
			logrus.Fatalf("Capacity comparison failed: %v", err)
		}
		renderComparison(os.Stdout, reports)

		if reportJSON != "" {
			if err := writeReportsJSON(reportJSON, reports); err != nil {
				logrus.Fatalf("Writing JSON reports: %v", err)
			}
		}
	},
}

func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// newRunSimulator builds the simulator for the run command. With --replay-csv
// the arrivals recorded in that trace replace the Poisson draw and the window
// shrinks or grows to the recorded one; service durations are still drawn
// fresh, so a recorded day can be rerun under different staffing.
func newRunSimulator(cfg sim.Config) (*sim.Simulator, error) {
	if replayCSV == "" {
		return sim.NewSimulator(cfg)
	}
	recorded, err := trace.ReadCSV(replayCSV)
	if err != nil {
		return nil, fmt.Errorf("loading replay trace: %w", err)
	}
	arrivals, window, err := sim.ReplayArrivals(recorded)
	if err != nil {
		return nil, fmt.Errorf("replaying %q: %w", replayCSV, err)
	}
	logrus.Infof("Replaying arrivals from %s over a %d-minute window", replayCSV, window)
	cfg.WindowMinutes = window
	return sim.NewSimulatorWithSources(cfg, arrivals,
		sim.NewUniformService(cfg.ServiceMin, cfg.ServiceMax))
}

// resolveConfig builds the simulation config: scenario values first (when a
// scenario is named), then any flag the user set explicitly on top.
func resolveConfig(cmd *cobra.Command) sim.Config {
	cfg := sim.Config{
		Lambda:        lambda,
		Tellers:       tellers,
		WindowMinutes: window,
		ServiceMin:    serviceMin,
		ServiceMax:    serviceMax,
		Seed:          seed,
	}
	if scenarioName == "" {
		return cfg
	}

	base, err := LoadScenario(scenarioFile, scenarioName)
	if err != nil {
		logrus.Fatalf("Loading scenario: %v", err)
	}
	cfg = base
	flags := cmd.Flags()
	if flags.Changed("lambda") {
		cfg.Lambda = lambda
	}
	if flags.Changed("tellers") {
		cfg.Tellers = tellers
	}
	if flags.Changed("window") {
		cfg.WindowMinutes = window
	}
	if flags.Changed("service-min") {
		cfg.ServiceMin = serviceMin
	}
	if flags.Changed("service-max") {
		cfg.ServiceMax = serviceMax
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().Float64Var(&lambda, "lambda", defaults.Lambda, "Mean customer arrivals per minute")
		c.Flags().IntVar(&tellers, "tellers", defaults.Tellers, "Number of open teller windows")
		c.Flags().Int64Var(&window, "window", defaults.WindowMinutes, "Minutes the branch stays open to arrivals")
		c.Flags().Int64Var(&serviceMin, "service-min", defaults.ServiceMin, "Shortest service time (minutes)")
		c.Flags().Int64Var(&serviceMax, "service-max", defaults.ServiceMax, "Longest service time (minutes)")
		c.Flags().Int64Var(&seed, "seed", defaults.Seed, "Master seed; the same seed replays the same day")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (see --scenario-file)")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file with named scenarios (built-ins used when empty)")
		c.Flags().StringVar(&reportJSON, "report-json", "", "Write the report to this path as JSON")
	}
	runCmd.Flags().StringVar(&traceCSV, "trace-csv", "", "Write a minute-by-minute trace to this path as CSV")
	runCmd.Flags().StringVar(&replayCSV, "replay-csv", "", "Replay the arrivals recorded in this trace CSV instead of drawing them")
	compareCmd.Flags().IntSliceVar(&tellerCounts, "teller-counts", []int{1, 2, 3}, "Comma-separated teller counts to compare")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
