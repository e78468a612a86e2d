package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/bullwhip-sim/bullwhip-sim/sim"
	"github.com/bullwhip-sim/bullwhip-sim/sim/demand"
	"github.com/bullwhip-sim/bullwhip-sim/sim/export"
	"github.com/bullwhip-sim/bullwhip-sim/sim/policy"
)

var (
	// CLI flags for simulation parameters
	seed     int64  // Seed for demand generation and random policies
	weeks    int    // Simulation horizon in weeks
	logLevel string // Log verbosity level

	orderDelay       int     // Order pipeline transit lag in weeks
	shipmentDelay    int     // Shipment/production pipeline transit lag in weeks
	initialInventory int     // Starting on-hand inventory for every stage
	holdingCost      float64 // Cost per unit held per week
	backlogCost      float64 // Cost per unit backlogged per week

	// CLI flags for stage policies
	policies      []string // One policy name per stage, downstream to upstream
	target        int      // Order-up-to target for target-bearing policies
	optimalTarget bool     // Derive targets from the newsvendor model instead
	gamma         float64  // Smoothing factor for the smoothing policy
	randomMin     int      // Random policy lower bound
	randomMax     int      // Random policy upper bound

	// CLI flags for demand generation
	demandPattern  string  // constant, step, or normal
	demandValue    int     // constant pattern level
	demandLow      int     // step pattern level before the jump
	demandHigh     int     // step pattern level from the jump onward
	demandStepWeek int     // first week of the step pattern's high level
	demandMean     float64 // normal pattern mean
	demandStdDev   float64 // normal pattern standard deviation

	// CLI flags for presets and export
	scenarioName string // Named scenario from the scenario file
	scenarioFile string // YAML file holding scenario presets
	csvPath      string // History CSV output path
	dbPath       string // History SQLite database path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bullwhip-sim",
	Short: "Discrete-time simulator for supply chain bullwhip dynamics",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the supply chain simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			Weeks:            weeks,
			OrderDelay:       orderDelay,
			ShipmentDelay:    shipmentDelay,
			InitialInventory: initialInventory,
			HoldingCostRate:  holdingCost,
			BacklogCostRate:  backlogCost,
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))

		// Resolve demand spec and per-stage settings, preferring a scenario
		// preset when one is named.
		demandSpec := demandSpecFromFlags()
		stageSettings := stageSettingsFromFlags()
		if scenarioName != "" {
			scenario, err := GetScenario(scenarioFile, scenarioName)
			if err != nil {
				logrus.Fatalf("Could not load scenario: %v", err)
			}
			demandSpec = &scenario.Demand
			stageSettings, err = stageSettingsFromScenario(scenario)
			if err != nil {
				logrus.Fatalf("Invalid scenario: %v", err)
			}
		}

		schedule, err := demand.Generate(demandSpec, cfg.Weeks, rng.ForSubsystem(sim.SubsystemDemand))
		if err != nil {
			logrus.Fatalf("Could not generate demand schedule: %v", err)
		}
		mu, sigma := demand.Moments(schedule)

		stagePolicies := make([]policy.OrderPolicy, 0, sim.NumStages)
		for i, role := range sim.AllRoles() {
			p, err := buildStagePolicy(stageSettings[i], cfg, mu, sigma, rng.ForSubsystem(sim.SubsystemPolicy(role)))
			if err != nil {
				logrus.Fatalf("Could not build %s policy: %v", role, err)
			}
			stagePolicies = append(stagePolicies, p)
		}

		logrus.Infof("Starting simulation: weeks=%d, delays=%d/%d, demand mean=%.1f",
			cfg.Weeks, cfg.OrderDelay, cfg.ShipmentDelay, mu)

		startTime := time.Now()

		s, err := sim.NewChainSimulation(cfg, schedule, stagePolicies)
		if err != nil {
			logrus.Fatalf("Could not build simulation: %v", err)
		}
		s.Run()

		metrics := sim.ComputeMetrics(s.History, schedule, cfg.Weeks)
		metrics.Print()
		logrus.Infof("Simulation took %v", time.Since(startTime))

		if csvPath != "" {
			if err := export.WriteCSVFile(csvPath, s.History); err != nil {
				logrus.Fatalf("Could not export CSV: %v", err)
			}
			logrus.Infof("History exported to %s", csvPath)
		}
		if dbPath != "" {
			store, err := export.OpenStore(dbPath)
			if err != nil {
				logrus.Fatalf("Could not open history store: %v", err)
			}
			defer store.Close()
			runID, err := store.WriteRun(context.Background(), cfg, s.History)
			if err != nil {
				logrus.Fatalf("Could not store run: %v", err)
			}
			logrus.Infof("Run %s stored in %s", runID, dbPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// demandSpecFromFlags assembles the demand pattern from CLI flags.
func demandSpecFromFlags() *demand.Spec {
	return &demand.Spec{
		Pattern:  demand.PatternType(demandPattern),
		Value:    demandValue,
		Low:      demandLow,
		High:     demandHigh,
		StepWeek: demandStepWeek,
		Mean:     demandMean,
		StdDev:   demandStdDev,
	}
}

// stageSettingsFromFlags maps the --policies flag plus the shared knobs onto
// one StageSettings per stage in role order.
func stageSettingsFromFlags() [sim.NumStages]StageSettings {
	var settings [sim.NumStages]StageSettings
	for i := range settings {
		name := "naive"
		if i < len(policies) {
			name = policies[i]
		}
		settings[i] = StageSettings{
			Policy:          name,
			Target:          target,
			Gamma:           gamma,
			InitialForecast: float64(demandValue),
			Min:             randomMin,
			Max:             randomMax,
			OptimalTarget:   optimalTarget,
		}
	}
	return settings
}

// stageSettingsFromScenario maps a scenario's stage table onto role order.
// Every stage must be present; a chain with undefined wiring must not run.
func stageSettingsFromScenario(scenario *Scenario) ([sim.NumStages]StageSettings, error) {
	var settings [sim.NumStages]StageSettings
	for name, stage := range scenario.Stages {
		role, err := sim.ParseRole(name)
		if err != nil {
			return settings, err
		}
		settings[role] = stage
	}
	for i, role := range sim.AllRoles() {
		if settings[i].Policy == "" {
			return settings, fmt.Errorf("scenario does not define a policy for stage %s", role)
		}
	}
	return settings, nil
}

// buildStagePolicy turns one stage's settings into a policy instance. Demand
// moments and the chain lead time feed newsvendor target derivation when
// optimal_target is set.
func buildStagePolicy(settings StageSettings, cfg sim.Config, mu, sigma float64, rng *rand.Rand) (policy.OrderPolicy, error) {
	initialForecast := settings.InitialForecast
	if initialForecast == 0 {
		initialForecast = mu
	}
	gammaValue := settings.Gamma
	if gammaValue == 0 {
		gammaValue = 0.3
	}
	return policy.New(settings.Policy, policy.Params{
		Target:           settings.Target,
		TargetSupplyLine: settings.TargetSupplyLine,
		Alpha:            settings.Alpha,
		Beta:             settings.Beta,
		Gamma:            gammaValue,
		InitialForecast:  initialForecast,
		Min:              settings.Min,
		Max:              settings.Max,
		Rand:             rng,
		OptimalTarget:    settings.OptimalTarget,
		HoldingCost:      cfg.HoldingCostRate,
		BacklogCost:      cfg.BacklogCostRate,
		MeanDemand:       mu,
		StdDevDemand:     sigma,
		LeadTime:         cfg.LeadTime(),
	})
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for demand generation and random policies")
	runCmd.Flags().IntVar(&weeks, "weeks", 25, "Simulation horizon in weeks")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Chain configs
	runCmd.Flags().IntVar(&orderDelay, "order-delay", 2, "Order pipeline transit lag in weeks")
	runCmd.Flags().IntVar(&shipmentDelay, "shipment-delay", 2, "Shipment/production pipeline transit lag in weeks")
	runCmd.Flags().IntVar(&initialInventory, "initial-inventory", 15, "Starting inventory for every stage")
	runCmd.Flags().Float64Var(&holdingCost, "holding-cost", 0.5, "Holding cost per unit per week")
	runCmd.Flags().Float64Var(&backlogCost, "backlog-cost", 1.0, "Backlog cost per unit per week")

	// Stage policy configs
	runCmd.Flags().StringSliceVar(&policies, "policies", []string{"base-stock", "naive", "naive", "naive"},
		"Comma-separated policy per stage, retailer first (naive, random, base-stock, sterman, smoothing, vmi)")
	runCmd.Flags().IntVar(&target, "target", 15, "Order-up-to target for target-bearing policies")
	runCmd.Flags().BoolVar(&optimalTarget, "optimal-target", false, "Derive targets from the newsvendor model")
	runCmd.Flags().Float64Var(&gamma, "gamma", 0.3, "Smoothing factor for the smoothing policy")
	runCmd.Flags().IntVar(&randomMin, "random-min", 0, "Random policy lower bound (inclusive)")
	runCmd.Flags().IntVar(&randomMax, "random-max", 15, "Random policy upper bound (inclusive)")

	// Demand generation configs
	runCmd.Flags().StringVar(&demandPattern, "demand", "step", "Demand pattern (constant, step, normal)")
	runCmd.Flags().IntVar(&demandValue, "demand-value", 4, "Constant demand level")
	runCmd.Flags().IntVar(&demandLow, "demand-low", 4, "Step demand level before the jump")
	runCmd.Flags().IntVar(&demandHigh, "demand-high", 8, "Step demand level from the jump onward")
	runCmd.Flags().IntVar(&demandStepWeek, "demand-step-week", 5, "First week of the high demand level")
	runCmd.Flags().Float64Var(&demandMean, "demand-mean", 8.0, "Normal demand mean")
	runCmd.Flags().Float64Var(&demandStdDev, "demand-stddev", 2.0, "Normal demand standard deviation")

	// Scenario presets and export
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset to run")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file holding scenario presets")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write history CSV to this path")
	runCmd.Flags().StringVar(&dbPath, "db", "", "Store run history in this SQLite database")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
