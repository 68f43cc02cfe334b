// decay-sweep measures how quickly the wave field returns to rest across
// a set of decay rates, running one scenario per worker goroutine. The
// settle subcommand traces a single rate tick by tick instead.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"ripple/internal/wave"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		steps      int
		workers    int
		force      float64
		rates      []float64
	)
	cmd := &cobra.Command{
		Use:   "decay-sweep",
		Short: "Sweep wave decay rates and report settle telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := baseConfig(configPath)
			if err != nil {
				return err
			}
			for _, rate := range rates {
				if rate < 0 {
					return fmt.Errorf("decay rate must be non-negative, got %v", rate)
				}
			}
			runSweep(cfg, rates, force, steps, workers)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML field configuration file")
	cmd.Flags().IntVar(&steps, "steps", 20000, "tick budget per scenario")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	cmd.Flags().Float64Var(&force, "force", 0.25, "impulse force applied at the field centre")
	cmd.Flags().Float64SliceVar(&rates, "rates", []float64{0.01, 0.02, 0.05, 0.1, 0.2, 0.3}, "decay rates to sweep")
	cmd.AddCommand(newSettleCmd())
	return cmd
}

func baseConfig(path string) (wave.Config, error) {
	if path == "" {
		return wave.DefaultConfig(), nil
	}
	return wave.LoadConfig(path)
}

type sweepResult struct {
	rate   float64
	result wave.SettleResult
}

func runSweep(cfg wave.Config, rates []float64, force float64, steps, workers int) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan float64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rate := range jobs {
				scenario := cfg
				scenario.DecayRate = rate
				// Settle cannot fail here: the base config is
				// validated and the rates are pre-checked.
				res, _ := wave.Settle(scenario, force, steps)
				results <- sweepResult{rate: rate, result: res}
			}
		}()
	}
	go func() {
		for _, rate := range rates {
			jobs <- rate
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var collected []sweepResult
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].rate < collected[j].rate })

	fmt.Printf("Swept %d decay rates (%d workers, %d tick budget, force %.2f)\n",
		len(collected), workers, steps, force)
	fmt.Printf("%-8s %-10s %-8s %-12s %-12s\n", "rate", "settle", "settled", "peak energy", "peak amp")
	for _, res := range collected {
		fmt.Printf("%-8.3f %-10d %-8v %-12.4f %-12.4f\n",
			res.rate, res.result.SettleTicks, res.result.Settled,
			res.result.PeakEnergy, res.result.PeakAmplitude)
	}
}

func newSettleCmd() *cobra.Command {
	var (
		configPath string
		steps      int
		rate       float64
		force      float64
		every      int
	)
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Trace per-tick energy for a single decay rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := baseConfig(configPath)
			if err != nil {
				return err
			}
			if rate >= 0 {
				cfg.DecayRate = rate
			}
			f, err := wave.New(cfg)
			if err != nil {
				return err
			}
			f.ApplyImpulse(cfg.Width/2, force)
			if every <= 0 {
				every = 1
			}
			for tick := 1; tick <= steps; tick++ {
				f.Step()
				if tick%every == 0 {
					fmt.Printf("%6d  energy=%.6f  peak=%.6f\n", tick, f.Energy(), f.MaxDisplacement())
				}
				if f.AtRest() {
					fmt.Printf("settled after %d ticks\n", tick)
					return nil
				}
			}
			fmt.Printf("not settled within %d ticks\n", steps)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML field configuration file")
	cmd.Flags().IntVar(&steps, "steps", 20000, "tick budget")
	cmd.Flags().Float64Var(&rate, "rate", -1, "decay rate override (negative keeps the config value)")
	cmd.Flags().Float64Var(&force, "force", 0.25, "impulse force applied at the field centre")
	cmd.Flags().IntVar(&every, "every", 25, "print every N ticks")
	return cmd
}
