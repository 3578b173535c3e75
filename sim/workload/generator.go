package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Generator defaults, matching the benchmark workloads the simulator is usually compared on.
const (
	DefaultMaxArrival     int64 = 50
	DefaultMaxBurst       int64 = 20
	DefaultPriorityLevels int64 = 5
)

// GenConfig parameterizes a synthetic workload.
type GenConfig struct {
	Count          int   `yaml:"count"`
	Seed           int64 `yaml:"seed"`
	MaxArrival     int64 `yaml:"max_arrival"`     // arrivals drawn from [0, MaxArrival)
	MaxBurst       int64 `yaml:"max_burst"`       // bursts drawn from [1, MaxBurst]
	PriorityLevels int64 `yaml:"priority_levels"` // priorities drawn from [0, PriorityLevels); 0 = no priorities
}

// DefaultGenConfig returns a GenConfig for count processes with the default ranges.
func DefaultGenConfig(count int, seed int64) GenConfig {
	return GenConfig{
		Count:          count,
		Seed:           seed,
		MaxArrival:     DefaultMaxArrival,
		MaxBurst:       DefaultMaxBurst,
		PriorityLevels: DefaultPriorityLevels,
	}
}

// Validate checks that every range is usable.
func (c GenConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	if c.MaxArrival <= 0 {
		return fmt.Errorf("max_arrival must be positive, got %d", c.MaxArrival)
	}
	if c.MaxBurst <= 0 {
		return fmt.Errorf("max_burst must be positive, got %d", c.MaxBurst)
	}
	if c.PriorityLevels < 0 {
		return fmt.Errorf("priority_levels must be non-negative, got %d", c.PriorityLevels)
	}
	return nil
}

// Generate creates a synthetic process list with ids P0..Pn-1, in id order.
// Deterministic given the same config.
func Generate(cfg GenConfig) ([]sim.Process, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	arrivals := rng.ForSubsystem(SubsystemArrival)
	bursts := rng.ForSubsystem(SubsystemBurst)
	priorities := rng.ForSubsystem(SubsystemPriority)

	procs := make([]sim.Process, cfg.Count)
	for i := range procs {
		procs[i] = sim.Process{
			ID:      fmt.Sprintf("P%d", i),
			Arrival: arrivals.Int63n(cfg.MaxArrival),
			Burst:   bursts.Int63n(cfg.MaxBurst) + 1,
		}
		if cfg.PriorityLevels > 0 {
			procs[i].Priority = sim.PriorityPtr(priorities.Int63n(cfg.PriorityLevels))
		}
	}
	logrus.Debugf("generated %d processes (seed %d)", len(procs), cfg.Seed)
	return procs, nil
}
