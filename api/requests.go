package api

import "github.com/schedsim/schedsim/sim"

// ScheduleRequest is the body of the schedule endpoints.
// Quantum and Quantums fall back to the server configuration when omitted.
type ScheduleRequest struct {
	Processes []sim.Process `json:"processes"`
	Quantum   *int64        `json:"quantum,omitempty"`
	Quantums  []int64       `json:"quantums,omitempty"`
}

func (r *ScheduleRequest) params(cfg *Config) sim.PolicyParams {
	params := sim.PolicyParams{Quantum: cfg.Quantum, Quantums: cfg.Quantums}
	if r.Quantum != nil {
		params.Quantum = *r.Quantum
	}
	if len(r.Quantums) > 0 {
		params.Quantums = r.Quantums
	}
	return params
}
