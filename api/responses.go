package api

import (
	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/render"
)

type ScheduleResponse struct {
	Policy    string                 `json:"policy"`
	Processes []sim.ScheduledProcess `json:"processes"`
	Gantt     []sim.GanttSlot        `json:"gantt"`
	Summary   sim.Summary            `json:"summary"`
	Timeline  string                 `json:"timeline"`
}

// PolicyOutcome is one entry of the all-policies response. Error is set instead of
// Result when the workload does not satisfy that policy's requirements.
type PolicyOutcome struct {
	Policy string            `json:"policy"`
	Result *ScheduleResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type AllResponse struct {
	Results []PolicyOutcome `json:"results"`
}

type PoliciesResponse struct {
	Policies []string `json:"policies"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newScheduleResponse(res *sim.Result) *ScheduleResponse {
	return &ScheduleResponse{
		Policy:    res.Policy,
		Processes: res.Processes,
		Gantt:     res.Gantt,
		Summary:   sim.Summarize(res),
		Timeline:  render.Timeline(res.Gantt),
	}
}
