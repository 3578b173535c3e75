// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds the golden schedule dataset types and assertion helpers used across
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-verified schedule: a workload, a policy with its
// parameters, and the exact expected output.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Policy    string          `json:"policy"`
	Quantum   int64           `json:"quantum,omitempty"`
	Quantums  []int64         `json:"quantums,omitempty"`
	Processes []GoldenProcess `json:"processes"`
	Expected  GoldenSchedule  `json:"expected"`
}

// GoldenProcess mirrors sim.Process without importing sim, so sim's own tests can use it.
type GoldenProcess struct {
	ID       string `json:"id"`
	Arrival  int64  `json:"arrival"`
	Burst    int64  `json:"burst"`
	Priority *int64 `json:"priority,omitempty"`
}

// GoldenSlot mirrors sim.GanttSlot.
type GoldenSlot struct {
	ProcessID string `json:"process_id"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
}

// GoldenSchedule is the expected outcome of a golden test case.
type GoldenSchedule struct {
	Gantt           []GoldenSlot     `json:"gantt"`
	CompletionOrder []string         `json:"completion_order"`
	Waiting         map[string]int64 `json:"waiting"`
	AvgWaiting      float64          `json:"avg_waiting"`
	AvgTurnaround   float64          `json:"avg_turnaround"`
	IdleTime        int64            `json:"idle_time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
