package workload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// Load reads a workload file, choosing the format from its extension:
// .yaml/.yml for WorkloadFile documents, .csv for id,burst,arrival[,priority] rows.
func Load(path string) ([]sim.Process, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		wf, err := LoadWorkload(path)
		if err != nil {
			return nil, err
		}
		if err := wf.Validate(); err != nil {
			return nil, fmt.Errorf("invalid workload %s: %w", path, err)
		}
		return wf.Processes, nil
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading workload: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported workload format %q; valid: .yaml, .yml, .csv", filepath.Ext(path))
	}
}
