package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// CurrentVersion is the workload file format version written by SaveWorkload.
const CurrentVersion = "1"

// WorkloadFile is the top-level YAML workload document.
// Loaded from YAML via LoadWorkload(path).
type WorkloadFile struct {
	Version   string        `yaml:"version"`
	Processes []sim.Process `yaml:"processes"`
}

// LoadWorkload reads and parses a YAML workload file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkload(path string) (*WorkloadFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return ParseWorkload(data)
}

// ParseWorkload decodes a YAML workload document with strict field checking.
func ParseWorkload(data []byte) (*WorkloadFile, error) {
	var wf WorkloadFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&wf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	if wf.Version == "" {
		logrus.Warnf("workload has no version; assuming %q", CurrentVersion)
		wf.Version = CurrentVersion
	}
	return &wf, nil
}

// Validate checks the document-level fields. Per-process fields are validated by the
// engines themselves, which report the offending process.
func (w *WorkloadFile) Validate() error {
	if w.Version != CurrentVersion {
		return fmt.Errorf("unsupported workload version %q; valid: %s", w.Version, CurrentVersion)
	}
	if len(w.Processes) == 0 {
		return fmt.Errorf("workload has no processes")
	}
	return nil
}

// WriteWorkload encodes procs as a YAML workload document.
func WriteWorkload(w io.Writer, procs []sim.Process) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(WorkloadFile{Version: CurrentVersion, Processes: procs}); err != nil {
		return fmt.Errorf("encoding workload: %w", err)
	}
	return enc.Close()
}

// SaveWorkload writes procs to path as a YAML workload document.
func SaveWorkload(path string, procs []sim.Process) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workload file: %w", err)
	}
	if err := WriteWorkload(f, procs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
