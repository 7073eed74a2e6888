package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/pong/config"
)

// OutputManager handles CSV logging of points and matches.
type OutputManager struct {
	dir         string
	pointsFile  *os.File
	matchesFile *os.File

	// Track if headers have been written
	pointsHeaderWritten  bool
	matchesHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "points.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating points.csv: %w", err)
	}
	om.pointsFile = f

	f, err = os.Create(filepath.Join(dir, "matches.csv"))
	if err != nil {
		om.pointsFile.Close()
		return nil, fmt.Errorf("creating matches.csv: %w", err)
	}
	om.matchesFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePoint appends a point record to points.csv.
func (om *OutputManager) WritePoint(rec PointRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRow(om.pointsFile, []PointRecord{rec}, &om.pointsHeaderWritten); err != nil {
		return fmt.Errorf("writing point: %w", err)
	}
	return nil
}

// WriteMatch appends a match summary to matches.csv.
func (om *OutputManager) WriteMatch(s MatchSummary) error {
	if om == nil {
		return nil
	}
	if err := writeRow(om.matchesFile, []MatchSummary{s}, &om.matchesHeaderWritten); err != nil {
		return fmt.Errorf("writing match: %w", err)
	}
	return nil
}

// writeRow marshals records, including the header only on the first write.
func writeRow(f *os.File, records interface{}, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.pointsFile != nil {
		if err := om.pointsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.matchesFile != nil {
		if err := om.matchesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
