// Package runlog keeps a small history of compute invocations alongside the
// exported files, so a results directory records what produced it.
package runlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hearthlab/fuelcast-cli/internal/utils"
)

const fileName = "runs.yaml"

// Entry describes one compute run.
type Entry struct {
	ID             string    `yaml:"id"`
	Time           time.Time `yaml:"time"`
	Headcount      string    `yaml:"headcount"`
	Rates          string    `yaml:"rates"`
	Countries      []string  `yaml:"countries"`
	YearMin        int       `yaml:"year_min"`
	YearMax        int       `yaml:"year_max"`
	Rows           int       `yaml:"rows"`
	UnmatchedFuels []string  `yaml:"unmatched_fuels,omitempty"`
	Outputs        []string  `yaml:"outputs,omitempty"`
}

// NewEntry creates an entry with a fresh ID and timestamp.
func NewEntry() Entry {
	return Entry{ID: uuid.NewString(), Time: time.Now().UTC()}
}

// Load reads the run log from dir. A missing log is an empty history.
func Load(dir string) ([]Entry, error) {
	b, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read run log: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse run log: %w", err)
	}
	return entries, nil
}

// Append adds an entry to the run log in dir, creating it if needed.
func Append(dir string, e Entry) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	entries, err := Load(dir)
	if err != nil {
		return err
	}
	entries = append(entries, e)
	b, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal run log: %w", err)
	}
	return utils.SafeWriteFile(filepath.Join(dir, fileName), b)
}
