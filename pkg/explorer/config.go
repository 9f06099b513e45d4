package explorer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Archenoth/project-explorer/pkg/explorer/collect"
)

// Strategy selects how a directory tree is enumerated.
type Strategy string

const (
	// StrategyWalk lists directories with a synchronous recursive walk.
	StrategyWalk Strategy = "walk"
	// StrategyProcess shells out to an external listing program.
	StrategyProcess Strategy = "process"
	// StrategyIncremental time-slices a cooperative walk across idle
	// intervals.
	StrategyIncremental Strategy = "incremental"
)

// ConfigFileName is looked up in the collection root.
const ConfigFileName = ".project-explorer.yml"

// Config carries the per-view settings.
type Config struct {
	// Strategy picks the collector. Defaults to the synchronous walk.
	Strategy Strategy `yaml:"strategy"`
	// OmitPattern is matched against entry base names; matches are skipped
	// with their subtrees.
	OmitPattern string `yaml:"omit_pattern"`
	// Compress merges single-child directory chains into one display node.
	Compress bool `yaml:"compress"`
	// StartFolded collapses every directory after a build, before the
	// remembered open paths are replayed.
	StartFolded bool `yaml:"start_folded"`
	// ListCommand is the argv for the process strategy, run with the
	// collection root as working directory.
	ListCommand []string `yaml:"list_command"`
	// IdleInterval is the scheduling tick of the incremental strategy.
	IdleInterval time.Duration `yaml:"idle_interval"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:     StrategyWalk,
		OmitPattern:  collect.DefaultOmitPattern,
		Compress:     true,
		StartFolded:  true,
		ListCommand:  collect.DefaultListCommand,
		IdleInterval: collect.DefaultIdleInterval,
	}
}

// LoadConfig returns DefaultConfig overlaid with the config file from dir,
// when one exists. A missing file is not an error; an unreadable or
// malformed one is.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the collectors cannot work with.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyWalk, StrategyProcess, StrategyIncremental:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if _, err := regexp.Compile(c.OmitPattern); err != nil {
		return fmt.Errorf("omit pattern: %w", err)
	}
	if c.Strategy == StrategyProcess && len(c.ListCommand) == 0 {
		return errors.New("process strategy needs a list command")
	}
	return nil
}
