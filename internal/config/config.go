// Package config loads the paintball engine's YAML configuration file and
// overlays environment variables via a best-effort .env load: environment
// overrides the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lkopocinski/paintball-go/internal/paintballengine"
)

// ErrConfig wraps any failure loading or validating configuration. It is
// fatal and should be surfaced with a non-zero exit code.
var ErrConfig = errors.New("config: invalid configuration")

// Config is the full paintball run configuration.
type Config struct {
	PaintballGraphPath string                 `yaml:"paintball_graph_path"`
	SynsetGraphPath    string                 `yaml:"synset_graph_path"`
	ImpedanceTablePath string                 `yaml:"impedance_table_path"`
	KnowledgeSourceDir string                 `yaml:"knowledge_source_dir"`
	SynsetLengthsPath  string                 `yaml:"synset_lengths_path,omitempty"`
	Params             paintballengine.Params `yaml:"params"`
}

// Load reads and decodes the YAML config at path, then overlays the
// PAINTBALL_GRAPH_PATH / SYNSET_GRAPH_PATH / IMPEDANCE_TABLE_PATH /
// KNOWLEDGE_SOURCE_DIR environment variables onto the decoded paths when
// they are set, loading a .env file first on a best-effort basis (a missing
// .env file is not an error).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrConfig, path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrConfig, path, err)
	}

	cfg.overlayEnv()

	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &cfg, nil
}

func (c *Config) overlayEnv() {
	if v := os.Getenv("PAINTBALL_GRAPH_PATH"); v != "" {
		c.PaintballGraphPath = v
	}
	if v := os.Getenv("SYNSET_GRAPH_PATH"); v != "" {
		c.SynsetGraphPath = v
	}
	if v := os.Getenv("IMPEDANCE_TABLE_PATH"); v != "" {
		c.ImpedanceTablePath = v
	}
	if v := os.Getenv("KNOWLEDGE_SOURCE_DIR"); v != "" {
		c.KnowledgeSourceDir = v
	}
}
