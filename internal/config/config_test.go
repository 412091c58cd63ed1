package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lkopocinski/paintball-go/internal/config"
)

const validYAML = `
paintball_graph_path: /data/lexical.gob
synset_graph_path: /data/synsets.gob
impedance_table_path: /data/impedance.csv
knowledge_source_dir: /data/knowledge
params:
  mu: 0.95
  tau_0: 0.5
  epsilon: 0.125
  tau_3: 2.5
  tau_4: 1.0
  n1: 1.5
  n2: 2.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDecodesYAML(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/data/lexical.gob", cfg.PaintballGraphPath)
	require.InDelta(t, 0.95, cfg.Params.Mu, 1e-9)
	require.InDelta(t, 0.5, cfg.Params.Tau0, 1e-9)
	require.InDelta(t, 2.5, cfg.Params.Tau3, 1e-9)
	require.InDelta(t, 1.0, cfg.Params.Tau4, 1e-9)
}

func TestLoadRejectsInvalidMu(t *testing.T) {
	path := writeConfig(t, `
paintball_graph_path: /data/lexical.gob
synset_graph_path: /data/synsets.gob
impedance_table_path: /data/impedance.csv
knowledge_source_dir: /data/knowledge
params:
  mu: 1.5
`)
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadMissingFileIsConfigError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadEnvOverlayWinsOverFile(t *testing.T) {
	path := writeConfig(t, validYAML)
	t.Setenv("PAINTBALL_GRAPH_PATH", "/override/lexical.gob")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/override/lexical.gob", cfg.PaintballGraphPath)
	require.Equal(t, "/data/synsets.gob", cfg.SynsetGraphPath, "unset env vars must not touch other paths")
}
