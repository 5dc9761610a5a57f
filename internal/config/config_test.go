package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.CardDir)
	assert.Equal(t, "decks.db", cfg.DataDir)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Limits.MaxCopies)
	assert.Equal(t, 50, cfg.Limits.MaxTotal)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kcgdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9090
card_dir: /srv/cards
limits:
  max_copies: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/srv/cards", cfg.CardDir)
	assert.Equal(t, 3, cfg.Limits.MaxCopies)
	// untouched keys keep their defaults
	assert.Equal(t, "decks.db", cfg.DataDir)
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kcgdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: -1\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kcgdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
