package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Empty(t, cfg.PlayerName)
	assert.Equal(t, VariantSeeded, cfg.BoardVariant)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err, "first load writes the default file")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	cfg.PlayerName = "Ada"
	cfg.BoardVariant = VariantFixed
	assert.NoError(t, Save(cfg))

	got, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "Ada", got.PlayerName)
	assert.Equal(t, VariantFixed, got.BoardVariant)
}
