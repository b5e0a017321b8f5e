package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "buildtool.toml"), false)
	require.NoError(t, err, "A missing default config is not an error")
	require.Empty(t, cfg.Build.Modules)

	_, err = loadConfig(filepath.Join(dir, "custom.toml"), true)
	require.Error(t, err, "An explicitly requested config must exist")

	path := filepath.Join(dir, "buildtool.toml")
	content := "[build]\nmodules = [\"event\", \"render\"]\nout_dir = \"target/c\"\njobs = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err = loadConfig(path, false)
	require.NoError(t, err)
	require.Equal(t, []string{"event", "render"}, cfg.Build.Modules)
	require.Equal(t, "target/c", cfg.Build.OutDir)
	require.Equal(t, 4, cfg.Build.Jobs)
}
