package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "default", cfg.TUI.Theme)
	require.True(t, cfg.TUI.Mouse)
	require.Equal(t, 6.0, cfg.Tour.Radius)
	require.True(t, cfg.Tour.ClickInCircle)
	require.Equal(t, 2, cfg.Tour.ScrollLinesPerTick)
	require.Equal(t, 16*time.Millisecond, cfg.Tour.ScrollTick())
	require.Empty(t, cfg.Validate())
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.TUI.Theme = "neon"
	cfg.Tour.Radius = 0
	cfg.Tour.ScrollLinesPerTick = 0
	cfg.Logging.Format = "xml"

	errs := cfg.Validate()
	require.Len(t, errs, 4)
	require.Contains(t, ValidationErrors(errs).Error(), "unknown theme")
}

func TestInitReadsFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "tour:\n  radius: 9\n  click_in_circle: false\ntui:\n  theme: high-contrast\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SHOWCASE_TOUR_SCROLL_TICK_MS", "40")

	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9.0, cfg.Tour.Radius)
	require.False(t, cfg.Tour.ClickInCircle)
	require.Equal(t, "high-contrast", cfg.TUI.Theme)
	require.Equal(t, 40, cfg.Tour.ScrollTickMs)
	require.Equal(t, 2, cfg.Tour.ScrollLinesPerTick)
}

func TestInitMissingDefaultFileIsFine(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, Init(""))
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.TUI.Theme)
}

func TestInitMissingExplicitFileFails(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.Error(t, Init(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", "showcase"), ConfigDir())
	require.Equal(t, filepath.Join("/tmp/xdg", "showcase", "config.yaml"), ConfigFile())
}
