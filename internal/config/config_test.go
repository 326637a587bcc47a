package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Environment: "development",
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Data: DataConfig{
			BasePath: "/some/path",
		},
		Layout: LayoutConfig{
			GridSize: 20,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true},  // case insensitive
		{"INFO", true},   // case insensitive
		{"trace", false}, // not supported
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_GridSize(t *testing.T) {
	cfg := validConfig()
	cfg.Layout.GridSize = 0
	assert.Error(t, cfg.Validate())

	cfg.Layout.GridSize = -20
	assert.Error(t, cfg.Validate())

	cfg.Layout.GridSize = 10
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyDataPath(t *testing.T) {
	cfg := validConfig()
	cfg.Data.BasePath = ""
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		def  string
		want string
	}{
		{"empty uses default", "", "/default", "/default"},
		{"tilde expands", "~/data", "", filepath.Join(home, "data")},
		{"absolute unchanged", "/var/lib/tanamap", "", "/var/lib/tanamap"},
		{"cleaned", "/var//lib/../lib/tanamap", "", "/var/lib/tanamap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.in, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandDataPath_Default(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := &Config{}
	require.NoError(t, cfg.expandDataPath())
	assert.Equal(t, filepath.Join(home, "TanaMap", "data"), cfg.Data.BasePath)
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("TANAMAP_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "TANAMAP_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", getConfigValue("", "TANAMAP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("", "TANAMAP_TEST_ABSENT", "fallback"))
}

func TestGetFloatConfigValue(t *testing.T) {
	t.Setenv("TANAMAP_TEST_FLOAT", "12.5")

	assert.Equal(t, 12.5, getFloatConfigValue("", "TANAMAP_TEST_FLOAT", 20))
	assert.Equal(t, 40.0, getFloatConfigValue("40", "TANAMAP_TEST_FLOAT", 20))
	assert.Equal(t, 20.0, getFloatConfigValue("", "TANAMAP_TEST_FLOAT_ABSENT", 20))

	t.Setenv("TANAMAP_TEST_FLOAT_BAD", "not-a-number")
	assert.Equal(t, 20.0, getFloatConfigValue("", "TANAMAP_TEST_FLOAT_BAD", 20))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nTANAMAP_ENVFILE_KEY=hello\nTANAMAP_ENVFILE_QUOTED=\"world\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TANAMAP_ENVFILE_KEY", "")
	os.Unsetenv("TANAMAP_ENVFILE_KEY")
	t.Setenv("TANAMAP_ENVFILE_QUOTED", "")
	os.Unsetenv("TANAMAP_ENVFILE_QUOTED")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("TANAMAP_ENVFILE_KEY"))
	assert.Equal(t, "world", os.Getenv("TANAMAP_ENVFILE_QUOTED"))
}

func TestLoadEnvFile_InvalidLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("NOT A PAIR\n"), 0o600))

	assert.Error(t, loadEnvFile(path))
}
