package config

import (
	"encoding/json"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func withReport(cfg *StructuredConfig) *StructuredConfig {
	cfg.Input.ReportPath = "report.json"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a report path is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrReportPathRequired)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, withReport(&StructuredConfig{}))

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Engine.MaxParallelItems)
	assert.Zero(t, cfg.Engine.Timeout)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that fields from multiple configs
// are merged and the first non-zero value is kept.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		withReport(&StructuredConfig{App: App{Version: "1.0.0"}}),
		&StructuredConfig{
			App:    App{Version: "9.9.9"},
			Engine: Engine{MaxParallelItems: 3},
			Input:  Input{ReportPath: "other.json", OutputPath: "out.json"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "report.json", cfg.Input.ReportPath)
	assert.Equal(t, "out.json", cfg.Input.OutputPath)
	assert.Equal(t, 3, cfg.Engine.MaxParallelItems)
}

// TestBuild_Validation covers invalid merged configurations.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown log level",
			cfg:     withReport(&StructuredConfig{Log: Log{Level: "chatty"}}),
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "negative parallelism",
			cfg:     withReport(&StructuredConfig{Engine: Engine{MaxParallelItems: -1}}),
			wantErr: ErrInvalidEngineConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     withReport(&StructuredConfig{Engine: Engine{Timeout: -time.Second}}),
			wantErr: ErrInvalidEngineConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies the fluent interface and that
// environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("INPUT_REPORT_PATH", "env-report.json")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.NoError(t, b.err)

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-report.json", b.configs[0].Input.ReportPath)
}

// TestWithEnv_RecordsError verifies that a malformed variable is kept as
// the builder error.
func TestWithEnv_RecordsError(t *testing.T) {
	t.Setenv("ENGINE_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedConfig verifies the fluent interface.
func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-r", "flag-report.json"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-report.json", b.configs[0].Input.ReportPath)
}

// TestWithFlags_RecordsError verifies that an unknown flag becomes the
// builder error.
func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Input.ReportPath = "json-report.json"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-report.json", b.configs[1].Input.ReportPath)
}

// TestWithJSON_SetsError_WhenFileMissing verifies that a missing file is
// recorded as the builder error.
func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources verifies the env > flags > JSON order.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Log.Level = "error"
	payload.Engine.MaxParallelItems = 2
	payload.Input.OutputPath = "json-out.json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := GetStructuredConfig([]string{"-c", path, "-workers", "6", "report.json"})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 6, cfg.Engine.MaxParallelItems)
	assert.Equal(t, "json-out.json", cfg.Input.OutputPath)
	assert.Equal(t, "report.json", cfg.Input.ReportPath)
}
