package cranes_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dockyard/cranes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := cranes.DefaultConfig()
	assert.Equal(t, "dynprog", cfg.Algorithm)
	assert.Equal(t, cranes.DefaultStepLimit, cfg.StepLimit)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParseConfig(t *testing.T) {
	cfg, err := cranes.ParseConfig([]byte("algorithm: exhaustive\nstep_limit: 20\nverify: true\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", cfg.Algorithm)
	assert.Equal(t, 20, cfg.StepLimit)
	assert.True(t, cfg.Verify)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	// Absent keys keep their defaults.
	cfg, err = cranes.ParseConfig([]byte("verify: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "dynprog", cfg.Algorithm)
	assert.Equal(t, cranes.DefaultStepLimit, cfg.StepLimit)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"algorithm":  "algorithm: greedy\n",
		"step_limit": "step_limit: -3\n",
		"log_level":  "log_level: loud\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cranes.ParseConfig([]byte(doc))
			assert.ErrorIs(t, err, cranes.ErrInvalidConfig)
		})
	}

	_, err := cranes.ParseConfig([]byte("algorithm: greedy\n"))
	assert.ErrorIs(t, err, cranes.ErrUnknownAlgorithm)

	_, err = cranes.ParseConfig([]byte("step_limit: [1, 2\n"))
	assert.Error(t, err, "malformed YAML")
}

func TestLoadConfig_FileAndDefaults(t *testing.T) {
	cfg, err := cranes.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cranes.DefaultConfig(), cfg)

	cfg, err = cranes.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cranes.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "dockyard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: exhaustive\nstep_limit: 12\n"), 0o600))
	cfg, err = cranes.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "exhaustive", cfg.Algorithm)
	assert.Equal(t, 12, cfg.StepLimit)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dockyard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: exhaustive\nstep_limit: 12\n"), 0o600))

	t.Setenv(cranes.EnvAlgorithm, "dynprog")
	t.Setenv(cranes.EnvStepLimit, " 30 ")
	cfg, err := cranes.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "dynprog", cfg.Algorithm)
	assert.Equal(t, 30, cfg.StepLimit)

	t.Setenv(cranes.EnvStepLimit, "many")
	_, err = cranes.LoadConfig(path)
	assert.ErrorIs(t, err, cranes.ErrInvalidConfig)

	t.Setenv(cranes.EnvStepLimit, "")
	t.Setenv(cranes.EnvAlgorithm, "bogus")
	_, err = cranes.LoadConfig(path)
	assert.ErrorIs(t, err, cranes.ErrUnknownAlgorithm)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: [\n"), 0o600))
	_, err := cranes.LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	cfg := cranes.DefaultConfig()
	cfg.Algorithm = "bogus"
	_, err := cfg.Options(nil)
	assert.ErrorIs(t, err, cranes.ErrInvalidConfig)

	cfg = cranes.DefaultConfig()
	opts, err := cfg.Options(nil)
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestSolveWithConfig(t *testing.T) {
	g := layout(t,
		"C..C",
		".C..",
		"..CC",
	)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := cranes.DefaultConfig()
	cfg.Algorithm = "exhaustive"
	res, err := cranes.SolveWithConfig(context.Background(), g, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, cranes.ExhaustiveSearch, res.Algorithm)
	assert.Equal(t, referenceBest(g), res.Path.TotalCranes())

	cfg.Verify = true
	res, err = cranes.SolveWithConfig(context.Background(), g, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, cranes.DynamicProgramming, res.Algorithm, "verification returns the DP result")
	assert.Contains(t, buf.String(), "crane search verified")

	cfg.StepLimit = 2
	_, err = cranes.SolveWithConfig(context.Background(), g, cfg, logger)
	assert.ErrorIs(t, err, cranes.ErrTooManySteps)
}
