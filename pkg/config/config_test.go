package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 24.0, cfg.Engine.LoadBaseline)
	assert.Equal(t, 0.5, cfg.Engine.WeakMatchThreshold)
	assert.Equal(t, ",", cfg.Snapshot.Delimiter)
	assert.Empty(t, cfg.Snapshot.AttendanceFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENGINE_LOAD_BASELINE", "30")
	t.Setenv("SNAPSHOT_SCHEDULE_FILE", "/tmp/schedules.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30.0, cfg.Engine.LoadBaseline)
	assert.Equal(t, "/tmp/schedules.csv", cfg.Snapshot.ScheduleFile)
}
