package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the application configuration, loaded from .env and the
// process environment.
type Config struct {
	Env string

	Log      LogConfig
	Engine   EngineConfig
	Snapshot SnapshotConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// EngineConfig exposes the scoring constants that operators may tune.
// Zero values defer to the engine defaults; weights are all-or-nothing
// so a partially overridden weight set cannot slip through.
type EngineConfig struct {
	LoadBaseline             float64
	DeptRecencyDecay         float64
	TermRecencyDecay         float64
	LogisticCenter           float64
	LogisticSlope            float64
	SigmaFloorMinutes        float64
	KernelBandwidthMinutes   float64
	NearestSlotDecayMinutes  float64
	WeakMatchThreshold       float64
	OverloadForgivenessUnits float64
}

// SnapshotConfig points the evaluator CLI at its input files.
type SnapshotConfig struct {
	ScheduleFile   string
	FacultyFile    string
	AttendanceFile string
	GradesFile     string
	Delimiter      string
}

// Load reads .env (when present) plus environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is fine; the environment alone is a valid source.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Engine = EngineConfig{
		LoadBaseline:             v.GetFloat64("ENGINE_LOAD_BASELINE"),
		DeptRecencyDecay:         v.GetFloat64("ENGINE_DEPT_RECENCY_DECAY"),
		TermRecencyDecay:         v.GetFloat64("ENGINE_TERM_RECENCY_DECAY"),
		LogisticCenter:           v.GetFloat64("ENGINE_LOGISTIC_CENTER"),
		LogisticSlope:            v.GetFloat64("ENGINE_LOGISTIC_SLOPE"),
		SigmaFloorMinutes:        v.GetFloat64("ENGINE_SIGMA_FLOOR_MINUTES"),
		KernelBandwidthMinutes:   v.GetFloat64("ENGINE_KERNEL_BANDWIDTH_MINUTES"),
		NearestSlotDecayMinutes:  v.GetFloat64("ENGINE_NEAREST_SLOT_DECAY_MINUTES"),
		WeakMatchThreshold:       v.GetFloat64("ENGINE_WEAK_MATCH_THRESHOLD"),
		OverloadForgivenessUnits: v.GetFloat64("ENGINE_OVERLOAD_FORGIVENESS_UNITS"),
	}

	cfg.Snapshot = SnapshotConfig{
		ScheduleFile:   v.GetString("SNAPSHOT_SCHEDULE_FILE"),
		FacultyFile:    v.GetString("SNAPSHOT_FACULTY_FILE"),
		AttendanceFile: v.GetString("SNAPSHOT_ATTENDANCE_FILE"),
		GradesFile:     v.GetString("SNAPSHOT_GRADES_FILE"),
		Delimiter:      v.GetString("SNAPSHOT_DELIMITER"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENGINE_LOAD_BASELINE", 24.0)
	v.SetDefault("ENGINE_DEPT_RECENCY_DECAY", 0.75)
	v.SetDefault("ENGINE_TERM_RECENCY_DECAY", 0.8)
	v.SetDefault("ENGINE_LOGISTIC_CENTER", 0.8)
	v.SetDefault("ENGINE_LOGISTIC_SLOPE", 8.0)
	v.SetDefault("ENGINE_SIGMA_FLOOR_MINUTES", 45.0)
	v.SetDefault("ENGINE_KERNEL_BANDWIDTH_MINUTES", 60.0)
	v.SetDefault("ENGINE_NEAREST_SLOT_DECAY_MINUTES", 240.0)
	v.SetDefault("ENGINE_WEAK_MATCH_THRESHOLD", 0.5)
	v.SetDefault("ENGINE_OVERLOAD_FORGIVENESS_UNITS", 6.0)

	v.SetDefault("SNAPSHOT_SCHEDULE_FILE", "./data/schedules.csv")
	v.SetDefault("SNAPSHOT_FACULTY_FILE", "./data/faculty.csv")
	v.SetDefault("SNAPSHOT_ATTENDANCE_FILE", "")
	v.SetDefault("SNAPSHOT_GRADES_FILE", "")
	v.SetDefault("SNAPSHOT_DELIMITER", ",")
}
