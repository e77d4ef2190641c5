package config

import (
	"os"
	"strconv"

	"github.com/matchlens/pitchtrack/internal/analysis"
	"github.com/matchlens/pitchtrack/internal/pitch"
)

// Config holds the application configuration
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	AdminSecret string
	OutputDir   string

	PitchLength   float64
	PitchWidth    float64
	SprintSpeedMS float64
	TurnAngleDeg  float64
}

// Load reads the configuration from the environment, falling back to the
// reference defaults
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", ":8080"),
		DBPath:        getEnv("DB_PATH", "./data/sessions.db"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		AdminSecret:   getEnv("ADMIN_SECRET", "change-me-too"),
		OutputDir:     getEnv("OUTPUT_DIR", ""),
		PitchLength:   getEnvFloat("PITCH_LENGTH", pitch.DefaultLength),
		PitchWidth:    getEnvFloat("PITCH_WIDTH", pitch.DefaultWidth),
		SprintSpeedMS: getEnvFloat("SPRINT_SPEED", analysis.DefaultSprintSpeedMS),
		TurnAngleDeg:  getEnvFloat("TURN_ANGLE", analysis.DefaultTurnAngleDeg),
	}
	return cfg
}

// AnalysisConfig builds the analyzer configuration from the loaded values
func (c *Config) AnalysisConfig() analysis.Config {
	p := pitch.Pitch{Length: c.PitchLength, Width: c.PitchWidth}
	b1, b2 := p.ThirdBoundaries()
	return analysis.Config{
		SprintSpeedMS: c.SprintSpeedMS,
		TurnAngleDeg:  c.TurnAngleDeg,
		Pitch:         p,
		ZoneBoundary1: b1,
		ZoneBoundary2: b2,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
