package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.False(t, cfg.App.TrustProxy)
	assert.Equal(t, "1 0 0 * * *", cfg.Attendance.SweepSchedule)

	minutes, err := cfg.LateThresholdMinutes()
	require.NoError(t, err)
	assert.Equal(t, 9*60+15, minutes)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("LATE_THRESHOLD", "08:30")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.AllowedOrigins)
	assert.True(t, cfg.App.TrustProxy)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())

	minutes, err := cfg.LateThresholdMinutes()
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, minutes)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"missing db password", "DB_PASSWORD", "", "DB_PASSWORD is required"},
		{"missing jwt secret", "JWT_SECRET_KEY", "", "JWT_SECRET_KEY is required"},
		{"bad port", "DB_PORT", "abc", "invalid DB_PORT"},
		{"bad timezone", "APP_TIMEZONE", "Mars/Olympus", "invalid APP_TIMEZONE"},
		{"bad threshold", "LATE_THRESHOLD", "9am", "invalid LATE_THRESHOLD"},
		{"bad schedule", "SWEEP_SCHEDULE", "every night", "invalid SWEEP_SCHEDULE"},
		{"bad duration", "JWT_ACCESS_EXPIRATION_TIME", "forever", "invalid JWT_ACCESS_EXPIRATION_TIME"},
		{"bad trust proxy", "TRUST_PROXY", "maybe", "invalid TRUST_PROXY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
