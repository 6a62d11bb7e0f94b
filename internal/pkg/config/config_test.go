package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3000, cfg.Rides.AssignmentDelayMs)
	assert.Equal(t, 5.0, cfg.Rides.SearchRadiusKm)
	assert.Equal(t, 0.20, cfg.Rides.CommissionRate)
	assert.Equal(t, 30, cfg.Rides.CallMaxDurationSeconds)
	assert.Equal(t, "USD", cfg.Wallet.Currency)
	assert.Equal(t, "simulated", cfg.Wallet.FundingProvider)
	assert.Equal(t, 5.0, cfg.Users.NearbyRadiusKm)
	assert.False(t, cfg.NewRelic.Enabled)
}

func TestInitConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("RIDES_ASSIGNMENT_DELAY_MS", "250")
	t.Setenv("WALLET_FUNDING_PROVIDER", "stripe")
	t.Setenv("NSQ_ENABLED", "true")

	cfg := InitConfig("")

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Rides.AssignmentDelayMs)
	assert.Equal(t, "stripe", cfg.Wallet.FundingProvider)
	assert.True(t, cfg.NSQ.Enabled)
}

func TestInitConfig_LoadsDotEnvInLocalMode(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	// registered with t.Setenv so the values loaded from the file are restored afterwards
	t.Setenv("APP_NAME", "")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("APP_NAME"))
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	path := filepath.Join(t.TempDir(), "rides.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=rides\nJWT_SECRET=s3cret\n"), 0o600))

	cfg := InitConfig(path)

	assert.Equal(t, "rides", cfg.App.Name)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestInitConfig_MissingDotEnvKeepsDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "local")

	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, "pullup", cfg.JWT.Issuer)
}
