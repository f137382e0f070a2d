package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PORT", "AWS_LWA_PORT", "GIN_MODE", "ENV",
	"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT",
	"SECRET_KEY", "TOKEN_TTL", "SESSION_SECRET", "SESSION_STORE", "SESSION_DB_PATH", "SESSION_MAX_AGE",
	"AUTO_MIGRATE", "SEED_DATA", "CORS_ALLOWED_ORIGINS",
}

// clearConfigEnv は空文字で上書きしてデフォルト値が使われる状態にする
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "", cfg.DBName)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, SessionStoreDB, cfg.SessionStore)
	assert.Equal(t, 12*time.Hour, cfg.SessionMaxAge)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.SeedData)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsRelease())
}

func TestLoad_FromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("AWS_LWA_PORT", "9000")
	t.Setenv("TOKEN_TTL", "90")
	t.Setenv("SESSION_STORE", "Cookie")
	t.Setenv("SESSION_MAX_AGE", "30m")
	t.Setenv("SEED_DATA", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.TokenTTL)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxAge)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_ReleaseRequiresSecrets(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GIN_MODE", "release")

	_, err := Load()
	assert.ErrorContains(t, err, "SECRET_KEY")

	t.Setenv("SECRET_KEY", "secret")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", "session-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsRelease())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{SessionStore: SessionStoreDB, TokenTTL: time.Hour}},
		{name: "unknown session store", cfg: Config{SessionStore: "redis", TokenTTL: time.Hour}, wantErr: true},
		{name: "zero ttl", cfg: Config{SessionStore: SessionStoreCookie}, wantErr: true},
		{name: "prod without secrets", cfg: Config{SessionStore: SessionStoreDB, TokenTTL: time.Hour, Env: "prod"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "", want: time.Minute},
		{value: "2h", want: 2 * time.Hour},
		{value: "45", want: 45 * time.Second},
		{value: "soon", want: time.Minute},
	}

	for _, tt := range tests {
		t.Setenv("TEST_DURATION", tt.value)
		assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION", time.Minute), tt.value)
	}
}
