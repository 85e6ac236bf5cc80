package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceYAML = `
app:
  name: orders
  env: production
  port: 9000
kafka:
  brokers: ["k1:9092", "k2:9092"]
  password: yaml-pass
fault:
  domain: orders.example.com
  journal_enabled: true
  journal_ttl: 2h
headers:
  require_user_info: true
  skip_prefixes: ["/healthz"]
tracing:
  channel_id: web
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config_"+env+".yaml"), []byte(body), 0o600))
	t.Setenv("APP_ENV", env)
	return dir
}

func TestLoadServiceConfig(t *testing.T) {
	dir := writeConfig(t, "test", serviceYAML)
	t.Setenv("KAFKA_PASSWORD", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("SVC_FAULT_DOMAIN", "env.example.com")

	cfg, err := LoadServiceConfig(LoadOptions{ConfigPath: dir, EnvPrefix: "SVC"})
	require.NoError(t, err)

	assert.Equal(t, "orders", cfg.App.Name)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "yaml-pass", cfg.Kafka.Password)
	assert.Equal(t, "env.example.com", cfg.Fault.Domain)
	assert.True(t, cfg.Fault.JournalEnabled)
	assert.Equal(t, 2*time.Hour, cfg.Fault.JournalTTL.Duration())
	assert.True(t, cfg.Fault.IsProduction(cfg.App))
	assert.True(t, cfg.Headers.RequireUserInfo)
	assert.Equal(t, []string{"/healthz"}, cfg.Headers.SkipPrefixes)

	// defaults
	assert.Equal(t, "service-faults", cfg.Fault.JournalTopic)
	assert.Equal(t, "fault:", cfg.Fault.JournalPrefix)
	assert.Equal(t, "all", cfg.Kafka.RequiredAcks)
	assert.Equal(t, "orders", cfg.Tracing.ServiceName)
	assert.Equal(t, "web", cfg.Tracing.ChannelID)
}

func TestLoadServiceConfig_Secrets(t *testing.T) {
	dir := writeConfig(t, "secrets", serviceYAML)
	secretFile := filepath.Join(t.TempDir(), "redis-password")
	require.NoError(t, os.WriteFile(secretFile, []byte("s3cret\n"), 0o600))
	t.Setenv("REDIS_PASSWORD_FILE", secretFile)
	t.Setenv("KAFKA_PASSWORD", "env-pass")

	cfg, err := LoadServiceConfig(LoadOptions{ConfigPath: dir})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Redis.Password)
	assert.Equal(t, "env-pass", cfg.Kafka.Password)
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Setenv("APP_ENV", "absent")
	dir := t.TempDir()

	var cfg ServiceConfig
	assert.Error(t, LoadConfig(&cfg, LoadOptions{ConfigPath: dir}))
	assert.NoError(t, LoadConfig(&cfg, LoadOptions{ConfigPath: dir, AllowNoConfig: true}))
}

func TestLoadConfigWithSecrets_Required(t *testing.T) {
	dir := writeConfig(t, "required", "app:\n  name: x\n")
	t.Setenv("MISSING_SECRET", "")

	var target string
	err := LoadConfigWithSecrets(&ServiceConfig{}, []SecretDefinition{
		{Name: "MISSING_SECRET", Target: &target, Required: true},
	}, LoadOptions{ConfigPath: dir})

	var notFound *SecretNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "MISSING_SECRET", notFound.Name)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    Duration
		wantErr bool
	}{
		{"90", 90, false},
		{"30s", 30, false},
		{"1h30m", 5400, false},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFaultConfig_IsProduction(t *testing.T) {
	off := false
	assert.False(t, FaultConfig{Production: &off}.IsProduction(AppConfig{Env: "prod"}))
	assert.True(t, FaultConfig{}.IsProduction(AppConfig{Env: "Production"}))
	assert.False(t, FaultConfig{}.IsProduction(AppConfig{Env: "dev"}))
}

func TestHeaderConfig_Skips(t *testing.T) {
	var h HeaderConfig
	h.ApplyDefaults()
	assert.True(t, h.Skips("/health/live"))
	assert.True(t, h.Skips("/metrics"))
	assert.False(t, h.Skips("/orders"))

	empty := HeaderConfig{SkipPrefixes: []string{}}
	empty.ApplyDefaults()
	assert.False(t, empty.Skips("/health"))
}

func TestInjectSecrets(t *testing.T) {
	t.Setenv("TOKEN_A", "")
	t.Setenv("TOKEN_B", "")
	t.Setenv("TOKEN_C", "from-env")

	keep, def, env := "from-yaml", "", "from-yaml"
	require.NoError(t, injectSecrets([]SecretDefinition{
		{Name: "TOKEN_A", Target: &keep},
		{Name: "TOKEN_B", Target: &def, Default: "fallback"},
		{Name: "TOKEN_C", Target: &env},
	}))
	assert.Equal(t, "from-yaml", keep)
	assert.Equal(t, "fallback", def)
	assert.Equal(t, "from-env", env)
}
