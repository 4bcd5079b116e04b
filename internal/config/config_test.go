package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "question_strategy": "static_bank", "report_log": "out.csv"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "static_bank", cfg.QuestionStrategy)
	assert.Equal(t, "out.csv", cfg.ReportLog)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValidate_RejectsUnknownStrategies(t *testing.T) {
	cfg := &Config{QuestionStrategy: "oracle"}
	require.Error(t, cfg.Validate())

	cfg = &Config{ScoringStrategy: "vibes"}
	require.Error(t, cfg.Validate())

	cfg = &Config{QuestionStrategy: "generative", ScoringStrategy: "generative_eval"}
	require.NoError(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	require.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9999, ReportLog: "custom.csv"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "custom.csv", merged.ReportLog)
	assert.Equal(t, "uploads", merged.UploadsDir)
	assert.Equal(t, "template", merged.QuestionStrategy)
}

// MergeWithDefaults has a value receiver so it can chain directly off
// constructors like FromEnv.
func TestMergeWithDefaults_ChainsFromEnv(t *testing.T) {
	t.Setenv("REPORT_LOG", "env.csv")
	t.Setenv("UPLOADS_DIR", "")

	merged := FromEnv().MergeWithDefaults(Defaults())
	assert.Equal(t, "env.csv", merged.ReportLog)
	assert.Equal(t, "uploads", merged.UploadsDir)
	assert.Equal(t, 8080, merged.Port)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 48, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
}

func TestAdminConfig_AuthenticatePlaintext(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg, err := NewAdminConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Authenticate("admin@example.com", "hunter2"))
	assert.False(t, cfg.Authenticate("admin@example.com", "wrong"))
	assert.False(t, cfg.Authenticate("other@example.com", "hunter2"))
}

func TestAdminConfig_AuthenticateHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	cfg, err := NewAdminConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Authenticate("admin@example.com", "hunter2"))
	assert.False(t, cfg.Authenticate("admin@example.com", "wrong"))
}

func TestAdminConfig_RequiresCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := NewAdminConfig()
	require.Error(t, err)
}
