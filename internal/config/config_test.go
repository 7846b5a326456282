package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/weakspot/internal/llm"
)

// isolate points every lookup at an empty temp dir and clears provider
// keys so the host environment cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(PathEnvVar, "")
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"WEAKSPOT_DB_PATH", "WEAKSPOT_REFERENCE_PATH", "WEAKSPOT_LOG_LEVEL", "WEAKSPOT_LLM_PROVIDER",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "", cfg.ReferencePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.LLM.Enabled())
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, "claude-haiku", cfg.LLM.Anthropic.Model)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "weakspot.yaml"), `
db_path: /var/lib/weakspot.db
reference_path: data/records.csv
log:
  level: debug
  format: json
llm:
  provider: openai
  timeout: 45s
  openai:
    api_key: sk-file
    model: gpt-4.1-mini
  retry:
    max_attempts: 5
`)
	t.Setenv("WEAKSPOT_LOG_LEVEL", "warn")
	t.Setenv("WEAKSPOT_LLM_OPENAI_API_KEY", "sk-env")
	t.Setenv("WEAKSPOT_LLM_RETRY_INITIAL_WAIT", "250ms")

	cfg, err := Load(Options{Path: path, DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/weakspot.db", cfg.DBPath)
	assert.Equal(t, "data/records.csv", cfg.ReferencePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-env", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.Retry.InitialWait)
}

func TestLoad_PathFromEnvVar(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "alt.yaml"), "db_path: /tmp/alt.db\n")
	t.Setenv(PathEnvVar, path)

	cfg, err := Load(Options{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alt.db", cfg.DBPath)
}

func TestLoad_DefaultPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "weakspot", "config.yaml"), "log:\n  format: json\n")

	cfg, err := Load(Options{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	dotenv := writeFile(t, filepath.Join(dir, ".env"), "WEAKSPOT_DB_PATH=/tmp/dotenv.db\n")
	t.Cleanup(func() { os.Unsetenv("WEAKSPOT_DB_PATH") })

	cfg, err := Load(Options{DotEnv: dotenv})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dotenv.db", cfg.DBPath)
}

func TestLoad_DiscoversProvider(t *testing.T) {
	dir := isolate(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(Options{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)
	missingEnv := filepath.Join(dir, "missing.env")

	_, err := Load(Options{Path: filepath.Join(dir, "nope.yaml"), DotEnv: missingEnv})
	assert.Error(t, err, "explicit missing file")

	bad := writeFile(t, filepath.Join(dir, "bad.yaml"), "log:\n  level: loud\n")
	_, err = Load(Options{Path: bad, DotEnv: missingEnv})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")

	keyless := writeFile(t, filepath.Join(dir, "keyless.yaml"), "llm:\n  provider: anthropic\n")
	_, err = Load(Options{Path: keyless, DotEnv: missingEnv})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEAKSPOT_LLM_ANTHROPIC_API_KEY")

	unknown := writeFile(t, filepath.Join(dir, "unknown.yaml"), "llm:\n  provider: cohere\n")
	_, err = Load(Options{Path: unknown, DotEnv: missingEnv})
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"WEAKSPOT_DB_PATH", "db_path"},
		{"WEAKSPOT_REFERENCE_PATH", "reference_path"},
		{"WEAKSPOT_LOG_LEVEL", "log.level"},
		{"WEAKSPOT_LLM_PROVIDER", "llm.provider"},
		{"WEAKSPOT_LLM_TIMEOUT", "llm.timeout"},
		{"WEAKSPOT_LLM_OPENAI_BASE_URL", "llm.openai.base_url"},
		{"WEAKSPOT_LLM_OPENROUTER_API_KEY", "llm.openrouter.api_key"},
		{"WEAKSPOT_LLM_RETRY_MAX_ATTEMPTS", "llm.retry.max_attempts"},
		{"WEAKSPOT_CONFIG", ""},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
