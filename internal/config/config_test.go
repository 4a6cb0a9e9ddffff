package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/match-recap/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "match-recap-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.FactStore != FactStoreMemory {
		t.Fatalf("expected memory fact store in dev, got %q", cfg.FactStore)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.DBQueryTimeout != 5*time.Second || cfg.DBMaxOpenConns != 10 {
		t.Fatalf("unexpected db defaults: timeout=%s conns=%d", cfg.DBQueryTimeout, cfg.DBMaxOpenConns)
	}

	want := AnalyticsConfig{
		PlayerMinMinutes: 300,
		GKMinMinutes:     180,
		FormWindow:       5,
		LeadersLimit:     50,
		GoalkeepersLimit: 30,
		Workers:          4,
	}
	if cfg.Analytics != want {
		t.Fatalf("unexpected analytics defaults: %+v", cfg.Analytics)
	}

	if cfg.LLM.Enabled {
		t.Fatalf("expected LLM disabled by default")
	}
	if cfg.LLM.Model != "gpt-4o-mini" || cfg.LLM.MaxTokens != 1800 || cfg.LLM.Temperature != 0.2 {
		t.Fatalf("unexpected llm defaults: %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 30*time.Second || cfg.LLM.MaxRetries != 2 {
		t.Fatalf("unexpected llm transport defaults: %+v", cfg.LLM)
	}
	if !cfg.LLM.Circuit.Enabled || cfg.LLM.Circuit.FailureThreshold != 5 {
		t.Fatalf("unexpected llm circuit defaults: %+v", cfg.LLM.Circuit)
	}
}

func TestLoad_ProdDefaultsToPostgres(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("FACT_STORE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FactStore != FactStorePostgres {
		t.Fatalf("expected postgres fact store in prod, got %q", cfg.FactStore)
	}
}

func TestLoad_FactStoreValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FACT_STORE", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown FACT_STORE")
	}
}

func TestLoad_AnalyticsOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ANALYTICS_PLAYER_MIN_MINUTES", "450")
	t.Setenv("ANALYTICS_FORM_WINDOW", "3")
	t.Setenv("ANALYTICS_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Analytics.PlayerMinMinutes != 450 || cfg.Analytics.FormWindow != 3 || cfg.Analytics.Workers != 8 {
		t.Fatalf("unexpected analytics overrides: %+v", cfg.Analytics)
	}
}

func TestLoad_AnalyticsValidation(t *testing.T) {
	cases := map[string]string{
		"ANALYTICS_FORM_WINDOW":        "0",
		"ANALYTICS_WORKERS":            "-1",
		"ANALYTICS_PLAYER_MIN_MINUTES": "abc",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_LLMRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LLM_ENABLED", "true")
	t.Setenv("LLM_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when LLM_ENABLED=true without LLM_API_KEY")
	}
}

func TestLoad_LLMConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LLM_ENABLED", "true")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("LLM_MODEL", "llama3")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_CIRCUIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.LLM.Enabled || cfg.LLM.APIKey != "sk-test" {
		t.Fatalf("unexpected llm auth config: %+v", cfg.LLM)
	}
	if cfg.LLM.BaseURL != "http://localhost:11434/v1" || cfg.LLM.Model != "llama3" {
		t.Fatalf("unexpected llm endpoint config: %+v", cfg.LLM)
	}
	if cfg.LLM.Temperature != 0.7 || cfg.LLM.Timeout != 45*time.Second {
		t.Fatalf("unexpected llm tuning: %+v", cfg.LLM)
	}
	if cfg.LLM.Circuit.Enabled {
		t.Fatalf("expected circuit disabled")
	}
}

func TestLoad_LLMTemperatureRange(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LLM_TEMPERATURE", "3.5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for out-of-range LLM_TEMPERATURE")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "chatty")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_LOG_LEVEL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-tenant=recap,uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_DurationMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_QUERY_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for DB_QUERY_TIMEOUT=0s")
	}
}

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	got := splitCSV(" https://a.example.com, ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Fatalf("unexpected split: %v", got)
	}
}
