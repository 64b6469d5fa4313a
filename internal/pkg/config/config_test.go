package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	reset(t)
	t.Setenv("STORFORMAT_ADMIN_SECRET", "s3cret")
	t.Setenv("STORFORMAT_PRICING_ROUNDING_STEP_KR", "5")

	if err := Load("", ""); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := viper.GetString(constants.ViperServerAddrKey); got != ":8080" {
		t.Fatalf("server.addr = %q, want %q", got, ":8080")
	}
	if got := viper.GetDuration(constants.ViperCacheTTLKey); got != 10*time.Minute {
		t.Fatalf("cache.ttl = %v", got)
	}

	cfg := PricingDefaults()
	if cfg.RoundingStepKr != 5 || cfg.GlobalMarkupPct != 0 {
		t.Fatalf("PricingDefaults = %+v", cfg)
	}
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	reset(t)
	t.Setenv("STORFORMAT_ADMIN_SECRET", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	content := []byte("STORFORMAT_ADMIN_SECRET=from-file\nSTORFORMAT_SERVER_ADDR=:9090\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("STORFORMAT_SERVER_ADDR") })

	if err := Load(path, ""); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := viper.GetString(constants.ViperSecretKey); got != "from-env" {
		t.Fatalf("admin.secret = %q, want %q", got, "from-env")
	}
	if got := viper.GetString(constants.ViperServerAddrKey); got != ":9090" {
		t.Fatalf("server.addr = %q, want %q", got, ":9090")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	reset(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("admin:\n  secret: yaml-secret\npricing:\n  global_markup_pct: 12.5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := Load("", path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := PricingDefaults().GlobalMarkupPct; got != 12.5 {
		t.Fatalf("global markup = %v, want 12.5", got)
	}
}

func TestLoad_MissingFilesAreIgnored(t *testing.T) {
	reset(t)
	t.Setenv("STORFORMAT_ADMIN_SECRET", "x")

	dir := t.TempDir()
	if err := Load(filepath.Join(dir, ".env"), filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	reset(t)
	t.Setenv("STORFORMAT_ADMIN_SECRET", "")

	if err := Load("", ""); err == nil {
		t.Fatal("expected error without admin secret")
	}
}

func TestStringSlice_SplitsCommaLists(t *testing.T) {
	reset(t)
	viper.Set(constants.ViperKafkaBrokersKey, "a:9092, b:9092,")

	got := StringSlice(constants.ViperKafkaBrokersKey)
	if len(got) != 2 || got[0] != "a:9092" || got[1] != "b:9092" {
		t.Fatalf("StringSlice = %v", got)
	}
}
