package config

import (
	"testing"

	"chamba_facil/internal/domain/entities"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"MP_ACCESS_TOKEN", "PUBLIC_URL", "PORT",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_KEY", "CLOUDINARY_SECRET",
		"PLANS_JSON", "DEFAULT_PLAN", "STATIC_DIR", "ACTIVATIONS_TABLE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected port %d, got %d", defaultPort, cfg.Port)
	}
	if cfg.BaseURL() != "http://localhost:3000" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL())
	}
	if cfg.CloudinaryConfigured() {
		t.Fatalf("expected cloudinary unconfigured")
	}
	if got := cfg.Catalog.PriceFor("anything"); got != 15000 {
		t.Fatalf("expected default catalog price 15000, got %d", got)
	}
	if cfg.StaticDir != "public" || cfg.ActivationsTable != "profile_activations" {
		t.Fatalf("unexpected defaults static=%q table=%q", cfg.StaticDir, cfg.ActivationsTable)
	}
}

func TestLoad_PublicURLTrimmed(t *testing.T) {
	t.Setenv("PUBLIC_URL", "https://chambafacil.mx/")
	t.Setenv("PORT", "8081")

	cfg := Load()

	if cfg.BaseURL() != "https://chambafacil.mx" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL())
	}
	if cfg.Port != 8081 {
		t.Fatalf("expected port 8081, got %d", cfg.Port)
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if cfg := Load(); cfg.Port != defaultPort {
		t.Fatalf("expected fallback port, got %d", cfg.Port)
	}
}

func TestParseCatalog(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		c := parseCatalog(`{"basic":{"title":"Plan básico","price_cents":499000},"professional":{"price_cents":899000}}`, "professional")
		if got := c.PriceFor("basic"); got != 499000 {
			t.Fatalf("expected 499000, got %d", got)
		}
		if got := c.PriceFor("gold"); got != 899000 {
			t.Fatalf("expected default fallback 899000, got %d", got)
		}
		// Title defaults to the plan id when omitted.
		if got := c.Resolve("professional").Title; got != "professional" {
			t.Fatalf("unexpected title %q", got)
		}
	})

	t.Run("malformed json falls back to built-in catalog", func(t *testing.T) {
		c := parseCatalog(`{"basic":`, "")
		if got := c.PriceFor(entities.DefaultPlanID); got != 15000 {
			t.Fatalf("expected built-in catalog, got %d", got)
		}
	})

	t.Run("invalid entries are skipped", func(t *testing.T) {
		c := parseCatalog(`{"":{"price_cents":100},"free":{"price_cents":0}}`, "")
		if got := c.PriceFor(entities.DefaultPlanID); got != 15000 {
			t.Fatalf("expected built-in catalog after skipping invalid plans, got %d", got)
		}
	})
}
