package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"chamba_facil/internal/domain/entities"
)

const defaultPort = 3000

// Config is the immutable process configuration, loaded once at startup and
// passed explicitly into constructors. Missing payment or media credentials
// degrade the matching endpoints to error responses; they never crash the
// process.
type Config struct {
	MPAccessToken string

	// PublicURL is the externally reachable base URL used for back-urls and
	// the webhook notification url. When empty a localhost fallback derived
	// from Port is used; webhooks cannot reach that fallback from the public
	// internet, so PublicURL MUST be set in any deployed environment.
	PublicURL string
	Port      int

	CloudinaryCloudName string
	CloudinaryKey       string
	CloudinarySecret    string

	Catalog entities.Catalog

	StaticDir        string
	ActivationsTable string
}

type planConfig struct {
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
}

// Load reads configuration from the environment.
//
// Recognized variables: MP_ACCESS_TOKEN, PUBLIC_URL, PORT,
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_KEY, CLOUDINARY_SECRET, PLANS_JSON,
// DEFAULT_PLAN, STATIC_DIR, ACTIVATIONS_TABLE.
func Load() Config {
	cfg := Config{
		MPAccessToken:       strings.TrimSpace(os.Getenv("MP_ACCESS_TOKEN")),
		PublicURL:           strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_URL")), "/"),
		Port:                parsePort(os.Getenv("PORT")),
		CloudinaryCloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		CloudinaryKey:       strings.TrimSpace(os.Getenv("CLOUDINARY_KEY")),
		CloudinarySecret:    strings.TrimSpace(os.Getenv("CLOUDINARY_SECRET")),
		Catalog:             parseCatalog(os.Getenv("PLANS_JSON"), os.Getenv("DEFAULT_PLAN")),
		StaticDir:           getenvDefault("STATIC_DIR", "public"),
		ActivationsTable:    getenvDefault("ACTIVATIONS_TABLE", "profile_activations"),
	}

	if cfg.MPAccessToken == "" {
		log.Printf("[config] MP_ACCESS_TOKEN not set; checkout and webhook reconciliation are degraded")
	}
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryKey == "" || cfg.CloudinarySecret == "" {
		log.Printf("[config] Cloudinary credentials incomplete; upload signatures are degraded")
	}
	if cfg.PublicURL == "" {
		log.Printf("[config] PUBLIC_URL not set; falling back to %s (webhooks will not reach this server from the internet)", cfg.BaseURL())
	}

	return cfg
}

// BaseURL is the base for back-urls and the webhook notification url.
func (c Config) BaseURL() string {
	if c.PublicURL != "" {
		return c.PublicURL
	}
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

func (c Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryKey != "" && c.CloudinarySecret != ""
}

func parsePort(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultPort
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p <= 0 || p > 65535 {
		log.Printf("[config] invalid PORT=%q; using %d", raw, defaultPort)
		return defaultPort
	}
	return p
}

// parseCatalog builds the plan catalog from PLANS_JSON, a JSON object of
// {"plan_id": {"title": "...", "price_cents": 15000}}. Malformed input falls
// back to the built-in single-plan catalog; the variants of this service
// historically disagreed on plan values, so they are configuration here.
func parseCatalog(plansJSON, defaultPlan string) entities.Catalog {
	plansJSON = strings.TrimSpace(plansJSON)
	if plansJSON == "" {
		return entities.NewCatalog(nil, defaultPlan)
	}

	var raw map[string]planConfig
	if err := json.Unmarshal([]byte(plansJSON), &raw); err != nil {
		log.Printf("[config] invalid PLANS_JSON; using default catalog err=%v", err)
		return entities.NewCatalog(nil, defaultPlan)
	}

	plans := make(map[string]entities.Plan, len(raw))
	for id, pc := range raw {
		id = strings.TrimSpace(id)
		if id == "" || pc.PriceCents <= 0 {
			log.Printf("[config] skipping invalid plan id=%q price_cents=%d", id, pc.PriceCents)
			continue
		}
		title := strings.TrimSpace(pc.Title)
		if title == "" {
			title = id
		}
		plans[id] = entities.Plan{ID: id, Title: title, PriceCents: pc.PriceCents}
	}
	if len(plans) == 0 {
		return entities.NewCatalog(nil, defaultPlan)
	}
	return entities.NewCatalog(plans, defaultPlan)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
