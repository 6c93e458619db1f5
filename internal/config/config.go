package config

import (
	"os"
	"time"
)

// Catalog list ordering policies. The source data reads the same either way;
// pick one and it applies to both catalog endpoints.
const (
	CatalogSortTitle  = "title"
	CatalogSortNewest = "newest"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SiteURL       string

	GoogleClientID     string
	GoogleClientSecret string

	// TokenInfoURL overrides the provider's tokeninfo endpoint when set
	// (local fakes, tests); empty means the real Google endpoint.
	TokenInfoURL string

	// Bounded wait for the identity provider; exceeding it fails the login.
	IdentityTimeout time.Duration

	CatalogSort string

	// Directory holding the built client shell (index.html + assets).
	AppDir string
}

func Load() *Config {
	cfg := &Config{
		Port:               getenv("PORT", "3000"),
		DatabaseURL:        getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=mediaboard port=5432 sslmode=disable"),
		SessionSecret:      getenv("SESSION_SECRET", "secret_key_change_me"),
		SiteURL:            getenv("SITE_URL", "http://localhost:3000"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		TokenInfoURL:       os.Getenv("GOOGLE_TOKENINFO_URL"),
		IdentityTimeout:    10 * time.Second,
		CatalogSort:        getenv("CATALOG_SORT", CatalogSortTitle),
		AppDir:             getenv("APP_DIR", "./dist"),
	}
	if cfg.CatalogSort != CatalogSortNewest {
		cfg.CatalogSort = CatalogSortTitle
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
