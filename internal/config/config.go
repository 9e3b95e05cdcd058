package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // time expresses TTLs and refresh intervals
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The portal owns no database of its own:
// everything it serves comes from the rental backend at UpstreamURL, and
// the only local state is the Redis-backed session cache.
type Config struct {
	Env               string        // application environment (e.g. "dev", "prod")
	Port              string        // HTTP port to listen on
	UpstreamURL       string        // origin of the rental backend (scheme://host:port)
	UpstreamNamespace string        // dotted prefix of the whitelisted RPC methods
	UpstreamTimeout   time.Duration // per-request timeout for backend calls
	SessionSecret     string        // secret used to sign portal session cookies
	SessionTTL        time.Duration // lifetime of a portal session
	SessionCookie     string        // name of the portal session cookie
	BannerRefresh     time.Duration // interval of the home banner refresher
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		UpstreamURL:       must("UPSTREAM_URL"),
		UpstreamNamespace: envStr("UPSTREAM_NAMESPACE", "rental_management.api.customer_portal"),
		UpstreamTimeout:   envDur("UPSTREAM_TIMEOUT", 15*time.Second),
		SessionSecret:     must("SESSION_SECRET"),
		SessionTTL:        envDur("SESSION_TTL", 12*time.Hour),
		SessionCookie:     envStr("SESSION_COOKIE", "rental_portal_session"),
		BannerRefresh:     envDur("BANNER_REFRESH_INTERVAL", 5*time.Minute),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
