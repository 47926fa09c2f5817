package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Google Sheets upstream
const SHEETS_ENDPOINT_BASE = "https://docs.google.com"
const SHEETS_CSV_EXPORT_FORMAT = "/spreadsheets/d/%s/gviz/tq?tqx=out:csv"

// Fallback sheet used when SHEET_ID is unset.
const DEFAULT_SHEET_ID = "1Oxj8FXI9h4czJMP5C18gl_AlGa1TOALk1xkgX77VBUI"

// Booking endpoint limits
const BODY_SNIPPET_MAX_CHARS = 300
const DEBUG_CSV_PREVIEW_CHARS = 200

// Map view
const MAP_POLL_INTERVAL_SECONDS = 30
const MAX_INTENSITY_COUNT = 5

// Sessions
const SESSION_COOKIE_NAME = "microsite_auth"
const SESSION_TTL_HOURS = 12

// Server
const DEFAULT_PORT = "8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const HOTSPOTS_RESOURCE = "hotspots.json"
const BOOKINGS_SAMPLE_RESOURCE = "bookings_sample.json"
const SHEET_SAMPLE_RESOURCE = "sheet_sample.csv"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// SheetID returns the configured spreadsheet id, falling back to the
// built-in demo sheet when SHEET_ID is unset.
func SheetID() string {
	if id := os.Getenv("SHEET_ID"); id != "" {
		return id
	}
	return DEFAULT_SHEET_ID
}

// SitePassword returns the shared site password, empty when unset.
func SitePassword() string {
	return os.Getenv("SITE_PASSWORD")
}

// SitePasswordHash returns the argon2id hash of the site password, if
// configured. Takes precedence over SITE_PASSWORD during login checks.
func SitePasswordHash() string {
	return os.Getenv("SITE_PASSWORD_HASH")
}

// RedisAddr returns the Redis address for session storage. Empty means
// sessions are kept in-memory (single instance, dev-friendly).
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DEFAULT_PORT
}
