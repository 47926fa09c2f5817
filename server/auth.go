package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"

	"usage-map-server/config"
	redisdao "usage-map-server/dao/redis"
)

// Argon2id parameters
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Auth implements the site's login gate: a shared password exchanged for a
// session cookie. With neither SITE_PASSWORD nor SITE_PASSWORD_HASH set the
// gate is disabled and every request passes through (local dev behavior).
type Auth struct {
	password     string
	passwordHash string
	sessions     *redisdao.SessionDAO
	sessionTTL   time.Duration
}

// NewAuth constructs the gate from the configured password material.
func NewAuth(password, passwordHash string, sessions *redisdao.SessionDAO) *Auth {
	if password == "" && passwordHash == "" {
		log.Println("[Auth] No site password configured, login gate disabled")
	}
	return &Auth{
		password:     password,
		passwordHash: passwordHash,
		sessions:     sessions,
		sessionTTL:   config.SESSION_TTL_HOURS * time.Hour,
	}
}

// Enabled reports whether the login gate is active.
func (a *Auth) Enabled() bool {
	return a.password != "" || a.passwordHash != ""
}

// Login handles POST /login with body {"pw": "..."}. A correct password
// yields an HttpOnly session cookie; anything else is a 401.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Pw string `json:"pw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !a.Enabled() || !a.verify(body.Pw) {
		log.Printf("[Auth] Failed login attempt from %s", r.RemoteAddr)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := a.sessions.Create(a.sessionTTL)
	if err != nil {
		log.Printf("[Auth] Failed to create session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.SESSION_COOKIE_NAME,
		Value:    token,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Middleware enforces the session cookie on every route except the login
// route and the liveness probe.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enabled() || r.URL.Path == "/login" || r.URL.Path == "/ping" {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(config.SESSION_COOKIE_NAME)
		if err == nil && a.sessions.Validate(cookie.Value) {
			next.ServeHTTP(w, r)
			return
		}

		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}

func (a *Auth) verify(pw string) bool {
	if pw == "" {
		return false
	}
	if a.passwordHash != "" {
		ok, err := VerifyPassword(pw, a.passwordHash)
		if err != nil {
			log.Printf("[Auth] Error verifying password: %v", err)
			return false
		}
		return ok
	}
	return subtle.ConstantTimeCompare([]byte(pw), []byte(a.password)) == 1
}

// HashPassword creates an Argon2id hash suitable for SITE_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argon2Memory, argon2Time, argon2Threads, b64Salt, b64Hash), nil
}

// VerifyPassword verifies a password against an Argon2id hash in the
// $argon2id$v=19$m=..,t=..,p=..$salt$hash format.
func VerifyPassword(password, hash string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("not an argon2id hash")
	}

	var memory, timeCost, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, fmt.Errorf("failed to parse hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	computedHash := argon2.IDKey([]byte(password), salt, timeCost, memory, uint8(threads), uint32(len(decodedHash)))
	return subtle.ConstantTimeCompare(decodedHash, computedHash) == 1, nil
}
