package supabase

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Supabase API key roles.
const (
	KeyRoleAnon        = "anon"
	KeyRoleServiceRole = "service_role"
)

type keyClaims struct {
	jwt.RegisteredClaims
	Ref  string `json:"ref"`
	Role string `json:"role"`
}

// KeyInfo is what a Supabase API key says about itself.
type KeyInfo struct {
	Issuer    string
	Ref       string
	Role      string
	ExpiresAt time.Time
}

// InspectKey decodes the claims of a Supabase API key without verifying
// its signature; the project secret is not available to this tool.
func InspectKey(key string) (*KeyInfo, error) {
	claims := &keyClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return nil, fmt.Errorf("parse api key: %w", err)
	}

	info := &KeyInfo{
		Issuer: claims.Issuer,
		Ref:    claims.Ref,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the key had expired at now.
func (k *KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && now.After(k.ExpiresAt)
}

// MatchesURL reports whether the key belongs to the project at baseURL.
// Keys without a ref, and custom domains, are assumed to match.
func (k *KeyInfo) MatchesURL(baseURL string) bool {
	if k.Ref == "" {
		return true
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if !strings.HasSuffix(host, ".supabase.co") {
		return true
	}
	return strings.TrimSuffix(host, ".supabase.co") == k.Ref
}

// Warnings lists problems worth telling the operator about before the call.
func (k *KeyInfo) Warnings(baseURL string, now time.Time) []string {
	var warns []string
	if k.Expired(now) {
		warns = append(warns, fmt.Sprintf("api key expired at %s", k.ExpiresAt.Format(time.RFC3339)))
	}
	if !k.MatchesURL(baseURL) {
		warns = append(warns, fmt.Sprintf("api key belongs to project %q, not %s", k.Ref, baseURL))
	}
	return warns
}
