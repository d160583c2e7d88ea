package auth

import (
	"net/http"
	"strings"
	"time"
)

const (
	AccessCookieName  = "ns_access"
	RefreshCookieName = "ns_refresh"
)

type CookieConfig struct {
	Domain string
	Secure bool
}

func (cfg CookieConfig) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func SetAuthCookies(w http.ResponseWriter, cfg CookieConfig, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	http.SetCookie(w, cfg.cookie(AccessCookieName, accessToken, int(accessTTL.Seconds())))
	http.SetCookie(w, cfg.cookie(RefreshCookieName, refreshToken, int(refreshTTL.Seconds())))
}

func ClearAuthCookies(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, cfg.cookie(AccessCookieName, "", -1))
	http.SetCookie(w, cfg.cookie(RefreshCookieName, "", -1))
}

// AccessToken pulls the caller's access token from the Authorization bearer
// header, falling back to the access cookie.
func AccessToken(r *http.Request) string {
	if h := strings.TrimSpace(r.Header.Get("Authorization")); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(AccessCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
