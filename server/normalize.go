package server

import (
	"net"
	"net/url"
	"strings"

	"github.com/ipiloni/phishintel/types"
)

const localhostPort = "8080"

// NormalizeAppURL turns the configured application URL into the value
// reported by /api/config/url.
//
// An empty value yields types.DefaultBackendURL. A value without scheme gets
// http:// when it points at localhost or 127.0.0.1 and https:// otherwise.
// A localhost host without explicit port gets port 8080.
func NormalizeAppURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return types.DefaultBackendURL
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if strings.Contains(lower, "localhost") || strings.Contains(value, "127.0.0.1") {
			value = "http://" + value
		} else {
			value = "https://" + value
		}
	}

	u, err := url.Parse(value)
	if err != nil {
		return value
	}

	if strings.EqualFold(u.Hostname(), "localhost") && u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), localhostPort)
		return u.String()
	}

	return value
}
