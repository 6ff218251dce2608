package cli

import "strings"

// trimHost normalizes a host flag/env/profile value: trims whitespace
// and a trailing slash, and defaults a bare host:port to http.
func trimHost(host string) string {
	host = strings.TrimSpace(host)
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		return host
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host
}
