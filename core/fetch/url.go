package fetch

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL validates a user-supplied address, prefixing https:// for
// bare hosts. Invalid input is rejected here, before any fetch.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("URL missing")
	}
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		if strings.Contains(raw, "://") {
			return "", fmt.Errorf("unsupported scheme in %s", raw)
		}
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", raw)
	}
	return parsed.String(), nil
}
