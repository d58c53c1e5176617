package bootstrap

import (
	"fmt"
	"net/url"
)

// Origin returns "<scheme>://<host>" for the page the process was loaded
// from, dropping path, query and fragment.
func Origin(pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("page url %q has no scheme or host", pageURL)
	}

	return u.Scheme + "://" + u.Host, nil
}
