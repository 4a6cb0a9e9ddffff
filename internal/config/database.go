package config

import "net/url"

// DatabaseURL returns DB_URL with disable_prepared_binary_result=yes added
// when DB_DISABLE_PREPARED_BINARY_RESULT is on and the URL does not set it.
func (c Config) DatabaseURL() string {
	return normalizeDBURL(c.DBURL, c.DBDisablePreparedBinary)
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
