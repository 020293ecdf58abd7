package dto

import "strings"

// FileURL joins the media base URL and a stored object key. An empty key
// yields an empty URL.
func FileURL(baseURL, key string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(key, "/")
}
