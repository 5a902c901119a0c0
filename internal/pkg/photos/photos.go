package photos

import (
	"encoding/json"
	"strings"
)

// Encode converts the legacy photo URL list to a JSON string (safe for DB)
func Encode(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(urls)
	return string(data)
}

// Decode converts the DB string back to a URL list
func Decode(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(s), &urls); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return strings.Split(s, ",")
	}
	return urls
}
