package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCallback(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "/"},
		{"relative path", "/admin/events", "/admin/events"},
		{"relative with query", "/admin/events?page=2", "/admin/events?page=2"},
		{"root", "/", "/"},
		{"absolute same look", "https://center.local/admin", "/admin"},
		{"absolute with query", "https://evil.com/admin?x=1", "/admin?x=1"},
		{"protocol relative", "//evil.com/admin", "/"},
		{"protocol relative bare host", "//evil.com", "/"},
		{"backslash trick", "/\\evil.com", "/"},
		{"no leading slash", "admin/events", "/"},
		{"bare host", "evil.com", "/"},
		{"invalid url", "://///", "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeCallback(tc.in))
		})
	}
}
