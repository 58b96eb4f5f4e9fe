package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the request headers the server must never
// log. The request logging middleware masks them by name and the masq
// redactor below masks log attributes with the same keys.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute keys masked wherever they appear. "dsn" covers
// database URLs that embed a password.
var sensitiveFields = []string{"password", "secret", "token", "dsn"}

var sensitivePrefixes = []string{"secret_", "api_key"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated segments of 10+ characters, so version strings pass.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr builds the ReplaceAttr hook installed by New. Keys are
// matched by name and prefix, string values by pattern, and struct fields
// tagged masq:"secret" (config.DatabaseConfig.DSN) are masked when a config
// value is logged whole.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	patterns := []*regexp.Regexp{bearerPattern, jwtPattern, apiKeyInlinePattern}
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(patterns)+1)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range patterns {
		opts = append(opts, masq.WithRegex(re))
	}
	opts = append(opts, masq.WithTag("secret"))

	return masq.New(opts...)
}
