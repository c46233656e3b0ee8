package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names that carry
// credentials. The request logging middleware masks them explicitly and the
// masq layer below masks them again by field name.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	// bearerPattern matches "Bearer <token>" values.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// dsnURLPasswordPattern matches the userinfo password in URL-style DSNs
	// such as postgres://todo:secret@db:5432/todos.
	dsnURLPasswordPattern = regexp.MustCompile(`://[^:/@\s]+:[^@\s]+@`)

	// dsnKeywordPasswordPattern matches password=... in keyword/value DSNs
	// such as "host=db user=todo password=secret dbname=todos".
	dsnKeywordPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)
)

// newRedactAttr returns a masq ReplaceAttr that redacts credential-bearing
// fields by name and database credentials or bearer tokens by value.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+6)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("dsn"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(dsnURLPasswordPattern),
		masq.WithRegex(dsnKeywordPasswordPattern),
	)

	return masq.New(opts...)
}
