package surrealql

import "strings"

//nolint:gochecknoglobals // immutable replacer
var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\u0000`,
)

// QuoteString renders s as a single-quoted SurrealQL string literal.
func QuoteString(s string) string {
	return "'" + stringEscaper.Replace(s) + "'"
}

// QuoteIdent renders s as a backtick-escaped record identifier part.
func QuoteIdent(s string) string {
	return "`" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "`", "\\`") + "`"
}
