package utils

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Render substitutes {{key}} placeholders in tmpl with values. Unknown
// placeholders render as empty strings. Spaces inside the braces are allowed.
func Render(tmpl string, values map[string]string) string {
	return fasttemplate.ExecuteFuncString(tmpl, "{{", "}}", func(w io.Writer, tag string) (int, error) {
		return w.Write([]byte(values[strings.TrimSpace(tag)]))
	})
}

// Unescape turns the \t and \n escapes accepted on the command line into
// real tabs and newlines.
func Unescape(s string) string {
	return strings.NewReplacer(`\t`, "\t", `\n`, "\n").Replace(s)
}
