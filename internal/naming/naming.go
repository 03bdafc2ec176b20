// Package naming derives file and task names from user-chosen run names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// BaseName converts a run name to upper camel case, dropping characters that
// are not letters or digits. "game test-server" becomes "GameTestServer".
func BaseName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, name)
	return strcase.ToCamel(strings.TrimSpace(cleaned))
}

// NameOf builds prefix + BaseName(run) + Suffix with a lower-case first letter.
// NameOf("prepare", "client", "run") is "prepareClientRun"; NameOf("", "client", "runVmArgs.txt")
// is "clientRunVmArgs.txt".
func NameOf(prefix, run, suffix string) string {
	return uncapitalize(prefix + BaseName(run) + capitalize(suffix))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
