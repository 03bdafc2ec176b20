package argfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Escape quotes arg for a single line of an argument file.
func Escape(arg string) string {
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		switch c := arg[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// EscapeAll escapes every argument in order.
func EscapeAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = Escape(a)
	}
	return out
}

// Unescape reverses Escape. Tokens that are not quoted are returned unchanged,
// which is how launchers treat bare words such as a main class name.
func Unescape(token string) (string, error) {
	if len(token) < 2 {
		return token, nil
	}
	quote := token[0]
	if (quote != '"' && quote != '\'') || token[len(token)-1] != quote {
		return token, nil
	}

	inner := token[1 : len(token)-1]
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == quote {
			return "", fmt.Errorf("unescaped quote at offset %d in %s", i+1, token)
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(inner) {
			return "", fmt.Errorf("dangling escape at end of %s", token)
		}
		switch inner[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'f':
			b.WriteByte('\f')
		default:
			b.WriteByte(inner[i])
		}
	}
	return b.String(), nil
}

// Parse reads an argument file and returns the decoded arguments in order.
func Parse(r io.Reader) ([]string, error) {
	var args []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		arg, err := Unescape(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		args = append(args, arg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read argument file: %w", err)
	}
	return args, nil
}

// ReadFile parses the argument file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open argument file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
