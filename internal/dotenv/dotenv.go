// Package dotenv reads KEY=value files into the process environment.
package dotenv

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// Load sets every variable from filename that is not already set.
func Load(filename string) error {
	return apply(filename, false)
}

// Overload is Load, but values from the file replace existing ones.
func Overload(filename string) error {
	return apply(filename, true)
}

// LoadFirst loads the first of paths that exists and returns it.
// It returns an empty path and no error when none exist.
func LoadFirst(paths ...string) (string, error) {
	for _, p := range paths {
		err := Load(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return p, err
	}
	return "", nil
}

func apply(filename string, override bool) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	vars, err := Parse(f)
	if err != nil {
		return err
	}
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set && !override {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads KEY=value pairs from r. Blank lines, comments, lines without
// '=' and lines with an empty key are skipped. A leading "export " is
// dropped, one pair of matching quotes is removed and a '#' after
// whitespace outside quotes starts a comment.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := parseLine(sc.Text())
		if ok {
			vars[key] = value
		}
	}
	return vars, sc.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
	if !found || key == "" {
		return "", "", false
	}
	return key, unquote(stripComment(value)), true
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
		return v[1 : len(v)-1]
	}
	return v
}

func stripComment(s string) string {
	var quote rune
	afterSpace := true
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '#' && afterSpace:
			return strings.TrimSpace(s[:i])
		}
		afterSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(s)
}
