// Package binding fills ${path.to.value} placeholders in deck metadata.
//
// A path walks nested maps by key and slices by [index]. A placeholder may
// carry a fallback after a pipe, ${source.stem|Untitled}, used when the path
// does not resolve or resolves to an empty string.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/balintv/txt2ppt/layout"
)

var (
	exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	stepPattern = regexp.MustCompile(`^([^\[\]]*)((?:\[[^\[\]]*\])*)$`)
)

// Interpolate replaces ${path} in text with values from data.
// Placeholders that do not resolve and have no fallback are left as they are.
func Interpolate(text string, data any) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := match[2 : len(match)-1]
		path, fallback, hasFallback := strings.Cut(expr, "|")
		path = strings.TrimSpace(path)
		if path != "" && data != nil {
			if val, ok := Lookup(data, path); ok {
				if s := fmt.Sprint(val); s != "" || !hasFallback {
					return s
				}
			}
		}
		if hasFallback {
			return strings.TrimSpace(fallback)
		}
		return match
	})
}

// Meta interpolates every text field of meta into a new value.
func Meta(meta layout.DocumentMeta, data any) layout.DocumentMeta {
	out := layout.DocumentMeta{
		Title:   Interpolate(meta.Title, data),
		Author:  Interpolate(meta.Author, data),
		Subject: Interpolate(meta.Subject, data),
		Creator: Interpolate(meta.Creator, data),
	}
	for _, k := range meta.Keywords {
		out.Keywords = append(out.Keywords, Interpolate(k, data))
	}
	return out
}

// Lookup resolves a dotted path such as "lines[1][0]" or "source.name".
func Lookup(data any, path string) (any, bool) {
	current := data
	for _, step := range strings.Split(path, ".") {
		m := stepPattern.FindStringSubmatch(step)
		if m == nil {
			return nil, false
		}
		var ok bool
		if m[1] != "" {
			if current, ok = field(current, m[1]); !ok {
				return nil, false
			}
		}
		for _, idx := range splitIndexes(m[2]) {
			i, err := strconv.Atoi(idx)
			if err != nil {
				return nil, false
			}
			if current, ok = element(current, i); !ok {
				return nil, false
			}
		}
	}
	return current, true
}

// splitIndexes turns "[0][12]" into ["0", "12"].
func splitIndexes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.Trim(s, "[]"), "][")
}

func field(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case map[string]string:
		val, ok := c[key]
		return val, ok
	}
	return nil, false
}

func element(current any, i int) (any, bool) {
	switch c := current.(type) {
	case []any:
		if i >= 0 && i < len(c) {
			return c[i], true
		}
	case []string:
		if i >= 0 && i < len(c) {
			return c[i], true
		}
	}
	return nil, false
}
