// Package skeleton fills named placeholders in a fixed text skeleton.
//
// A placeholder is written {name}, where name is a lower-case ASCII letter
// followed by lower-case letters, digits or underscores. Anything else in
// braces, including Go composite literals such as struct{}, is left alone.
package skeleton

import (
	"regexp"
	"sort"
	"strings"

	"codeberg.org/mutker/errgen/internal/errors"
)

var placeholderRE = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Substitute replaces every placeholder that has a value in values.
// Placeholders without a value are kept verbatim. The output is not
// re-scanned, so values may themselves contain placeholder syntax.
func Substitute(skeleton string, values map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(skeleton, func(m string) string {
		if v, ok := values[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// Placeholders returns the sorted, de-duplicated placeholder names in skeleton.
func Placeholders(skeleton string) []string {
	seen := make(map[string]struct{})
	for _, m := range placeholderRE.FindAllStringSubmatch(skeleton, -1) {
		seen[m[1]] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render is the strict form of Substitute: it fails when the skeleton uses a
// placeholder that values does not define.
func Render(skeleton string, values map[string]string) (string, error) {
	var missing []string
	for _, name := range Placeholders(skeleton) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", errors.New().WithData(ErrMissingPlaceholder, strings.Join(missing, ", "))
	}
	return Substitute(skeleton, values), nil
}

// ValidIdentifier reports whether s can be spliced into a type name: an
// ASCII letter followed by ASCII letters, digits or underscores.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '_'):
		default:
			return false
		}
	}
	return true
}

// CheckIdentifier is ValidIdentifier as an error, naming the offending field.
func CheckIdentifier(field, s string) error {
	if ValidIdentifier(s) {
		return nil
	}
	return errors.New().WithData(ErrInvalidIdentifier, struct {
		Field string
		Value string
	}{
		Field: field,
		Value: s,
	})
}
