// Package catalogue holds the embedded skeletons errgen knows how to render.
package catalogue

import (
	_ "embed"
	"sort"
	"strings"
	"unicode"

	"codeberg.org/mutker/errgen/internal/errors"
)

// Template is a file-producing skeleton. Extension, when set, is rendered
// once per extra variant and spliced into the {k_ext} placeholder.
type Template struct {
	Name      string
	Skeleton  string
	Extension string
	Suffix    string
}

// FileName returns the name of the file the template produces for title.
func (t Template) FileName(title string) string {
	return SnakeCase(title) + t.Suffix
}

//go:embed "templates/error.go.txt"
var errorTemplate string

//go:embed "templates/variant.go.txt"
var variantTemplate string

//go:embed "templates/error_test.go.txt"
var errorTestTemplate string

//go:embed "templates/variant_test.go.txt"
var variantTestTemplate string

// DefaultTemplate is rendered when a request names no template.
const DefaultTemplate = "error"

// The list of known templates
var knownTemplates = map[string]Template{
	"error": {
		Name:      "error",
		Skeleton:  errorTemplate,
		Extension: variantTemplate,
		Suffix:    "_error.go",
	},
	"error_test": {
		Name:      "error_test",
		Skeleton:  errorTestTemplate,
		Extension: variantTestTemplate,
		Suffix:    "_error_test.go",
	},
}

// Names of known templates
var knownTemplateNames []string

func init() {
	for name := range knownTemplates {
		knownTemplateNames = append(knownTemplateNames, name)
	}
	sort.Strings(knownTemplateNames)
}

// Names returns the sorted names of the known templates.
func Names() []string {
	return append([]string(nil), knownTemplateNames...)
}

// Lookup returns the template called name.
func Lookup(name string) (Template, error) {
	t, ok := knownTemplates[name]
	if !ok {
		return Template{}, errors.New().WithData(ErrTemplateNotFound, name)
	}
	return t, nil
}

// SnakeCase turns a type-name fragment into a file-name stem:
// FileIO becomes file_io, CLI becomes cli, bag stays bag.
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
