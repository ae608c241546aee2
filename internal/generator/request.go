package generator

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/mutker/errgen/internal/catalogue"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/skeleton"
)

// Request describes one error module to generate.
type Request struct {
	// Title prefixes every generated name: Bag gives BagError, BagResult...
	Title string
	// Package is the package clause of the generated files.
	Package string
	// Dir is where the files go, relative to the generator root.
	Dir string
	// Variants are extra error variants on top of ExternalError.
	Variants []string
	// Templates selects the catalogue entries to render.
	Templates []string
}

// Names a variant may not take because the error template already declares
// {title}<name>.
var reservedVariants = map[string]struct{}{
	"External":      {},
	"ExternalError": {},
	"Error":         {},
	"ErrorKind":     {},
	"ErrorFrom":     {},
	"Result":        {},
	"Status":        {},
}

// Normalize fills in defaults: exported title and variants, a package named
// after the title, a directory named after the package and the default
// template.
func (r Request) Normalize() Request {
	r.Title = exported(strings.TrimSpace(r.Title))
	if r.Package == "" {
		r.Package = strings.ToLower(r.Title)
	}
	if r.Dir == "" {
		r.Dir = r.Package
	}

	variants := make([]string, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, exported(strings.TrimSpace(v)))
	}
	r.Variants = variants

	if len(r.Templates) == 0 {
		r.Templates = []string{catalogue.DefaultTemplate}
	}
	return r
}

// Validate checks that the request can be rendered into compiling Go.
func (r Request) Validate() error {
	errFactory := errors.New()

	if err := skeleton.CheckIdentifier("title", r.Title); err != nil {
		return err
	}
	if !validPackage(r.Package) {
		return errFactory.WithData(ErrInvalidRequest, struct {
			Field string
			Value string
		}{
			Field: "package",
			Value: r.Package,
		})
	}

	seen := make(map[string]struct{}, len(r.Variants))
	for _, v := range r.Variants {
		if err := skeleton.CheckIdentifier("variant", v); err != nil {
			return err
		}
		if _, ok := reservedVariants[v]; ok {
			return errFactory.WithData(ErrReservedName, v)
		}
		if _, ok := seen[v]; ok {
			return errFactory.WithData(ErrDuplicateName, v)
		}
		seen[v] = struct{}{}
	}

	templates := make(map[string]struct{}, len(r.Templates))
	for _, name := range r.Templates {
		if _, err := catalogue.Lookup(name); err != nil {
			return err
		}
		if _, ok := templates[name]; ok {
			return errFactory.WithData(ErrDuplicateName, name)
		}
		templates[name] = struct{}{}
	}
	return nil
}

func exported(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// validPackage accepts lower-case identifiers that are not Go keywords.
func validPackage(s string) bool {
	if !skeleton.ValidIdentifier(s) || token.IsKeyword(s) {
		return false
	}
	return strings.ToLower(s) == s
}
