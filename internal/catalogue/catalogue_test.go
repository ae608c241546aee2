package catalogue_test

import (
	"testing"

	"codeberg.org/mutker/errgen/internal/catalogue"
	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/skeleton"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	if diff := cmp.Diff([]string{"error", "error_test"}, catalogue.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	names := catalogue.Names()
	names[0] = "mutated"
	assert.Equal(t, "error", catalogue.Names()[0], "Names must return a copy")
}

func TestLookup(t *testing.T) {
	tmpl, err := catalogue.Lookup(catalogue.DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, "bag_error.go", tmpl.FileName("Bag"))

	_, err = catalogue.Lookup("nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, catalogue.ErrTemplateNotFound))
}

func TestSkeletonPlaceholders(t *testing.T) {
	want := map[string][]string{
		"error":      {"import_path", "k_ext", "package", "title_name"},
		"error_test": {"k_ext", "package", "title_name"},
	}

	for _, name := range catalogue.Names() {
		tmpl, err := catalogue.Lookup(name)
		require.NoError(t, err)

		assert.Equal(t, want[name], skeleton.Placeholders(tmpl.Skeleton), name)
		assert.Equal(t, []string{"title_name", "variant"}, skeleton.Placeholders(tmpl.Extension), name)
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Bag":       "bag",
		"bag":       "bag",
		"FileIO":    "file_io",
		"CLI":       "cli",
		"HTTPProxy": "http_proxy",
		"Compiler2": "compiler2",
		"VmState":   "vm_state",
	}
	for in, want := range cases {
		assert.Equal(t, want, catalogue.SnakeCase(in), in)
	}
}
