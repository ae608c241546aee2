package skeleton_test

import (
	"testing"

	"codeberg.org/mutker/errgen/internal/errors"
	"codeberg.org/mutker/errgen/internal/skeleton"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errorSkeleton = `type {title_name}Error struct{}

func ({title_name}Error) DomainError() {}
{k_ext}`

func TestSubstitute(t *testing.T) {
	out := skeleton.Substitute(errorSkeleton, map[string]string{
		"title_name": "Bag",
		"k_ext":      "",
	})

	assert.Equal(t, "type BagError struct{}\n\nfunc (BagError) DomainError() {}\n", out)
}

func TestSubstituteKeepsUnknown(t *testing.T) {
	out := skeleton.Substitute("{a} {b} {Upper} { spaced } {}", map[string]string{"a": "1"})
	assert.Equal(t, "1 {b} {Upper} { spaced } {}", out)
}

func TestSubstituteIsSinglePass(t *testing.T) {
	out := skeleton.Substitute("{a}{b}", map[string]string{
		"a": "{b}",
		"b": "x",
	})
	assert.Equal(t, "{b}x", out)
}

func TestPlaceholders(t *testing.T) {
	got := skeleton.Placeholders(errorSkeleton + "{title_name}{package}")
	want := []string{"k_ext", "package", "title_name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, skeleton.Placeholders("func() struct{} { return struct{}{} }"))
}

func TestRenderMissing(t *testing.T) {
	_, err := skeleton.Render(errorSkeleton, map[string]string{"title_name": "Bag"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, skeleton.ErrMissingPlaceholder))
	assert.Contains(t, err.Error(), "k_ext")

	out, err := skeleton.Render(errorSkeleton, map[string]string{"title_name": "Bag", "k_ext": "// ext\n"})
	require.NoError(t, err)
	assert.Contains(t, out, "// ext")
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"Bag", "bag", "FileIO", "Compiler2", "a_b", "X"}
	invalid := []string{"", "2fast", "_bag", "has space", "tab\t", "dash-ed", "ünï", "Bag{}"}

	for _, s := range valid {
		assert.True(t, skeleton.ValidIdentifier(s), s)
		assert.NoError(t, skeleton.CheckIdentifier("title", s))
	}
	for _, s := range invalid {
		assert.False(t, skeleton.ValidIdentifier(s), s)
		err := skeleton.CheckIdentifier("title", s)
		assert.True(t, errors.HasCode(err, skeleton.ErrInvalidIdentifier), s)
	}
}
