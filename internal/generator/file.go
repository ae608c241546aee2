package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"codeberg.org/mutker/errgen/internal/history"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// generatedHeader opens every file errgen writes. Files starting with it may
// be regenerated without --force.
const generatedHeader = "// Code generated by errgen. DO NOT EDIT."

// File is one planned output.
type File struct {
	Path     string
	Template string
	Request  Request
	Content  []byte
	Existing []byte
	Exists   bool
	Action   history.Action
}

// Owned reports whether the file on disk, if any, was written by errgen.
func (f File) Owned() bool {
	return !f.Exists || bytes.HasPrefix(f.Existing, []byte(generatedHeader))
}

// Checksum is the hex SHA-256 of the planned content.
func (f File) Checksum() string {
	sum := sha256.Sum256(f.Content)
	return hex.EncodeToString(sum[:])
}

// Diff returns a unified diff from the file on disk to the planned content.
// It is empty when nothing changes.
func (f File) Diff() string {
	if f.Action == history.ActionUnchanged {
		return ""
	}
	before, after := string(f.Existing), string(f.Content)
	edits := myers.ComputeEdits(span.URIFromPath(f.Path), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(f.Path, f.Path, before, edits))
}

func classify(exists bool, existing, content []byte) history.Action {
	switch {
	case !exists:
		return history.ActionCreate
	case bytes.Equal(existing, content):
		return history.ActionUnchanged
	default:
		return history.ActionUpdate
	}
}
