package history

import (
	"context"
	"time"
)

// Recorder keeps track of the files errgen has written
type Recorder interface {
	Record(ctx context.Context, entries ...Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Action is what a generation run did to one file
type Action string

const (
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionUnchanged Action = "unchanged"
)

// Entry is one file touched by one generation run
type Entry struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Package   string    `json:"package" yaml:"package"`
	Title     string    `json:"title" yaml:"title"`
	Template  string    `json:"template" yaml:"template"`
	Path      string    `json:"path" yaml:"path"`
	Checksum  string    `json:"checksum" yaml:"checksum"`
	Action    Action    `json:"action" yaml:"action"`
}

func (a Action) valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionUnchanged:
		return true
	default:
		return false
	}
}
