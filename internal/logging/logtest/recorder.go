// Package logtest provides a logging.Logger that keeps entries in memory.
package logtest

import (
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Entry is one recorded log call.
type Entry struct {
	Level string
	Msg   string
	Args  []any
	Err   error
}

// Recorder implements logging.Logger.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Debug(msg string, args ...any) { r.add(Entry{Level: "debug", Msg: msg, Args: args}) }
func (r *Recorder) Info(msg string, args ...any)  { r.add(Entry{Level: "info", Msg: msg, Args: args}) }
func (r *Recorder) Error(msg string, args ...any) { r.add(Entry{Level: "error", Msg: msg, Args: args}) }

func (r *Recorder) Exception(err error, msg string, args ...any) {
	r.add(Entry{Level: "exception", Msg: msg, Args: args, Err: err})
}

func (r *Recorder) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns the recorded entries at level, or all of them when level
// is empty.
func (r *Recorder) Entries(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Entry
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry at level has a message containing s.
func (r *Recorder) Contains(level, s string) bool {
	return slices.ContainsFunc(r.Entries(level), func(e Entry) bool {
		return strings.Contains(e.Msg, s)
	})
}
