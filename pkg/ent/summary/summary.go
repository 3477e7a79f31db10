// Package summary keeps the outcome of a batch run.
package summary

import (
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"
)

// Reasons of skipping an item.
const (
	ReasonLookup       = "lookup failure"
	ReasonMissingField = "missing field"
	ReasonShortRow     = "short row"
	ReasonMalformed    = "malformed identifier"
)

// Skip is an item that did not produce output.
type Skip struct {
	// Key identifies the item, an identifier or a profile key.
	Key string

	// Reason of the skip.
	Reason string

	// Err is the error message, if any.
	Err string
}

// Summary of a run.
type Summary struct {
	// Processed is the number of input items.
	Processed int

	// Written is the number of output rows or documents.
	Written int

	// Empty is the number of items that had no data.
	Empty int

	// Skipped items.
	Skipped []Skip
}

// Skip records an item that was left out.
func (s *Summary) Skip(key, reason string, err error) {
	sk := Skip{Key: key, Reason: reason}
	if err != nil {
		sk.Err = err.Error()
	}
	s.Skipped = append(s.Skipped, sk)
}

// Reasons counts skipped items per reason.
func (s *Summary) Reasons() map[string]int {
	res := make(map[string]int)
	for _, v := range s.Skipped {
		res[v.Reason]++
	}
	return res
}

// Log reports the summary with the default logger.
func (s *Summary) Log(msg string) {
	slog.Info(msg,
		"processed", humanize.Comma(int64(s.Processed)),
		"written", humanize.Comma(int64(s.Written)),
		"empty", humanize.Comma(int64(s.Empty)),
		"skipped", humanize.Comma(int64(len(s.Skipped))),
	)
	reasons := s.Reasons()
	keys := make([]string, 0, len(reasons))
	for k := range reasons {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		slog.Warn("Skipped items", "reason", k, "count", humanize.Comma(int64(reasons[k])))
	}
	for _, v := range s.Skipped {
		slog.Debug("Skipped", "key", v.Key, "reason", v.Reason, "error", v.Err)
	}
}
