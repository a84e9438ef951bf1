// Package routetable holds a static, ordered table of exact paths mapped to
// view identifiers and answers which view a requested path belongs to.
//
// A Resolver is immutable once built, so Resolve may be called from any
// number of goroutines without synchronization.
package routetable

import "strings"

type ViewID string

type Entry struct {
	Path   string
	ViewID ViewID
}

// Result is either Matched(viewID) or NotFound. The zero value is NotFound.
type Result struct {
	viewID  ViewID
	matched bool
}

func Matched(viewID ViewID) Result {
	return Result{viewID: viewID, matched: true}
}

func NotFound() Result {
	return Result{}
}

func (r Result) Matched() bool {
	return r.matched
}

func (r Result) ViewID() ViewID {
	return r.viewID
}

func (r Result) String() string {
	if !r.matched {
		return "NotFound"
	}
	return "Matched(" + string(r.viewID) + ")"
}

type Resolver struct {
	entries []Entry
}

func New(entries ...Entry) (*Resolver, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	// Duplicates are reported before any other entry problem.
	if err := checkDuplicates(entries); err != nil {
		return nil, err
	}
	for idx, entry := range entries {
		if err := validateEntry(idx, entry); err != nil {
			return nil, err
		}
	}

	table := make([]Entry, len(entries))
	copy(table, entries)
	return &Resolver{entries: table}, nil
}

func MustNew(entries ...Entry) *Resolver {
	resolver, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return resolver
}

func checkDuplicates(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for idx, entry := range entries {
		if first, ok := seen[entry.Path]; ok {
			return &DuplicatePathError{Path: entry.Path, FirstIndex: first, Index: idx}
		}
		seen[entry.Path] = idx
	}
	return nil
}

func validateEntry(idx int, entry Entry) error {
	if entry.Path == "" {
		return &InvalidEntryError{Index: idx, Path: entry.Path, Reason: "path is empty"}
	}
	if !strings.HasPrefix(entry.Path, "/") {
		return &InvalidEntryError{Index: idx, Path: entry.Path, Reason: "path must start with /"}
	}
	if strings.TrimSpace(string(entry.ViewID)) == "" {
		return &InvalidEntryError{Index: idx, Path: entry.Path, Reason: "view id is empty"}
	}
	return nil
}

// Resolve compares requestedPath exactly against the table in declaration
// order. A miss is reported as NotFound, never as an error.
func (resolver *Resolver) Resolve(requestedPath string) Result {
	for _, entry := range resolver.entries {
		if entry.Path == requestedPath {
			return Matched(entry.ViewID)
		}
	}
	return NotFound()
}

func (resolver *Resolver) Len() int {
	return len(resolver.entries)
}

func (resolver *Resolver) Entries() []Entry {
	out := make([]Entry, len(resolver.entries))
	copy(out, resolver.entries)
	return out
}

func (resolver *Resolver) Paths() []string {
	out := make([]string, 0, len(resolver.entries))
	for _, entry := range resolver.entries {
		out = append(out, entry.Path)
	}
	return out
}

// ViewIDs lists each distinct view once, in first-declared order.
func (resolver *Resolver) ViewIDs() []ViewID {
	seen := make(map[ViewID]struct{}, len(resolver.entries))
	out := make([]ViewID, 0, len(resolver.entries))
	for _, entry := range resolver.entries {
		if _, ok := seen[entry.ViewID]; ok {
			continue
		}
		seen[entry.ViewID] = struct{}{}
		out = append(out, entry.ViewID)
	}
	return out
}
