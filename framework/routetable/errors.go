package routetable

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable    = errors.New("route table has no entries")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidEntry  = errors.New("invalid route entry")
)

type DuplicatePathError struct {
	Path       string
	FirstIndex int
	Index      int
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate route path %q at entries %d and %d", e.Path, e.FirstIndex, e.Index)
}

func (e *DuplicatePathError) Is(target error) bool {
	return target == ErrDuplicatePath
}

type InvalidEntryError struct {
	Index  int
	Path   string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid route entry %d (%q): %s", e.Index, e.Path, e.Reason)
}

func (e *InvalidEntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}
