package routetable

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sevenGameTable() []Entry {
	entries := []Entry{{Path: "/", ViewID: "home"}}
	for idx := 1; idx <= 7; idx++ {
		entries = append(entries, Entry{
			Path:   fmt.Sprintf("/v%d", idx),
			ViewID: ViewID(fmt.Sprintf("game-v%d", idx)),
		})
	}
	return entries
}

func TestResolveMatchesDeclaredPath(t *testing.T) {
	resolver, err := New(
		Entry{Path: "/", ViewID: "home"},
		Entry{Path: "/v1", ViewID: "game-v1"},
	)
	require.NoError(t, err)

	result := resolver.Resolve("/v1")
	assert.True(t, result.Matched())
	assert.Equal(t, ViewID("game-v1"), result.ViewID())
	assert.Equal(t, Matched("game-v1"), result)
}

func TestResolveMissIsNotFound(t *testing.T) {
	resolver, err := New(
		Entry{Path: "/", ViewID: "home"},
		Entry{Path: "/v1", ViewID: "game-v1"},
	)
	require.NoError(t, err)

	result := resolver.Resolve("/v9")
	assert.False(t, result.Matched())
	assert.Equal(t, NotFound(), result)
	assert.Equal(t, "NotFound", result.String())
}

func TestResolveSevenGameTable(t *testing.T) {
	resolver, err := New(sevenGameTable()...)
	require.NoError(t, err)

	assert.Equal(t, Matched("game-v7"), resolver.Resolve("/v7"))
	assert.Equal(t, NotFound(), resolver.Resolve("/v8"))
	assert.Equal(t, 8, resolver.Len())
}

func TestResolveIsExact(t *testing.T) {
	resolver := MustNew(sevenGameTable()...)

	tests := []struct {
		name string
		path string
	}{
		{name: "trailing slash", path: "/v1/"},
		{name: "empty", path: ""},
		{name: "missing leading slash", path: "v1"},
		{name: "upper case", path: "/V1"},
		{name: "surrounding space", path: " /v1"},
		{name: "fragment marker", path: "#/v1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, resolver.Resolve(tc.path).Matched())
		})
	}
}

func TestResolveMatchesIffEntryPresent(t *testing.T) {
	entries := sevenGameTable()
	resolver := MustNew(entries...)

	declared := make(map[string]ViewID, len(entries))
	for _, entry := range entries {
		declared[entry.Path] = entry.ViewID
		assert.Equal(t, Matched(entry.ViewID), resolver.Resolve(entry.Path))
	}

	for _, probe := range []string{"/v0", "/v8", "/home", "/v1/extra", "//"} {
		_, ok := declared[probe]
		require.False(t, ok)
		assert.Equal(t, NotFound(), resolver.Resolve(probe), probe)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	resolver := MustNew(sevenGameTable()...)

	for _, path := range []string{"/", "/v3", "/missing"} {
		assert.Equal(t, resolver.Resolve(path), resolver.Resolve(path))
	}
}

func TestResolveIgnoresEntryOrder(t *testing.T) {
	entries := sevenGameTable()
	reversed := make([]Entry, len(entries))
	for idx, entry := range entries {
		reversed[len(entries)-1-idx] = entry
	}
	rotated := append(append([]Entry{}, entries[3:]...), entries[:3]...)

	base := MustNew(entries...)
	for _, permuted := range [][]Entry{reversed, rotated} {
		other := MustNew(permuted...)
		for _, path := range []string{"/", "/v1", "/v4", "/v7", "/v8", ""} {
			assert.Equal(t, base.Resolve(path), other.Resolve(path), path)
		}
	}
}

func TestNewRejectsDuplicatePath(t *testing.T) {
	_, err := New(
		Entry{Path: "/", ViewID: "home"},
		Entry{Path: "/", ViewID: "home2"},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePath))

	var dupErr *DuplicatePathError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "/", dupErr.Path)
	assert.Equal(t, 0, dupErr.FirstIndex)
	assert.Equal(t, 1, dupErr.Index)
}

func TestNewRejectsDuplicateAnywhere(t *testing.T) {
	base := sevenGameTable()
	for idx := range base {
		t.Run(fmt.Sprintf("insert at %d", idx), func(t *testing.T) {
			entries := append([]Entry{}, base[:idx]...)
			entries = append(entries, Entry{Path: "/v5", ViewID: "shadow"})
			entries = append(entries, base[idx:]...)

			_, err := New(entries...)
			require.ErrorIs(t, err, ErrDuplicatePath)
		})
	}
}

func TestNewReportsDuplicateBeforeInvalidEntry(t *testing.T) {
	tests := []struct {
		name       string
		entries    []Entry
		path       string
		firstIndex int
		index      int
	}{
		{
			name: "invalid entry before duplicate",
			entries: []Entry{
				{Path: "/", ViewID: "home"},
				{Path: "", ViewID: "x"},
				{Path: "/", ViewID: "home2"},
			},
			path:       "/",
			firstIndex: 0,
			index:      2,
		},
		{
			name: "repeated relative path",
			entries: []Entry{
				{Path: "v1", ViewID: "a"},
				{Path: "v1", ViewID: "b"},
			},
			path:       "v1",
			firstIndex: 0,
			index:      1,
		},
		{
			name: "repeated empty path",
			entries: []Entry{
				{Path: "/", ViewID: "home"},
				{Path: "", ViewID: ""},
				{Path: "", ViewID: "other"},
			},
			path:       "",
			firstIndex: 1,
			index:      2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.entries...)
			require.ErrorIs(t, err, ErrDuplicatePath)
			assert.NotErrorIs(t, err, ErrInvalidEntry)

			var dupErr *DuplicatePathError
			require.ErrorAs(t, err, &dupErr)
			assert.Equal(t, tc.path, dupErr.Path)
			assert.Equal(t, tc.firstIndex, dupErr.FirstIndex)
			assert.Equal(t, tc.index, dupErr.Index)
		})
	}
}

func TestNewRejectsEmptyTable(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = New([]Entry{}...)
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "empty path", entry: Entry{Path: "", ViewID: "home"}},
		{name: "relative path", entry: Entry{Path: "v1", ViewID: "game-v1"}},
		{name: "empty view", entry: Entry{Path: "/v1", ViewID: " "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(Entry{Path: "/", ViewID: "home"}, tc.entry)
			require.ErrorIs(t, err, ErrInvalidEntry)

			var entryErr *InvalidEntryError
			require.ErrorAs(t, err, &entryErr)
			assert.Equal(t, 1, entryErr.Index)
		})
	}
}

func TestMustNewPanicsOnMisconfiguration(t *testing.T) {
	assert.Panics(t, func() { MustNew() })
}

func TestEntriesReturnsCopy(t *testing.T) {
	resolver := MustNew(sevenGameTable()...)

	entries := resolver.Entries()
	entries[1].ViewID = "mutated"

	assert.Equal(t, Matched("game-v1"), resolver.Resolve("/v1"))
	assert.Equal(t, []string{"/", "/v1", "/v2", "/v3", "/v4", "/v5", "/v6", "/v7"}, resolver.Paths())
}

func TestViewIDsDeduplicates(t *testing.T) {
	resolver := MustNew(
		Entry{Path: "/", ViewID: "home"},
		Entry{Path: "/index", ViewID: "home"},
		Entry{Path: "/v1", ViewID: "game-v1"},
	)

	assert.Equal(t, []ViewID{"home", "game-v1"}, resolver.ViewIDs())
}

func TestResolveConcurrent(t *testing.T) {
	resolver := MustNew(sevenGameTable()...)

	var wg sync.WaitGroup
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := 0; idx < 200; idx++ {
				if !resolver.Resolve("/v7").Matched() {
					t.Error("expected /v7 to resolve")
					return
				}
			}
		}()
	}
	wg.Wait()
}
