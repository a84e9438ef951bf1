package routetable

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileTable struct {
	Routes []fileRoute `toml:"route"`
}

type fileRoute struct {
	Path string `toml:"path"`
	View string `toml:"view"`
}

// Decode reads [[route]] tables from a TOML document in file order. Unknown
// keys are rejected. Paths and view ids are kept exactly as written, so
// surrounding whitespace is left for New to reject. The entries are not
// validated; pass them to New.
func Decode(data string) ([]Entry, error) {
	var raw fileTable
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode route table: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("decode route table: unknown keys: %s", strings.Join(keys, ", "))
	}

	entries := make([]Entry, 0, len(raw.Routes))
	for _, route := range raw.Routes {
		entries = append(entries, Entry{
			Path:   route.Path,
			ViewID: ViewID(route.View),
		})
	}
	return entries, nil
}

func LoadFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table %q: %w", path, err)
	}

	entries, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("load route table %q: %w", path, err)
	}

	resolver, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("load route table %q: %w", path, err)
	}
	return resolver, nil
}
