package games

import (
	"fmt"
	"sort"
	"strings"

	"arcade/framework/routetable"
)

const (
	HomeView routetable.ViewID = "home"

	ProfileExtended = "extended"
	ProfileClassic  = "classic"

	DefaultProfile = ProfileExtended
)

const (
	classicGameCount  = 4
	extendedGameCount = 7
)

func GameView(version int) routetable.ViewID {
	return routetable.ViewID(fmt.Sprintf("game-v%d", version))
}

func GamePath(version int) string {
	return fmt.Sprintf("/v%d", version)
}

func table(gameCount int) []routetable.Entry {
	entries := make([]routetable.Entry, 0, gameCount+1)
	entries = append(entries, routetable.Entry{Path: "/", ViewID: HomeView})
	for version := 1; version <= gameCount; version++ {
		entries = append(entries, routetable.Entry{Path: GamePath(version), ViewID: GameView(version)})
	}
	return entries
}

// Routes is the current table: home plus seven games.
func Routes() []routetable.Entry {
	return table(extendedGameCount)
}

// ClassicRoutes is the earlier four-game table, kept as a selectable profile.
func ClassicRoutes() []routetable.Entry {
	return table(classicGameCount)
}

var profiles = map[string]func() []routetable.Entry{
	ProfileExtended: Routes,
	ProfileClassic:  ClassicRoutes,
}

func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Profile(name string) ([]routetable.Entry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultProfile
	}

	build, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown route profile %q (available: %s)", name, strings.Join(Profiles(), ", "))
	}
	return build(), nil
}

func NewResolver(profile string) (*routetable.Resolver, error) {
	entries, err := Profile(profile)
	if err != nil {
		return nil, err
	}

	resolver, err := routetable.New(entries...)
	if err != nil {
		return nil, fmt.Errorf("build %q route table: %w", profile, err)
	}
	return resolver, nil
}
