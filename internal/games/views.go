package games

import (
	"context"
	"fmt"
	"io"
	"strings"

	"arcade/framework"
	"arcade/framework/hashloc"
	"arcade/framework/routetable"
	"arcade/internal/markdown"
	"github.com/a-h/templ"
)

const excerptLength = 120

const homeDescription = `# Arcade

Pick a version below. Each one is a separate build of the same game,
kept side by side so they can be compared.`

var gameDescriptions = map[int]string{
	1: "# Version 1\n\nThe first playable build: a single board and the core move rules.",
	2: "# Version 2\n\nAdds scoring on top of [version 1](route://v1).",
	3: "# Version 3\n\nIntroduces levels. Press `space` to advance once a board is cleared.",
	4: "# Version 4\n\nTwo-player hot seat mode on the version 3 ruleset.",
	5: "# Version 5\n\nTimed rounds. The clock resets on every cleared board.",
	6: "# Version 6\n\nAdds power-ups and a reworked scoring table.",
	7: "# Version 7\n\nThe current build. Combines everything since [version 4](route://v4).",
}

func description(viewID routetable.ViewID) string {
	if viewID == HomeView {
		return homeDescription
	}
	for version, text := range gameDescriptions {
		if GameView(version) == viewID {
			return text
		}
	}
	return ""
}

// Views registers home and every known game version. The home view lists
// only the game routes present in routes.
func Views(routes []routetable.Entry) framework.ViewRegistry {
	registry := framework.ViewRegistry{
		HomeView: homeView(routes),
	}
	for version := range gameDescriptions {
		viewID := GameView(version)
		registry[viewID] = gameView(viewID)
	}
	return registry
}

func homeView(routes []routetable.Entry) framework.ViewRenderer {
	var cards strings.Builder
	for _, route := range routes {
		if route.ViewID == HomeView {
			continue
		}
		text := description(route.ViewID)
		title := markdown.Title(text)
		if title == "" {
			title = string(route.ViewID)
		}
		fmt.Fprintf(&cards, `<li><a href="%s">%s</a><p>%s</p></li>`,
			templ.EscapeString(hashloc.Href(route.Path)),
			templ.EscapeString(title),
			templ.EscapeString(markdown.Excerpt(text, excerptLength)),
		)
	}
	body := `<section class="home">` + string(markdown.ToHTML(homeDescription)) +
		`<ul class="games">` + cards.String() + `</ul></section>`

	return func(framework.RouteContext) templ.Component {
		return htmlComponent(body)
	}
}

// gameView renders the frame a game mounts into. What runs inside the
// data-game element is owned by the game itself.
func gameView(viewID routetable.ViewID) framework.ViewRenderer {
	text := description(viewID)
	body := string(markdown.ToHTML(text))

	return func(route framework.RouteContext) templ.Component {
		return htmlComponent(fmt.Sprintf(
			`<section class="game" data-route="%s">%s<div class="game-mount" data-game="%s"></div></section>`,
			templ.EscapeString(route.ResolvedPath),
			body,
			templ.EscapeString(string(viewID)),
		))
	}
}

func htmlComponent(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// NotFoundView is shown when a fragment names no route.
func NotFoundView(notFoundContext framework.NotFoundContext) templ.Component {
	return htmlComponent(fmt.Sprintf(
		`<section class="not-found"><h1>Nothing at %s</h1><p><a href="%s">Back to the arcade</a></p></section>`,
		templ.EscapeString(notFoundContext.RequestPath),
		templ.EscapeString(hashloc.Href("/")),
	))
}
