package httpserver

import (
	"context"
	"io"
	"strings"

	"arcade/framework/engine"
	"github.com/a-h/templ"
)

const shellMountID = "view"

// shellScript is the host side of hash navigation: it maps location.hash to
// the view endpoint and mounts whatever comes back.
const shellScript = `(function () {
  var mount = document.getElementById("` + shellMountID + `");
  function load() {
    fetch("` + viewPath + `?path=" + encodeURIComponent(location.hash || "#/"))
      .then(function (res) {
        var redirect = res.headers.get("` + headerRouteRedirect + `");
        if (redirect) { history.replaceState(null, "", redirect); }
        if (res.status === 204) { return null; }
        return res.text();
      })
      .then(function (html) { if (html !== null) { mount.innerHTML = html; } });
  }
  window.addEventListener("hashchange", load);
  load();
})();`

func shellDocument(title string, stylesheet string, routes []engine.RouteInfo) templ.Component {
	var nav strings.Builder
	for _, route := range routes {
		nav.WriteString(`<a href="`)
		nav.WriteString(templ.EscapeString(route.Href))
		nav.WriteString(`" data-view="`)
		nav.WriteString(templ.EscapeString(string(route.ViewID)))
		nav.WriteString(`">`)
		nav.WriteString(templ.EscapeString(route.Path))
		nav.WriteString(`</a>`)
	}

	document := `<!doctype html><html><head><meta charset="utf-8"><title>` +
		templ.EscapeString(title) + `</title>`
	if strings.TrimSpace(stylesheet) != "" {
		document += `<style>` + strings.ReplaceAll(stylesheet, "</", `<\/`) + `</style>`
	}
	document += `</head><body><nav>` + nav.String() +
		`</nav><main id="` + shellMountID + `"></main><script>` + shellScript +
		`</script></body></html>`

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, document)
		return err
	})
}
