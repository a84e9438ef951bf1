package markdown

import (
	"bytes"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	chromaLightStyle = "github"
	chromaDarkStyle  = "monokai"
)

// Stylesheet holds the chroma class rules for highlighted code blocks, with a
// light and a dark variant keyed on prefers-color-scheme.
var Stylesheet = sync.OnceValue(func() string {
	var out strings.Builder
	writeSchemeCSS(&out, "light", chromaLightStyle)
	writeSchemeCSS(&out, "dark", chromaDarkStyle)
	return out.String()
})

func writeSchemeCSS(out *strings.Builder, scheme string, styleName string) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var buffer bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buffer, style); err != nil || buffer.Len() == 0 {
		return
	}

	out.WriteString("@media (prefers-color-scheme: " + scheme + ") {\n")
	out.Write(buffer.Bytes())
	out.WriteString("}\n")
}
