package markdown

import (
	stdhtml "html"
	"html/template"
	"io"
	"strings"
	"unicode"

	"arcade/framework/hashloc"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	md "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Links written as route://v2 become fragment hrefs into the route table.
const routeLinkPrefix = "route://"

const lastGoodBreakRatio = 0.8

type linkKind int

const (
	linkLocal linkKind = iota
	linkRoute
	linkExternal
)

func parse(input string) ast.Node {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	return p.Parse([]byte(input))
}

func ToHTML(input string) template.HTML {
	if strings.TrimSpace(input) == "" {
		return template.HTML("")
	}

	doc := parse(input)
	normalizeLinks(doc)

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags | mdhtml.SkipHTML,
		RenderNodeHook: renderNodeHook,
	})

	return template.HTML(md.Render(doc, renderer))
}

// Title returns the text of the first heading, or "" when there is none.
func Title(input string) string {
	var title string
	ast.WalkFunc(parse(input), func(node ast.Node, entering bool) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !entering || !ok || title != "" {
			return ast.GoToNext
		}
		title = collapseSpace(plainText(heading))
		return ast.Terminate
	})
	return title
}

// Excerpt flattens everything except headings and code blocks to plain text
// and cuts it to maxChars runes, preferring a word boundary.
func Excerpt(input string, maxChars int) string {
	if maxChars < 1 || strings.TrimSpace(input) == "" {
		return ""
	}

	var parts []string
	for _, child := range parse(input).GetChildren() {
		switch child.(type) {
		case *ast.Heading, *ast.CodeBlock, *ast.HorizontalRule:
			continue
		}
		if text := plainText(child); strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	return truncateRunes(collapseSpace(strings.Join(parts, " ")), maxChars)
}

func plainText(node ast.Node) string {
	var out strings.Builder
	ast.WalkFunc(node, func(current ast.Node, entering bool) ast.WalkStatus {
		switch current.(type) {
		case *ast.Image:
			return ast.SkipChildren
		case *ast.Softbreak, *ast.Hardbreak:
			out.WriteByte(' ')
			return ast.GoToNext
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if !entering {
				out.WriteByte(' ')
			}
			return ast.GoToNext
		}
		if leaf := current.AsLeaf(); entering && leaf != nil {
			out.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	return out.String()
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncateRunes(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	truncateAt := maxChars
	minBreak := int(float64(maxChars) * lastGoodBreakRatio)
	for idx := maxChars - 1; idx >= minBreak; idx-- {
		if unicode.IsSpace(runes[idx]) {
			truncateAt = idx
			break
		}
	}

	truncated := strings.TrimSpace(string(runes[:truncateAt]))
	if truncated == "" {
		truncated = strings.TrimSpace(string(runes[:maxChars]))
	}

	return truncated + "..."
}

func normalizeLinks(doc ast.Node) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		link, ok := node.(*ast.Link)
		if !ok {
			return ast.GoToNext
		}

		href, kind := transformLink(string(link.Destination))
		link.Destination = []byte(href)
		link.AdditionalAttributes = applyLinkAttributes(link.AdditionalAttributes, kind)

		return ast.GoToNext
	})
}

func transformLink(href string) (string, linkKind) {
	switch {
	case strings.HasPrefix(href, routeLinkPrefix):
		return hashloc.Href(strings.TrimPrefix(href, routeLinkPrefix)), linkRoute
	case strings.HasPrefix(href, "#"):
		return href, linkRoute
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href, linkExternal
	default:
		return href, linkLocal
	}
}

func applyLinkAttributes(existing []string, kind linkKind) []string {
	attrs := make([]string, 0, len(existing)+2)
	for _, attr := range existing {
		normalized := strings.ToLower(strings.TrimSpace(attr))
		if strings.HasPrefix(normalized, "target=") || strings.HasPrefix(normalized, "rel=") {
			continue
		}
		attrs = append(attrs, attr)
	}

	// Route links stay in the tab so the fragment change drives navigation.
	if kind == linkExternal {
		attrs = append(attrs, `target="_blank"`, `rel="noopener noreferrer"`)
	}

	return attrs
}

func renderNodeHook(writer io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	if !entering {
		return ast.GoToNext, false
	}

	switch typedNode := node.(type) {
	case *ast.CodeBlock:
		renderCodeBlock(writer, typedNode)
		return ast.SkipChildren, true
	case *ast.Code:
		renderInlineCode(writer, typedNode)
		return ast.SkipChildren, true
	default:
		return ast.GoToNext, false
	}
}

func renderCodeBlock(writer io.Writer, block *ast.CodeBlock) {
	code := string(block.Literal)
	lexer := pickLexer(codeLanguage(block.Info), code)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		renderPlainCodeBlock(writer, code)
		return
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(writer, styles.Fallback, iterator); err != nil {
		renderPlainCodeBlock(writer, code)
	}
}

func renderInlineCode(writer io.Writer, code *ast.Code) {
	_, _ = io.WriteString(writer, `<code class="inline-code">`)
	_, _ = io.WriteString(writer, stdhtml.EscapeString(string(code.Literal)))
	_, _ = io.WriteString(writer, `</code>`)
}

func renderPlainCodeBlock(writer io.Writer, code string) {
	_, _ = io.WriteString(writer, `<pre class="chroma"><code>`)
	_, _ = io.WriteString(writer, stdhtml.EscapeString(code))
	_, _ = io.WriteString(writer, `</code></pre>`)
}

func pickLexer(language string, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}

	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}

	return lexers.Fallback
}

func codeLanguage(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
