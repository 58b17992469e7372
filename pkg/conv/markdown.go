package conv

import (
	stdhtml "html"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions  = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags   = html.CommonFlags | html.HrefTargetBlank
	textFlags   = html.SkipHTML
	tgPolicy    = bluemonday.NewPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

func render(md []byte, flags html.Flags) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: flags})
	return markdown.Render(p.Parse(md), renderer)
}

// MarkdownToTelegramHTML renders md and keeps only the tags Telegram's
// HTML parse mode accepts.
func MarkdownToTelegramHTML(md []byte) string {
	return string(tgPolicy.SanitizeBytes(render(md, htmlFlags)))
}

// MarkdownToText renders md for a plain terminal: markup is dropped and
// entities are decoded.
func MarkdownToText(md []byte) string {
	stripped := plainPolicy.SanitizeBytes(render(md, textFlags))
	return strings.TrimSpace(stdhtml.UnescapeString(string(stripped)))
}
