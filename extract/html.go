package extract

import (
	"bytes"
	"html"
	"net/url"
	"strings"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"
)

// HTMLExtractor extracts the main readable content from an HTML document
// using readability, falling back to plain tag stripping when the page has
// no identifiable article body.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(content []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(content), &url.URL{})
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return strings.TrimSpace(article.TextContent), nil
	}
	return stripTags(string(content)), nil
}

// stripTags removes markup, script, and style content, keeping text nodes.
func stripTags(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))

	inTag := false
	skipDepth := 0 // inside <script> or <style>
	var tag strings.Builder

	i := 0
	for i < len(content) {
		r, size := utf8.DecodeRuneInString(content[i:])

		switch {
		case r == '<':
			inTag = true
			tag.Reset()
		case r == '>' && inTag:
			inTag = false
			raw := tag.String()
			closing := strings.HasPrefix(raw, "/")
			name := strings.ToLower(strings.TrimPrefix(raw, "/"))
			if idx := strings.IndexAny(name, " \t\n/"); idx >= 0 {
				name = name[:idx]
			}
			if name == "script" || name == "style" {
				if closing {
					if skipDepth > 0 {
						skipDepth--
					}
				} else {
					skipDepth++
				}
			}
			// Block-level tags break the text flow.
			switch name {
			case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr":
				sb.WriteByte('\n')
			}
		case inTag:
			tag.WriteRune(r)
		case skipDepth == 0:
			sb.WriteRune(r)
		}
		i += size
	}

	return strings.TrimSpace(html.UnescapeString(sb.String()))
}
