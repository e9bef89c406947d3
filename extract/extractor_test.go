package extract

import (
	"strings"
	"testing"
)

func TestContentTypeFromExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want ContentType
	}{
		{"md", TypeMarkdown},
		{".markdown", TypeMarkdown},
		{"html", TypeHTML},
		{"HTM", TypeHTML},
		{"pdf", TypePDF},
		{"txt", TypePlainText},
		{"", TypePlainText},
	}
	for _, tc := range cases {
		if got := ContentTypeFromExtension(tc.ext); got != tc.want {
			t.Errorf("ContentTypeFromExtension(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestPlainTextExtractor(t *testing.T) {
	got, err := PlainTextExtractor{}.Extract([]byte("raw policy text"))
	if err != nil || got != "raw policy text" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestMarkdownExtractorStripsFormatting(t *testing.T) {
	md := "# COVERAGE\n\nWe pay for **direct** loss to the _dwelling_.\n\n" +
		"## EXCLUSIONS\n\n- flood\n- earthquake\n"
	got, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "#") || strings.Contains(got, "**") {
		t.Errorf("markdown markers not stripped: %q", got)
	}
	for _, want := range []string{"COVERAGE", "direct", "dwelling", "EXCLUSIONS", "flood"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestMarkdownExtractorKeepsHeadingLines(t *testing.T) {
	md := "# COVERAGE\n\nBody text follows the heading."
	got, err := MarkdownExtractor{}.Extract([]byte(md))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if strings.TrimSpace(lines[0]) != "COVERAGE" {
		t.Errorf("heading must stay on its own line, got %q", lines[0])
	}
}

func TestHTMLExtractor(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head><body>
<h1>EXCLUSIONS</h1><p>Flood damage is not covered.</p>
<script>var x = 1;</script></body></html>`
	got, err := HTMLExtractor{}.Extract([]byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Flood damage is not covered.") {
		t.Errorf("missing body text: %q", got)
	}
	if strings.Contains(got, "color:red") || strings.Contains(got, "var x") {
		t.Errorf("style/script leaked: %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("tags leaked: %q", got)
	}
}

func TestStripTagsEntities(t *testing.T) {
	got := stripTags("<p>Smith &amp; Co. claim &#39;approved&#39; r&eacute;sum&eacute; &#8212; final</p>")
	if !strings.Contains(got, "Smith & Co. claim 'approved'") {
		t.Errorf("entities not decoded: %q", got)
	}
	if !strings.Contains(got, "résumé — final") {
		t.Errorf("named and numeric entities not decoded: %q", got)
	}
}
