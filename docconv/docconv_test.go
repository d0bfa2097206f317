package docconv

import (
	"strings"
	"testing"
)

func TestMarkdownToHTMLBasics(t *testing.T) {
	out, err := MarkdownToHTML([]byte("# Title\n\nSome *emphasis* here.\n"))
	if err != nil {
		t.Fatal(err)
	}
	htmlOut := string(out)
	for _, want := range []string{"<h1>Title</h1>", "<em>emphasis</em>"} {
		if !strings.Contains(htmlOut, want) {
			t.Errorf("output missing %q:\n%s", want, htmlOut)
		}
	}
}

func TestMarkdownToHTMLTables(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out, err := MarkdownToHTML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Fatalf("GFM table not rendered:\n%s", out)
	}
}

func TestMarkdownToHTMLMath(t *testing.T) {
	out, err := MarkdownToHTML([]byte("$$x^2$$\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<math") {
		t.Fatalf("display math not rendered to MathML:\n%s", out)
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	out, err := HTMLToMarkdown("<h1>Title</h1><p>Body with <strong>bold</strong>.</p>")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# Title") {
		t.Errorf("missing heading in %q", out)
	}
	if !strings.Contains(out, "**bold**") {
		t.Errorf("missing bold in %q", out)
	}
}

func TestHTMLToTextStripsMarkupAndScripts(t *testing.T) {
	src := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body><p>Hello   world</p><script>alert("no")</script><p>Second  para</p></body></html>`
	out, err := HTMLToText(src)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "alert") || strings.Contains(out, "color:red") || strings.Contains(out, "ignored") {
		t.Fatalf("script/style/head leaked into text: %q", out)
	}
	if !strings.Contains(out, "Hello world") {
		t.Fatalf("whitespace not collapsed: %q", out)
	}
	if !strings.Contains(out, "Second para") {
		t.Fatalf("missing paragraph: %q", out)
	}
}

func TestHTMLToTextBlockSeparation(t *testing.T) {
	out, err := HTMLToText("<p>one</p><p>two</p>")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	var nonEmpty []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) != 2 || nonEmpty[0] != "one" || nonEmpty[1] != "two" {
		t.Fatalf("blocks = %v, want two separate lines", nonEmpty)
	}
}

func TestRoundTripMarkdown(t *testing.T) {
	src := "# Heading\n\nA paragraph.\n"
	htmlOut, err := MarkdownToHTML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	back, err := HTMLToMarkdown(string(htmlOut))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(back, "# Heading") || !strings.Contains(back, "A paragraph.") {
		t.Fatalf("round trip lost content: %q", back)
	}
}
