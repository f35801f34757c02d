package gamequery

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLText returns the text content of an html fragment such as the coloured MOTD
// lines returned by the status API. Entities are decoded and runs of whitespace
// collapsed.
func HTMLText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}

	var b strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.Data == "br":
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}
