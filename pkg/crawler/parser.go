package crawler

import (
	"io"

	"golang.org/x/net/html"
)

// extractLinks returns the href target of every anchor element in the
// document, in document order. Duplicates are kept; the caller deduplicates
// when building the graph. Parsing uses x/net/html rather than regexes so
// that malformed markup is handled the way browsers handle it.
func extractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return links, nil
}
