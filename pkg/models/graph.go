/*
The models package defines the fundamental structures shared by the crawler
and the pagerank estimators.

LinkGraph:
The hyperlink structure of the corpus, built once by the crawler and then
shared read-only by both estimators.

Distribution:
A probability distribution over the pages of the corpus. Both the one-step
transition distributions and the final rank results have this shape.
*/
package models

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Page identifies a document in the corpus, typically its file name.
type Page string

// PageSet holds the outgoing links of a page.
type PageSet = mapset.Set[Page]

// LinkGraph maps every page in the corpus to the set of pages it links to.
// Every link target must itself be a key, and no page may link to itself;
// Validate() enforces both. Once built, a LinkGraph is never mutated.
type LinkGraph map[Page]PageSet

// NewLinkGraph() creates and returns an empty LinkGraph.
func NewLinkGraph() LinkGraph {
	return make(LinkGraph)
}

// AddPage() ensures page is a key of the graph, with no outgoing links yet.
func (g LinkGraph) AddPage(page Page) {
	if _, exists := g[page]; !exists {
		g[page] = mapset.NewSet[Page]()
	}
}

// AddLink() records a link from one page to another, adding both pages to
// the graph if needed.
func (g LinkGraph) AddLink(from, to Page) {
	g.AddPage(from)
	g.AddPage(to)
	g[from].Add(to)
}

// NumPages() returns the number of pages in the graph.
func (g LinkGraph) NumPages() int {
	return len(g)
}

// Links() returns the set of pages that page links to.
func (g LinkGraph) Links(page Page) (PageSet, error) {
	links, exists := g[page]
	if !exists {
		return nil, fmt.Errorf("links of %q: %w", page, ErrPageNotFound)
	}
	return links, nil
}

// IsDangling() returns whether page has no outgoing links. The estimators
// treat such a page as linking to every page of the corpus with equal weight.
func (g LinkGraph) IsDangling(page Page) bool {
	links := g[page]
	return links == nil || links.Cardinality() == 0
}

// Pages() returns all pages of the graph in sorted order. The stable order
// makes weighted random draws reproducible with a seeded rng and keeps the
// report output deterministic.
func (g LinkGraph) Pages() []Page {
	pages := make([]Page, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	return pages
}

// Validate() returns the appropriate error if the graph is empty or violates
// one of its invariants: a self-loop, or a link whose target is not a page
// of the corpus.
func (g LinkGraph) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGraph
	}

	for page, links := range g {
		if links == nil {
			continue
		}

		for to := range links.Iter() {
			if to == page {
				return fmt.Errorf("page %q: %w", page, ErrSelfLoop)
			}
			if _, exists := g[to]; !exists {
				return fmt.Errorf("page %q links to %q: %w", page, to, ErrDanglingLink)
			}
		}
	}

	return nil
}
