package htmldoc

import (
	"bytes"
	"context"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/docfold/tablegen/pkg/doctable"
)

// DefaultDocURL is the reference page the generator was built for.
const DefaultDocURL = "https://dev.twitch.tv/docs/eventsub/eventsub-reference/"

// Parser extracts table regions from an HTML documentation page. Headings
// (h2/h3) open a region; the nearest following table with no other heading in
// between belongs to that region.
type Parser struct {
	policy *bluemonday.Policy
}

// Ensure the implementation satisfies the public interface.
var _ doctable.Parser = (*Parser)(nil)

// NewParser constructs a Parser with a strict sanitisation policy so inline
// markup inside cells never leaks into cell text.
func NewParser() *Parser {
	return &Parser{policy: bluemonday.StrictPolicy()}
}

// Regions parses the document and returns its table regions in page order.
func (p *Parser) Regions(ctx context.Context, doc doctable.Document) ([]doctable.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, fmt.Errorf("htmldoc parser: document payload is empty")
	}

	root, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("htmldoc parser: parse document: %w", err)
	}

	var (
		regions []doctable.Region
		pending string
		hasOpen bool
	)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.H2, atom.H3:
				pending = p.cellText(n)
				hasOpen = true
				return
			case atom.Table:
				if hasOpen {
					if region, ok := p.tableRegion(pending, n); ok {
						regions = append(regions, region)
					}
					hasOpen = false
				}
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return regions, nil
}

// tableRegion converts a table element into a Region. The first row supplies
// the header cells; the remaining rows contribute data cells. Tables without
// rows are dropped.
func (p *Parser) tableRegion(title string, table *html.Node) (doctable.Region, bool) {
	rows := collectElements(table, atom.Tr)
	if len(rows) == 0 {
		return doctable.Region{}, false
	}

	header := p.rowCells(rows[0], atom.Th, atom.Td)

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, p.rowCells(row, atom.Td))
	}

	return doctable.Region{Title: title, Header: header, Rows: data}, true
}

func (p *Parser) rowCells(row *html.Node, cellAtoms ...atom.Atom) []string {
	var cells []string
	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		for _, a := range cellAtoms {
			if child.DataAtom == a {
				cells = append(cells, p.cellText(child))
				break
			}
		}
	}
	return cells
}

// cellText renders the cell subtree, strips every tag through the sanitiser,
// and unescapes the surviving entities. Leading whitespace (including
// non-breaking spaces) is preserved for indentation measurement.
func (p *Parser) cellText(cell *html.Node) string {
	var buf bytes.Buffer
	for child := cell.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return textContent(cell)
		}
	}
	stripped := p.policy.Sanitize(buf.String())
	return stdhtml.UnescapeString(stripped)
}

// textContent is the fallback text extraction when rendering fails.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// collectElements gathers descendant elements matching the atom in document
// order.
func collectElements(root *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return out
}
