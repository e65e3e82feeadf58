package htmltable

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/coursesched/internal/core/domain"
	"github.com/custodia-labs/coursesched/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.TableParser = (*Parser)(nil)

// Parser extracts the rows of one identified table.
type Parser struct {
	tableID     string
	containerID string
	enc         encoding.Encoding
}

// Option configures a Parser.
type Option func(*Parser)

// WithContainer restricts the table lookup to the element with this id.
func WithContainer(id string) Option {
	return func(p *Parser) {
		p.containerID = id
	}
}

// WithEncoding sets the charset the pages were saved in.
func WithEncoding(enc encoding.Encoding) Option {
	return func(p *Parser) {
		if enc != nil {
			p.enc = enc
		}
	}
}

// New creates a parser for the table with the given id.
func New(tableID string, opts ...Option) *Parser {
	p := &Parser{
		tableID: tableID,
		enc:     unicode.UTF8,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LookupEncoding resolves a WHATWG encoding label such as "utf-8" or "windows-1256".
func LookupEncoding(label string) (encoding.Encoding, error) {
	if strings.TrimSpace(label) == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, domain.ErrInvalidInput)
	}
	return enc, nil
}

// Rows returns every row of the table, header row first.
func (p *Parser) Rows(content []byte) ([][]string, error) {
	doc, err := html.Parse(strings.NewReader(p.decode(content)))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	root := doc
	if p.containerID != "" {
		root = findByID(doc, p.containerID, 0)
		if root == nil {
			return nil, fmt.Errorf("container #%s: %w", p.containerID, domain.ErrTableNotFound)
		}
	}

	table := findByID(root, p.tableID, atom.Table)
	if table == nil {
		return nil, fmt.Errorf("table #%s: %w", p.tableID, domain.ErrTableNotFound)
	}

	var rows [][]string
	collectRows(table, &rows)
	return rows, nil
}

// decode converts content to UTF-8. A byte order mark wins over the
// configured charset and invalid sequences become U+FFFD.
func (p *Parser) decode(content []byte) string {
	dec := unicode.BOMOverride(p.enc.NewDecoder())
	out, _, err := transform.Bytes(dec, content)
	if err != nil {
		out = content
	}
	return string(bytes.ToValidUTF8(out, []byte("�")))
}

// findByID returns the first element in document order with the id.
// A zero tag matches any element.
func findByID(n *html.Node, id string, tag atom.Atom) *html.Node {
	if n.Type == html.ElementNode && (tag == 0 || n.DataAtom == tag) && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collectRows appends the rows that belong to table, skipping nested tables.
func collectRows(n *html.Node, rows *[][]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Table:
			continue
		case atom.Tr:
			*rows = append(*rows, rowCells(c))
		default:
			collectRows(c, rows)
		}
	}
}

func rowCells(tr *html.Node) []string {
	cells := []string{}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, cellText(c))
		}
	}
	return cells
}

// cellText joins the cell's text with whitespace runs collapsed.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte(' ')
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
