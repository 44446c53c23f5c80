// Package release extracts CPI data from the published news-release page:
// a rendered document is searched for the table under a fixed heading and
// converted to trimmed rows for the normalizer.
package release

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultHeading is the caption of the expenditure-category table on the
// CPI news release.
const DefaultHeading = "Consumer Price Index for All Urban Consumers (CPI-U): U.S. city average, by expenditure category"

// ExpectedColumns are the category columns the release table must carry
// for extraction to be considered sound.
var ExpectedColumns = []string{
	"All items",
	"Food",
	"Energy",
	"All items less food and energy",
}

// Table is an extracted HTML table: header row plus data rows in document
// order, every cell trimmed.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableNotFoundError reports that no table under the wanted heading exists
// in the document.
type TableNotFoundError struct {
	Heading string
}

// Error implements the error interface
func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("no table found under heading %q", e.Heading)
}

// MalformedTableError reports a located table whose header row is missing
// expected category columns.
type MalformedTableError struct {
	Missing []string
}

// Error implements the error interface
func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("table header missing expected columns: %s", strings.Join(e.Missing, ", "))
}

// ExtractTable locates the table under heading in the rendered page and
// returns its header and data rows. Matching is whitespace-insensitive
// and case-insensitive; the heading may appear in a table caption or in
// an h1-h6 element preceding the table.
func ExtractTable(pageHTML, heading string) (*Table, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	tbl := findTable(doc, heading)
	if tbl == nil {
		return nil, &TableNotFoundError{Heading: heading}
	}

	header, rows := tableRows(tbl)

	var missing []string
	for _, want := range ExpectedColumns {
		if !containsColumn(header, want) {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, &MalformedTableError{Missing: missing}
	}

	return &Table{Header: header, Rows: rows}, nil
}

// findTable walks the document in order looking for a caption or heading
// element matching the wanted text, returning the caption's table or the
// first table after the matched heading.
func findTable(doc *html.Node, heading string) *html.Node {
	want := collapseSpace(strings.ToLower(heading))

	var found *html.Node
	headingSeen := false

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Caption:
				if matchesHeading(n, want) {
					found = ancestorTable(n)
					return
				}
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				if matchesHeading(n, want) {
					headingSeen = true
					return
				}
			case atom.Table:
				if headingSeen {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func matchesHeading(n *html.Node, want string) bool {
	text := collapseSpace(strings.ToLower(collectText(n)))
	return text != "" && strings.Contains(text, want)
}

func ancestorTable(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Table {
			return p
		}
	}
	return nil
}

// tableRows collects the table's rows. The header is the first row; tfoot
// content and single-cell footnote rows are skipped.
func tableRows(tbl *html.Node) (header []string, rows [][]string) {
	var trs []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Tfoot:
				return
			case atom.Tr:
				trs = append(trs, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(tbl)

	for _, tr := range trs {
		cells := rowCells(tr)
		if header == nil {
			header = cells
			continue
		}
		if len(cells) <= 1 {
			continue
		}
		rows = append(rows, cells)
	}
	return header, rows
}

// rowCells returns the trimmed text of each th/td cell in a row
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Th || c.DataAtom == atom.Td) {
			cells = append(cells, collapseSpace(collectText(c)))
		}
	}
	return cells
}

// collectText concatenates all text nodes beneath n
func collectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// collapseSpace trims and collapses runs of whitespace to single spaces
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsColumn(header []string, want string) bool {
	w := strings.ToLower(want)
	for _, h := range header {
		if strings.ToLower(h) == w {
			return true
		}
	}
	return false
}
