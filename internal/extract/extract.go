// Package extract pulls the passing statistics table out of a season page
// and flattens it into rows of plain cell text.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"
)

const (
	TableID = "passing"

	// MinCells is the narrowest row that can hold a full player line.
	MinCells = 28
)

var ErrTableNotFound = errors.New("could not find passing stats table for this year")

// RawRow is the stripped text of every cell in one table row.
type RawRow []string

// Rows parses page and returns the data rows of the passing table.
// Header and section separator rows are dropped, as is anything too short to
// be a player line or whose leading cell is empty or a repeated header.
func Rows(page string) ([]RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML")
	}

	table := findTable(doc)
	if table == nil {
		return nil, ErrTableNotFound
	}

	rows := make([]RawRow, 0)
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") || tr.HasClass("over_header") {
			return
		}

		cells := cellText(tr)
		if len(cells) < MinCells || cells[0] == "" || cells[0] == "Player" {
			return
		}
		rows = append(rows, cells)
	})

	return rows, nil
}

// HasTable reports whether page carries the passing table, live or commented out.
func HasTable(page string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return false
	}
	return findTable(doc) != nil
}

func cellText(tr *goquery.Selection) RawRow {
	cells := tr.ChildrenFiltered("th, td")
	out := make(RawRow, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		text := strings.ReplaceAll(c.Text(), "\u00a0", " ")
		out = append(out, strings.TrimSpace(text))
	})
	return out
}

// findTable looks for the live table first. Sports-reference pages ship some
// tables inside HTML comments that are only un-commented by script, so those
// are parsed as a fallback.
func findTable(doc *goquery.Document) *goquery.Selection {
	selector := "table#" + TableID
	if t := doc.Find(selector); t.Length() > 0 {
		return t.First()
	}

	for _, comment := range comments(doc.Nodes) {
		if !strings.Contains(comment, `id="`+TableID+`"`) {
			continue
		}
		inner, err := goquery.NewDocumentFromReader(strings.NewReader(comment))
		if err != nil {
			continue
		}
		if t := inner.Find(selector); t.Length() > 0 {
			return t.First()
		}
	}
	return nil
}

// comments returns the text of every comment node below roots, in document order.
func comments(roots []*html.Node) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			out = append(out, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}
