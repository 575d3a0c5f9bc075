// Package site renders a table into a self-contained, searchable HTML page
// and writes it (plus an optional companion stylesheet) to disk.
package site

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/sheetsite/internal/table"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// timestampLayout matches the "ISO-like" UTC marker of the original export
// pages, e.g. "2026-08-25 14:03:07Z".
const timestampLayout = "2006-01-02 15:04:05Z"

// Page carries everything the renderer needs besides the table itself.
type Page struct {
	Title         string
	Description   string
	IntroHTML     string // pre-rendered trusted markup, may be empty
	Fonts         bool
	ExternalStyle bool
	Updated       time.Time
}

// Render produces the complete HTML document for the table. Output is fully
// deterministic for a given table and Page; only Updated varies between runs.
// All header and cell text flows through gomponents text nodes, which escape
// ampersands, angle brackets and quotes.
func Render(t *table.Table, p Page) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	_ = document(t, p).Render(&b)
	return b.String()
}

func document(t *table.Table, p Page) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(pageHead(p)...),
		html.Body(
			html.Div(
				html.Class("container"),
				html.Role("main"),
				html.H1(gomponents.Text(p.Title)),
				html.P(html.Class("meta"), gomponents.Text("Last updated (UTC): "+p.Updated.UTC().Format(timestampLayout))),
				introSection(p),
				html.Div(
					html.Class("controls"),
					html.Label(html.For("q"), html.Class("sr-only"), gomponents.Text("Search table")),
					html.Input(
						html.ID("q"),
						html.Type("search"),
						html.Aria("label", "Search table"),
						html.Placeholder("Type to search…"),
						html.AutoComplete("off"),
					),
				),
				html.Div(
					gomponents.Attr("style", "overflow:auto;"),
					dataTable(t),
				),
			),
			html.Script(gomponents.Raw(string(filterScript))),
		),
	)
}

func pageHead(p Page) []gomponents.Node {
	nodes := []gomponents.Node{
		html.Meta(html.Charset("utf-8")),
		html.Meta(html.Name("viewport"), html.Content("width=device-width,initial-scale=1")),
		html.Meta(html.Name("theme-color"), html.Content("#121212")),
	}
	if p.Description != "" {
		nodes = append(nodes, html.Meta(html.Name("description"), html.Content(p.Description)))
	}
	if p.Fonts {
		// Decorative only; the stylesheet falls back to system fonts offline.
		nodes = append(nodes,
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.googleapis.com")),
			html.Link(html.Rel("preconnect"), html.Href("https://fonts.gstatic.com"), gomponents.Attr("crossorigin")),
			html.Link(html.Rel("stylesheet"), html.Href("https://fonts.googleapis.com/css2?family=Roboto:wght@300;400;500;700&display=swap")),
		)
	}
	nodes = append(nodes, html.TitleEl(gomponents.Text(p.Title)))
	if p.ExternalStyle {
		nodes = append(nodes, html.Link(html.Rel("stylesheet"), html.Href(StylesheetName)))
	} else {
		nodes = append(nodes, html.StyleEl(gomponents.Raw(string(defaultStylesheet))))
	}
	return nodes
}

func introSection(p Page) gomponents.Node {
	if p.IntroHTML == "" {
		return nil
	}
	return html.Div(html.Class("intro"), gomponents.Raw(p.IntroHTML))
}

func dataTable(t *table.Table) gomponents.Node {
	width := len(t.Headers)

	headerCells := make([]gomponents.Node, width)
	for i, h := range t.Headers {
		headerCells[i] = html.Th(gomponents.Text(h))
	}

	bodyRows := make([]gomponents.Node, len(t.Rows))
	for r, row := range t.Rows {
		cells := make([]gomponents.Node, width)
		for c := 0; c < width; c++ {
			// Rows shorter than the header render empty cells rather than
			// breaking the grid.
			var v string
			if c < len(row) {
				v = row[c]
			}
			cells[c] = html.Td(gomponents.Text(v))
		}
		bodyRows[r] = html.Tr(cells...)
	}

	return html.Table(
		html.ID("tbl"),
		html.Role("table"),
		html.Aria("label", "Sheet data"),
		html.THead(html.Tr(headerCells...)),
		html.TBody(bodyRows...),
	)
}
