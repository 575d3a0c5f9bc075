package site

import (
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/sheetsite/internal/config"
	"git.home.luguber.info/inful/sheetsite/internal/table"
)

// Generator runs the full pipeline: load, project columns, render, publish
// the stylesheet, write. Each run is independent; no state survives.
type Generator struct {
	cfg *config.Config
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Summary reports what a successful run produced.
type Summary struct {
	Output  string
	Rows    int
	Columns int
}

// Generate converts the input spreadsheet into a searchable HTML page at
// output. Nothing is written until rendering has succeeded, so failures leave
// no partial output behind.
func (g *Generator) Generate(input, output string) (*Summary, error) {
	tbl, err := table.Load(input, g.cfg.DelimiterRune())
	if err != nil {
		return nil, err
	}

	if g.cfg.Table.KeepBlankColumns {
		tbl = tbl.Normalize()
	} else {
		tbl, err = tbl.DropBlankColumns()
		if err != nil {
			return nil, err
		}
	}

	page := Page{
		Title:         g.cfg.Site.Title,
		Description:   g.cfg.Site.Description,
		Fonts:         g.cfg.Site.Fonts,
		ExternalStyle: g.cfg.Site.Style == config.StyleExternal,
		Updated:       time.Now().UTC(),
	}
	if g.cfg.Site.Intro != "" {
		page.IntroHTML, err = RenderIntro(g.cfg.Site.Intro)
		if err != nil {
			return nil, err
		}
	}

	doc := Render(tbl, page)

	if page.ExternalStyle {
		if err := PublishStylesheet(filepath.Dir(output), g.cfg.Site.Stylesheet); err != nil {
			return nil, err
		}
	}

	if err := WritePage(output, doc); err != nil {
		return nil, err
	}

	slog.Debug("Page generated", "input", input, "output", output,
		"rows", len(tbl.Rows), "columns", len(tbl.Headers))

	return &Summary{
		Output:  output,
		Rows:    len(tbl.Rows),
		Columns: len(tbl.Headers),
	}, nil
}
