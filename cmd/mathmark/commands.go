package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/mathmark/internal/app"
	"github.com/treykane/mathmark/internal/codec"
	"github.com/treykane/mathmark/internal/render"
)

// EditCmd runs the interactive editor.
type EditCmd struct{}

func (c *EditCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	e.cfg.Target = e.codec.Name()
	m, err := app.New(e.cfg, e.registry)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// EncodeCmd rewrites math spans into the target format.
type EncodeCmd struct {
	File string `arg:"" optional:"" help:"Markdown file to read (default stdin)"`
}

func (c *EncodeCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	src, err := readInput(c.File)
	if err != nil {
		return err
	}
	return g.writeString(codec.EncodeAll(e.codec, src, e.set))
}

// DecodeCmd turns target-format tags back into delimited math.
type DecodeCmd struct {
	File string `arg:"" optional:"" help:"Escaped file to read (default stdin)"`
}

func (c *DecodeCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	src, err := readInput(c.File)
	if err != nil {
		return err
	}
	return g.writeString(codec.DecodeAll(e.codec, src, e.set))
}

// PreviewCmd renders markdown for the terminal.
type PreviewCmd struct {
	File  string `arg:"" optional:"" help:"Markdown file to read (default stdin)"`
	Width int    `short:"w" default:"80" help:"Word-wrap width"`
}

func (c *PreviewCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	src, err := readInput(c.File)
	if err != nil {
		return err
	}
	out, err := render.Terminal(render.SafeMarkdown(src, e.set), c.Width)
	if err != nil {
		return err
	}
	return g.writeString(out)
}

// HTMLCmd exports a standalone page.
type HTMLCmd struct {
	File  string `arg:"" optional:"" help:"Markdown file to read (default stdin)"`
	Title string `help:"Page title (default: file name)"`
}

func (c *HTMLCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	src, err := readInput(c.File)
	if err != nil {
		return err
	}
	title := c.Title
	if title == "" && c.File != "" && c.File != "-" {
		title = strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	}
	page := render.Page{
		Title:  title,
		Source: src,
		Set:    e.set,
		Engine: e.engine,
	}
	return g.writeOutput(func(w io.Writer) error {
		return render.WriteHTML(w, page)
	})
}

// FormatsCmd lists the registered target formats, marking the active one.
type FormatsCmd struct{}

func (c *FormatsCmd) Run(g *Globals) error {
	e, err := g.env()
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, name := range e.registry.Names() {
		marker := " "
		if name == e.codec.Name() {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, name)
	}
	return g.writeString(b.String())
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	return g.writeString("mathmark " + version + "\n")
}
