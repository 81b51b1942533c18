package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treykane/mathmark/internal/codec"
	"github.com/treykane/mathmark/internal/config"
	"github.com/treykane/mathmark/internal/delim"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestEncodeAndDecodeCommands(t *testing.T) {
	home := setupHome(t)
	in := writeInput(t, home, "post.md", "area $\\pi r^2$\n$$\nx_1\n$$\n")
	encoded := filepath.Join(home, "out", "post.hatena")

	g := &Globals{Output: encoded}
	if err := (&EncodeCmd{File: in}).Run(g); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `area [tex:\\pi r\^2]` + "\n" + `[tex:   \\displaystyle   x\_1   ]` + "\n"
	if got := readOutput(t, encoded); got != want {
		t.Fatalf("encode output:\n got %q\nwant %q", got, want)
	}

	decoded := filepath.Join(home, "out", "post.md")
	g = &Globals{Output: decoded}
	if err := (&DecodeCmd{File: encoded}).Run(g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := readOutput(t, decoded); got != "area $\\pi r^2$\n$$\nx_1\n$$\n" {
		t.Fatalf("decode output %q", got)
	}
}

func TestFlagsOverrideSettings(t *testing.T) {
	home := setupHome(t)
	cfg := config.Default()
	cfg.InlineLeft, cfg.InlineRight = "@", "@"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	in := writeInput(t, home, "in.md", `@a@ \(b\)`)
	out := filepath.Join(home, "out.txt")

	if err := (&EncodeCmd{File: in}).Run(&Globals{Output: out}); err != nil {
		t.Fatalf("encode with settings: %v", err)
	}
	if got := readOutput(t, out); got != `[tex:a] \(b\)` {
		t.Fatalf("expected settings delimiters, got %q", got)
	}

	g := &Globals{InlineLeft: `\(`, InlineRight: `\)`, Output: out}
	if err := (&EncodeCmd{File: in}).Run(g); err != nil {
		t.Fatalf("encode with flags: %v", err)
	}
	if got := readOutput(t, out); got != `@a@ [tex:b]` {
		t.Fatalf("expected flag delimiters, got %q", got)
	}
}

func TestInvalidFlagsAreErrors(t *testing.T) {
	home := setupHome(t)
	in := writeInput(t, home, "in.md", "$a$")

	err := (&EncodeCmd{File: in}).Run(&Globals{DisplayLeft: "$", DisplayRight: "%"})
	if !errors.Is(err, delim.ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	err = (&EncodeCmd{File: in}).Run(&Globals{Target: "qiita"})
	if !errors.Is(err, codec.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if err := (&HTMLCmd{File: in}).Run(&Globals{Renderer: "texlive"}); err == nil {
		t.Fatal("expected an unknown renderer to fail")
	}
}

func TestHTMLCommandUsesFileNameAsTitle(t *testing.T) {
	home := setupHome(t)
	in := writeInput(t, home, "euler.md", "# Euler\n\n$e^{i\\pi}+1=0$\n")
	out := filepath.Join(home, "euler.html")

	if err := (&HTMLCmd{File: in}).Run(&Globals{Output: out, Renderer: "mathjax"}); err != nil {
		t.Fatalf("html: %v", err)
	}
	page := readOutput(t, out)
	for _, want := range []string{"<title>euler</title>", "mathjax", "<h1>Euler</h1>", "$e^{i\\pi}+1=0$"} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
}

func TestPreviewCommand(t *testing.T) {
	home := setupHome(t)
	t.Setenv("MATHMARK_GLAMOUR_STYLE", "notty")
	in := writeInput(t, home, "in.md", "value $a_b$ here\n")
	out := filepath.Join(home, "preview.txt")

	if err := (&PreviewCmd{File: in, Width: 60}).Run(&Globals{Output: out}); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if got := readOutput(t, out); !strings.Contains(got, "value $a_b$ here") {
		t.Fatalf("unexpected preview %q", got)
	}
}

func TestFormatsCommandMarksActiveTarget(t *testing.T) {
	home := setupHome(t)
	out := filepath.Join(home, "formats.txt")

	if err := (&FormatsCmd{}).Run(&Globals{Output: out}); err != nil {
		t.Fatalf("formats: %v", err)
	}
	if got := readOutput(t, out); got != "* hatena\n" {
		t.Fatalf("unexpected formats output %q", got)
	}
}
