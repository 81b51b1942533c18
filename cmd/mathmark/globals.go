package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/treykane/mathmark/internal/codec"
	"github.com/treykane/mathmark/internal/config"
	"github.com/treykane/mathmark/internal/delim"
	"github.com/treykane/mathmark/internal/render"
)

// Globals are flags shared by every command. A non-empty flag overrides the
// matching key of the settings file.
type Globals struct {
	InlineLeft   string `name:"inline-left" help:"Inline math opening delimiter"`
	InlineRight  string `name:"inline-right" help:"Inline math closing delimiter"`
	DisplayLeft  string `name:"display-left" help:"Display math opening delimiter"`
	DisplayRight string `name:"display-right" help:"Display math closing delimiter"`
	Target       string `short:"t" help:"Target format (see 'mathmark formats')"`
	Renderer     string `help:"Math typesetter for HTML export (katex or mathjax)"`
	Output       string `short:"o" help:"Write output to this file instead of stdout" type:"path"`
}

// env is everything a command needs once flags and settings are merged.
type env struct {
	cfg      config.Config
	set      delim.Set
	registry *codec.Registry
	codec    codec.Codec
	engine   render.Engine
}

// settings loads the settings file and applies the flag overrides on top.
// Unlike a bad settings key, a bad flag is an error.
func (g *Globals) settings() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotConfigured) {
		return cfg, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{g.InlineLeft, &cfg.InlineLeft},
		{g.InlineRight, &cfg.InlineRight},
		{g.DisplayLeft, &cfg.DisplayLeft},
		{g.DisplayRight, &cfg.DisplayRight},
		{g.Target, &cfg.Target},
		{g.Renderer, &cfg.Renderer},
	}
	for _, o := range overrides {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}

	if err := cfg.Delimiters().Validate(); err != nil {
		return cfg, fmt.Errorf("invalid delimiters: %w", err)
	}
	if _, ok := render.ParseEngine(cfg.Renderer); !ok {
		return cfg, fmt.Errorf("unknown renderer %q, want one of %v", cfg.Renderer, render.Engines())
	}
	return cfg, nil
}

func (g *Globals) env() (*env, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}
	reg := codec.Builtin()

	// cfg.Codec falls back to the default format on an unknown name. An
	// unknown --target is an error instead.
	var cdc codec.Codec
	if g.Target != "" {
		cdc, err = reg.Lookup(g.Target)
	} else {
		cdc, err = cfg.Codec(reg)
	}
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		set:      cfg.Delimiters(),
		registry: reg,
		codec:    cdc,
		engine:   cfg.Engine(),
	}, nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeOutput calls write with the output file, or stdout when no --output
// was given.
func (g *Globals) writeOutput(write func(io.Writer) error) error {
	if g.Output == "" {
		return write(os.Stdout)
	}
	if err := os.MkdirAll(filepath.Dir(g.Output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(g.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Globals) writeString(s string) error {
	return g.writeOutput(func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}
