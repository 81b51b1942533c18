// Command mathmark converts math written between delimiters to and from the
// escaped forms blog platforms need, and ships an editor that shows both side
// by side.
package main

import (
	"github.com/alecthomas/kong"
)

const version = "0.1.0"

// CLI defines the command-line interface for mathmark.
type CLI struct {
	Globals

	Edit    EditCmd    `cmd:"" default:"1" help:"Open the side-by-side editor (default)"`
	Encode  EncodeCmd  `cmd:"" help:"Rewrite math spans into the target format"`
	Decode  DecodeCmd  `cmd:"" help:"Turn target-format tags back into delimited math"`
	Preview PreviewCmd `cmd:"" help:"Render markdown with math for the terminal"`
	HTML    HTMLCmd    `cmd:"" name:"html" help:"Export a standalone HTML page that typesets the math"`
	Formats FormatsCmd `cmd:"" help:"List target formats"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mathmark"),
		kong.Description("Math delimiter escaping for markdown blog platforms"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
