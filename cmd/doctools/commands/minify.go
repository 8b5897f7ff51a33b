package commands

import "github.com/krachkiste/doctools/internal/cli"

// MinifyCmd implements the 'minify' command.
type MinifyCmd struct {
	Input  string `arg:"" optional:"" name:"input_file" help:"HTML file to read"`
	Output string `arg:"" optional:"" name:"output_file" help:"File to write the minified HTML to"`
}

// Run executes the minify command.
func (m *MinifyCmd) Run(g *Global) error {
	return cli.RunMinify(g.Context, "doctools minify", m.Input, m.Output)
}
