// Package cli provides the command-line interface for alight.
package cli

// CommandLineOpts are the command line options, for `go-flags` to parse
// command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	EditCommand    EditCommand    `command:"edit" description:"annotate a note in the terminal" subcommands-optional:"true"`
	ApplyCommand   ApplyCommand   `command:"apply" description:"apply a tool to a range of a note" subcommands-optional:"true"`
	ToolsCommand   ToolsCommand   `command:"tools" description:"list the available tools" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"show the program version" subcommands-optional:"true"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts
