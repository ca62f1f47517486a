package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/control"
	"github.com/ja-he/alight/internal/editor"
	"github.com/ja-he/alight/internal/model"
	"github.com/ja-he/alight/internal/storage"
	"github.com/ja-he/alight/internal/transform"
)

// Flags for the `apply` command line command, for `go-flags` to parse command
// line args into.
type ApplyCommand struct {
	Tool  string `long:"tool" description:"the ID of the tool to apply (see 'tools')" value-name:"<id>" required:"true"`
	From  string `long:"from" description:"start of the range, 1-based line and column" value-name:"<line>:<col>" required:"true"`
	To    string `long:"to" description:"end of the range, 1-based line and column" value-name:"<line>:<col>" required:"true"`
	Write bool   `short:"w" long:"write" description:"write the result back to the note instead of printing it"`
	Diff  bool   `short:"d" long:"diff" description:"print a diff instead of the result"`

	Args struct {
		Note string `positional-arg-name:"<note.md>" description:"the note to apply the tool to"`
	} `positional-args:"true" required:"true"`
}

// Executes the apply command.
// (This gets called by `go-flags` when `apply` is provided on the command
// line)
func (command *ApplyCommand) Execute(args []string) error {
	envData := newEnvData(command.Args.Note)
	configData, err := readConfig(envData, config.Dark)
	if err != nil {
		return err
	}
	registry, err := newRegistry(configData)
	if err != nil {
		return err
	}

	tool, err := registry.ByID(command.Tool)
	if err != nil {
		return fmt.Errorf("unknown tool '%s' (%w)", command.Tool, err)
	}
	from, err := parseLineCol(command.From)
	if err != nil {
		return fmt.Errorf("invalid --from (%w)", err)
	}
	to, err := parseLineCol(command.To)
	if err != nil {
		return fmt.Errorf("invalid --to (%w)", err)
	}

	fileHandler := storage.NewFileHandler(command.Args.Note)
	before, err := fileHandler.Read()
	if err != nil {
		return err
	}

	after, outcome, err := applyTool(before, tool, model.DocRange{From: from, To: to}, control.SystemClipboard{})
	switch {
	case errors.Is(err, transform.ErrNoOp):
		log.Warn().Str("range", command.From+"-"+command.To).Msg("nothing to apply to (empty or whitespace-only selection)")
		return nil
	case err != nil:
		return err
	case outcome != transform.OutcomeReplaced:
		log.Info().Str("outcome", outcome.ToString()).Msg("applied")
		return nil
	}

	return command.output(os.Stdout, fileHandler, before, after)
}

func (command *ApplyCommand) output(out io.Writer, store storage.NoteStore, before, after string) error {
	switch {
	case command.Diff:
		fmt.Fprint(out, renderDiff(out, before, after))
	case !command.Write:
		fmt.Fprint(out, after)
	}
	if command.Write {
		if err := store.Write(after); err != nil {
			return err
		}
		log.Info().Str("file", command.Args.Note).Msg("wrote note")
	}
	return nil
}

// applyTool applies the tool to the given range of the text, the way it would
// be applied to a selection of that range in the editor.
func applyTool(text string, tool model.Tool, r model.DocRange, clipboard transform.Clipboard) (string, transform.Outcome, error) {
	doc := editor.NewDocument(text)
	doc.SetSelection(r)

	engine := transform.NewEngine(doc, clipboard, doc, log.Logger)
	outcome, err := engine.Apply(tool)
	if err != nil {
		return text, 0, err
	}
	return doc.Text(), outcome, nil
}

// parseLineCol parses a 1-based "line:col" position into a document position.
func parseLineCol(s string) (model.DocPos, error) {
	lineStr, colStr, found := strings.Cut(s, ":")
	if !found {
		return model.DocPos{}, fmt.Errorf("position '%s' not of the form <line>:<col>", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return model.DocPos{}, fmt.Errorf("invalid line in '%s' (%w)", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return model.DocPos{}, fmt.Errorf("invalid column in '%s' (%w)", s, err)
	}
	if line < 1 || col < 1 {
		return model.DocPos{}, fmt.Errorf("position '%s' out of range (lines and columns start at 1)", s)
	}
	return model.DocPos{Line: line - 1, Ch: col - 1}, nil
}
