// Package transform turns a text selection and an annotation tool into the
// replacement text and applies it to a host editor.
package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/ja-he/alight/internal/model"
)

// ErrNoOp is returned when applying a tool does not (and must not) change the
// document, e.g. because the selection is empty or whitespace-only, or because
// the tool has no replacement semantics.
var ErrNoOp = errors.New("no-op")

// CursorAdvance is the number of columns the cursor is moved past the
// replacement, landing just past a two-character closing marker like '**'.
// It is the same for all tools.
const CursorAdvance = 2

// Outcome describes what applying a tool did.
type Outcome int

const (
	_ Outcome = iota
	// OutcomeReplaced means the selection was replaced.
	OutcomeReplaced
	// OutcomeCopied means the selection was copied to the clipboard.
	OutcomeCopied
	// OutcomeUndone means the host's undo was invoked.
	OutcomeUndone
)

// ToString returns a human-readable name of the outcome.
func (o Outcome) ToString() string {
	switch o {
	case OutcomeReplaced:
		return "replaced"
	case OutcomeCopied:
		return "copied"
	case OutcomeUndone:
		return "undone"
	}
	return "none"
}

// Replacement is the result of transforming a selection.
type Replacement struct {
	// Text replaces the full selection, including its outer whitespace.
	Text string
	// CursorAdvance is how far the cursor should move past the position the
	// host puts it at after replacing.
	CursorAdvance int
}

// markupPattern matches angle-bracket tags and the markdown emphasis
// characters.
var markupPattern = regexp.MustCompile(`<[^>]*>|[*~=]`)

// StripMarkup removes all angle-bracket tags and every '*', '~' and '='
// character.
//
// NOTE: this is crude; it also removes such characters where they were not
// markup, e.g. in "a = b".
func StripMarkup(s string) string {
	return markupPattern.ReplaceAllString(s, "")
}

// Highlight wraps the text in a highlight of the given color.
func Highlight(text, color string) string {
	return fmt.Sprintf(`<mark style="background: %s;">%s</mark>`, color, text)
}

// FillTemplate substitutes the text for the placeholder in the pattern.
// Only the pattern's placeholder is substituted; placeholders in the text are
// left as they are.
func FillTemplate(pattern, text string) string {
	return strings.Replace(pattern, model.TemplatePlaceholder, text, 1)
}

// Compute determines the replacement for the selected text under the given
// tool.
//
// Outer whitespace of the selection is kept outside the markup. Returns
// ErrNoOp if the selection has no non-whitespace content or the tool does not
// replace text (copy, undo).
func Compute(selected string, tool model.Tool) (Replacement, error) {
	span := model.SplitSelection(selected)
	if span.Body == "" {
		return Replacement{}, ErrNoOp
	}

	var body string
	switch t := tool.(type) {
	case model.HighlightTool:
		body = Highlight(span.Body, t.Color)
	case model.TemplateTool:
		body = FillTemplate(t.Pattern, span.Body)
	case model.ActionTool:
		switch t.Op {
		case model.ActionClear:
			body = StripMarkup(span.Body)
		case model.ActionCopy, model.ActionUndo:
			return Replacement{}, ErrNoOp
		default:
			return Replacement{}, fmt.Errorf("tool '%s' has unknown action op %d", t.ID(), t.Op)
		}
	default:
		return Replacement{}, fmt.Errorf("unhandled tool type %T", tool)
	}

	return Replacement{
		Text:          span.Join(body),
		CursorAdvance: CursorAdvance,
	}, nil
}

// Engine applies tools to the selection of an editor.
type Engine struct {
	editor    Editor
	clipboard Clipboard
	commands  Commands

	log zerolog.Logger
}

// NewEngine returns a new engine operating on the given host capabilities.
func NewEngine(editor Editor, clipboard Clipboard, commands Commands, logger zerolog.Logger) *Engine {
	return &Engine{
		editor:    editor,
		clipboard: clipboard,
		commands:  commands,
		log:       logger.With().Str("component", "transform").Logger(),
	}
}

// Apply applies the tool to the editor's current selection.
//
// Returns ErrNoOp (and leaves the document untouched) for empty or
// whitespace-only selections. Copy and undo do not replace the selection but
// report OutcomeCopied and OutcomeUndone respectively.
func (e *Engine) Apply(tool model.Tool) (Outcome, error) {
	selected := e.editor.Selection()
	if model.SplitSelection(selected).Body == "" {
		return 0, ErrNoOp
	}

	if action, ok := tool.(model.ActionTool); ok {
		switch action.Op {
		case model.ActionCopy:
			// the original text, outer whitespace included
			if err := e.clipboard.WriteText(selected); err != nil {
				return 0, fmt.Errorf("could not write to clipboard (%w)", err)
			}
			return OutcomeCopied, nil
		case model.ActionUndo:
			if err := e.commands.Invoke(CommandUndo); err != nil {
				return 0, fmt.Errorf("could not invoke undo (%w)", err)
			}
			return OutcomeUndone, nil
		}
	}

	replacement, err := Compute(selected, tool)
	if err != nil {
		return 0, err
	}

	e.editor.ReplaceSelection(replacement.Text)
	target := AdvanceCursor(e.editor, replacement.CursorAdvance)
	e.editor.ClearSelection()

	e.log.Debug().
		Str("tool", tool.ID()).
		Int("selected-len", len(selected)).
		Int("replacement-len", len(replacement.Text)).
		Str("cursor", target.String()).
		Msg("applied tool")

	return OutcomeReplaced, nil
}

// AdvanceCursor moves the editor's cursor by the given number of columns.
// If that would go past the end of the line, the cursor moves to the start of
// the next line instead, or, on the last line, to the end of the line.
// Returns the new cursor position.
func AdvanceCursor(editor Editor, by int) model.DocPos {
	cursor := editor.Cursor()
	lineLen := utf8.RuneCountInString(editor.Line(cursor.Line))

	target := model.DocPos{Line: cursor.Line, Ch: cursor.Ch + by}
	if target.Ch > lineLen {
		if target.Line < editor.LineCount()-1 {
			target = model.DocPos{Line: target.Line + 1, Ch: 0}
		} else {
			target.Ch = lineLen
		}
	}

	editor.SetCursor(target)
	return target
}
