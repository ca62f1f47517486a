package cli

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/alight/internal/potatolog"
	"github.com/ja-he/alight/internal/styling"
)

// Flags for the `edit` command line command, for `go-flags` to parse command
// line args into.
type EditCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	Touch         bool   `long:"touch" description:"annotate by touch gestures (paint to select, swipe along the right edge to scroll) rather than with the pointer"`
	Pointer       bool   `long:"pointer" description:"annotate with the pointer (select, the tool applies on release), overriding 'touch' in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	Args struct {
		Note string `positional-arg-name:"<note.md>" description:"the note to annotate (created on save if it does not exist)"`
	} `positional-args:"true" required:"true"`
}

// Executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command
// line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := themeFromString(command.Theme)
	envData := newEnvData(command.Args.Note)

	configData, err := readConfig(envData, theme)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't read config")
	}
	registry, err := newRegistry(configData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up tools")
	}

	touch, err := inputMode(command.Touch, command.Pointer, configData.Touch)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't determine input mode")
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	controller, err := NewController(envData, configData, registry, *stylesheet, touch, tuiLogger)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up the editor")
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}

// inputMode returns whether to use touch mode. The flags take precedence over
// the configuration, which defaults to pointer mode.
func inputMode(touchFlag, pointerFlag bool, configured *bool) (bool, error) {
	switch {
	case touchFlag && pointerFlag:
		return false, errors.New("--touch and --pointer are mutually exclusive")
	case touchFlag:
		return true, nil
	case pointerFlag:
		return false, nil
	case configured != nil:
		return *configured, nil
	default:
		return false, nil
	}
}
