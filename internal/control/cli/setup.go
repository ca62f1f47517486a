package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/alight/internal/config"
	"github.com/ja-he/alight/internal/control"
	"github.com/ja-he/alight/internal/model"
)

// newEnvData determines the environment for the given note.
// The base directory is ALIGHT_HOME, defaulting to ~/.config/alight.
func newEnvData(notePath string) control.EnvData {
	var envData control.EnvData

	alightHome := os.Getenv("ALIGHT_HOME")
	if alightHome == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/alight"
	} else {
		envData.BaseDirPath = strings.TrimRight(alightHome, "/")
	}
	envData.NotePath = notePath

	return envData
}

func themeFromString(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// readConfig reads the config file from the base directory, augmenting the
// defaults for the given theme.
// A missing config file is fine, the defaults are used.
func readConfig(envData control.EnvData, theme config.ColorschemeType) (config.Config, error) {
	filename := filepath.Join(envData.BaseDirPath, "config.yaml")
	yamlData, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug().Str("file", filename).Msg("no config file, using defaults")
		yamlData = make([]byte, 0)
	} else if err != nil {
		return config.Config{}, fmt.Errorf("can't read config file '%s' (%w)", filename, err)
	}

	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s' (%w)", filename, err)
	}
	return configData, nil
}

// newRegistry returns the registry of the default tools followed by the
// configured ones.
func newRegistry(configData config.Config) (*model.ToolRegistry, error) {
	tools := append(model.DefaultTools(), configData.Tools.ModelTools()...)
	registry, err := model.NewToolRegistry(tools...)
	if err != nil {
		return nil, fmt.Errorf("invalid tools (%w)", err)
	}
	return registry, nil
}
