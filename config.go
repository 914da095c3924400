package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// appName names the per-user data directory.
const appName = "image-renamer"

// Options are the command-line options of image-renamer.
type Options struct {
	Prompt  bool   `short:"p" long:"prompt" description:"Prompt to rename or revert each file"`
	Revert  bool   `short:"r" long:"revert" description:"Revert file(s) to the original name(s)"`
	DataDir string `long:"data-dir" env:"IMAGE_RENAMER_DATA_DIR" description:"Directory holding revert mappings and history (default: XDG data directory)"`
	History int    `long:"history" value-name:"N" description:"Print the last N renames and reverts, then exit"`
	Trace   bool   `long:"trace" description:"Print trace spans to standard output"`
	Version bool   `long:"version" description:"Print version and exit"`

	Namer NamerOptions `group:"Naming" namespace:"namer" env-namespace:"NAMER"`
	Log   LogConfig    `group:"Logging" namespace:"log" env-namespace:"LOG"`

	Args struct {
		Paths []string `positional-arg-name:"PATH" description:"Image files or directories"`
	} `positional-args:"yes"`
}

// NamerOptions configure the naming provider.
type NamerOptions struct {
	Provider string `long:"provider" env:"PROVIDER" default:"openai" choice:"openai" choice:"gemini" description:"Naming provider"`
	Model    string `long:"model" env:"MODEL" description:"Model to use (default depends on the provider)"`
	BaseURL  string `long:"base-url" env:"BASE_URL" description:"Override the provider's API endpoint"`
	MaxSize  string `long:"max-size" env:"MAX_SIZE" default:"20MB" description:"Largest image sent for naming; 0 for no limit"`
}

// MaxSizeBytes parses MaxSize.
func (o NamerOptions) MaxSizeBytes() (uint64, error) {
	if o.MaxSize == "" || o.MaxSize == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(o.MaxSize)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing max size %q", o.MaxSize)
	}
	return n, nil
}

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
}

// InitLog configures the logger.
func InitLog(cfg LogConfig) error {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if cfg.Format == "text" {
		log.SetFormatter(&log.TextFormatter{})
	} else if cfg.Format == "color" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.WithMessage(err, "unrecognized log level")
	}
	log.SetLevel(lvl)
	return nil
}

// resolveDataDir returns the directory holding revert mappings and history,
// creating it if needed.
func resolveDataDir(override string) (string, error) {
	if override != "" {
		if err := os.MkdirAll(override, 0755); err != nil {
			return "", errors.WithMessage(err, "creating data directory")
		}
		return override, nil
	}
	path, err := xdg.DataFile(filepath.Join(appName, revertFileName))
	if err != nil {
		return "", errors.WithMessage(err, "failed to get data directory")
	}
	return filepath.Dir(path), nil
}
