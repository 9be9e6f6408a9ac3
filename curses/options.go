package curses

import (
	"github.com/dshills/wincurses/internal/config/loader"
	"github.com/dshills/wincurses/internal/logging"
)

// Options controls how a session is set up.
type Options struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFile receives the session log. Empty disables logging.
	LogFile string

	// HighVisibilityCursor is the cursor size used by CursSet(2).
	HighVisibilityCursor int
	// FixedPalette ignores the terminal's ability to reprogram colours.
	FixedPalette bool

	// Initial input settings of the default window.
	Echo    bool
	Keypad  bool
	NoDelay bool

	logger *logging.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		LogLevel:             "info",
		HighVisibilityCursor: 100,
	}
}

// LoadOptions reads options from a TOML or YAML file and applies
// WINCURSES_* environment overrides. An empty path reads only the
// environment; a missing file is not an error.
func LoadOptions(path string) (Options, error) {
	return loadOptions(loader.DefaultFS(), path)
}

func loadOptions(fsys loader.FileSystem, path string) (Options, error) {
	cfg, err := loader.Load(fsys, path, loader.EnvPrefix)
	if err != nil {
		return Options{}, err
	}

	d := DefaultOptions()
	opts := Options{
		LogLevel:             loader.String(cfg, "log.level", d.LogLevel),
		LogFile:              loader.String(cfg, "log.file", d.LogFile),
		HighVisibilityCursor: loader.Int(cfg, "cursor.highVisibility", d.HighVisibilityCursor),
		FixedPalette:         loader.Bool(cfg, "color.fixedPalette", d.FixedPalette),
		Echo:                 loader.Bool(cfg, "input.echo", d.Echo),
		Keypad:               loader.Bool(cfg, "input.keypad", d.Keypad),
		NoDelay:              loader.Bool(cfg, "input.noDelay", d.NoDelay),
	}
	if opts.HighVisibilityCursor < 1 || opts.HighVisibilityCursor > 100 {
		opts.HighVisibilityCursor = d.HighVisibilityCursor
	}
	return opts, nil
}
