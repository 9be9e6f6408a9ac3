// Package main is a small interactive tour of the wincurses library: a
// line-drawn frame, the colour pairs, and the name of every key pressed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/dshills/wincurses/curses"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const pollInterval = 50 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: cursesdemo needs an interactive terminal")
		return 1
	}

	s := curses.Init(opts)
	defer func() {
		if err := s.EndWin(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := setup(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := loop(s, signals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (curses.Options, bool) {
	var configPath, logLevel, logFile string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to a TOML or YAML options file")
	flag.StringVar(&configPath, "c", "", "Path to a TOML or YAML options file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log-file", "", "Write the session log to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cursesdemo - wincurses feature tour\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cursesdemo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nOptions can also be set with WINCURSES_* environment variables.\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("cursesdemo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts, err := curses.LoadOptions(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading options: %v\n", err)
		return opts, false
	}
	if logLevel != "" {
		switch logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
			return opts, false
		}
		opts.LogLevel = logLevel
	}
	if logFile != "" {
		opts.LogFile = logFile
	}

	opts.Keypad = true
	opts.NoDelay = true
	return opts, true
}

func setup(s *curses.Session) error {
	if err := s.CBreak(); err != nil {
		return err
	}
	_, _ = s.CursSet(curses.CursorInvisible)

	if err := frame(s.Stdscr()); err != nil {
		return err
	}
	_ = s.MvPrintw(1, 2, "wincurses %s  %dx%d  press q to quit", version, s.Cols(), s.Lines())

	if s.HasColors() {
		if err := palette(s); err != nil {
			return err
		}
	} else {
		_ = s.MvPrintw(3, 2, "terminal has no colours")
	}
	return s.Refresh()
}

// frame draws a line box around the window's edge.
func frame(w *curses.Window) error {
	rows, cols := w.Size()
	if rows < 2 || cols < 2 {
		return nil
	}
	w.AttrOn(curses.AttrAltCharset)
	defer w.AttrOff(curses.AttrAltCharset)

	put := func(y, x int, ch rune) error { return w.MvAddCh(y, x, ch) }
	var errs []error
	for x := 1; x < cols-1; x++ {
		errs = append(errs, put(0, x, curses.ACSHLine), put(rows-1, x, curses.ACSHLine))
	}
	for y := 1; y < rows-1; y++ {
		errs = append(errs, put(y, 0, curses.ACSVLine), put(y, cols-1, curses.ACSVLine))
	}
	errs = append(errs,
		put(0, 0, curses.ACSULCorner),
		put(0, cols-1, curses.ACSURCorner),
		put(rows-1, 0, curses.ACSLLCorner),
		// The bottom-right cell wraps the cursor past the last row, which
		// is fine: nothing is written there afterwards.
		put(rows-1, cols-1, curses.ACSLRCorner),
	)
	return errors.Join(errs...)
}

// palette shows the basic colour pairs and, when the terminal allows it, a
// ramp in the custom colour slots.
func palette(s *curses.Session) error {
	if err := s.StartColor(); err != nil {
		return err
	}

	for c := int16(1); c < curses.BasicColors; c++ {
		if err := s.InitPair(int(c), c, curses.ColorBlack); err != nil {
			return err
		}
		s.AttrSet(curses.ColorPair(int(c)) | curses.AttrBold)
		_ = s.MvPrintw(3, 2+int(c-1)*9, "pair %d", c)
	}
	s.AttrSet(curses.AttrNormal)

	if !s.CanChangeColor() {
		_ = s.MvPrintw(5, 2, "palette is fixed, %d colours", s.Colors())
		return nil
	}

	from, _ := colorful.Hex("#1e3a8a")
	to, _ := colorful.Hex("#f59e0b")
	slots := curses.MaxColors - curses.BasicColors
	for i := 0; i < slots; i++ {
		c := from.BlendLab(to, float64(i)/float64(slots-1)).Clamped()
		idx := int16(curses.BasicColors + i)
		if err := s.InitColor(idx, component(c.R), component(c.G), component(c.B)); err != nil {
			return err
		}
		pair := curses.BasicColors + i
		if err := s.InitPair(pair, curses.ColorWhite, idx); err != nil {
			return err
		}
		s.AttrSet(curses.ColorPair(pair))
		_ = s.MvPrintw(5, 2+i*4, "    ")
	}
	s.AttrSet(curses.AttrNormal)
	return nil
}

func component(v float64) int16 {
	return int16(v*curses.MaxComponent + 0.5)
}

func loop(s *curses.Session, signals <-chan os.Signal) error {
	row := s.Lines() - 3
	if row < 2 {
		row = 2
	}

	for {
		k, err := s.GetCh()
		switch {
		case errors.Is(err, curses.ErrNoInput):
			select {
			case <-signals:
				return nil
			case <-time.After(pollInterval):
			}
			continue
		case err != nil:
			return err
		}

		if k == 'q' || k == 'Q' {
			return nil
		}
		_ = s.MvPrintw(row, 2, "%-30s", fmt.Sprintf("key %d: %s", k, curses.KeyName(k)))
		if err := s.Refresh(); err != nil {
			return err
		}
	}
}
