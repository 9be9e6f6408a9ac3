package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/wincurses.toml", `
[log]
level = "debug"
file = "/tmp/curses.log"

[cursor]
highVisibility = 90
`)

	cfg, err := NewTOMLLoaderWithFS(memfs, "/wincurses.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := String(cfg, "log.level", ""); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := Int(cfg, "cursor.highVisibility", 0); got != 90 {
		t.Errorf("cursor.highVisibility = %d, want 90", got)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	cfg, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %v", cfg)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log\nlevel = ")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != "/bad.toml" {
		t.Errorf("ParseError.Path = %q", pe.Path)
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/wincurses.yaml", `
color:
  fixedPalette: true
input:
  keypad: true
`)

	cfg, err := NewYAMLLoaderWithFS(memfs, "/wincurses.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !Bool(cfg, "color.fixedPalette", false) {
		t.Error("color.fixedPalette should be true")
	}
	if !Bool(cfg, "input.keypad", false) {
		t.Error("input.keypad should be true")
	}
}

func TestYAMLLoader_LoadFromReader(t *testing.T) {
	cfg, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if got := String(cfg, "log.level", ""); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "*loader.TOMLLoader", false},
		{"a.yaml", "*loader.YAMLLoader", false},
		{"a.YML", "*loader.YAMLLoader", false},
		{"a.json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(NewMemFS(), tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath failed: %v", err)
			}
			switch l.(type) {
			case *TOMLLoader:
				if tt.want != "*loader.TOMLLoader" {
					t.Errorf("got TOML loader for %s", tt.path)
				}
			case *YAMLLoader:
				if tt.want != "*loader.YAMLLoader" {
					t.Errorf("got YAML loader for %s", tt.path)
				}
			}
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/c.toml", "[log]\nlevel = \"info\"\nfile = \"x.log\"\n")
	t.Setenv("WINCURSES_LOG_LEVEL", "error")

	cfg, err := Load(memfs, "/c.toml", EnvPrefix)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := String(cfg, "log.level", ""); got != "error" {
		t.Errorf("env should win, got %q", got)
	}
	if got := String(cfg, "log.file", ""); got != "x.log" {
		t.Errorf("file value should survive merge, got %q", got)
	}
}

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader("TEST_")
	l.environ = func() []string {
		return []string{
			"TEST_CURSOR_HIGH=75",
			"TEST_FIXED_PALETTE=yes",
			"TEST_SCREEN_MIN_COLS=40",
			"OTHER_THING=1",
		}
	}

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := Int(cfg, "cursor.highVisibility", 0); got != 75 {
		t.Errorf("cursor.highVisibility = %d, want 75", got)
	}
	if !Bool(cfg, "color.fixedPalette", false) {
		t.Error("color.fixedPalette should be true")
	}
	if got := Int(cfg, "screen.minCols", 0); got != 40 {
		t.Errorf("unmapped var should land at screen.minCols, got %d", got)
	}
	if _, ok := Lookup(cfg, "other"); ok {
		t.Error("unprefixed variable leaked into config")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"Off", false},
		{"42", int64(42)},
		{"1.5", 1.5},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestStringFormatsScalars(t *testing.T) {
	cfg := map[string]any{
		"log": map[string]any{
			"file":  int64(2024),
			"level": "debug",
			"ratio": 1.5,
			"on":    true,
			"sub":   map[string]any{"x": 1},
		},
	}

	tests := []struct {
		path string
		want string
	}{
		{"log.file", "2024"},
		{"log.level", "debug"},
		{"log.ratio", "1.5"},
		{"log.on", "true"},
		{"log.sub", "fallback"},
		{"log.missing", "fallback"},
	}
	for _, tt := range tests {
		if got := String(cfg, tt.path, "fallback"); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEnvLoader_NumericString(t *testing.T) {
	l := NewEnvLoader("TEST_")
	l.environ = func() []string { return []string{"TEST_LOG_FILE=2024"} }

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := String(cfg, "log.file", ""); got != "2024" {
		t.Errorf("log.file = %q, want %q", got, "2024")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "b": 1}
	src := map[string]any{"a": map[string]any{"y": 3}, "c": 4}

	got := DeepMerge(dst, src)
	if v, _ := Lookup(got, "a.x"); v != 1 {
		t.Errorf("a.x = %v, want 1", v)
	}
	if v, _ := Lookup(got, "a.y"); v != 3 {
		t.Errorf("a.y = %v, want 3", v)
	}
	if v, _ := Lookup(got, "c"); v != 4 {
		t.Errorf("c = %v, want 4", v)
	}
	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) should return an empty map")
	}
}
