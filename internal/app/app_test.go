package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emed-editor/emed/internal/editor"
	"github.com/emed-editor/emed/internal/input"
	"github.com/emed-editor/emed/internal/input/key"
	"github.com/emed-editor/emed/internal/renderer/backend"
)

// newTestApp builds an app without a terminal screen. handleEvent and
// loadConfig never touch the screen, so tests can drive them directly.
func newTestApp(configDir string) *App {
	a := &App{
		opts:       Options{ConfigDir: configDir},
		translator: input.NewTranslator(),
		log:        NewLogger("emed"),
	}
	a.loadConfig()
	a.editor = editor.New(writeFile)
	a.editor.SetTabWidth(a.cfg.TabWidth)
	return a
}

func keyEvent(ev key.Event) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: ev}
}

func TestHandleEventInsertChangesEditor(t *testing.T) {
	a := newTestApp(t.TempDir())

	changed, err := a.handleEvent(keyEvent(key.RuneEvent('h')))
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Errorf("insert did not request a redraw")
	}
	if got := a.editor.Document().Contents(); got != "h" {
		t.Errorf("contents = %q", got)
	}
}

func TestHandleEventQuit(t *testing.T) {
	a := newTestApp(t.TempDir())

	_, err := a.handleEvent(keyEvent(key.Ctrl('q')))
	if !errors.Is(err, errQuit) {
		t.Errorf("Ctrl+Q err = %v, want errQuit", err)
	}
}

func TestHandleEventChordQuit(t *testing.T) {
	a := newTestApp(t.TempDir())

	changed, err := a.handleEvent(keyEvent(key.Ctrl('x')))
	if err != nil || changed {
		t.Fatalf("Ctrl+X = (%v, %v), want no-op", changed, err)
	}
	_, err = a.handleEvent(keyEvent(key.Ctrl('c')))
	if !errors.Is(err, errQuit) {
		t.Errorf("Ctrl+X Ctrl+C err = %v, want errQuit", err)
	}
}

func TestHandleEventRoutesPromptKeys(t *testing.T) {
	a := newTestApp(t.TempDir())

	a.handleEvent(keyEvent(key.RuneEvent('x')))
	a.handleEvent(keyEvent(key.Ctrl('x')))
	a.handleEvent(keyEvent(key.Ctrl('s')))
	if !a.editor.InPrompt() {
		t.Fatalf("save on unnamed buffer did not open prompt")
	}

	// In prompt mode an arrow key is ignored rather than moving the cursor.
	a.handleEvent(keyEvent(key.Special(key.KeyLeft)))
	if !a.editor.InPrompt() {
		t.Errorf("arrow key closed the prompt")
	}

	a.handleEvent(keyEvent(key.Special(key.KeyEscape)))
	if a.editor.InPrompt() {
		t.Errorf("escape did not cancel the prompt")
	}
}

func TestHandleEventResize(t *testing.T) {
	a := newTestApp(t.TempDir())

	changed, err := a.handleEvent(backend.Event{Type: backend.EventResize, Width: 40, Height: 12})
	if err != nil || !changed {
		t.Fatalf("resize = (%v, %v)", changed, err)
	}
	if got := a.editor.Viewport().Height(); got != 10 {
		t.Errorf("viewport height = %d, want 10", got)
	}
}

func TestHandleEventReloadAppliesConfig(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(dir)
	if a.theme.Name != "pink" {
		t.Fatalf("initial theme = %q", a.theme.Name)
	}

	content := "theme = \"ocean\"\ntab_width = 8\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err := a.handleEvent(backend.Event{Type: backend.EventReload})
	if err != nil || !changed {
		t.Fatalf("reload = (%v, %v)", changed, err)
	}
	if a.theme.Name != "ocean" {
		t.Errorf("theme after reload = %q, want ocean", a.theme.Name)
	}
	if a.editor.TabWidth() != 8 {
		t.Errorf("tab width after reload = %d, want 8", a.editor.TabWidth())
	}
}

func TestLoadConfigAppliesLuaOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "init.lua"), []byte(`emed.set("theme", "ocean")`), 0o644); err != nil {
		t.Fatal(err)
	}

	a := newTestApp(dir)
	if a.theme.Name != "ocean" {
		t.Errorf("theme = %q, want ocean from init.lua", a.theme.Name)
	}
}

func TestOpenFileMissingStartsEmptyBuffer(t *testing.T) {
	a := newTestApp(t.TempDir())
	name := filepath.Join(t.TempDir(), "new.txt")

	if err := a.openFile(name); err != nil {
		t.Fatal(err)
	}
	if a.editor.Filename() != name {
		t.Errorf("filename = %q", a.editor.Filename())
	}
	if a.editor.Document().Contents() != "" {
		t.Errorf("contents = %q, want empty", a.editor.Document().Contents())
	}
}

func TestOpenFileReadsContents(t *testing.T) {
	a := newTestApp(t.TempDir())
	name := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(name, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := a.openFile(name); err != nil {
		t.Fatal(err)
	}
	if a.editor.Document().Contents() != "hello\n" {
		t.Errorf("contents = %q", a.editor.Document().Contents())
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("emed")
	log.Info("dropped while disabled")
	log.SetOutput(&buf)
	log.SetLevel(LogLevelWarn)

	log.Info("below threshold")
	log.Warn("kept %d", 1)

	out := buf.String()
	if strings.Contains(out, "dropped") || strings.Contains(out, "below threshold") {
		t.Errorf("suppressed lines written: %q", out)
	}
	if !strings.Contains(out, "[WARN] emed: kept 1") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
