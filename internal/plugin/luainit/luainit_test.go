package luainit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emed-editor/emed/internal/config"
)

func TestRunStringCollectsOverrides(t *testing.T) {
	ov, err := RunString(`
		emed.set("tab_width", 8)
		emed.set("theme", "ocean")
		emed.color("keyword", "#ff8800")
	`)
	if err != nil {
		t.Fatal(err)
	}
	if ov.TabWidth != 8 {
		t.Errorf("tab width = %d, want 8", ov.TabWidth)
	}
	if ov.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", ov.Theme)
	}
	if ov.Colors["keyword"] != "#ff8800" {
		t.Errorf("colors = %v", ov.Colors)
	}
}

func TestRunStringUnknownSettingErrors(t *testing.T) {
	if _, err := RunString(`emed.set("cursor_blink", true)`); err == nil {
		t.Errorf("unknown setting accepted")
	}
}

func TestRunStringSyntaxError(t *testing.T) {
	if _, err := RunString(`emed.set(`); err == nil {
		t.Errorf("syntax error accepted")
	}
}

func TestRunMissingFileIsNoOp(t *testing.T) {
	ov, err := Run(filepath.Join(t.TempDir(), "init.lua"))
	if err != nil {
		t.Fatal(err)
	}
	if ov.TabWidth != 0 || ov.Theme != "" || ov.Colors != nil {
		t.Errorf("overrides = %+v, want zero", ov)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(`emed.set("theme", "ocean")`), 0o644); err != nil {
		t.Fatal(err)
	}
	ov, err := Run(path)
	if err != nil {
		t.Fatal(err)
	}
	if ov.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", ov.Theme)
	}
}

func TestApplyMergesOntoConfig(t *testing.T) {
	cfg := config.Default()
	ov := Overrides{TabWidth: 2, Colors: map[string]string{"bg": "#000000"}}
	ov.Apply(&cfg)

	if cfg.TabWidth != 2 {
		t.Errorf("tab width = %d, want 2", cfg.TabWidth)
	}
	if cfg.Theme != config.DefaultTheme {
		t.Errorf("theme = %q, unset override changed it", cfg.Theme)
	}
	if cfg.Colors["bg"] != "#000000" {
		t.Errorf("colors = %v", cfg.Colors)
	}
}
