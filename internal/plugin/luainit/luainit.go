// Package luainit runs the optional init.lua startup script. The script
// sees an `emed` table whose functions layer setting overrides on top of
// the settings file:
//
//	emed.set("tab_width", 8)
//	emed.set("theme", "ocean")
//	emed.color("keyword", "#ff8800")
package luainit

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/emed-editor/emed/internal/config"
)

// Overrides collects the settings an init script changed. Zero values
// mean the script left the setting alone.
type Overrides struct {
	TabWidth int
	Theme    string
	Colors   map[string]string
}

// Apply merges the overrides onto cfg.
func (o Overrides) Apply(cfg *config.Config) {
	if o.TabWidth > 0 {
		cfg.TabWidth = o.TabWidth
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if len(o.Colors) > 0 {
		if cfg.Colors == nil {
			cfg.Colors = make(map[string]string)
		}
		for name, hex := range o.Colors {
			cfg.Colors[name] = hex
		}
	}
}

// Run executes the init script at path. A missing script is not an
// error; it just yields no overrides.
func Run(path string) (Overrides, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Overrides{}, nil
	}
	return run(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// RunString executes an init script given as source text.
func RunString(script string) (Overrides, error) {
	return run(func(L *lua.LState) error {
		return L.DoString(script)
	})
}

func run(exec func(L *lua.LState) error) (Overrides, error) {
	ov := Overrides{}

	L := lua.NewState()
	defer L.Close()

	emed := L.NewTable()
	L.SetField(emed, "set", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		switch name {
		case "tab_width":
			ov.TabWidth = L.CheckInt(2)
		case "theme":
			ov.Theme = L.CheckString(2)
		default:
			L.ArgError(1, fmt.Sprintf("unknown setting %q", name))
		}
		return 0
	}))
	L.SetField(emed, "color", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		hex := L.CheckString(2)
		if ov.Colors == nil {
			ov.Colors = make(map[string]string)
		}
		ov.Colors[name] = hex
		return 0
	}))
	L.SetGlobal("emed", emed)

	if err := exec(L); err != nil {
		return Overrides{}, fmt.Errorf("init script: %w", err)
	}
	return ov, nil
}
