// Package app wires the editor together: configuration, the terminal
// backend, the translator, and the read-translate-apply event loop.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/emed-editor/emed/internal/config"
	"github.com/emed-editor/emed/internal/config/watcher"
	"github.com/emed-editor/emed/internal/editor"
	"github.com/emed-editor/emed/internal/input"
	"github.com/emed-editor/emed/internal/plugin/luainit"
	"github.com/emed-editor/emed/internal/renderer"
	"github.com/emed-editor/emed/internal/renderer/backend"
	"github.com/emed-editor/emed/internal/renderer/highlight"
)

// errQuit signals a requested shutdown inside the event loop.
var errQuit = errors.New("quit")

// Options configures an App.
type Options struct {
	// Filename is the file to open; empty opens an unnamed buffer.
	Filename string

	// ConfigDir is where config.toml / config.yaml and init.lua live.
	ConfigDir string

	// Debug attaches a file sink to the logger.
	Debug bool
}

// App owns the editor session.
type App struct {
	opts       Options
	screen     *backend.Screen
	editor     *editor.Editor
	translator *input.Translator
	theme      highlight.Theme
	cfg        config.Config
	watch      *watcher.Watcher
	log        *Logger
	sessionID  string
}

// New builds an app: config is loaded and Lua overrides applied, the
// document is read in, and the terminal screen is created but not yet
// initialized.
func New(opts Options) (*App, error) {
	a := &App{
		opts:       opts,
		translator: input.NewTranslator(),
		sessionID:  uuid.NewString(),
		log:        NewLogger("emed"),
	}

	if opts.Debug {
		sink, err := openDebugLog(a.sessionID)
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		a.log.SetOutput(sink)
		a.log.SetLevel(LogLevelDebug)
	}
	a.log.Info("session %s starting", a.sessionID)

	a.loadConfig()

	a.editor = editor.New(writeFile)
	a.editor.SetTabWidth(a.cfg.TabWidth)
	if opts.Filename != "" {
		if err := a.openFile(opts.Filename); err != nil {
			return nil, err
		}
	}

	screen, err := backend.New()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	a.screen = screen

	if path := config.Resolve(opts.ConfigDir); path != "" {
		w, err := watcher.New(path, func(string) {
			a.screen.PostReload()
		})
		if err != nil {
			a.log.Warn("config watcher unavailable: %v", err)
		} else {
			a.watch = w
		}
	}

	return a, nil
}

// loadConfig reads the settings file and the init script, then derives
// the active theme. Load errors fall back to defaults; the editor still
// starts.
func (a *App) loadConfig() {
	cfg, path, err := config.LoadDir(a.opts.ConfigDir)
	if err != nil {
		a.log.Warn("config: %v", err)
	}
	if path != "" {
		a.log.Debug("settings loaded from %s", path)
	}

	ov, err := luainit.Run(filepath.Join(a.opts.ConfigDir, "init.lua"))
	if err != nil {
		a.log.Warn("lua: %v", err)
	} else {
		ov.Apply(&cfg)
	}

	a.cfg = cfg
	a.theme = highlight.ByName(cfg.Theme)
	a.theme.ApplyColorOverrides(cfg.Colors)
}

// openFile loads a file into the editor. A missing file starts an empty
// buffer under that name.
func (a *App) openFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			a.editor.Load(name, "")
			return nil
		}
		return fmt.Errorf("opening %s: %w", name, err)
	}
	a.editor.Load(name, string(data))
	return nil
}

// Screen exposes the terminal handle so main can guarantee cleanup.
func (a *App) Screen() *backend.Screen {
	return a.screen
}

// Run enters raw mode and drives the read-translate-apply loop until the
// editor quits.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	if a.watch != nil {
		a.watch.Start()
		defer a.watch.Close()
	}

	w, h := a.screen.Size()
	a.editor.Resize(w, renderer.TextRows(h))
	a.redraw()

	for {
		ev := a.screen.PollEvent()
		changed, err := a.handleEvent(ev)
		if errors.Is(err, errQuit) {
			a.log.Info("session %s quitting", a.sessionID)
			return nil
		}
		if err != nil {
			return err
		}
		if changed {
			a.redraw()
		}
	}
}

// handleEvent processes one terminal event and reports whether a redraw
// is needed.
func (a *App) handleEvent(ev backend.Event) (bool, error) {
	switch ev.Type {
	case backend.EventResize:
		a.editor.Resize(ev.Width, renderer.TextRows(ev.Height))
		return true, nil

	case backend.EventReload:
		a.loadConfig()
		a.editor.SetTabWidth(a.cfg.TabWidth)
		a.log.Debug("config reloaded")
		return true, nil

	case backend.EventKey:
		var cmd editor.Command
		if a.editor.InPrompt() {
			cmd = input.TranslatePrompt(ev.Key)
		} else {
			cmd = a.translator.Translate(ev.Key)
		}
		switch a.editor.Apply(cmd) {
		case editor.ResultQuit:
			return false, errQuit
		case editor.ResultChanged:
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

func (a *App) redraw() {
	renderer.Draw(a.screen.Tcell(), a.editor, a.theme)
}

// writeFile is the save collaborator injected into the editor.
func writeFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}
