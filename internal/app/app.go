// Package app runs the desktop host: an SDL window whose input and frame
// timing drive a viewer.
package app

import (
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/config"
	"github.com/Faultbox/surfview/internal/engine/control"
	"github.com/Faultbox/surfview/internal/engine/frame"
	"github.com/Faultbox/surfview/internal/engine/input"
	"github.com/Faultbox/surfview/internal/engine/renderer"
	"github.com/Faultbox/surfview/internal/engine/window"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/internal/viewer"
)

// App is the desktop host.
type App struct {
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	pump     *frame.Pump
	viewer   *viewer.Viewer

	// paths chosen in the save dialog, consumed on the main thread
	savePaths chan string

	// drawable pixels per window coordinate
	scaleX, scaleY float32
}

// New opens the window, initializes OpenGL and builds the viewer.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing surfview",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{pump: &frame.Pump{}, savePaths: make(chan string, 1)}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window, since the GL context must exist
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(w, h)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	vcfg := *cfg
	vcfg.Window.Width, vcfg.Window.Height = w, h
	a.viewer, err = viewer.New(&vcfg, a.renderer)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}

	a.input = input.New(w, h)
	a.updateScale()

	logger.Info("surfview initialized",
		zap.Strings("effects", a.viewer.Pipeline.Names()),
		zap.String("effect", a.viewer.Pipeline.Active()))
	return a, nil
}

// Viewer returns the hosted viewer.
func (a *App) Viewer() *viewer.Viewer {
	return a.viewer
}

// Run drives the viewer until the window closes or Esc is pressed.
func (a *App) Run() error {
	a.running = true
	start := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.viewer.Start(a.pump)
	defer a.viewer.Stop()

	logger.Info("starting render loop")
	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// one render per swap; the pump stays armed while the loop runs
		a.pump.Fire(float64(time.Since(start).Microseconds()) / 1000)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.input.SetSize(w, h)
			a.viewer.Resize(w, h)
			a.updateScale()
		case input.EventKeyDown:
			a.handleKey(ev.Key)
		}
	}

	select {
	case path := <-a.savePaths:
		a.saveSnapshotAs(path)
	default:
	}

	d := a.viewer.Dispatcher()
	for _, ev := range a.input.Controls() {
		// mouse coordinates are in window units, everything else in pixels
		ev.X *= a.scaleX
		ev.Y *= a.scaleY
		if ev.Kind == control.PointerDown && ev.Button == control.ButtonPrimary && shiftHeld() {
			a.viewer.Inspect(ev.X, ev.Y)
			continue
		}
		d.Dispatch(ev)
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_F12:
		if shiftHeld() {
			a.openSaveDialog()
			return
		}
		if path, err := a.viewer.SaveSnapshot(); err != nil {
			logger.Error("snapshot failed", zap.Error(err))
		} else {
			logger.Info("snapshot", zap.String("path", path))
		}
	case sdl.SCANCODE_R:
		a.viewer.ResetView()
	case sdl.SCANCODE_L:
		if logger.Level() == "debug" {
			logger.SetLevel("info")
		} else {
			logger.SetLevel("debug")
		}
	case sdl.SCANCODE_E:
		a.cycleEffect()
	case sdl.SCANCODE_X, sdl.SCANCODE_Y, sdl.SCANCODE_Z:
		x, y, z := a.viewer.Autorotate()
		switch key {
		case sdl.SCANCODE_X:
			x = !x
		case sdl.SCANCODE_Y:
			y = !y
		default:
			z = !z
		}
		a.viewer.SetAutorotate(x, y, z)
	}
}

// openSaveDialog asks for a snapshot path without blocking the render loop.
// GL reads must happen on the main thread, so the path is queued.
func (a *App) openSaveDialog() {
	go func() {
		path, err := dialog.File().
			Filter("PNG Images", "png").
			Title("Save Snapshot").
			SetStartFile("surfview.png").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("save dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case a.savePaths <- path:
		default:
		}
	}()
}

func (a *App) saveSnapshotAs(path string) {
	path, err := a.viewer.SaveSnapshotAs(path)
	if err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot", zap.String("path", path))
}

// cycleEffect steps through the base renderer and every added effect.
func (a *App) cycleEffect() {
	names := a.viewer.Pipeline.Names()
	next := ""
	for i, n := range names {
		if a.viewer.EffectActive(n) {
			if i+1 < len(names) {
				next = names[i+1]
			}
			break
		}
		if i == len(names)-1 {
			next = names[0]
		}
	}
	a.viewer.SetEffect(next)
	logger.Info("effect", zap.String("active", a.viewer.Pipeline.Active()))
}

func shiftHeld() bool {
	return int(sdl.GetModState())&int(sdl.KMOD_SHIFT) != 0
}

func (a *App) updateScale() {
	ww, wh := a.window.Size()
	dw, dh := a.window.DrawableSize()
	a.scaleX, a.scaleY = 1, 1
	if ww > 0 && wh > 0 {
		a.scaleX = float32(dw) / float32(ww)
		a.scaleY = float32(dh) / float32(wh)
	}
}

// Close releases the viewer, renderer and window.
func (a *App) Close() {
	logger.Info("closing surfview")
	if a.viewer != nil {
		a.viewer.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
