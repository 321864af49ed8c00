// Package viewer assembles the scene, effects, render loop, input controller
// and picker into one explicitly owned context. Several viewers can run side
// by side; none of them share state.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/surfview/internal/config"
	"github.com/Faultbox/surfview/internal/engine/control"
	"github.com/Faultbox/surfview/internal/engine/effect"
	"github.com/Faultbox/surfview/internal/engine/frame"
	"github.com/Faultbox/surfview/internal/engine/picking"
	"github.com/Faultbox/surfview/internal/engine/scene"
	"github.com/Faultbox/surfview/internal/engine/snapshot"
	"github.com/Faultbox/surfview/internal/logger"
	"github.com/Faultbox/surfview/pkg/geometry"
)

// Backend draws frames and reads the screen back for snapshots.
type Backend interface {
	effect.Backend
	ReadPixels() (*image.RGBA, error)
}

// Surface is a named geometry record handed over by a loader.
type Surface struct {
	Name   string
	Record *geometry.Record
}

// Viewer owns every engine component for one render surface.
type Viewer struct {
	Graph      *scene.Graph
	Pipeline   *effect.Pipeline
	Scheduler  *frame.Scheduler
	Controller *control.Controller
	Picker     *picking.Picker

	dispatcher *control.Dispatcher
	backend    Backend
	capture    *snapshot.Capture
	maxWidth   int
}

// New builds a viewer from cfg drawing through b.
func New(cfg *config.Config, b Backend) (*Viewer, error) {
	bg, err := cfg.ClearColor()
	if err != nil {
		return nil, err
	}
	ax, ay, az, err := cfg.AutorotateAxes()
	if err != nil {
		return nil, err
	}

	graph := scene.New(scene.Config{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		FOV:            cfg.Viewer.FOV,
		Near:           cfg.Viewer.Near,
		Far:            cfg.Viewer.Far,
		CameraDistance: cfg.Viewer.CameraDistance,
		ClearColor:     bg,
	})

	rig := effect.Rig{EyeSeparation: cfg.Stereo.EyeSeparation, Focus: cfg.Stereo.Focus}
	pipeline := effect.NewPipeline(b, rig)
	pipeline.SetSize(cfg.Window.Width, cfg.Window.Height)
	for _, name := range cfg.Viewer.Effects {
		pipeline.Add(name)
	}
	pipeline.Set(cfg.Viewer.Effect)

	scheduler := frame.New(graph, pipeline, cfg.Viewer.RotationRate)
	scheduler.SetAutorotate(frame.Axes{X: ax, Y: ay, Z: az})

	d := control.NewDispatcher()
	controller := control.New(graph, d, control.Config{
		MouseSensitivity: cfg.Controls.MouseSensitivity,
		TouchSensitivity: cfg.Controls.TouchSensitivity,
		RotateDivisor:    cfg.Controls.RotateDivisor,
		PinchZoomRate:    cfg.Controls.PinchZoomRate,
		WheelZoomRate:    cfg.Controls.WheelZoomRate,
	})

	logger.Debug("viewer created",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Strings("effects", pipeline.Names()),
		zap.String("effect", pipeline.Active()))

	return &Viewer{
		Graph:      graph,
		Pipeline:   pipeline,
		Scheduler:  scheduler,
		Controller: controller,
		Picker:     picking.New(graph),
		dispatcher: d,
		backend:    b,
		capture:    snapshot.NewCapture(cfg.Snapshot.Dir, cfg.Snapshot.Prefix),
		maxWidth:   cfg.Snapshot.MaxWidth,
	}, nil
}

// Close stops the render loop and detaches input handling.
func (v *Viewer) Close() {
	v.Scheduler.Stop()
	v.Controller.Close()
}

// Dispatcher returns the dispatcher input events should be fed into.
func (v *Viewer) Dispatcher() *control.Dispatcher {
	return v.dispatcher
}

// SetSurfaceOffset sets the render surface's top-left corner in event
// coordinates.
func (v *Viewer) SetSurfaceOffset(x, y float32) {
	v.Controller.Offset.X, v.Controller.Offset.Y = x, y
}

// Resize updates the camera aspect and every effect's render target.
func (v *Viewer) Resize(width, height int) {
	v.Graph.Resize(width, height)
	v.Pipeline.SetSize(width, height)
}

// SetCameraPosition moves the camera and light.
func (v *Viewer) SetCameraPosition(x, y, z float32) {
	v.Graph.SetCameraPosition(x, y, z)
}

// Zoom dollies the camera by 1/factor within the clip envelope.
func (v *Viewer) Zoom(factor float32) {
	v.Graph.Zoom(factor)
}

// ResetView undoes all drags and autorotation.
func (v *Viewer) ResetView() {
	v.Graph.ResetView()
}

// AddEffect registers a named effect; it reports false for unknown names.
func (v *Viewer) AddEffect(name string) bool {
	return v.Pipeline.Add(name)
}

// SetEffect activates an added effect or falls back to the base renderer.
func (v *Viewer) SetEffect(name string) {
	v.Pipeline.Set(name)
}

// EffectActive reports whether the named effect is drawing.
func (v *Viewer) EffectActive(name string) bool {
	return v.Pipeline.IsActive(name)
}

// SetAutorotate toggles autorotation per axis.
func (v *Viewer) SetAutorotate(x, y, z bool) {
	v.Scheduler.SetAutorotate(frame.Axes{X: x, Y: y, Z: z})
}

// Autorotate returns the autorotation toggles.
func (v *Viewer) Autorotate() (x, y, z bool) {
	a := v.Scheduler.Autorotate()
	return a.X, a.Y, a.Z
}

// SetClearColor sets the background color.
func (v *Viewer) SetClearColor(c color.RGBA) {
	v.Graph.SetClearColor(c)
}

// Start runs the render loop on src.
func (v *Viewer) Start(src frame.Source) {
	v.Scheduler.Start(src)
}

// Stop halts the render loop.
func (v *Viewer) Stop() {
	v.Scheduler.Stop()
}

// Pick returns the original vertex under pixel (x, y).
func (v *Viewer) Pick(x, y float32) (picking.Result, bool) {
	return v.Picker.Pick(x, y)
}

// Inspect picks at (x, y) and logs the vertex under the cursor.
func (v *Viewer) Inspect(x, y float32) (picking.Result, bool) {
	r, ok := v.Pick(x, y)
	if !ok {
		logger.Info("nothing under cursor", zap.Float32("x", x), zap.Float32("y", y))
		return r, false
	}
	logger.Info("picked vertex",
		zap.String("object", r.Object.Name),
		zap.Uint32("index", r.Index),
		zap.Float32("x", r.Point.X),
		zap.Float32("y", r.Point.Y),
		zap.Float32("z", r.Point.Z))
	return r, true
}

// Add validates and attaches one surface alongside those already loaded.
func (v *Viewer) Add(s Surface) (*scene.Object, error) {
	if s.Record == nil {
		return nil, fmt.Errorf("surface %q: no geometry", s.Name)
	}
	if err := s.Record.Validate(); err != nil {
		return nil, fmt.Errorf("surface %q: %w", s.Name, err)
	}
	return v.Graph.Add(s.Record, s.Name), nil
}

// Load replaces the displayed model. Every surface is validated before the
// previous model is cleared, so a bad record leaves the scene untouched.
func (v *Viewer) Load(surfaces ...Surface) ([]*scene.Object, error) {
	for _, s := range surfaces {
		if s.Record == nil {
			return nil, fmt.Errorf("surface %q: no geometry", s.Name)
		}
		if err := s.Record.Validate(); err != nil {
			return nil, fmt.Errorf("surface %q: %w", s.Name, err)
		}
	}
	v.Graph.Clear()
	objs := make([]*scene.Object, 0, len(surfaces))
	for _, s := range surfaces {
		objs = append(objs, v.Graph.Add(s.Record, s.Name))
	}
	return objs, nil
}

// Clear removes every object and resets the view.
func (v *Viewer) Clear() {
	v.Graph.Clear()
	v.Graph.ResetView()
}

// Render draws one frame immediately, outside the loop.
func (v *Viewer) Render() {
	v.Pipeline.Render(v.Graph.Frame())
}

// Snapshot renders the current frame and returns it as a PNG data URL.
func (v *Viewer) Snapshot() (string, error) {
	img, err := v.grab()
	if err != nil {
		return "", err
	}
	return snapshot.DataURL(img)
}

// SaveSnapshot renders the current frame and writes it to the snapshot
// directory, scaled to the configured maximum width.
func (v *Viewer) SaveSnapshot() (string, error) {
	img, err := v.grab()
	if err != nil {
		return "", err
	}
	return v.capture.Save(snapshot.Scale(img, v.maxWidth))
}

// SaveSnapshotAs writes the current frame, unscaled, to path. A path
// without an extension gets ".png".
func (v *Viewer) SaveSnapshotAs(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	img, err := v.grab()
	if err != nil {
		return "", err
	}
	if err := snapshot.WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func (v *Viewer) grab() (*image.RGBA, error) {
	v.Render()
	img, err := v.backend.ReadPixels()
	if err != nil {
		return nil, fmt.Errorf("reading frame: %w", err)
	}
	return img, nil
}
