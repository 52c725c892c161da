// Package playground implements a WASD-driven box inside an arena with
// static blocks. Every tick the box is checked against the arena and the
// blocks, and pushed back in the bounce direction the collision kernel
// reports.
package playground

import (
	"fmt"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/config"
	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	BlockChar  = '▒'
)

func init() {
	registry.Register("playground", func(opts registry.Options) registry.Demo {
		return New(opts)
	})
}

// Demo implements the playground.
type Demo struct {
	opts       registry.Options
	cfg        config.PlaygroundConfig
	configured bool
	checker    *collision.Checker

	runtime  core.RuntimeConfig
	arena    core.Rect
	blocks   []core.Rect
	player   core.Rect
	tooSmall bool

	last      collision.Bounce
	bounces   int
	anomalies int
	ticks     int
	paused    bool
}

// New creates a playground that loads its config on first Reset.
func New(opts registry.Options) *Demo {
	return &Demo{opts: opts}
}

// NewWithConfig creates a playground with a fixed config.
func NewWithConfig(cfg config.PlaygroundConfig, checker *collision.Checker) *Demo {
	d := &Demo{
		opts:       registry.Options{Checker: checker},
		cfg:        cfg,
		configured: true,
	}
	d.applyTelemetry()
	return d
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "playground"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Playground"
}

// Configure loads and validates the config named by the factory options.
func (d *Demo) Configure() error {
	cfg, err := config.LoadPlayground(d.opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyPlaygroundPreset(&cfg, d.opts.Preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	d.cfg = cfg
	d.configured = true
	d.applyTelemetry()
	return nil
}

// applyTelemetry picks the checker for the loaded config: anomalies are
// always logged but only persisted when telemetry.record_anomalies is set.
func (d *Demo) applyTelemetry() {
	d.checker = d.opts.Checker
	if !d.cfg.Telemetry.RecordAnomalies {
		d.checker = d.checker.WithoutRecorder()
	}
}

// Reset places the player in the middle of the arena.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	if !d.configured {
		if err := d.Configure(); err != nil {
			d.cfg = config.DefaultPlaygroundConfig()
			config.ApplyPlaygroundPreset(&d.cfg, d.opts.Preset)
			d.configured = true
			d.applyTelemetry()
		}
	}
	d.runtime = runtime

	a := d.cfg.Arena
	d.arena = core.RectFromEdges(
		float64(a.MarginX),
		float64(a.MarginTop),
		float64(runtime.ScreenW-a.MarginX),
		float64(runtime.ScreenH-a.MarginBot),
	)

	size := core.Vec2{X: d.cfg.Player.Width, Y: d.cfg.Player.Height}
	d.tooSmall = d.arena.Width() < 2*size.X || d.arena.Height() < 2*size.Y

	d.blocks = d.blocks[:0]
	for _, b := range d.cfg.Blocks {
		d.blocks = append(d.blocks, core.RectFromMinSize(
			core.Vec2{X: d.arena.Left() + b.X*d.arena.Width(), Y: d.arena.Top() + b.Y*d.arena.Height()},
			core.Vec2{X: b.W * d.arena.Width(), Y: b.H * d.arena.Height()},
		))
	}
	d.player = core.RectFromCenterSize(d.arena.Center(), size)

	d.last = 0
	d.bounces = 0
	d.anomalies = 0
	d.ticks = 0
	d.paused = false
}

// Step moves the player by the held directions and resolves collisions.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused || d.tooSmall {
		return core.StepResult{State: d.State()}
	}

	d.ticks++

	start := d.player.Min
	scale := min(d.arena.Width(), d.arena.Height())
	d.player = d.player.Translate(in.Direction().Scale(d.cfg.Player.Speed * scale * d.runtime.DT()))

	d.resolve(d.checker.Boundary(d.player, d.arena))

	// Blocks are checked against the net movement of this tick, which
	// includes a wall bounce.
	if moved := d.player.Min.Sub(start); !moved.IsZero() {
		for _, b := range d.blocks {
			if d.resolve(d.checker.Rect(moved, d.player, b)) {
				break
			}
		}
	}

	return core.StepResult{State: d.State()}
}

// resolve applies an outcome and reports whether the player bounced.
func (d *Demo) resolve(o collision.Outcome) bool {
	if o.Anomaly != collision.AnomalyNone {
		d.anomalies++
	}
	if !o.Hit {
		return false
	}
	d.player = d.player.Translate(o.Bounce.Vector().Scale(d.cfg.Player.BounceDistance))
	d.last = o.Bounce
	d.bounces++
	return true
}

// Render draws the arena, blocks, player and HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()
	d.renderHUD(dst)

	if d.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	c := d.arena.Cells()
	dst.DrawBox(core.NewCellRect(c.X-1, c.Y-1, c.W+2, c.H+2))
	for _, b := range d.blocks {
		dst.DrawRectColored(b.Cells(), BlockChar, core.ColorGray)
	}
	dst.DrawRectColored(d.player.Cells(), PlayerChar, core.ColorOrange)

	if d.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

func (d *Demo) renderHUD(dst *core.Screen) {
	last := "-"
	if d.last.Valid() {
		last = d.last.String()
	}
	hud := fmt.Sprintf(" Playground  Bounces: %d  Last: %s  Anomalies: %d", d.bounces, last, d.anomalies)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(max(dst.Width()-22, len(hud)+2), 0, "WASD move  P pause", core.ColorGray)
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	return core.DemoState{
		Bounces:   d.bounces,
		Anomalies: d.anomalies,
		Ticks:     d.ticks,
		Paused:    d.paused,
	}
}

// Player returns the player's box.
func (d *Demo) Player() core.Rect {
	return d.player
}

// Arena returns the boundary the player is kept in.
func (d *Demo) Arena() core.Rect {
	return d.arena
}

// Blocks returns the static obstacles.
func (d *Demo) Blocks() []core.Rect {
	return d.blocks
}

// LastBounce returns the most recent bounce, or the zero Bounce.
func (d *Demo) LastBounce() collision.Bounce {
	return d.last
}
