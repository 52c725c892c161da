// Package bouncer implements autonomous boxes bouncing off the arena walls
// and static blocks. All collision checks of a tick are evaluated in one
// concurrent batch and applied in box order, so a run is fully determined
// by its seed and config.
package bouncer

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/config"
	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
)

const (
	BoxChar   = '■'
	BlockChar = '▒'

	spawnAttempts = 50
)

var palette = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorOrange,
}

func init() {
	registry.Register("bouncer", func(opts registry.Options) registry.Demo {
		return New(opts)
	})
}

// Box is one moving body. Vel is in cells per second.
type Box struct {
	Rect  core.Rect
	Vel   core.Vec2
	Color core.Color
}

// Demo implements the bouncer.
type Demo struct {
	opts       registry.Options
	cfg        config.BouncerConfig
	configured bool
	checker    *collision.Checker

	runtime  core.RuntimeConfig
	ramp     *config.Ramp
	arena    core.Rect
	blocks   []core.Rect
	boxes    []Box
	tooSmall bool

	bounces   int
	anomalies int
	ticks     int
	paused    bool
}

// New creates a bouncer that loads its config on first Reset.
func New(opts registry.Options) *Demo {
	return &Demo{opts: opts}
}

// NewWithConfig creates a bouncer with a fixed config.
func NewWithConfig(cfg config.BouncerConfig, checker *collision.Checker) *Demo {
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
	return "bouncer"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Bouncer"
}

// Configure loads and validates the config named by the factory options.
func (d *Demo) Configure() error {
	cfg, err := config.LoadBouncer(d.opts.ConfigPath)
	if err != nil {
		return err
	}
	config.ApplyBouncerPreset(&cfg, d.opts.Preset)
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

// Reset lays out the arena and spawns the boxes from the seed.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	if !d.configured {
		if err := d.Configure(); err != nil {
			d.cfg = config.DefaultBouncerConfig()
			config.ApplyBouncerPreset(&d.cfg, d.opts.Preset)
			d.configured = true
			d.applyTelemetry()
		}
	}
	d.runtime = runtime
	d.ramp = config.NewRamp(d.cfg.Ramp)

	a := d.cfg.Arena
	d.arena = core.RectFromEdges(
		float64(a.MarginX),
		float64(a.MarginTop),
		float64(runtime.ScreenW-a.MarginX),
		float64(runtime.ScreenH-a.MarginBot),
	)
	d.tooSmall = d.arena.Width() < 2*d.cfg.Boxes.MaxSize || d.arena.Height() < 2*d.cfg.Boxes.MaxSize

	d.blocks = d.blocks[:0]
	for _, b := range d.cfg.Blocks {
		d.blocks = append(d.blocks, core.RectFromMinSize(
			core.Vec2{X: d.arena.Left() + b.X*d.arena.Width(), Y: d.arena.Top() + b.Y*d.arena.Height()},
			core.Vec2{X: b.W * d.arena.Width(), Y: b.H * d.arena.Height()},
		))
	}

	d.boxes = d.boxes[:0]
	if !d.tooSmall {
		d.spawn(rand.New(rand.NewSource(runtime.Seed)))
	}

	d.bounces = 0
	d.anomalies = 0
	d.ticks = 0
	d.paused = false
}

// spawn places boxes at random free spots. A box that finds no free spot
// after a few attempts is skipped.
func (d *Demo) spawn(rng *rand.Rand) {
	b := d.cfg.Boxes
	for i := 0; i < b.Count; i++ {
		size := b.MinSize + rng.Float64()*(b.MaxSize-b.MinSize)
		speed := b.MinSpeed + rng.Float64()*(b.MaxSpeed-b.MinSpeed)
		angle := rng.Float64() * 2 * math.Pi

		for attempt := 0; attempt < spawnAttempts; attempt++ {
			pos := core.Vec2{
				X: d.arena.Left() + rng.Float64()*(d.arena.Width()-size),
				Y: d.arena.Top() + rng.Float64()*(d.arena.Height()-size),
			}
			r := core.RectFromMinSize(pos, core.Vec2{X: size, Y: size})
			if d.blocked(r) {
				continue
			}
			d.boxes = append(d.boxes, Box{
				Rect:  r,
				Vel:   core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
				Color: palette[i%len(palette)],
			})
			break
		}
	}
}

func (d *Demo) blocked(r core.Rect) bool {
	for _, bl := range d.blocks {
		if r.Intersects(bl) {
			return true
		}
	}
	return false
}

// Step moves every box, checks all of them in one batch and applies the
// bounces.
func (d *Demo) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused || d.tooSmall {
		return core.StepResult{State: d.State()}
	}

	d.ticks++

	step := d.ramp.Factor(d.bounces, d.ticks) * d.runtime.DT()
	for i := range d.boxes {
		d.boxes[i].Rect = d.boxes[i].Rect.Translate(d.boxes[i].Vel.Scale(step))
	}

	stride := 1 + len(d.blocks)
	queries := make([]collision.Query, 0, len(d.boxes)*stride)
	for _, b := range d.boxes {
		queries = append(queries, collision.BoundaryQuery(b.Rect, d.arena))
		for _, bl := range d.blocks {
			queries = append(queries, collision.RectQuery(b.Vel, b.Rect, bl))
		}
	}

	outcomes, err := collision.CheckAll(context.Background(), d.checker, queries)
	if err != nil {
		return core.StepResult{State: d.State()}
	}

	for i := range d.boxes {
		row := outcomes[i*stride : (i+1)*stride]
		box := &d.boxes[i]

		if o := d.count(row[0]); o.Hit {
			d.bounce(box, o.Bounce, collision.Overshoot(box.Rect, d.arena, o.Bounce))
		}
		for j, bl := range d.blocks {
			if o := d.count(row[1+j]); o.Hit {
				d.bounce(box, o.Bounce, collision.Penetration(box.Rect, bl).Along(o.Bounce))
				break
			}
		}
	}

	return core.StepResult{State: d.State()}
}

func (d *Demo) count(o collision.Outcome) collision.Outcome {
	if o.Anomaly != collision.AnomalyNone {
		d.anomalies++
	}
	return o
}

// bounce points the velocity along b on b's axis and moves the box out by
// depth.
func (d *Demo) bounce(box *Box, b collision.Bounce, depth float64) {
	v := b.Vector()
	if b.Horizontal() {
		box.Vel.X = v.X * math.Abs(box.Vel.X)
	} else {
		box.Vel.Y = v.Y * math.Abs(box.Vel.Y)
	}
	if depth > 0 {
		box.Rect = box.Rect.Translate(v.Scale(depth))
	}
	d.bounces++
}

// Render draws the arena, blocks, boxes and HUD.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Bouncer  Boxes: %d  Bounces: %d  Anomalies: %d", len(d.boxes), d.bounces, d.anomalies)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(max(dst.Width()-20, len(hud)+2), 0, "P pause  R restart", core.ColorGray)

	if d.tooSmall {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	c := d.arena.Cells()
	dst.DrawBox(core.NewCellRect(c.X-1, c.Y-1, c.W+2, c.H+2))
	for _, bl := range d.blocks {
		dst.DrawRectColored(bl.Cells(), BlockChar, core.ColorGray)
	}
	for _, b := range d.boxes {
		dst.DrawRectColored(b.Rect.Cells(), BoxChar, b.Color)
	}

	if d.paused {
		dst.DrawOverlay("Paused", "Press P to continue")
	}
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

// Boxes returns the moving boxes.
func (d *Demo) Boxes() []Box {
	return d.boxes
}

// Arena returns the boundary the boxes are kept in.
func (d *Demo) Arena() core.Rect {
	return d.arena
}

// Blocks returns the static obstacles.
func (d *Demo) Blocks() []core.Rect {
	return d.blocks
}
