// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the platform
// to discover and instantiate demos without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/config"
	"github.com/Emilinya/bounce/internal/core"
)

// Demo is the interface every demo implements. Demos contain pure logic
// with no Bubble Tea dependency; the platform handles input mapping,
// timing, and rendering.
type Demo interface {
	// ID returns a unique identifier (e.g., "playground").
	// Used for CLI commands and session storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the demo state.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns bounce and anomaly counters and the pause flag.
	State() core.DemoState
}

// Configurable is implemented by demos that load a config file. Configure
// reports config errors up front; Reset falls back to defaults instead.
type Configurable interface {
	Configure() error
}

// Options are passed to a Factory. The zero value is usable: default
// config search order, normal preset, and no anomaly reporting.
type Options struct {
	ConfigPath string
	Preset     config.Preset
	Checker    *collision.Checker
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a demo.
type Factory func(opts Options) Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Options{}).Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string, opts Options) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(opts), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
