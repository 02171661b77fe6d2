// Package registry provides a global registry for paddle driver factories.
// Drivers register themselves in init() functions, allowing the platform
// to pick who controls each paddle by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// View is what a driver may observe about the field each tick.
type View struct {
	Side             core.Side
	Paddle           core.Vec2
	PaddleHalfHeight float64
	Ball             core.Vec2
	BallVelocity     core.Vec2
}

// Driver decides the vertical axis sample for one paddle.
type Driver interface {
	// ID returns a unique identifier (e.g., "human", "cpu").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Axis returns a value in [-1, 1]; positive moves the paddle up.
	// in holds the keyboard actions mapped to this paddle's side.
	Axis(in core.InputFrame, view View) float64
}

// Options are passed to a factory when a driver is created.
type Options struct {
	Seed  int64   // RNG seed for drivers with randomness
	Skill float64 // 0..1, used by computer drivers
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new driver instance.
type Factory func(opts Options) Driver

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a driver factory to the registry.
// Panics if a driver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Options{}).Title()
}

// List returns information about all registered drivers, sorted by ID.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DriverInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a driver by its ID.
func Create(id string, opts Options) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", id)
	}
	return f(opts), nil
}

// Exists checks if a driver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
