package agent

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// Info contains metadata about a registered agent.
type Info struct {
	Name        string
	Description string
	Interactive bool // Needs keyboard input to make progress
}

// Factory creates a new agent instance.
type Factory func(opts Options) Agent

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds an agent factory to the registry.
// Typically called from an init() function.
// Panics if an agent with the same name is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.Name]; exists {
		panic(fmt.Sprintf("agent: %q already registered", info.Name))
	}
	entries[info.Name] = entry{info: info, factory: f}
}

// List returns information about all registered agents, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates an agent by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Agent, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("agent: unknown agent %q", name)
	}

	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(1))
	}
	if opts.Depth <= 0 {
		opts.Depth = DefaultDepth
	}
	return e.factory(opts), nil
}

// Exists checks if an agent with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

// Lookup returns the metadata for a registered agent.
func Lookup(name string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	return e.info, ok
}

func init() {
	Register(Info{Name: "human", Description: "Arrow keys, WASD or hjkl", Interactive: true}, func(Options) Agent {
		return NewHuman()
	})
	Register(Info{Name: "random", Description: "Uniformly random direction"}, func(opts Options) Agent {
		return NewRandom(opts.Rng)
	})
	Register(Info{Name: "greedy", Description: "Best immediate score, then most empty cells"}, func(Options) Agent {
		return NewGreedy()
	})
	Register(Info{Name: "expectimax", Description: "Depth-limited expectimax search"}, func(opts Options) Agent {
		return NewExpectimax(DefaultEvaluator(), opts.Depth)
	})
}
