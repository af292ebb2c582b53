// internal/store/memory/memory.go
package memory

import (
	"sync"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// Backend keeps the scenario in process memory. This is the default
// store for a single editing session with no persistence.
type Backend struct {
	mu       sync.RWMutex
	scenario *core.Scenario
}

// New creates an empty memory backend.
func New() *Backend {
	return &Backend{}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

// Load returns the stored scenario, or an empty one if Save was never
// called.
func (b *Backend) Load() (*core.Scenario, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.scenario == nil {
		return core.NewScenario(""), nil
	}
	return b.scenario, nil
}

// Save replaces the stored scenario.
func (b *Backend) Save(s *core.Scenario) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scenario = s
	return nil
}
