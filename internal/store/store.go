// internal/store/store.go
package store

import (
	"fmt"

	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/config"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/store/memory"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/store/sqlite"
	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// Backend is the interface all project store implementations satisfy.
// A project store persists the scenario tables between editing sessions;
// it is not involved in encoding or decoding documents.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Load returns the stored scenario, or an empty one when nothing
	// has been saved yet.
	Load() (*core.Scenario, error)

	// Save replaces the stored scenario with the given one.
	Save(*core.Scenario) error
}

// NewBackend creates a project store backend based on configuration.
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Type {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New(cfg.Sqlite.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
