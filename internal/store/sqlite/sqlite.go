// Package sqlite implements the project store on a local SQLite file via
// GORM. The whole scenario is written in one transaction with a
// clear-then-insert per table, matching the in-memory semantics: Save
// replaces, it never merges.
package sqlite

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

var tableModels = []interface{}{
	&projectRow{},
	&egoVehicleRow{},
	&vehicleRow{},
	&pedestrianRow{},
	&propRow{},
	&maneuverRow{},
	&waypointRow{},
	&longitudinalRow{},
	&lateralRow{},
	&environmentRow{},
	&criterionRow{},
	&parameterRow{},
}

// Backend persists the scenario to a SQLite file.
type Backend struct {
	path string
	db   *gorm.DB
}

// New creates a SQLite backend for the given file path.
func New(path string) *Backend {
	return &Backend{path: path}
}

// Init opens the database and migrates the schema.
func (b *Backend) Init() error {
	db, err := gorm.Open(sqlite.Open(b.path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open sqlite db %s: %w", b.path, err)
	}
	if err := db.AutoMigrate(tableModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	b.db = db
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// create inserts a batch unless it is empty, since gorm rejects empty
// Create calls.
func create[R any](tx *gorm.DB, rows []R) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// Save replaces the stored scenario.
func (b *Backend) Save(s *core.Scenario) error {
	if b.db == nil {
		return fmt.Errorf("sqlite backend not initialized")
	}
	rows, err := toRows(s)
	if err != nil {
		return err
	}

	return b.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range tableModels {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		if err := tx.Create(&rows.project).Error; err != nil {
			return fmt.Errorf("failed to save project row: %w", err)
		}
		if err := create(tx, rows.egos); err != nil {
			return fmt.Errorf("failed to save ego vehicles: %w", err)
		}
		if err := create(tx, rows.vehicles); err != nil {
			return fmt.Errorf("failed to save vehicles: %w", err)
		}
		if err := create(tx, rows.pedestrians); err != nil {
			return fmt.Errorf("failed to save pedestrians: %w", err)
		}
		if err := create(tx, rows.props); err != nil {
			return fmt.Errorf("failed to save props: %w", err)
		}
		if err := create(tx, rows.maneuvers); err != nil {
			return fmt.Errorf("failed to save maneuvers: %w", err)
		}
		if err := create(tx, rows.waypoints); err != nil {
			return fmt.Errorf("failed to save waypoints: %w", err)
		}
		if err := create(tx, rows.longitudinals); err != nil {
			return fmt.Errorf("failed to save longitudinal actions: %w", err)
		}
		if err := create(tx, rows.laterals); err != nil {
			return fmt.Errorf("failed to save lateral actions: %w", err)
		}
		if err := create(tx, rows.environments); err != nil {
			return fmt.Errorf("failed to save environments: %w", err)
		}
		if err := create(tx, rows.criteria); err != nil {
			return fmt.Errorf("failed to save criteria: %w", err)
		}
		if err := create(tx, rows.parameters); err != nil {
			return fmt.Errorf("failed to save parameters: %w", err)
		}
		return nil
	})
}

// Load reads the stored scenario, or returns an empty one when the
// database holds no project row.
func (b *Backend) Load() (*core.Scenario, error) {
	if b.db == nil {
		return nil, fmt.Errorf("sqlite backend not initialized")
	}

	var projects []projectRow
	if err := b.db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to read project row: %w", err)
	}
	if len(projects) == 0 {
		return core.NewScenario(""), nil
	}

	rows := scenarioRows{project: projects[0]}
	if err := b.db.Find(&rows.egos).Error; err != nil {
		return nil, fmt.Errorf("failed to read ego vehicles: %w", err)
	}
	if err := b.db.Find(&rows.vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}
	if err := b.db.Find(&rows.pedestrians).Error; err != nil {
		return nil, fmt.Errorf("failed to read pedestrians: %w", err)
	}
	if err := b.db.Find(&rows.props).Error; err != nil {
		return nil, fmt.Errorf("failed to read props: %w", err)
	}
	if err := b.db.Find(&rows.maneuvers).Error; err != nil {
		return nil, fmt.Errorf("failed to read maneuvers: %w", err)
	}
	if err := b.db.Find(&rows.waypoints).Error; err != nil {
		return nil, fmt.Errorf("failed to read waypoints: %w", err)
	}
	if err := b.db.Find(&rows.longitudinals).Error; err != nil {
		return nil, fmt.Errorf("failed to read longitudinal actions: %w", err)
	}
	if err := b.db.Find(&rows.laterals).Error; err != nil {
		return nil, fmt.Errorf("failed to read lateral actions: %w", err)
	}
	if err := b.db.Find(&rows.environments).Error; err != nil {
		return nil, fmt.Errorf("failed to read environments: %w", err)
	}
	if err := b.db.Find(&rows.criteria).Error; err != nil {
		return nil, fmt.Errorf("failed to read criteria: %w", err)
	}
	if err := b.db.Find(&rows.parameters).Error; err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}

	return fromRows(&rows)
}
