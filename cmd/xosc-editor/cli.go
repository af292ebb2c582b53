package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/config"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/geo"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/store"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/xosc"
	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

func runExport(logger *slog.Logger, backend store.Backend, args []string) error {
	exportCfg, err := config.Export()
	if err != nil {
		return fmt.Errorf("failed to read export config: %w", err)
	}

	path := filepath.Join(exportCfg.OutputDir, "scenario.xosc")
	if len(args) > 0 {
		path = args[0]
	}

	scenario, err := backend.Load()
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	encoder := xosc.NewEncoder(logger, exportCfg.Author, exportCfg.Description)
	report, err := encoder.WriteFile(scenario, path)
	if err != nil {
		return err
	}

	fmt.Println("Exported scenario to", path)
	if report.HasMessages() {
		fmt.Println(report.Summary())
	}
	return nil
}

func runImport(logger *slog.Logger, backend store.Backend, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no import file provided")
	}

	decoder := xosc.NewDecoder(logger)
	result, err := decoder.DecodeFile(args[0])
	if err != nil {
		return err
	}

	scenario, err := backend.Load()
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	decoder.Apply(scenario, result)
	if err := backend.Save(scenario); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	fmt.Printf("Imported %d ego vehicles, %d vehicles, %d pedestrians, %d props\n",
		len(result.EgoVehicles), len(result.Vehicles), len(result.Pedestrians), len(result.Props))
	if result.Report.HasMessages() {
		fmt.Println(result.Report.Summary())
	}
	return nil
}

// runDemo replaces the stored scenario with a small self-contained one,
// mostly useful for trying the export path on a fresh install. An
// optional "x,y[,z]" argument places the ego somewhere other than the
// default spot.
func runDemo(logger *slog.Logger, backend store.Backend, args []string) error {
	egoPos := core.Position3D{X: 110, Y: 55, Z: 0.3}
	if len(args) > 0 {
		pos, err := geo.PositionFromString(args[0])
		if err != nil {
			return fmt.Errorf("bad ego position %q: %w", args[0], err)
		}
		egoPos = pos
	}

	s := core.NewScenario(config.GetString("roadNetwork"))

	egoID := s.AddEgoVehicle(core.EgoVehicle{
		Model:       "Audi A2",
		Position:    egoPos,
		Orientation: 1.57,
		InitSpeed:   "0",
		Agent:       "simple_vehicle_control",
		AgentCamera: true,
	})
	s.AddVehicle(core.Vehicle{
		Model:       "Tesla Model 3",
		Position:    core.Position3D{X: 130, Y: 55, Z: 0.3},
		Orientation: 1.57,
		InitSpeed:   "8.3",
	})

	maneuverID := s.AddManeuver(core.Maneuver{
		Entity:             "Vehicle_1",
		Type:               core.ManeuverEntity,
		EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{
			TriggeringEntity: "Ego_1",
			Condition: core.TraveledDistanceCondition{
				Value: 10,
			},
		},
	})
	s.AddWaypoint(core.Waypoint{
		ManeuverID: maneuverID,
		Entity:     "Vehicle_1",
		Position:   core.Position3D{X: 130, Y: 120, Z: 0.3},
	})
	s.AddWaypoint(core.Waypoint{
		ManeuverID: maneuverID,
		Entity:     "Vehicle_1",
		Position:   core.Position3D{X: 130, Y: 180, Z: 0.3},
	})

	s.SetEnvironment(core.Environment{
		DateTime:        "2020-10-23T06:00:00",
		CloudState:      "free",
		FogRange:        100000,
		SunIntensity:    0.85,
		SunAzimuth:      0,
		SunElevation:    1.31,
		PrecipType:      "dry",
		PrecipIntensity: 0,
	})
	s.Criteria = append(s.Criteria, core.EndEvaluationCriterion{
		ConditionName: "criteria_CollisionTest",
		ParameterRef:  "criteria_CollisionTest",
		Value:         0,
		Rule:          core.RuleLessThan,
	})

	if err := backend.Save(s); err != nil {
		return fmt.Errorf("failed to save demo scenario: %w", err)
	}
	logger.Info("Demo scenario saved", "ego", egoID, "maneuver", maneuverID)
	fmt.Println("Demo scenario saved.")
	return nil
}
