package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(filepath.Join(t.TempDir(), "project.db"))
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func sampleScenario() *core.Scenario {
	s := core.NewScenario("Town03")
	s.AddEgoVehicle(core.EgoVehicle{
		Model:       "Tesla Model 3",
		Position:    core.Position3D{X: 10, Y: -5, Z: 0.3},
		Orientation: 0.5,
		InitSpeed:   "8.3",
		Agent:       "simple_vehicle_control",
		AgentCamera: true,
	})
	s.AddVehicle(core.Vehicle{Model: "Audi A2", Position: core.Position3D{X: 30, Y: 2}})
	s.AddPedestrian(core.Pedestrian{Model: "Walker 0001", InitSpeed: "1.4"})
	s.AddProp(core.StaticProp{Model: "Barrel", Physics: true})

	mid := s.AddManeuver(core.Maneuver{
		Entity:             "Ego_1",
		Type:               core.ManeuverEntity,
		EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{
			TriggeringEntity: "Ego_1",
			Edge:             core.EdgeRising,
			Condition:        core.SpeedCondition{Value: 1, Rule: core.RuleGreaterThan},
		},
		StopTriggerEnabled: true,
		StopTrigger: &core.Trigger{
			Edge:      core.EdgeRising,
			Condition: core.SimulationTimeCondition{Value: 60, Rule: core.RuleGreaterThan},
		},
	})
	s.AddWaypoint(core.Waypoint{ManeuverID: mid, Entity: "Ego_1", Position: core.Position3D{X: 20}})
	s.AddWaypoint(core.Waypoint{ManeuverID: mid, Entity: "Ego_1", Position: core.Position3D{X: 40}})

	lid := s.AddManeuver(core.Maneuver{
		Entity:             "Vehicle_1",
		Type:               core.ManeuverEntity,
		EntityManeuverType: core.ManeuverLongitudinal,
		StartTrigger: core.Trigger{
			TriggeringEntity: "Vehicle_1",
			Edge:             core.EdgeRising,
			Condition:        core.StandStillCondition{Duration: 2},
		},
	})
	s.LongitudinalActions = append(s.LongitudinalActions, core.LongitudinalAction{
		ManeuverID:       lid,
		Type:             core.LongitudinalSpeed,
		SpeedTarget:      core.TargetAbsolute,
		TargetSpeedValue: 15,
		DynamicsShape:    "linear",
		DynamicsValue:    3,
	})

	s.SetEnvironment(core.Environment{
		DateTime:   "2021-01-01T00:00:00",
		CloudState: "free",
		FogRange:   100000,
		PrecipType: "dry",
	})
	s.Criteria = append(s.Criteria, core.EndEvaluationCriterion{
		ConditionName: "criteria_RunningStopTest",
		ConditionEdge: core.EdgeRising,
		Rule:          core.RuleLessThan,
	})
	s.Parameters = append(s.Parameters, core.Parameter{Name: "Speed", Type: "double", Value: "8.3"})
	return s
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	b := newTestBackend(t)

	in := sampleScenario()
	require.NoError(t, b.Save(in))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_ReplacesPreviousProject(t *testing.T) {
	b := newTestBackend(t)

	first := sampleScenario()
	require.NoError(t, b.Save(first))

	second := core.NewScenario("Town05")
	second.AddVehicle(core.Vehicle{Model: "Seat Leon"})
	require.NoError(t, b.Save(second))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, "Town05", out.RoadNetworkPath)
	assert.Empty(t, out.EgoVehicles)
	require.Len(t, out.Vehicles, 1)
	assert.Equal(t, "Seat Leon", out.Vehicles[0].Model)
}

func TestLoad_EmptyDatabase(t *testing.T) {
	b := newTestBackend(t)

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, core.NewScenario(""), out)
}

func TestSaveLoad_UninitializedBackend(t *testing.T) {
	b := New("/nonexistent/project.db")

	require.Error(t, b.Save(core.NewScenario("")))
	_, err := b.Load()
	require.Error(t, err)
}
