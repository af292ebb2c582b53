package xosc

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

func testEncoder() *Encoder {
	e := NewEncoder(slog.New(slog.NewTextHandler(io.Discard, nil)), "Test Author", "Test Scenario")
	e.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func testScenario() *core.Scenario {
	s := core.NewScenario("Town01")
	s.AddEgoVehicle(core.EgoVehicle{
		Model:       "Audi A2",
		Position:    core.Position3D{X: 10, Y: -5, Z: 0.5},
		Orientation: 1.2,
		InitSpeed:   "0",
		Agent:       "simple_vehicle_control",
		AgentCamera: true,
	})
	s.SetEnvironment(core.Environment{
		DateTime:         "2020-10-23T06:00:00",
		DateTimeAnimated: true,
		CloudState:       "free",
		FogRange:         100000,
		SunIntensity:     0.85,
		SunAzimuth:       0,
		SunElevation:     1.31,
		PrecipType:       "dry",
		PrecipIntensity:  0,
	})
	return s
}

func warningTexts(r *Report) []string {
	texts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}

func TestEncode_FileHeader(t *testing.T) {
	doc, _ := testEncoder().Encode(testScenario())

	assert.Equal(t, "1", doc.FileHeader.RevMajor)
	assert.Equal(t, "0", doc.FileHeader.RevMinor)
	assert.Equal(t, "2026-08-29T12:00:00", doc.FileHeader.Date)
	assert.Equal(t, "Test Author", doc.FileHeader.Author)
	assert.Equal(t, "Test Scenario", doc.FileHeader.Description)
	assert.Equal(t, "Town01", doc.RoadNetwork.LogicFile.Filepath)
}

func TestEncode_EntityOrderAndCatalog(t *testing.T) {
	s := testScenario()
	s.AddVehicle(core.Vehicle{Model: "Tesla Model 3", Position: core.Position3D{X: 20}})
	s.AddPedestrian(core.Pedestrian{Model: "Walker 0002", Position: core.Position3D{X: 30}})
	s.AddProp(core.StaticProp{Model: "Traffic Cone", Position: core.Position3D{X: 40}, Physics: true})

	doc, _ := testEncoder().Encode(s)

	require.Len(t, doc.Entities.Objects, 4)
	assert.Equal(t, "Ego_1", doc.Entities.Objects[0].Name)
	assert.Equal(t, "Vehicle_1", doc.Entities.Objects[1].Name)
	assert.Equal(t, "Pedestrian_1", doc.Entities.Objects[2].Name)
	assert.Equal(t, "Prop_1", doc.Entities.Objects[3].Name)

	ego := doc.Entities.Objects[0]
	require.NotNil(t, ego.Vehicle)
	assert.Equal(t, "vehicle.audi.a2", ego.Vehicle.Name)
	assert.Equal(t, []Property{{Name: "type", Value: "ego_vehicle"}}, ego.Vehicle.Properties.Properties)

	vehicle := doc.Entities.Objects[1]
	require.NotNil(t, vehicle.Vehicle)
	assert.Equal(t, "vehicle.tesla.model3", vehicle.Vehicle.Name)
	assert.Equal(t, []Property{{Name: "type", Value: "simulation"}}, vehicle.Vehicle.Properties.Properties)

	walker := doc.Entities.Objects[2]
	require.NotNil(t, walker.Pedestrian)
	assert.Equal(t, "walker.pedestrian.0002", walker.Pedestrian.Model)

	prop := doc.Entities.Objects[3]
	require.NotNil(t, prop.MiscObject)
	assert.Equal(t, "static.prop.trafficcone01", prop.MiscObject.Name)
	assert.Contains(t, prop.MiscObject.Properties.Properties, Property{Name: "physics", Value: "on"})
}

func TestEncode_UnknownModelPassesThrough(t *testing.T) {
	s := testScenario()
	s.Vehicles = nil
	s.AddVehicle(core.Vehicle{Model: "vehicle.custom.rig"})

	doc, _ := testEncoder().Encode(s)
	assert.Equal(t, "vehicle.custom.rig", doc.Entities.Objects[1].Vehicle.Name)
}

func TestEncode_EnvironmentAction(t *testing.T) {
	doc, report := testEncoder().Encode(testScenario())

	require.Len(t, doc.Storyboard.Init.Actions.GlobalActions, 1)
	env := doc.Storyboard.Init.Actions.GlobalActions[0].Environment
	require.NotNil(t, env)
	assert.Equal(t, "2020-10-23T06:00:00", env.Environment.TimeOfDay.DateTime)
	assert.Equal(t, "true", env.Environment.TimeOfDay.Animation)
	assert.Equal(t, "free", env.Environment.Weather.CloudState)
	assert.Equal(t, "100000", env.Environment.Weather.Fog.VisualRange)
	assert.Equal(t, "0.85", env.Environment.Weather.Sun.Intensity)
	assert.Equal(t, "1.31", env.Environment.Weather.Sun.Elevation)
	assert.Equal(t, "dry", env.Environment.Weather.Precipitation.PrecipitationType)

	for _, m := range report.Messages {
		assert.NotContains(t, m.Text, "environment", "concrete environment row must not warn")
	}
}

func TestEncode_MissingEnvironmentIsCritical(t *testing.T) {
	s := testScenario()
	s.Environments = nil

	doc, report := testEncoder().Encode(s)

	assert.Empty(t, doc.Storyboard.Init.Actions.GlobalActions)
	require.True(t, report.HasMessages())
	found := false
	for _, m := range report.Messages {
		if m.Severity == SeverityCritical && strings.Contains(m.Text, "environment") {
			found = true
		}
	}
	assert.True(t, found, "missing environment must produce a critical message")
}

func TestEncode_InitPrivates(t *testing.T) {
	doc, _ := testEncoder().Encode(testScenario())

	require.Len(t, doc.Storyboard.Init.Actions.Privates, 1)
	private := doc.Storyboard.Init.Actions.Privates[0]
	assert.Equal(t, "Ego_1", private.EntityRef)

	// teleport first, then controller; InitSpeed "0" adds no speed action
	require.Len(t, private.Actions, 2)

	teleport := private.Actions[0].Teleport
	require.NotNil(t, teleport)
	require.NotNil(t, teleport.Position.World)
	assert.Equal(t, "10", teleport.Position.World.X)
	assert.Equal(t, "-5", teleport.Position.World.Y)
	assert.Equal(t, "0.5", teleport.Position.World.Z)
	assert.Equal(t, "1.2", teleport.Position.World.H)

	controller := private.Actions[1].Controller
	require.NotNil(t, controller)
	require.NotNil(t, controller.Assign)
	assert.Equal(t, "HeroAgent_1", controller.Assign.Controller.Name)
	assert.Contains(t, controller.Assign.Controller.Properties.Properties,
		Property{Name: "module", Value: "simple_vehicle_control"})
	assert.Contains(t, controller.Assign.Controller.Properties.Properties,
		Property{Name: "attach_camera", Value: "true"})
	require.NotNil(t, controller.Override)
	assert.Equal(t, OverrideValue{Active: "false", Value: "0"}, controller.Override.Throttle)
}

func TestEncode_InitSpeed(t *testing.T) {
	tests := []struct {
		name      string
		initSpeed string
		want      string // "" means no speed action
	}{
		{name: "zero suppressed", initSpeed: "0", want: ""},
		{name: "zero float suppressed", initSpeed: "0.0", want: ""},
		{name: "empty suppressed", initSpeed: "", want: ""},
		{name: "literal", initSpeed: "13.9", want: "13.9"},
		{name: "parameter reference", initSpeed: "$InitialSpeed", want: "$InitialSpeed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testScenario()
			s.EgoVehicles[0].InitSpeed = tc.initSpeed

			doc, _ := testEncoder().Encode(s)
			private := doc.Storyboard.Init.Actions.Privates[0]

			var speed *SpeedAction
			for _, a := range private.Actions {
				if a.Longitudinal != nil {
					speed = a.Longitudinal.Speed
				}
			}
			if tc.want == "" {
				assert.Nil(t, speed)
				return
			}
			require.NotNil(t, speed)
			require.NotNil(t, speed.Target.Absolute)
			assert.Equal(t, tc.want, speed.Target.Absolute.Value)
		})
	}
}

func TestEncode_ParameterDeclarations(t *testing.T) {
	s := testScenario()
	s.Parameters = append(s.Parameters, core.Parameter{Name: "InitialSpeed", Type: "double", Value: "13.9"})

	doc, _ := testEncoder().Encode(s)
	require.Len(t, doc.ParameterDeclarations.Declarations, 1)
	assert.Equal(t, ParameterDeclaration{Name: "InitialSpeed", ParameterType: "double", Value: "13.9"},
		doc.ParameterDeclarations.Declarations[0])
}

func TestEncode_ManeuverGroupingByEntity(t *testing.T) {
	s := testScenario()
	s.AddVehicle(core.Vehicle{Model: "Seat Leon"})

	// interleaved insertion order: Ego, Vehicle, Ego
	m1 := core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SimulationTimeCondition{Value: 1, Rule: core.RuleGreaterThan}},
	}
	m2 := core.Maneuver{
		Entity: "Vehicle_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Vehicle_1", Condition: core.SimulationTimeCondition{Value: 2, Rule: core.RuleGreaterThan}},
	}
	m3 := core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SimulationTimeCondition{Value: 3, Rule: core.RuleGreaterThan}},
	}
	id1 := s.AddManeuver(m1)
	id2 := s.AddManeuver(m2)
	id3 := s.AddManeuver(m3)
	for _, id := range []int{id1, id2, id3} {
		entity := "Ego_1"
		if id == id2 {
			entity = "Vehicle_1"
		}
		s.AddWaypoint(core.Waypoint{ManeuverID: id, Entity: entity, Position: core.Position3D{X: float64(id)}})
	}

	doc, _ := testEncoder().Encode(s)

	groups := doc.Storyboard.Story.Act.ManeuverGroups
	require.Len(t, groups, 2, "one group per entity")

	assert.Equal(t, "Maneuver group for Ego_1", groups[0].Name)
	require.Len(t, groups[0].Actors.EntityRefs, 1)
	assert.Equal(t, "Ego_1", groups[0].Actors.EntityRefs[0].EntityRef)
	require.Len(t, groups[0].Maneuvers, 2)
	assert.Equal(t, "Maneuver ID 1", groups[0].Maneuvers[0].Name)
	assert.Equal(t, "Maneuver ID 3", groups[0].Maneuvers[1].Name)

	assert.Equal(t, "Maneuver group for Vehicle_1", groups[1].Name)
	require.Len(t, groups[1].Maneuvers, 1)
	assert.Equal(t, "Maneuver ID 2", groups[1].Maneuvers[0].Name)
}

func TestEncode_WaypointRouteOrderedBySequence(t *testing.T) {
	s := testScenario()
	id := s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SimulationTimeCondition{Value: 0, Rule: core.RuleGreaterThan}},
	})
	// inserted out of order, sequence numbers fixed by hand
	s.Waypoints = append(s.Waypoints,
		core.Waypoint{ManeuverID: id, Entity: "Ego_1", SequenceNo: 2, Position: core.Position3D{X: 2}},
		core.Waypoint{ManeuverID: id, Entity: "Ego_1", SequenceNo: 1, Position: core.Position3D{X: 1}},
		core.Waypoint{ManeuverID: id, Entity: "Ego_1", SequenceNo: 3, Position: core.Position3D{X: 3}},
	)

	doc, _ := testEncoder().Encode(s)

	groups := doc.Storyboard.Story.Act.ManeuverGroups
	require.Len(t, groups, 1)
	event := groups[0].Maneuvers[0].Events[0]
	require.NotNil(t, event.Action.Private)
	require.NotNil(t, event.Action.Private.Routing)
	route := event.Action.Private.Routing.AssignRoute.Route
	require.Len(t, route.Waypoints, 3)
	assert.Equal(t, "1", route.Waypoints[0].Position.World.X)
	assert.Equal(t, "2", route.Waypoints[1].Position.World.X)
	assert.Equal(t, "3", route.Waypoints[2].Position.World.X)
	assert.Equal(t, "fastest", route.Waypoints[0].RouteStrategy)
}

func TestEncode_WaypointManeuverWithoutWaypointsSkipped(t *testing.T) {
	s := testScenario()
	s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SimulationTimeCondition{Value: 0, Rule: core.RuleGreaterThan}},
	})

	doc, report := testEncoder().Encode(s)

	groups := doc.Storyboard.Story.Act.ManeuverGroups
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Maneuvers)
	assert.Contains(t, strings.Join(warningTexts(report), "\n"), "no waypoints")
}

func TestEncode_LongitudinalManeuver(t *testing.T) {
	s := testScenario()
	id := s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverLongitudinal,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SpeedCondition{Value: 5, Rule: core.RuleGreaterThan}},
	})
	s.LongitudinalActions = append(s.LongitudinalActions, core.LongitudinalAction{
		ManeuverID:       id,
		Type:             core.LongitudinalSpeed,
		SpeedTarget:      core.TargetAbsolute,
		TargetSpeedValue: 20,
		DynamicsShape:    "linear",
		DynamicsValue:    5,
	})

	doc, report := testEncoder().Encode(s)
	assert.NotContains(t, strings.Join(warningTexts(report), "\n"), "longitudinal")

	event := doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers[0].Events[0]
	require.NotNil(t, event.Action.Private.Longitudinal)
	speed := event.Action.Private.Longitudinal.Speed
	require.NotNil(t, speed)
	assert.Equal(t, "linear", speed.Dynamics.DynamicsShape)
	assert.Equal(t, "5", speed.Dynamics.Value)
	assert.Equal(t, "time", speed.Dynamics.DynamicsDimension)
	require.NotNil(t, speed.Target.Absolute)
	assert.Equal(t, "20", speed.Target.Absolute.Value)
}

func TestEncode_LongitudinalManeuverWithoutPayloadSkipped(t *testing.T) {
	s := testScenario()
	s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverLongitudinal,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SpeedCondition{Value: 5, Rule: core.RuleGreaterThan}},
	})

	doc, report := testEncoder().Encode(s)
	assert.Empty(t, doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers)
	assert.Contains(t, strings.Join(warningTexts(report), "\n"), "no longitudinal action row")
}

func TestEncode_LateralLaneChangeManeuver(t *testing.T) {
	s := testScenario()
	id := s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverLateral,
		StartTrigger: core.Trigger{TriggeringEntity: "Ego_1", Condition: core.StandStillCondition{Duration: 2}},
	})
	s.LateralActions = append(s.LateralActions, core.LateralAction{
		ManeuverID:    id,
		Type:          core.LateralLaneChange,
		LaneTarget:    core.TargetRelative,
		LaneValue:     "-1",
		TargetEntity:  "Ego_1",
		DynamicsShape: "sinusoidal",
		DynamicsValue: 2,
	})

	doc, _ := testEncoder().Encode(s)

	event := doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers[0].Events[0]
	require.NotNil(t, event.Action.Private.Lateral)
	change := event.Action.Private.Lateral.LaneChange
	require.NotNil(t, change)
	assert.Equal(t, "sinusoidal", change.Dynamics.DynamicsShape)
	require.NotNil(t, change.Target.Relative)
	assert.Equal(t, "Ego_1", change.Target.Relative.EntityRef)
	assert.Equal(t, "-1", change.Target.Relative.Value)
}

func TestEncode_TrafficLightManeuver(t *testing.T) {
	s := testScenario()
	s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverGlobal, GlobalActionType: core.GlobalInfrastructure,
		TrafficLightID: 12, TrafficLightState: "green",
		StartTrigger: core.Trigger{Condition: core.SimulationTimeCondition{Value: 5, Rule: core.RuleGreaterThan}},
	})

	doc, _ := testEncoder().Encode(s)

	action := doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers[0].Events[0].Action
	require.NotNil(t, action.Global)
	require.NotNil(t, action.Global.Infrastructure)
	state := action.Global.Infrastructure.TrafficSignal.State
	require.NotNil(t, state)
	assert.Equal(t, "id=12", state.Name)
	assert.Equal(t, "green", state.State)
}

func TestEncode_StopTriggerOnlyWhenEnabled(t *testing.T) {
	s := testScenario()
	stop := core.Trigger{TriggeringEntity: "Ego_1", Condition: core.StandStillCondition{Duration: 1}}
	id := s.AddManeuver(core.Maneuver{
		Entity: "Ego_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger:       core.Trigger{TriggeringEntity: "Ego_1", Condition: core.SimulationTimeCondition{Value: 0, Rule: core.RuleGreaterThan}},
		StopTriggerEnabled: false,
		StopTrigger:        &stop,
	})
	s.AddWaypoint(core.Waypoint{ManeuverID: id, Entity: "Ego_1"})

	doc, _ := testEncoder().Encode(s)
	event := doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers[0].Events[0]
	assert.Nil(t, event.StopTrigger, "disabled stop trigger must not encode")

	s.Maneuvers[0].StopTriggerEnabled = true
	doc, _ = testEncoder().Encode(s)
	event = doc.Storyboard.Story.Act.ManeuverGroups[0].Maneuvers[0].Events[0]
	require.NotNil(t, event.StopTrigger)
	cond := event.StopTrigger.ConditionGroups[0].Conditions[0]
	assert.Equal(t, "Stop condition of Maneuver ID 1", cond.Name)
	require.NotNil(t, cond.ByEntity)
	assert.NotNil(t, cond.ByEntity.EntityCondition.StandStill)
}

func TestEncode_FallbackManeuver(t *testing.T) {
	doc, report := testEncoder().Encode(testScenario())

	groups := doc.Storyboard.Story.Act.ManeuverGroups
	require.Len(t, groups, 1, "empty maneuver table must synthesize one group")
	assert.Equal(t, "Maneuver group for Ego_1", groups[0].Name)
	require.Len(t, groups[0].Maneuvers, 1)

	event := groups[0].Maneuvers[0].Events[0]
	require.NotNil(t, event.Action.Private.Routing)
	acquire := event.Action.Private.Routing.AcquirePosition
	require.NotNil(t, acquire)
	assert.Equal(t, "110", acquire.Position.World.X)
	assert.Equal(t, "95", acquire.Position.World.Y)
	assert.Equal(t, "0.5", acquire.Position.World.Z)

	cond := event.StartTrigger.ConditionGroups[0].Conditions[0]
	require.NotNil(t, cond.ByEntity)
	reach := cond.ByEntity.EntityCondition.ReachPosition
	require.NotNil(t, reach)
	assert.Equal(t, "1", reach.Tolerance)
	assert.Equal(t, "110", reach.Position.World.X)
	assert.Equal(t, "95", reach.Position.World.Y)

	assert.Contains(t, strings.Join(warningTexts(report), "\n"), "default drive maneuver")
}

func TestEncode_FallbackPrefersEgoThenVehicle(t *testing.T) {
	s := core.NewScenario("Town01")
	s.SetEnvironment(core.Environment{DateTime: "2020-10-23T06:00:00"})
	s.AddVehicle(core.Vehicle{Model: "Seat Leon", Position: core.Position3D{X: 1, Y: 2}})

	doc, _ := testEncoder().Encode(s)
	groups := doc.Storyboard.Story.Act.ManeuverGroups
	require.Len(t, groups, 1)
	assert.Equal(t, "Vehicle_1", groups[0].Actors.EntityRefs[0].EntityRef)
}

func TestEncode_FallbackWithoutVehicleIsCritical(t *testing.T) {
	s := core.NewScenario("Town01")
	s.SetEnvironment(core.Environment{DateTime: "2020-10-23T06:00:00"})

	doc, report := testEncoder().Encode(s)
	require.Len(t, doc.Storyboard.Story.Act.ManeuverGroups, 1)
	assert.Equal(t, "", doc.Storyboard.Story.Act.ManeuverGroups[0].Actors.EntityRefs[0].EntityRef)

	critical := false
	for _, m := range report.Messages {
		if m.Severity == SeverityCritical {
			critical = true
		}
	}
	assert.True(t, critical)
}

func TestEncode_ActTriggers(t *testing.T) {
	doc, _ := testEncoder().Encode(testScenario())

	start := doc.Storyboard.Story.Act.StartTrigger.ConditionGroups[0].Conditions[0]
	require.NotNil(t, start.ByValue.SimulationTime)
	assert.Equal(t, "0", start.ByValue.SimulationTime.Value)

	stop := doc.Storyboard.Story.Act.StopTrigger.ConditionGroups[0].Conditions[0]
	require.NotNil(t, stop.ByValue.SimulationTime)
	assert.Equal(t, "100", stop.ByValue.SimulationTime.Value)
}

func TestEncode_StopCriteria(t *testing.T) {
	s := testScenario()
	s.Criteria = append(s.Criteria,
		core.EndEvaluationCriterion{
			ConditionName: "criteria_RunningStopTest", ParameterRef: "criteria_RunningStopTest",
			Value: 0, Rule: core.RuleLessThan,
		},
		core.EndEvaluationCriterion{
			ConditionName: "criteria_CollisionTest", ParameterRef: "criteria_CollisionTest",
			Value: 0, Rule: core.RuleLessThan, ConditionEdge: core.EdgeNone,
		},
	)

	doc, report := testEncoder().Encode(s)
	require.Len(t, doc.Storyboard.StopTrigger.ConditionGroups, 2, "one group per criterion")

	first := doc.Storyboard.StopTrigger.ConditionGroups[0].Conditions[0]
	assert.Equal(t, "criteria_RunningStopTest", first.Name)
	assert.Equal(t, "rising", first.ConditionEdge)
	require.NotNil(t, first.ByValue.Parameter)
	assert.Equal(t, "criteria_RunningStopTest", first.ByValue.Parameter.ParameterRef)
	assert.Equal(t, "lessThan", first.ByValue.Parameter.Rule)

	second := doc.Storyboard.StopTrigger.ConditionGroups[1].Conditions[0]
	assert.Equal(t, "none", second.ConditionEdge)

	for _, m := range report.Messages {
		assert.NotContains(t, m.Text, "criteria")
	}
}

func TestEncode_EmptyCriteriaWarns(t *testing.T) {
	doc, report := testEncoder().Encode(testScenario())

	assert.Empty(t, doc.Storyboard.StopTrigger.ConditionGroups)
	assert.Contains(t, strings.Join(warningTexts(report), "\n"), "end evaluation criteria")
}

func TestEncode_Idempotent(t *testing.T) {
	s := testScenario()
	s.AddVehicle(core.Vehicle{Model: "Seat Leon", InitSpeed: "5"})
	id := s.AddManeuver(core.Maneuver{
		Entity: "Vehicle_1", Type: core.ManeuverEntity, EntityManeuverType: core.ManeuverWaypoint,
		StartTrigger: core.Trigger{TriggeringEntity: "Vehicle_1", Condition: core.SimulationTimeCondition{Value: 0, Rule: core.RuleGreaterThan}},
	})
	s.AddWaypoint(core.Waypoint{ManeuverID: id, Entity: "Vehicle_1", Position: core.Position3D{X: 7}})

	enc := testEncoder()
	first, _ := enc.Encode(s)
	second, _ := enc.Encode(s)

	a, err := enc.Marshal(first)
	require.NoError(t, err)
	b, err := enc.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "same scenario must encode to identical bytes")
}

func TestMarshal_DeclarationAndIndent(t *testing.T) {
	enc := testEncoder()
	doc, _ := enc.Encode(testScenario())

	data, err := enc.Marshal(doc)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "<?xml"))
	assert.Contains(t, text, "<OpenSCENARIO>")
	assert.Contains(t, text, "\n    <FileHeader")
	assert.Contains(t, text, "<CatalogLocations></CatalogLocations>")
}

func TestWriteFile(t *testing.T) {
	enc := testEncoder()

	t.Run("empty path is an error", func(t *testing.T) {
		_, err := enc.WriteFile(testScenario(), "")
		require.Error(t, err)
	})

	t.Run("appends xosc extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario")
		report, err := enc.WriteFile(testScenario(), path)
		require.NoError(t, err)
		require.NotNil(t, report)

		data, err := os.ReadFile(path + ".xosc")
		require.NoError(t, err)
		assert.Contains(t, string(data), "<OpenSCENARIO>")
	})

	t.Run("creates output directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "scenario.xosc")
		_, err := enc.WriteFile(testScenario(), path)
		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})
}
