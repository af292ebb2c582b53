// internal/xosc/encoder.go
package xosc

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// Encoder turns a scenario into an OpenSCENARIO 1.0 document. Encoding
// is a pure walk over the scenario tables; missing data produces report
// messages and fallbacks, never a failed encode.
type Encoder struct {
	logger      *slog.Logger
	author      string
	description string

	// injectable clock for the file header date
	now func() time.Time
}

// NewEncoder creates an encoder with the given header strings.
func NewEncoder(logger *slog.Logger, author, description string) *Encoder {
	return &Encoder{
		logger:      logger,
		author:      author,
		description: description,
		now:         time.Now,
	}
}

// Encode builds the document from the scenario's current table contents.
// The returned report carries all non-fatal problems; the document is
// always complete and schema-shaped.
func (e *Encoder) Encode(s *core.Scenario) (*Document, *Report) {
	report := &Report{}

	doc := &Document{
		FileHeader: FileHeader{
			RevMajor:    "1",
			RevMinor:    "0",
			Date:        e.now().Format("2006-01-02T15:04:05"),
			Description: e.description,
			Author:      e.author,
		},
		RoadNetwork: RoadNetwork{
			LogicFile:      FileRef{Filepath: s.RoadNetworkPath},
			SceneGraphFile: FileRef{Filepath: ""},
		},
	}

	for _, p := range s.Parameters {
		doc.ParameterDeclarations.Declarations = append(doc.ParameterDeclarations.Declarations, ParameterDeclaration{
			Name:          p.Name,
			ParameterType: p.Type,
			Value:         p.Value,
		})
	}

	doc.Entities = e.encodeEntities(s)
	doc.Storyboard = Storyboard{
		Init: e.encodeInit(s, report),
		Story: Story{
			Name: "OSC Generated Story",
			Act: Act{
				Name:           "OSC Generated Act",
				ManeuverGroups: e.encodeManeuverGroups(s, report),
				StartTrigger:   simulationTimeCondition("Act start", 0),
				StopTrigger:    simulationTimeCondition("Act stop", 100),
			},
		},
		StopTrigger: e.encodeStopCriteria(s, report),
	}

	documentsEncoded().Add(context.Background(), 1)
	for _, m := range report.Messages {
		e.logger.Warn("Encode issue", "severity", m.Severity, "message", m.Text)
	}
	return doc, report
}

// Marshal serializes a document with an XML declaration and 4-space
// pretty-printing.
func (e *Encoder) Marshal(doc *Document) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// WriteFile encodes the scenario and writes it to path, appending the
// .xosc extension when missing. An empty path is the one hard input
// error of the export flow.
func (e *Encoder) WriteFile(s *core.Scenario, path string) (*Report, error) {
	if path == "" {
		return nil, fmt.Errorf("no export path provided")
	}
	if !strings.HasSuffix(path, ".xosc") {
		path += ".xosc"
	}

	doc, report := e.Encode(s)
	data, err := e.Marshal(doc)
	if err != nil {
		return report, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return report, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return report, fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.logger.Info("Scenario exported", "path", path, "warnings", len(report.Messages))
	return report, nil
}

// Entities

// Simulator-generic physical constants. They satisfy schema validity for
// CARLA and carry no information from the scenario records.
var (
	vehiclePerformance = Performance{MaxSpeed: "69.444", MaxAcceleration: "200", MaxDeceleration: "10.0"}
	vehicleBoundingBox = BoundingBox{
		Center:     Center{X: "1.5", Y: "0.0", Z: "0.9"},
		Dimensions: Dimensions{Width: "2.1", Length: "4.5", Height: "1.8"},
	}
	vehicleAxles = Axles{
		FrontAxle: Axle{MaxSteering: "0.5", WheelDiameter: "0.6", TrackWidth: "1.8", PositionX: "3.1", PositionZ: "0.3"},
		RearAxle:  Axle{MaxSteering: "0.0", WheelDiameter: "0.6", TrackWidth: "1.8", PositionX: "0.0", PositionZ: "0.3"},
	}
	pedestrianBoundingBox = BoundingBox{
		Center:     Center{X: "0.0", Y: "0.0", Z: "0.9"},
		Dimensions: Dimensions{Width: "0.5", Length: "0.6", Height: "1.8"},
	}
	propBoundingBox = BoundingBox{
		Center:     Center{X: "0.0", Y: "0.0", Z: "0.5"},
		Dimensions: Dimensions{Width: "1.0", Length: "1.0", Height: "1.0"},
	}
)

func (e *Encoder) encodeEntities(s *core.Scenario) Entities {
	var entities Entities

	for _, ego := range s.EgoVehicles {
		entities.Objects = append(entities.Objects, ScenarioObject{
			Name:    ego.Name(),
			Vehicle: vehicleElement(core.KindEgoVehicle, ego.Model, "ego_vehicle"),
		})
	}
	for _, v := range s.Vehicles {
		entities.Objects = append(entities.Objects, ScenarioObject{
			Name:    v.Name(),
			Vehicle: vehicleElement(core.KindVehicle, v.Model, "simulation"),
		})
	}
	for _, p := range s.Pedestrians {
		blueprint := core.BlueprintID(core.KindPedestrian, p.Model)
		entities.Objects = append(entities.Objects, ScenarioObject{
			Name: p.Name(),
			Pedestrian: &Pedestrian{
				Model:              blueprint,
				Mass:               "90.0",
				Name:               blueprint,
				PedestrianCategory: "pedestrian",
				BoundingBox:        pedestrianBoundingBox,
				Properties: Properties{Properties: []Property{
					{Name: "type", Value: "simulation"},
				}},
			},
		})
	}
	for _, p := range s.Props {
		blueprint := core.BlueprintID(core.KindStaticProp, p.Model)
		physics := "off"
		if p.Physics {
			physics = "on"
		}
		entities.Objects = append(entities.Objects, ScenarioObject{
			Name: p.Name(),
			MiscObject: &MiscObject{
				MiscObjectCategory: "obstacle",
				Mass:               "500.0",
				Name:               blueprint,
				BoundingBox:        propBoundingBox,
				Properties: Properties{Properties: []Property{
					{Name: "type", Value: "simulation"},
					{Name: "physics", Value: physics},
				}},
			},
		})
	}
	return entities
}

func vehicleElement(kind core.EntityKind, model, typeProp string) *Vehicle {
	return &Vehicle{
		Name:            core.BlueprintID(kind, model),
		VehicleCategory: "car",
		Performance:     vehiclePerformance,
		BoundingBox:     vehicleBoundingBox,
		Axles:           vehicleAxles,
		Properties: Properties{Properties: []Property{
			{Name: "type", Value: typeProp},
		}},
	}
}

// Init actions

func (e *Encoder) encodeInit(s *core.Scenario, report *Report) Init {
	var actions InitActions

	switch len(s.Environments) {
	case 1:
		actions.GlobalActions = append(actions.GlobalActions, GlobalAction{
			Environment: environmentAction(s.Environments[0]),
		})
	case 0:
		report.Criticalf("no environment row found, environment action omitted")
	default:
		report.Criticalf("%d environment rows found, expected exactly one, environment action omitted", len(s.Environments))
	}

	for _, ego := range s.EgoVehicles {
		private := Private{EntityRef: ego.Name()}
		private.Actions = append(private.Actions, teleportAction(ego.Position, ego.Orientation))
		private.Actions = append(private.Actions, controllerAction(
			fmt.Sprintf("HeroAgent_%d", ego.ID), ego.Agent, ego.AgentCamera))
		if act, ok := initSpeedAction(ego.InitSpeed); ok {
			private.Actions = append(private.Actions, act)
		}
		actions.Privates = append(actions.Privates, private)
	}
	for _, v := range s.Vehicles {
		private := Private{EntityRef: v.Name()}
		private.Actions = append(private.Actions, teleportAction(v.Position, v.Orientation))
		private.Actions = append(private.Actions, controllerAction(
			fmt.Sprintf("VehicleAgent_%d", v.ID), "vehicle_control", false))
		if act, ok := initSpeedAction(v.InitSpeed); ok {
			private.Actions = append(private.Actions, act)
		}
		actions.Privates = append(actions.Privates, private)
	}
	for _, p := range s.Pedestrians {
		private := Private{EntityRef: p.Name()}
		private.Actions = append(private.Actions, teleportAction(p.Position, p.Orientation))
		if act, ok := initSpeedAction(p.InitSpeed); ok {
			private.Actions = append(private.Actions, act)
		}
		actions.Privates = append(actions.Privates, private)
	}
	for _, p := range s.Props {
		private := Private{EntityRef: p.Name()}
		private.Actions = append(private.Actions, teleportAction(p.Position, p.Orientation))
		actions.Privates = append(actions.Privates, private)
	}

	return Init{Actions: actions}
}

func environmentAction(env core.Environment) *EnvironmentAction {
	return &EnvironmentAction{
		Environment: Environment{
			Name: "Environment1",
			TimeOfDay: TimeOfDay{
				Animation: fmtBool(env.DateTimeAnimated),
				DateTime:  env.DateTime,
			},
			Weather: Weather{
				CloudState: env.CloudState,
				Sun: Sun{
					Intensity: fmtFloat(env.SunIntensity),
					Azimuth:   fmtFloat(env.SunAzimuth),
					Elevation: fmtFloat(env.SunElevation),
				},
				Fog: Fog{VisualRange: fmtFloat(env.FogRange)},
				Precipitation: Precipitation{
					PrecipitationType: env.PrecipType,
					Intensity:         fmtFloat(env.PrecipIntensity),
				},
			},
			RoadCondition: RoadCondition{FrictionScaleFactor: "1.0"},
		},
	}
}

func teleportAction(pos core.Position3D, heading float64) PrivateAction {
	return PrivateAction{
		Teleport: &TeleportAction{Position: worldPosition(pos, heading)},
	}
}

func controllerAction(name, module string, camera bool) PrivateAction {
	if module == "" {
		module = "external_control"
	}
	props := []Property{{Name: "module", Value: module}}
	if camera {
		props = append(props, Property{Name: "attach_camera", Value: "true"})
	}
	return PrivateAction{
		Controller: &ControllerAction{
			Assign: &AssignControllerAction{
				Controller: Controller{
					Name:       name,
					Properties: Properties{Properties: props},
				},
			},
			Override: overrideAllInactive(),
		},
	}
}

func overrideAllInactive() *OverrideControllerValueAction {
	off := OverrideValue{Active: "false", Value: "0"}
	return &OverrideControllerValueAction{
		Throttle:      off,
		Brake:         off,
		Clutch:        off,
		ParkingBrake:  off,
		SteeringWheel: off,
		Gear:          off,
	}
}

// initSpeedAction emits an absolute speed action unless the initial
// speed is zero. The raw value is written as-is so "$Param" references
// survive.
func initSpeedAction(initSpeed string) (PrivateAction, bool) {
	if initSpeed == "" || initSpeed == "0" {
		return PrivateAction{}, false
	}
	if v, err := strconv.ParseFloat(initSpeed, 64); err == nil && v == 0 {
		return PrivateAction{}, false
	}
	return PrivateAction{
		Longitudinal: &LongitudinalActionNode{
			Speed: &SpeedAction{
				Dynamics: TransitionDynamics{
					DynamicsShape:     "step",
					Value:             "0.0",
					DynamicsDimension: "time",
				},
				Target: SpeedActionTarget{
					Absolute: &AbsoluteTargetSpeed{Value: initSpeed},
				},
			},
		},
	}, true
}

// Maneuver groups

func (e *Encoder) encodeManeuverGroups(s *core.Scenario, report *Report) []ManeuverGroup {
	if len(s.Maneuvers) == 0 {
		return e.fallbackManeuverGroup(s, report)
	}

	// group by entity reference, first-appearance order
	var order []string
	byEntityRef := make(map[string][]core.Maneuver)
	for _, m := range s.Maneuvers {
		if _, seen := byEntityRef[m.Entity]; !seen {
			order = append(order, m.Entity)
		}
		byEntityRef[m.Entity] = append(byEntityRef[m.Entity], m)
	}

	groups := make([]ManeuverGroup, 0, len(order))
	for _, entity := range order {
		group := ManeuverGroup{
			MaximumExecutionCount: "1",
			Name:                  fmt.Sprintf("Maneuver group for %s", entity),
			Actors: Actors{
				SelectTriggeringEntities: "false",
				EntityRefs:               []EntityRef{{EntityRef: entity}},
			},
		}
		for _, m := range byEntityRef[entity] {
			maneuver, ok := e.encodeManeuver(s, m, report)
			if !ok {
				continue
			}
			group.Maneuvers = append(group.Maneuvers, maneuver)
		}
		groups = append(groups, group)
	}
	return groups
}

func (e *Encoder) encodeManeuver(s *core.Scenario, m core.Maneuver, report *Report) (Maneuver, bool) {
	action, ok := e.encodeManeuverAction(s, m, report)
	if !ok {
		return Maneuver{}, false
	}

	event := Event{
		Name:     fmt.Sprintf("Event for Maneuver ID %d", m.ID),
		Priority: "overwrite",
		Action:   action,
		StartTrigger: encodeTrigger(
			fmt.Sprintf("Start condition of Maneuver ID %d", m.ID), m.StartTrigger),
	}
	if m.StopTriggerEnabled && m.StopTrigger != nil {
		stop := encodeTrigger(
			fmt.Sprintf("Stop condition of Maneuver ID %d", m.ID), *m.StopTrigger)
		event.StopTrigger = &stop
	}

	return Maneuver{
		Name:   fmt.Sprintf("Maneuver ID %d", m.ID),
		Events: []Event{event},
	}, true
}

func (e *Encoder) encodeManeuverAction(s *core.Scenario, m core.Maneuver, report *Report) (Action, bool) {
	name := fmt.Sprintf("Action for Maneuver ID %d", m.ID)

	if m.Type == core.ManeuverGlobal {
		if m.GlobalActionType != core.GlobalInfrastructure {
			report.Warnf("maneuver %d has unsupported global action type %q, skipped", m.ID, m.GlobalActionType)
			return Action{}, false
		}
		return Action{
			Name: name,
			Global: &GlobalAction{
				Infrastructure: &InfrastructureAction{
					TrafficSignal: TrafficSignalAction{
						State: &TrafficSignalStateAction{
							Name:  fmt.Sprintf("id=%d", m.TrafficLightID),
							State: m.TrafficLightState,
						},
					},
				},
			},
		}, true
	}

	switch m.EntityManeuverType {
	case core.ManeuverWaypoint:
		waypoints := s.ManeuverWaypoints(m.ID)
		if len(waypoints) == 0 {
			report.Warnf("maneuver %d has no waypoints, skipped", m.ID)
			return Action{}, false
		}
		route := Route{
			Name:   fmt.Sprintf("Route for %s", m.Entity),
			Closed: "false",
		}
		for _, w := range waypoints {
			strategy := w.RouteStrategy
			if strategy == "" {
				strategy = "fastest"
			}
			route.Waypoints = append(route.Waypoints, RouteWaypoint{
				RouteStrategy: strategy,
				Position:      worldPosition(w.Position, w.Orientation),
			})
		}
		return Action{
			Name: name,
			Private: &PrivateAction{
				Routing: &RoutingAction{AssignRoute: &AssignRouteAction{Route: route}},
			},
		}, true

	case core.ManeuverLongitudinal:
		payload := s.LongitudinalFor(m.ID)
		if payload == nil {
			report.Warnf("maneuver %d has no longitudinal action row, skipped", m.ID)
			return Action{}, false
		}
		return Action{
			Name:    name,
			Private: &PrivateAction{Longitudinal: longitudinalNode(payload)},
		}, true

	case core.ManeuverLateral:
		payload := s.LateralFor(m.ID)
		if payload == nil {
			report.Warnf("maneuver %d has no lateral action row, skipped", m.ID)
			return Action{}, false
		}
		return Action{
			Name:    name,
			Private: &PrivateAction{Lateral: lateralNode(payload)},
		}, true
	}

	report.Warnf("maneuver %d has unknown entity maneuver type %q, skipped", m.ID, m.EntityManeuverType)
	return Action{}, false
}

func longitudinalNode(a *core.LongitudinalAction) *LongitudinalActionNode {
	switch a.Type {
	case core.LongitudinalDistance:
		return &LongitudinalActionNode{
			Distance: &LongitudinalDistanceAction{
				EntityRef:  a.TargetEntity,
				Distance:   fmtFloat(a.Distance),
				Freespace:  fmtBool(a.Freespace),
				Continuous: fmtBool(a.Continuous),
				DynamicConstraints: &DynamicConstraints{
					MaxAcceleration: fmtFloat(a.MaxAcceleration),
					MaxDeceleration: fmtFloat(a.MaxDeceleration),
					MaxSpeed:        fmtFloat(a.MaxSpeed),
				},
			},
		}
	default: // SpeedAction
		speed := &SpeedAction{
			Dynamics: TransitionDynamics{
				DynamicsShape:     shapeOrDefault(a.DynamicsShape),
				Value:             fmtFloat(a.DynamicsValue),
				DynamicsDimension: dimensionOrDefault(a.DynamicsDimension),
			},
		}
		if a.SpeedTarget == core.TargetRelative {
			valueType := a.ValueType
			if valueType == "" {
				valueType = "delta"
			}
			speed.Target = SpeedActionTarget{
				Relative: &RelativeTargetSpeed{
					EntityRef:            a.TargetEntity,
					Value:                fmtFloat(a.TargetSpeedValue),
					SpeedTargetValueType: valueType,
					Continuous:           fmtBool(a.Continuous),
				},
			}
		} else {
			speed.Target = SpeedActionTarget{
				Absolute: &AbsoluteTargetSpeed{Value: fmtFloat(a.TargetSpeedValue)},
			}
		}
		return &LongitudinalActionNode{Speed: speed}
	}
}

func lateralNode(a *core.LateralAction) *LateralActionNode {
	switch a.Type {
	case core.LateralLaneOffset:
		offset := &LaneOffsetAction{
			Continuous: fmtBool(a.Continuous),
			Dynamics: LaneOffsetActionDynamics{
				MaxLateralAcc: fmtFloat(a.MaxLateralAcc),
				DynamicsShape: shapeOrDefault(a.DynamicsShape),
			},
		}
		if a.LaneTarget == core.TargetRelative {
			offset.Target = LaneOffsetTarget{
				Relative: &RelativeTargetLaneOffset{EntityRef: a.TargetEntity, Value: a.LaneValue},
			}
		} else {
			offset.Target = LaneOffsetTarget{
				Absolute: &AbsoluteTargetLaneOffset{Value: a.LaneValue},
			}
		}
		return &LateralActionNode{LaneOffset: offset}

	case core.LateralDistance:
		return &LateralActionNode{
			Distance: &LateralDistanceAction{
				EntityRef:  a.TargetEntity,
				Distance:   fmtFloat(a.Distance),
				Freespace:  fmtBool(a.Freespace),
				Continuous: fmtBool(a.Continuous),
				DynamicConstraints: &DynamicConstraints{
					MaxAcceleration: fmtFloat(a.MaxAcceleration),
					MaxDeceleration: fmtFloat(a.MaxDeceleration),
					MaxSpeed:        fmtFloat(a.MaxSpeed),
				},
			},
		}

	default: // LaneChangeAction
		change := &LaneChangeAction{
			Dynamics: TransitionDynamics{
				DynamicsShape:     shapeOrDefault(a.DynamicsShape),
				Value:             fmtFloat(a.DynamicsValue),
				DynamicsDimension: dimensionOrDefault(a.DynamicsDimension),
			},
		}
		if a.TargetLaneOffset != 0 {
			change.TargetLaneOffset = fmtFloat(a.TargetLaneOffset)
		}
		if a.LaneTarget == core.TargetRelative {
			change.Target = LaneChangeTarget{
				Relative: &RelativeTargetLane{EntityRef: a.TargetEntity, Value: a.LaneValue},
			}
		} else {
			change.Target = LaneChangeTarget{
				Absolute: &AbsoluteTargetLane{Value: a.LaneValue},
			}
		}
		return &LateralActionNode{LaneChange: change}
	}
}

// fallbackManeuverGroup synthesizes one "drive 100m from the start
// position" maneuver so the exported document stays schema-valid with no
// user-defined maneuvers. Ego preferred, else the first vehicle; with no
// vehicle at all the entity reference is left blank.
func (e *Encoder) fallbackManeuverGroup(s *core.Scenario, report *Report) []ManeuverGroup {
	report.Warnf("no maneuvers defined, generating a default drive maneuver")

	var entityName string
	var start core.Position3D
	switch {
	case len(s.EgoVehicles) > 0:
		entityName = s.EgoVehicles[0].Name()
		start = s.EgoVehicles[0].Position
	case len(s.Vehicles) > 0:
		entityName = s.Vehicles[0].Name()
		start = s.Vehicles[0].Position
	default:
		report.Criticalf("no vehicle available for the default maneuver, entity reference left blank")
	}

	target := core.Position3D{X: start.X + 100, Y: start.Y + 100, Z: start.Z}

	event := Event{
		Name:     "Event for Default Maneuver",
		Priority: "overwrite",
		Action: Action{
			Name: "Action for Default Maneuver",
			Private: &PrivateAction{
				Routing: &RoutingAction{
					AcquirePosition: &AcquirePositionAction{
						Position: worldPosition(target, 0),
					},
				},
			},
		},
		StartTrigger: encodeTrigger("Start condition of Default Maneuver", core.Trigger{
			TriggeringEntity: entityName,
			Edge:             core.EdgeRising,
			Condition: core.ReachPositionCondition{
				Position:  target,
				Tolerance: 1.0,
			},
		}),
	}

	return []ManeuverGroup{{
		MaximumExecutionCount: "1",
		Name:                  fmt.Sprintf("Maneuver group for %s", entityName),
		Actors: Actors{
			SelectTriggeringEntities: "false",
			EntityRefs:               []EntityRef{{EntityRef: entityName}},
		},
		Maneuvers: []Maneuver{{
			Name:   "Default Maneuver",
			Events: []Event{event},
		}},
	}}
}

// Stop criteria

func (e *Encoder) encodeStopCriteria(s *core.Scenario, report *Report) TriggerE {
	if len(s.Criteria) == 0 {
		report.Warnf("no end evaluation criteria defined, stop trigger left empty")
		return TriggerE{}
	}

	var trigger TriggerE
	for _, c := range s.Criteria {
		trigger.ConditionGroups = append(trigger.ConditionGroups, ConditionGroup{
			Conditions: []Condition{{
				Name:          c.ConditionName,
				Delay:         fmtFloat(c.Delay),
				ConditionEdge: string(edgeOrDefault(c.ConditionEdge)),
				ByValue: &ByValueCondition{
					Parameter: &ParameterCondition{
						ParameterRef: c.ParameterRef,
						Value:        fmtFloat(c.Value),
						Rule:         string(c.Rule),
					},
				},
			}},
		})
	}
	return trigger
}

// formatting helpers

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtBool(v bool) string {
	return strconv.FormatBool(v)
}

func worldPosition(pos core.Position3D, heading float64) Position {
	return Position{
		World: &WorldPosition{
			X: fmtFloat(pos.X),
			Y: fmtFloat(pos.Y),
			Z: fmtFloat(pos.Z),
			H: fmtFloat(heading),
		},
	}
}

func shapeOrDefault(shape string) string {
	if shape == "" {
		return "linear"
	}
	return shape
}

func dimensionOrDefault(dim string) string {
	if dim == "" {
		return "time"
	}
	return dim
}
